package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matpvl/recipe-api/internal/config"
	"github.com/matpvl/recipe-api/internal/models"
	"github.com/matpvl/recipe-api/internal/router"
	"github.com/matpvl/recipe-api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// envelope 统一响应格式
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newTestRouter 构建跑在内存数据库上的完整路由
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handler_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.Algorithm = "HS256"
	cfg.JWT.ExpireMinutes = 60

	jwtManager := utils.NewJWTManager("test-secret", "HS256", time.Hour)

	testLogger := logrus.New()
	testLogger.SetOutput(io.Discard)

	// redisClient为nil，登录限流关闭
	return router.SetupRouter(cfg, jwtManager, testLogger, db, nil), db
}

// doRequest 发送JSON请求
func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerAndLogin 注册用户并返回Token
func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/users", "", gin.H{
		"email": email, "password": "secret", "name": "测试用户",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/token", "", gin.H{
		"email": email, "password": "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	var data struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.AccessToken)

	return data.AccessToken
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func TestAnonymousRequestsRejected(t *testing.T) {
	r, _ := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/recipes"},
		{http.MethodPost, "/api/recipes"},
		{http.MethodGet, "/api/tags"},
		{http.MethodGet, "/api/users/me"},
	}

	for _, p := range paths {
		w := doRequest(t, r, p.method, p.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}

	// 错误的Token同样拒绝
	w := doRequest(t, r, http.MethodGet, "/api/recipes", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterNeverEchoesPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/users", "", gin.H{
		"email": "a@example.com", "password": "secret", "name": "张三",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegisterShortPasswordRejected(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/users", "", gin.H{
		"email": "a@example.com", "password": "abc", "name": "张三",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTokenInvalidCredentials(t *testing.T) {
	r, _ := newTestRouter(t)
	registerAndLogin(t, r, "a@example.com")

	w := doRequest(t, r, http.MethodPost, "/api/token", "", gin.H{
		"email": "a@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 不存在的账号得到同样的状态码和消息
	w2 := doRequest(t, r, http.MethodPost, "/api/token", "", gin.H{
		"email": "missing@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
	assert.Equal(t, w.Body.String(), w2.Body.String())
}

func TestUpdateMeFutureBirthdayRejected(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "a@example.com")

	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	w := doRequest(t, r, http.MethodPatch, "/api/users/me", token, gin.H{
		"birthday": future,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "不能晚于当前日期"))
}

func TestUpdateMeChangesPassword(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "a@example.com")

	w := doRequest(t, r, http.MethodPatch, "/api/users/me", token, gin.H{
		"password": "newsecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// 旧密码失效，新密码可登录
	w = doRequest(t, r, http.MethodPost, "/api/token", "", gin.H{
		"email": "a@example.com", "password": "secret",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/token", "", gin.H{
		"email": "a@example.com", "password": "newsecret",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
