package service

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matpvl/recipe-api/internal/config"
	"github.com/matpvl/recipe-api/internal/models"
	"github.com/matpvl/recipe-api/internal/repository"
	"github.com/matpvl/recipe-api/internal/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// 测试共用的依赖集合
type testEnv struct {
	db            *gorm.DB
	cfg           *config.Config
	jwtManager    *utils.JWTManager
	authService   *AuthService
	userService   *UserService
	recipeService *RecipeService
	tagService    *TagService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.Algorithm = "HS256"

	jwtManager := utils.NewJWTManager("test-secret", "HS256", time.Hour)
	userRepo := repository.NewUserRepository(db)

	return &testEnv{
		db:            db,
		cfg:           cfg,
		jwtManager:    jwtManager,
		authService:   NewAuthService(userRepo, jwtManager, cfg),
		userService:   NewUserService(userRepo),
		recipeService: NewRecipeService(repository.NewRecipeRepository(db)),
		tagService:    NewTagService(repository.NewTagRepository(db)),
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
