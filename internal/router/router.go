package router

import (
	"github.com/matpvl/recipe-api/internal/config"
	"github.com/matpvl/recipe-api/internal/handler"
	"github.com/matpvl/recipe-api/internal/middleware"
	"github.com/matpvl/recipe-api/internal/repository"
	"github.com/matpvl/recipe-api/internal/service"
	"github.com/matpvl/recipe-api/internal/utils"
	"github.com/matpvl/recipe-api/pkg/redis_limiter"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
// redisClient为nil时不启用登录限流
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 注册自定义验证规则
	utils.InitValidator()

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "菜谱管理系统 API",
			"version": "1.0.0",
		})
	})

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	tagRepo := repository.NewTagRepository(db)

	// 初始化Service
	authService := service.NewAuthService(userRepo, jwtManager, cfg)
	userService := service.NewUserService(userRepo)
	recipeService := service.NewRecipeService(recipeRepo)
	tagService := service.NewTagService(tagRepo)

	// 初始化登录限流器
	var loginLimiter *redis_limiter.RedisLimiter
	if redisClient != nil {
		loginLimiter = redis_limiter.NewRedisLimiter(
			redisClient,
			cfg.Redis.LoginMaxAttempts,
			"login_attempts:",
			cfg.Redis.GetLoginWindow(),
		)
	}

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService, loginLimiter)
	userHandler := handler.NewUserHandler(userService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	tagHandler := handler.NewTagHandler(tagService)

	// API路由组
	api := r.Group("/api")
	{
		// 公开路由
		api.POST("/users", authHandler.Register)
		api.POST("/token", authHandler.Token)

		// 认证路由
		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(jwtManager))
		{
			// 用户信息
			authorized.GET("/users/me", userHandler.GetMe)
			authorized.PUT("/users/me", userHandler.UpdateMe)
			authorized.PATCH("/users/me", userHandler.UpdateMe)
			authorized.POST("/logout", authHandler.Logout)

			// 菜谱管理
			authorized.GET("/recipes", recipeHandler.List)
			authorized.POST("/recipes", recipeHandler.Create)
			authorized.GET("/recipes/:id", recipeHandler.Get)
			authorized.PUT("/recipes/:id", recipeHandler.Update)
			authorized.PATCH("/recipes/:id", recipeHandler.PartialUpdate)
			authorized.DELETE("/recipes/:id", recipeHandler.Delete)

			// 标签管理
			authorized.GET("/tags", tagHandler.List)
			authorized.POST("/tags", tagHandler.Create)
			authorized.GET("/tags/:id", tagHandler.Get)
			authorized.PUT("/tags/:id", tagHandler.Update)
			authorized.PATCH("/tags/:id", tagHandler.Update)
			authorized.DELETE("/tags/:id", tagHandler.Delete)
		}
	}

	return r
}
