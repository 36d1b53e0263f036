package router

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/awandha/engrave-shop/internal/cache"
	"github.com/awandha/engrave-shop/internal/config"
	adminhandlers "github.com/awandha/engrave-shop/internal/http/handlers/admin"
	publichandlers "github.com/awandha/engrave-shop/internal/http/handlers/public"
	"github.com/awandha/engrave-shop/internal/logger"
	"github.com/awandha/engrave-shop/internal/provider"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "es"
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 商品页刻字控件脚本
	r.GET("/assets/engraving.js", publicHandler.GetEngravingScript)

	apiV1 := r.Group("/api/v1")
	{
		// 店面接口
		apiV1.GET("/products", publicHandler.ListProducts)
		apiV1.GET("/products/:slug", publicHandler.GetProduct)
		apiV1.GET("/engraving/field", publicHandler.GetEngravingField)

		apiV1.GET("/cart", publicHandler.GetCart)
		apiV1.POST("/cart/items", publicHandler.UpsertCartItem)
		apiV1.DELETE("/cart/items/:product_id", publicHandler.DeleteCartItem)

		apiV1.POST("/checkout", publicHandler.Checkout)
		apiV1.GET("/orders/:order_no", publicHandler.GetOrder)

		// 管理端接口
		adminGroup := apiV1.Group("/admin")
		{
			adminGroup.POST("/login",
				RateLimitMiddleware(cache.Client(), adminLoginRule, KeyByIPAndJSONField("username")),
				adminHandler.AdminLogin,
			)

			authed := adminGroup.Group("")
			authed.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				authed.GET("/orders", adminHandler.GetAdminOrders)
				authed.GET("/orders/:id", adminHandler.GetAdminOrder)

				authed.GET("/carts/:token", adminHandler.GetCart)
				authed.POST("/carts/:token/recalculate", adminHandler.RecalculateCart)

				authed.GET("/settings/engraving", adminHandler.GetEngravingSetting)
				authed.PUT("/settings/engraving", adminHandler.UpdateEngravingSetting)
				authed.GET("/settings/schema", adminHandler.GetSettingsSchema)
			}
		}
	}

	return r
}
