package provider

import (
	"github.com/awandha/engrave-shop/internal/cache"
	"github.com/awandha/engrave-shop/internal/config"
	"github.com/awandha/engrave-shop/internal/logger"
	"github.com/awandha/engrave-shop/internal/models"
	"github.com/awandha/engrave-shop/internal/repository"
	"github.com/awandha/engrave-shop/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	AdminRepo   repository.AdminRepository
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository
	SettingRepo repository.SettingRepository

	// Services
	AuthService    *service.AuthService
	SettingService *service.SettingService
	CartService    *service.CartService
	OrderService   *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	adminRepo := repository.NewAdminRepository(models.DB)
	productRepo := repository.NewProductRepository(models.DB)
	cartRepo := repository.NewCartRepository(models.DB)
	orderRepo := repository.NewOrderRepository(models.DB)
	settingRepo := repository.NewSettingRepository(models.DB)

	settingService := service.NewSettingService(settingRepo)
	cartService := service.NewCartService(cartRepo, productRepo, settingService, cfg.Engraving)
	orderService := service.NewOrderService(orderRepo, cartRepo, cartService)
	authService := service.NewAuthService(cfg, adminRepo)

	return &Container{
		Config: cfg,

		AdminRepo:   adminRepo,
		ProductRepo: productRepo,
		CartRepo:    cartRepo,
		OrderRepo:   orderRepo,
		SettingRepo: settingRepo,

		AuthService:    authService,
		SettingService: settingService,
		CartService:    cartService,
		OrderService:   orderService,
	}
}
