package main

import (
	"github.com/awandha/engrave-shop/internal/config"
	"github.com/awandha/engrave-shop/internal/constants"
	"github.com/awandha/engrave-shop/internal/logger"
	"github.com/awandha/engrave-shop/internal/models"
	"github.com/awandha/engrave-shop/internal/repository"
	"github.com/awandha/engrave-shop/internal/service"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 默认管理员
	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Printf("Failed to init default admin: %v", err)
	}

	// 示例商品（部分支持刻字）
	products := []models.Product{
		{
			Slug:          "silver-locket",
			Name:          "Silver Locket",
			Description:   "Sterling silver locket with space for a short engraving.",
			PriceAmount:   models.NewMoneyFromInt(250000),
			PriceCurrency: constants.DefaultCurrency,
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=800",
			}),
			Tags:       models.StringArray([]string{"Jewelry", "Gift"}),
			Engravable: true,
			IsActive:   true,
			SortOrder:  10,
		},
		{
			Slug:          "engraved-pen",
			Name:          "Executive Pen",
			Description:   "Brass ballpoint pen, engravable along the barrel.",
			PriceAmount:   models.NewMoneyFromInt(120000),
			PriceCurrency: constants.DefaultCurrency,
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1583485088034-697b5bc54ccd?w=800",
			}),
			Tags:       models.StringArray([]string{"Stationery", "Gift"}),
			Engravable: true,
			IsActive:   true,
			SortOrder:  20,
		},
		{
			Slug:          "gift-box",
			Name:          "Gift Box",
			Description:   "Plain kraft gift box. No engraving available.",
			PriceAmount:   models.NewMoneyFromInt(20000),
			PriceCurrency: constants.DefaultCurrency,
			Tags:          models.StringArray([]string{"Packaging"}),
			Engravable:    false,
			IsActive:      true,
			SortOrder:     30,
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", product.Slug)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Slug)
		}
	}

	// 默认刻字配置
	settingService := service.NewSettingService(repository.NewSettingRepository(models.DB))
	if value, err := settingService.GetByKey(constants.SettingKeyEngravingConfig); err != nil {
		stdLog.Printf("Failed to load engraving setting: %v", err)
	} else if value == nil {
		if _, err := settingService.UpdateEngravingSetting(service.EngravingDefaultSetting(cfg.Engraving)); err != nil {
			stdLog.Printf("Failed to seed engraving setting: %v", err)
		} else {
			stdLog.Printf("Seeded default engraving setting")
		}
	}

	stdLog.Printf("Seed completed")
}
