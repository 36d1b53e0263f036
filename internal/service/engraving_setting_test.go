package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/awandha/engrave-shop/internal/config"
	"github.com/awandha/engrave-shop/internal/models"
	"github.com/awandha/engrave-shop/internal/repository"
)

func newSettingServiceForTest(t *testing.T, name string) *SettingService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewSettingService(repository.NewSettingRepository(db))
}

func TestEngravingDefaultSetting(t *testing.T) {
	setting := EngravingDefaultSetting(config.EngravingConfig{MaxTextLength: 50, FeeAmount: 10000})
	if setting.FeeAmount != 10000 || setting.MaxTextLength != 50 {
		t.Fatalf("unexpected defaults: %+v", setting)
	}

	fallback := EngravingDefaultSetting(config.EngravingConfig{MaxTextLength: 0, FeeAmount: -1})
	if fallback.FeeAmount != 10000 || fallback.MaxTextLength != 50 {
		t.Fatalf("invalid fallback must normalize to built-in defaults, got %+v", fallback)
	}
}

func TestValidateEngravingSetting(t *testing.T) {
	if err := ValidateEngravingSetting(EngravingSetting{FeeAmount: 0, MaxTextLength: 50}); err != nil {
		t.Fatalf("zero fee must be valid: %v", err)
	}
	if err := ValidateEngravingSetting(EngravingSetting{FeeAmount: -1, MaxTextLength: 50}); !errors.Is(err, ErrSettingInvalid) {
		t.Fatalf("expected ErrSettingInvalid for negative fee, got %v", err)
	}
	if err := ValidateEngravingSetting(EngravingSetting{FeeAmount: 10000, MaxTextLength: 0}); !errors.Is(err, ErrSettingInvalid) {
		t.Fatalf("expected ErrSettingInvalid for zero max length, got %v", err)
	}
	if err := ValidateEngravingSetting(EngravingSetting{FeeAmount: 10000, MaxTextLength: 501}); !errors.Is(err, ErrSettingInvalid) {
		t.Fatalf("expected ErrSettingInvalid for oversized max length, got %v", err)
	}
}

func TestEngravingSettingRoundTrip(t *testing.T) {
	svc := newSettingServiceForTest(t, "engraving_setting_roundtrip")
	fallback := config.EngravingConfig{MaxTextLength: 50, FeeAmount: 10000}

	// 未配置时返回回退默认值
	setting, err := svc.GetEngravingSetting(fallback)
	if err != nil {
		t.Fatalf("get default setting failed: %v", err)
	}
	if setting.FeeAmount != 10000 || setting.MaxTextLength != 50 {
		t.Fatalf("unexpected default setting: %+v", setting)
	}

	updated, err := svc.UpdateEngravingSetting(EngravingSetting{FeeAmount: 25000, MaxTextLength: 80})
	if err != nil {
		t.Fatalf("update setting failed: %v", err)
	}
	if updated.FeeAmount != 25000 || updated.MaxTextLength != 80 {
		t.Fatalf("unexpected updated setting: %+v", updated)
	}

	loaded, err := svc.GetEngravingSetting(fallback)
	if err != nil {
		t.Fatalf("reload setting failed: %v", err)
	}
	if loaded.FeeAmount != 25000 || loaded.MaxTextLength != 80 {
		t.Fatalf("unexpected reloaded setting: %+v", loaded)
	}
}

func TestEngravingSettingFromJSONStringValues(t *testing.T) {
	fallback := EngravingSetting{FeeAmount: 10000, MaxTextLength: 50}
	raw := models.JSON{
		"engraving_fee_amount": "15000",
		"max_text_length":      float64(60),
	}
	setting := engravingSettingFromJSON(raw, fallback)
	if setting.FeeAmount != 15000 || setting.MaxTextLength != 60 {
		t.Fatalf("unexpected parsed setting: %+v", setting)
	}

	// 非法值保留回退
	broken := engravingSettingFromJSON(models.JSON{"engraving_fee_amount": "abc"}, fallback)
	if broken.FeeAmount != 10000 {
		t.Fatalf("invalid value must keep fallback, got %+v", broken)
	}
}
