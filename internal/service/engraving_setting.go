package service

import (
	"fmt"

	"github.com/awandha/engrave-shop/internal/config"
	"github.com/awandha/engrave-shop/internal/constants"
	"github.com/awandha/engrave-shop/internal/models"
)

const (
	engravingFeeAmountMin     = 0
	engravingMaxTextLengthMin = 1
	engravingMaxTextLengthMax = 500
)

// EngravingSetting 刻字功能配置
type EngravingSetting struct {
	FeeAmount     int64 `json:"engraving_fee_amount"` // 单件刻字费用（货币最小单位）
	MaxTextLength int   `json:"max_text_length"`      // 刻字文本最大字符数
}

// EngravingDefaultSetting 默认刻字配置（以应用配置为回退）
func EngravingDefaultSetting(fallback config.EngravingConfig) EngravingSetting {
	return NormalizeEngravingSetting(EngravingSetting{
		FeeAmount:     fallback.FeeAmount,
		MaxTextLength: fallback.MaxTextLength,
	})
}

// NormalizeEngravingSetting 归一化刻字配置
func NormalizeEngravingSetting(setting EngravingSetting) EngravingSetting {
	if setting.FeeAmount < engravingFeeAmountMin {
		setting.FeeAmount = constants.DefaultEngravingFeeAmount
	}
	if setting.MaxTextLength < engravingMaxTextLengthMin {
		setting.MaxTextLength = constants.DefaultEngravingMaxTextLength
	}
	if setting.MaxTextLength > engravingMaxTextLengthMax {
		setting.MaxTextLength = engravingMaxTextLengthMax
	}
	return setting
}

// ValidateEngravingSetting 校验刻字配置
func ValidateEngravingSetting(setting EngravingSetting) error {
	if setting.FeeAmount < engravingFeeAmountMin {
		return fmt.Errorf("%w: fee amount must not be negative", ErrSettingInvalid)
	}
	if setting.MaxTextLength < engravingMaxTextLengthMin || setting.MaxTextLength > engravingMaxTextLengthMax {
		return fmt.Errorf("%w: max text length must be between %d and %d", ErrSettingInvalid, engravingMaxTextLengthMin, engravingMaxTextLengthMax)
	}
	return nil
}

// EngravingSettingToMap 将刻字配置转换为 settings 存储结构
func EngravingSettingToMap(setting EngravingSetting) map[string]interface{} {
	normalized := NormalizeEngravingSetting(setting)
	return map[string]interface{}{
		constants.SettingFieldEngravingFeeAmount: normalized.FeeAmount,
		constants.SettingFieldEngravingMaxLength: normalized.MaxTextLength,
	}
}

func engravingSettingFromJSON(raw models.JSON, fallback EngravingSetting) EngravingSetting {
	result := fallback

	if feeRaw, ok := raw[constants.SettingFieldEngravingFeeAmount]; ok {
		if parsed, err := parseSettingInt(feeRaw); err == nil {
			result.FeeAmount = int64(parsed)
		}
	}
	if maxRaw, ok := raw[constants.SettingFieldEngravingMaxLength]; ok {
		if parsed, err := parseSettingInt(maxRaw); err == nil {
			result.MaxTextLength = parsed
		}
	}

	return NormalizeEngravingSetting(result)
}

// GetEngravingSetting 获取刻字配置（优先 settings，空时回退应用配置）
func (s *SettingService) GetEngravingSetting(fallback config.EngravingConfig) (EngravingSetting, error) {
	defaults := EngravingDefaultSetting(fallback)
	if s == nil {
		return defaults, nil
	}

	value, err := s.GetByKey(constants.SettingKeyEngravingConfig)
	if err != nil {
		return defaults, err
	}
	if value == nil {
		return defaults, nil
	}
	return engravingSettingFromJSON(value, defaults), nil
}

// UpdateEngravingSetting 更新刻字配置
func (s *SettingService) UpdateEngravingSetting(setting EngravingSetting) (EngravingSetting, error) {
	normalized := NormalizeEngravingSetting(setting)
	if err := ValidateEngravingSetting(normalized); err != nil {
		return normalized, err
	}
	if _, err := s.Update(constants.SettingKeyEngravingConfig, EngravingSettingToMap(normalized)); err != nil {
		return normalized, err
	}
	return normalized, nil
}
