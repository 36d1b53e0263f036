package service

import "github.com/awandha/engrave-shop/internal/constants"

// SettingsField 后台设置页面的单个控件描述
type SettingsField struct {
	Name    string `json:"name,omitempty"`
	Type    string `json:"type"`
	Desc    string `json:"desc,omitempty"`
	ID      string `json:"id"`
	Default string `json:"default,omitempty"`
	DescTip bool   `json:"desc_tip,omitempty"`
}

const engravingSettingsSectionID = "engraving_options"

// AppendEngravingSettings 在常规设置分区（section 为空串）末尾追加刻字配置控件，
// 其他分区原样返回。已包含刻字分区时不重复追加。
func AppendEngravingSettings(section string, fields []SettingsField) []SettingsField {
	if section != "" {
		return fields
	}
	for _, f := range fields {
		if f.ID == engravingSettingsSectionID {
			return fields
		}
	}

	return append(fields,
		SettingsField{
			Name: "Engraving Fee",
			Type: constants.SettingsFieldTypeTitle,
			Desc: "Settings for engraving customization.",
			ID:   engravingSettingsSectionID,
		},
		SettingsField{
			Name:    "Engraving Fee Amount",
			Type:    constants.SettingsFieldTypeNumber,
			Desc:    "Fee per item when engraving is added (in Rp).",
			ID:      constants.SettingFieldEngravingFeeAmount,
			Default: "10000",
			DescTip: true,
		},
		SettingsField{
			Type: constants.SettingsFieldTypeSectionEnd,
			ID:   engravingSettingsSectionID,
		},
	)
}
