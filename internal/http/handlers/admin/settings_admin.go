package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/awandha/engrave-shop/internal/http/response"
	"github.com/awandha/engrave-shop/internal/service"
)

// EngravingSettingRequest 刻字配置更新请求
type EngravingSettingRequest struct {
	FeeAmount     int64 `json:"engraving_fee_amount"`
	MaxTextLength int   `json:"max_text_length"`
}

// GetEngravingSetting 获取刻字配置
func (h *Handler) GetEngravingSetting(c *gin.Context) {
	setting, err := h.SettingService.GetEngravingSetting(h.Config.Engraving)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, setting)
}

// UpdateEngravingSetting 更新刻字配置
func (h *Handler) UpdateEngravingSetting(c *gin.Context) {
	var req EngravingSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	setting, err := h.SettingService.UpdateEngravingSetting(service.EngravingSetting{
		FeeAmount:     req.FeeAmount,
		MaxTextLength: req.MaxTextLength,
	})
	if err != nil {
		if errors.Is(err, service.ErrSettingInvalid) {
			respondError(c, response.CodeBadRequest, "error.setting_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.setting_update_failed", err)
		return
	}
	response.Success(c, setting)
}

// GetSettingsSchema 返回指定分区的后台设置控件描述。
// 常规分区（section 为空）末尾追加刻字配置控件。
func (h *Handler) GetSettingsSchema(c *gin.Context) {
	section := c.Query("section")
	fields := service.AppendEngravingSettings(section, []service.SettingsField{})
	response.Success(c, gin.H{
		"section": section,
		"fields":  fields,
	})
}
