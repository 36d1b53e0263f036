package public

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awandha/engrave-shop/internal/http/response"
	"github.com/awandha/engrave-shop/internal/widget"
)

// GetEngravingField 返回商品页刻字输入控件片段。
// 前端把返回的 html 注入加购表单，并加载 /assets/engraving.js 获得实时反馈。
func (h *Handler) GetEngravingField(c *gin.Context) {
	setting, err := h.CartService.EngravingSetting()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	html, err := widget.FieldHTML(setting.MaxTextLength)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{
		"html":       string(html),
		"max_length": setting.MaxTextLength,
		"script":     "/assets/" + widget.AssetJSName,
	})
}

// GetEngravingScript 输出刻字控件前端脚本
func (h *Handler) GetEngravingScript(c *gin.Context) {
	js, err := widget.AssetJS()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	c.Data(http.StatusOK, "application/javascript; charset=utf-8", js)
}
