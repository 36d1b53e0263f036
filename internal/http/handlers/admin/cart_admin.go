package admin

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/awandha/engrave-shop/internal/http/response"
	"github.com/awandha/engrave-shop/internal/service"
)

// RecalculateCart 后台触发的购物车重算。
// 与后台只读查看不同，重算会重新计算刻字费用。
func (h *Handler) RecalculateCart(c *gin.Context) {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		respondError(c, response.CodeBadRequest, "error.cart_token_invalid", nil)
		return
	}

	summary, err := h.CartService.Summary(service.FeeContext{Admin: true, CartUpdate: true}, token)
	if err != nil {
		if errors.Is(err, service.ErrCartTokenRequired) {
			respondError(c, response.CodeBadRequest, "error.cart_token_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}
	response.Success(c, summary)
}

// GetCart 后台只读查看购物车，跳过费用计算
func (h *Handler) GetCart(c *gin.Context) {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		respondError(c, response.CodeBadRequest, "error.cart_token_invalid", nil)
		return
	}

	summary, err := h.CartService.Summary(service.FeeContext{Admin: true}, token)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}
	response.Success(c, summary)
}
