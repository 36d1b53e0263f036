package public

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	handlershared "github.com/awandha/engrave-shop/internal/http/handlers/shared"
	"github.com/awandha/engrave-shop/internal/http/response"
	"github.com/awandha/engrave-shop/internal/service"
)

// CartItemRequest 加购/更新请求
type CartItemRequest struct {
	ProductID     uint   `json:"product_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required"`
	EngravingText string `json:"engraving_text"`
}

// GetCart 获取购物车摘要
func (h *Handler) GetCart(c *gin.Context) {
	token := handlershared.CartToken(c)
	if token == "" {
		respondError(c, response.CodeBadRequest, "error.cart_token_invalid", nil)
		return
	}

	summary, err := h.CartService.Summary(service.FeeContext{}, token)
	if err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "error.cart_fetch_failed")
		return
	}
	response.Success(c, summary)
}

// UpsertCartItem 新增或更新购物车项
func (h *Handler) UpsertCartItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	token := handlershared.EnsureCartToken(c)
	item, err := h.CartService.UpsertItem(service.UpsertCartItemInput{
		CartToken:     token,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		EngravingText: req.EngravingText,
	})
	if err != nil {
		if errors.Is(err, service.ErrEngravingTooLong) {
			setting, settingErr := h.CartService.EngravingSetting()
			if settingErr != nil {
				respondError(c, response.CodeInternal, "error.cart_update_failed", settingErr)
				return
			}
			respondError(c, response.CodeBadRequest, "error.engraving_too_long", nil, setting.MaxTextLength)
			return
		}
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}

	response.Success(c, gin.H{
		"cart_token": token,
		"item":       item,
	})
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	token := handlershared.CartToken(c)
	if token == "" {
		respondError(c, response.CodeBadRequest, "error.cart_token_invalid", nil)
		return
	}

	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		return
	}

	if err := h.CartService.RemoveItem(token, uint(productID)); err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}
	response.Success(c, nil)
}
