package public

import (
	"github.com/gin-gonic/gin"

	handlershared "github.com/awandha/engrave-shop/internal/http/handlers/shared"
	"github.com/awandha/engrave-shop/internal/http/response"
	"github.com/awandha/engrave-shop/internal/service"
)

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	Email string `json:"email" binding:"required"`
}

// Checkout 将购物车结算为订单
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	token := handlershared.CartToken(c)
	if token == "" {
		respondError(c, response.CodeBadRequest, "error.cart_token_invalid", nil)
		return
	}

	order, err := h.OrderService.Checkout(service.FeeContext{}, service.CheckoutInput{
		CartToken: token,
		Email:     req.Email,
		ClientIP:  c.ClientIP(),
	})
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.order_create_failed")
		return
	}
	response.Success(c, order)
}
