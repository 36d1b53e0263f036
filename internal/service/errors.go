package service

import "errors"

// 业务哨兵错误，handler 层据此映射统一错误响应。
var (
	ErrInvalidCartItem      = errors.New("invalid cart item")
	ErrCartTokenRequired    = errors.New("cart token required")
	ErrProductNotFound      = errors.New("product not found")
	ErrProductNotAvailable  = errors.New("product not available")
	ErrEngravingTooLong     = errors.New("engraving text too long")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrOrderNotFound        = errors.New("order not found")
	ErrLoginFailed          = errors.New("login failed")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrSettingInvalid       = errors.New("setting invalid")
)
