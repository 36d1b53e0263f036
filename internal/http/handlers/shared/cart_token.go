package shared

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/awandha/engrave-shop/internal/constants"
)

const maxCartTokenLength = 64

// CartToken 读取请求携带的购物车令牌
func CartToken(c *gin.Context) string {
	token := strings.TrimSpace(c.GetHeader(constants.CartTokenHeader))
	if len(token) > maxCartTokenLength {
		return ""
	}
	return token
}

// EnsureCartToken 读取购物车令牌，缺失时签发新令牌并写入响应头。
// 写操作使用：没有令牌的首个加购请求会拿到一个新购物车。
func EnsureCartToken(c *gin.Context) string {
	token := CartToken(c)
	if token == "" {
		token = uuid.NewString()
	}
	c.Header(constants.CartTokenHeader, token)
	return token
}
