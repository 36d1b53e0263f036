package public

import (
	"github.com/gin-gonic/gin"

	handlershared "github.com/awandha/engrave-shop/internal/http/handlers/shared"
)

func respondError(c *gin.Context, code int, key string, err error, args ...interface{}) {
	handlershared.RespondError(c, code, key, err, args...)
}
