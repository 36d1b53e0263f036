package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultLocale 默认语言
const DefaultLocale = "en"

var supportedLocales = map[string]bool{
	"en": true,
	"id": true,
}

var messages = map[string]map[string]string{
	"en": {
		"error.bad_request":            "invalid request",
		"error.unauthorized":           "unauthorized",
		"error.internal":               "internal error",
		"error.not_found":              "not found",
		"error.product_not_found":      "product not found",
		"error.product_not_available":  "product is not available",
		"error.cart_item_invalid":      "invalid cart item",
		"error.cart_token_invalid":     "invalid cart token",
		"error.cart_fetch_failed":      "failed to load cart",
		"error.cart_update_failed":     "failed to update cart",
		"error.engraving_too_long":     "Engraving text must be less than %d characters.",
		"error.checkout_email_invalid": "a valid email is required for checkout",
		"error.cart_empty":             "cart is empty",
		"error.order_not_found":        "order not found",
		"error.order_create_failed":    "failed to create order",
		"error.order_fetch_failed":     "failed to load order",
		"error.setting_invalid":        "invalid setting value",
		"error.setting_update_failed":  "failed to update settings",
		"error.login_failed":           "invalid username or password",
		"error.login_too_many":         "too many login attempts, please retry later",
		"error.rate_limit_unavailable": "rate limiter unavailable",
		"error.jwt_secret_missing":     "authentication is not configured",
		"error.token_invalid":          "invalid or expired token",
		"error.auth_header_missing":    "authorization header is required",
		"error.auth_header_invalid":    "authorization header is malformed",
	},
	"id": {
		"error.bad_request":            "permintaan tidak valid",
		"error.unauthorized":           "tidak diizinkan",
		"error.internal":               "kesalahan internal",
		"error.not_found":              "tidak ditemukan",
		"error.product_not_found":      "produk tidak ditemukan",
		"error.product_not_available":  "produk tidak tersedia",
		"error.cart_item_invalid":      "item keranjang tidak valid",
		"error.cart_token_invalid":     "token keranjang tidak valid",
		"error.cart_fetch_failed":      "gagal memuat keranjang",
		"error.cart_update_failed":     "gagal memperbarui keranjang",
		"error.engraving_too_long":     "Teks ukiran harus kurang dari %d karakter.",
		"error.checkout_email_invalid": "email yang valid diperlukan untuk checkout",
		"error.cart_empty":             "keranjang kosong",
		"error.order_not_found":        "pesanan tidak ditemukan",
		"error.order_create_failed":    "gagal membuat pesanan",
		"error.order_fetch_failed":     "gagal memuat pesanan",
		"error.setting_invalid":        "nilai pengaturan tidak valid",
		"error.setting_update_failed":  "gagal memperbarui pengaturan",
		"error.login_failed":           "nama pengguna atau kata sandi salah",
		"error.login_too_many":         "terlalu banyak percobaan login, coba lagi nanti",
		"error.rate_limit_unavailable": "pembatas laju tidak tersedia",
		"error.jwt_secret_missing":     "autentikasi belum dikonfigurasi",
		"error.token_invalid":          "token tidak valid atau kedaluwarsa",
		"error.auth_header_missing":    "header otorisasi diperlukan",
		"error.auth_header_invalid":    "header otorisasi tidak valid",
	},
}

// ResolveLocale 解析请求语言（query 参数优先，其次 Accept-Language）
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if locale := normalizeLocale(c.Query("locale")); locale != "" {
		return locale
	}
	accept := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(accept, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if locale := normalizeLocale(tag); locale != "" {
			return locale
		}
	}
	return DefaultLocale
}

// T 翻译消息（缺失 key 时回退英文，再回退 key 本身）
func T(locale, key string, args ...interface{}) string {
	locale = normalizeLocale(locale)
	if locale == "" {
		locale = DefaultLocale
	}
	msg, ok := messages[locale][key]
	if !ok {
		msg, ok = messages[DefaultLocale][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

func normalizeLocale(raw string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if tag == "" {
		return ""
	}
	if idx := strings.IndexAny(tag, "-_"); idx > 0 {
		tag = tag[:idx]
	}
	if supportedLocales[tag] {
		return tag
	}
	return ""
}
