package service

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	engravingPolicyOnce sync.Once
	engravingPolicy     *bluemonday.Policy
)

// SanitizeEngravingText 清洗刻字文本：剥离全部标签、还原实体、去除控制字符并压缩空白。
// 等价于宿主平台对自由文本的入库清洗能力。
func SanitizeEngravingText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := engravingSanitizer().Sanitize(trimmed)
	// bluemonday 输出经过实体编码，展示层各自负责转义，存储保留原字符
	cleaned = html.UnescapeString(cleaned)
	cleaned = stripControlRunes(cleaned)
	return strings.Join(strings.Fields(cleaned), " ")
}

func engravingSanitizer() *bluemonday.Policy {
	engravingPolicyOnce.Do(func() {
		engravingPolicy = bluemonday.StrictPolicy()
	})
	return engravingPolicy
}

func stripControlRunes(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			// 留给空白压缩处理
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
