// Package widget 渲染商品页刻字输入控件及其前端脚本。
package widget

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/awandha/engrave-shop/internal/constants"
)

//go:embed assets/*.js
var assetFS embed.FS

// AssetJSName 刻字控件脚本资源名
const AssetJSName = "engraving.js"

var fieldTemplate = template.Must(template.New("engraving_field").Parse(`<div class="engraving-field">
  <label for="{{.FieldName}}">Engraving Text:</label>
  <input type="text" id="{{.FieldName}}" name="{{.FieldName}}" maxlength="{{.MaxLength}}" placeholder="Enter text..." />
  <span class="engraving-counter">0/{{.MaxLength}} characters</span>
  <div class="engraving-preview">Preview: <span id="engraving-preview-text">-</span></div>
</div>`))

type fieldData struct {
	FieldName string
	MaxLength int
}

// FieldHTML 渲染刻字输入控件片段
func FieldHTML(maxLength int) (template.HTML, error) {
	if maxLength <= 0 {
		maxLength = constants.DefaultEngravingMaxTextLength
	}
	var buf bytes.Buffer
	err := fieldTemplate.Execute(&buf, fieldData{
		FieldName: constants.EngravingFieldName,
		MaxLength: maxLength,
	})
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// AssetJS 返回刻字控件脚本内容
func AssetJS() ([]byte, error) {
	return assetFS.ReadFile("assets/" + AssetJSName)
}
