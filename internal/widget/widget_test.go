package widget

import (
	"strings"
	"testing"
)

func TestFieldHTML(t *testing.T) {
	html, err := FieldHTML(50)
	if err != nil {
		t.Fatalf("FieldHTML failed: %v", err)
	}
	out := string(html)
	for _, want := range []string{
		`name="engraving_text"`,
		`id="engraving_text"`,
		`maxlength="50"`,
		`placeholder="Enter text..."`,
		`class="engraving-counter"`,
		`0/50 characters`,
		`id="engraving-preview-text"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("field html missing %q:\n%s", want, out)
		}
	}
}

func TestFieldHTMLDefaultsMaxLength(t *testing.T) {
	html, err := FieldHTML(0)
	if err != nil {
		t.Fatalf("FieldHTML failed: %v", err)
	}
	if !strings.Contains(string(html), `maxlength="50"`) {
		t.Fatalf("expected default maxlength 50:\n%s", html)
	}
}

func TestAssetJS(t *testing.T) {
	js, err := AssetJS()
	if err != nil {
		t.Fatalf("AssetJS failed: %v", err)
	}
	script := string(js)
	for _, want := range []string{
		"engraving_text",
		"' characters'",
		"engraving-counter-warning",
		"engraving-field-warning",
		"engraving-counter-pulse",
		"300",
	} {
		if !strings.Contains(script, want) {
			t.Fatalf("script missing %q", want)
		}
	}
}
