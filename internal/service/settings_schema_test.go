package service

import (
	"testing"

	"github.com/awandha/engrave-shop/internal/constants"
)

func TestAppendEngravingSettingsGeneralSection(t *testing.T) {
	existing := []SettingsField{
		{Name: "Store Name", Type: "text", ID: "store_name"},
	}
	fields := AppendEngravingSettings("", existing)
	if len(fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(fields))
	}
	if fields[0].ID != "store_name" {
		t.Fatalf("existing fields must stay first, got %+v", fields[0])
	}

	title := fields[1]
	if title.Type != constants.SettingsFieldTypeTitle || title.Name != "Engraving Fee" || title.ID != "engraving_options" {
		t.Fatalf("unexpected title field: %+v", title)
	}
	number := fields[2]
	if number.Type != constants.SettingsFieldTypeNumber || number.ID != constants.SettingFieldEngravingFeeAmount {
		t.Fatalf("unexpected number field: %+v", number)
	}
	if number.Default != "10000" || !number.DescTip {
		t.Fatalf("unexpected number field defaults: %+v", number)
	}
	end := fields[3]
	if end.Type != constants.SettingsFieldTypeSectionEnd || end.ID != "engraving_options" {
		t.Fatalf("unexpected sectionend field: %+v", end)
	}
}

func TestAppendEngravingSettingsIdempotent(t *testing.T) {
	fields := AppendEngravingSettings("", nil)
	again := AppendEngravingSettings("", fields)
	if len(again) != len(fields) {
		t.Fatalf("repeated append must not duplicate the section: %d -> %d fields", len(fields), len(again))
	}
}

func TestAppendEngravingSettingsOtherSectionUnchanged(t *testing.T) {
	existing := []SettingsField{
		{Name: "Tax Rate", Type: "number", ID: "tax_rate"},
	}
	fields := AppendEngravingSettings("tax", existing)
	if len(fields) != 1 {
		t.Fatalf("non-general sections must not change, got %d fields", len(fields))
	}
	if fields[0].ID != "tax_rate" {
		t.Fatalf("unexpected field: %+v", fields[0])
	}
}
