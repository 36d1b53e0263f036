package models

import "testing"

func TestAddMetaUniqueOverwrites(t *testing.T) {
	item := &OrderItem{}
	item.AddMeta("Engraving", "first", true)
	item.AddMeta("Engraving", "second", true)

	if len(item.MetaJSON) != 1 {
		t.Fatalf("expected exactly one meta entry, got %d", len(item.MetaJSON))
	}
	if got := item.GetMeta("Engraving"); got != "second" {
		t.Fatalf("expected latest value to win, got %q", got)
	}
}

func TestAddMetaNonUniqueAppends(t *testing.T) {
	item := &OrderItem{}
	item.AddMeta("note", "a", false)
	item.AddMeta("note", "b", false)

	values, ok := item.MetaJSON["note"].([]interface{})
	if !ok {
		t.Fatalf("expected appended list, got %T", item.MetaJSON["note"])
	}
	if len(values) != 2 {
		t.Fatalf("expected 2 values, got %d", len(values))
	}
	if got := item.GetMeta("note"); got != "b" {
		t.Fatalf("expected last appended value, got %q", got)
	}
}

func TestGetMetaMissing(t *testing.T) {
	item := OrderItem{}
	if got := item.GetMeta("Engraving"); got != "" {
		t.Fatalf("expected empty string for missing meta, got %q", got)
	}
	item.AddMeta("", "ignored", true)
	if len(item.MetaJSON) != 0 {
		t.Fatalf("blank key should not be stored: %+v", item.MetaJSON)
	}
}
