package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/awandha/engrave-shop/internal/config"
	"github.com/awandha/engrave-shop/internal/models"
	"github.com/awandha/engrave-shop/internal/repository"
)

func newCartTestEnv(t *testing.T, name string) (*gorm.DB, *CartService) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}, &models.Setting{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	settingService := NewSettingService(repository.NewSettingRepository(db))
	cartService := NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		settingService,
		config.EngravingConfig{MaxTextLength: 50, FeeAmount: 10000},
	)
	return db, cartService
}

func createTestProduct(t *testing.T, db *gorm.DB, slug string, price int64, engravable bool) *models.Product {
	t.Helper()
	product := models.Product{
		Slug:          slug,
		Name:          "Test " + slug,
		PriceAmount:   models.NewMoneyFromInt(price),
		PriceCurrency: "IDR",
		Engravable:    engravable,
		IsActive:      true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return &product
}

func TestUpsertItemEngravingLengthBoundary(t *testing.T) {
	db, svc := newCartTestEnv(t, "cart_length_boundary")
	product := createTestProduct(t, db, "mug", 50000, true)

	exact := strings.Repeat("a", 50)
	item, err := svc.UpsertItem(UpsertCartItemInput{
		CartToken:     "tok-1",
		ProductID:     product.ID,
		Quantity:      1,
		EngravingText: exact,
	})
	if err != nil {
		t.Fatalf("50 characters must be accepted: %v", err)
	}
	if item.EngravingText != exact {
		t.Fatalf("engraving text changed unexpectedly: %q", item.EngravingText)
	}

	_, err = svc.UpsertItem(UpsertCartItemInput{
		CartToken:     "tok-1",
		ProductID:     product.ID,
		Quantity:      1,
		EngravingText: strings.Repeat("a", 51),
	})
	if !errors.Is(err, ErrEngravingTooLong) {
		t.Fatalf("expected ErrEngravingTooLong, got %v", err)
	}
}

func TestUpsertItemCountsRunesNotBytes(t *testing.T) {
	db, svc := newCartTestEnv(t, "cart_rune_count")
	product := createTestProduct(t, db, "pendant", 75000, true)

	// 50 个多字节字符，字节数远超 50
	text := strings.Repeat("中", 50)
	if _, err := svc.UpsertItem(UpsertCartItemInput{
		CartToken:     "tok-2",
		ProductID:     product.ID,
		Quantity:      1,
		EngravingText: text,
	}); err != nil {
		t.Fatalf("50 runes must be accepted regardless of byte length: %v", err)
	}
}

func TestUpsertItemSanitizesEngraving(t *testing.T) {
	db, svc := newCartTestEnv(t, "cart_sanitize")
	product := createTestProduct(t, db, "ring", 100000, true)

	item, err := svc.UpsertItem(UpsertCartItemInput{
		CartToken:     "tok-3",
		ProductID:     product.ID,
		Quantity:      1,
		EngravingText: "  <b>For</b>   Mom <script>alert(1)</script> ",
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if item.EngravingText != "For Mom" {
		t.Fatalf("expected sanitized text %q, got %q", "For Mom", item.EngravingText)
	}
}

func TestUpsertItemNonEngravableProductDropsText(t *testing.T) {
	db, svc := newCartTestEnv(t, "cart_non_engravable")
	product := createTestProduct(t, db, "sticker", 5000, false)

	item, err := svc.UpsertItem(UpsertCartItemInput{
		CartToken:     "tok-4",
		ProductID:     product.ID,
		Quantity:      1,
		EngravingText: "should vanish",
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if item.HasEngraving() {
		t.Fatalf("non-engravable product must not carry engraving, got %q", item.EngravingText)
	}
}

func TestUpsertItemOverwritesExistingLine(t *testing.T) {
	db, svc := newCartTestEnv(t, "cart_overwrite")
	product := createTestProduct(t, db, "plate", 60000, true)

	if _, err := svc.UpsertItem(UpsertCartItemInput{CartToken: "tok-5", ProductID: product.ID, Quantity: 1, EngravingText: "first"}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if _, err := svc.UpsertItem(UpsertCartItemInput{CartToken: "tok-5", ProductID: product.ID, Quantity: 3, EngravingText: "second"}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("cart_token = ?", "tok-5").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected single cart line, got %d", count)
	}

	summary, err := svc.Summary(FeeContext{}, "tok-5")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Items[0].Quantity != 3 || summary.Items[0].ItemData[0].Value != "second" {
		t.Fatalf("latest write must win: %+v", summary.Items[0])
	}
}

func TestUpsertItemAfterRemove(t *testing.T) {
	db, svc := newCartTestEnv(t, "cart_readd")
	product := createTestProduct(t, db, "bracelet", 80000, true)

	if _, err := svc.UpsertItem(UpsertCartItemInput{CartToken: "tok-readd", ProductID: product.ID, Quantity: 1, EngravingText: "first"}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if err := svc.RemoveItem("tok-readd", product.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	// 删除后必须能重新加入同一商品
	item, err := svc.UpsertItem(UpsertCartItemInput{CartToken: "tok-readd", ProductID: product.ID, Quantity: 2, EngravingText: "second"})
	if err != nil {
		t.Fatalf("re-add after remove failed: %v", err)
	}
	if item.Quantity != 2 || item.EngravingText != "second" {
		t.Fatalf("unexpected re-added item: %+v", item)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("cart_token = ?", "tok-readd").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected single cart line after re-add, got %d", count)
	}
}

func TestSummaryDisplayAndFees(t *testing.T) {
	db, svc := newCartTestEnv(t, "cart_summary")
	engraved := createTestProduct(t, db, "locket", 100000, true)
	plain := createTestProduct(t, db, "box", 20000, true)

	if _, err := svc.UpsertItem(UpsertCartItemInput{CartToken: "tok-6", ProductID: engraved.ID, Quantity: 2, EngravingText: "For Mom ❤"}); err != nil {
		t.Fatalf("upsert engraved failed: %v", err)
	}
	if _, err := svc.UpsertItem(UpsertCartItemInput{CartToken: "tok-6", ProductID: plain.ID, Quantity: 1}); err != nil {
		t.Fatalf("upsert plain failed: %v", err)
	}

	summary, err := svc.Summary(FeeContext{}, "tok-6")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(summary.Items))
	}

	var engravedLine, plainLine *CartLine
	for i := range summary.Items {
		switch summary.Items[i].ProductID {
		case engraved.ID:
			engravedLine = &summary.Items[i]
		case plain.ID:
			plainLine = &summary.Items[i]
		}
	}
	if engravedLine == nil || plainLine == nil {
		t.Fatalf("missing expected lines: %+v", summary.Items)
	}
	if len(engravedLine.ItemData) != 1 || engravedLine.ItemData[0].Label != "Engraving" || engravedLine.ItemData[0].Value != "For Mom ❤" {
		t.Fatalf("unexpected item data: %+v", engravedLine.ItemData)
	}
	if len(plainLine.ItemData) != 0 {
		t.Fatalf("plain line must carry no item data: %+v", plainLine.ItemData)
	}

	if len(summary.Fees) != 1 || summary.Fees[0].Label != "Engraving Fee" {
		t.Fatalf("unexpected fees: %+v", summary.Fees)
	}
	if got := summary.Fees[0].Amount.String(); got != "20000.00" {
		t.Fatalf("expected fee 20000.00 for qty 2, got %s", got)
	}
	if got := summary.ItemsAmount.String(); got != "220000.00" {
		t.Fatalf("unexpected items amount: %s", got)
	}
	if got := summary.TotalAmount.String(); got != "240000.00" {
		t.Fatalf("unexpected total amount: %s", got)
	}
}

func TestSummaryAdminViewSkipsFees(t *testing.T) {
	db, svc := newCartTestEnv(t, "cart_admin_view")
	product := createTestProduct(t, db, "tag", 30000, true)

	if _, err := svc.UpsertItem(UpsertCartItemInput{CartToken: "tok-7", ProductID: product.ID, Quantity: 1, EngravingText: "hello"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	view, err := svc.Summary(FeeContext{Admin: true}, "tok-7")
	if err != nil {
		t.Fatalf("admin summary failed: %v", err)
	}
	if len(view.Fees) != 0 {
		t.Fatalf("admin view must skip fees, got %+v", view.Fees)
	}

	recalc, err := svc.Summary(FeeContext{Admin: true, CartUpdate: true}, "tok-7")
	if err != nil {
		t.Fatalf("admin recalculation failed: %v", err)
	}
	if len(recalc.Fees) != 1 {
		t.Fatalf("admin cart recalculation must compute fees, got %+v", recalc.Fees)
	}
}

func TestSanitizeEngravingText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"For Mom ❤", "For Mom ❤"},
		{"  spaced   out  ", "spaced out"},
		{"<i>tags</i> stripped", "tags stripped"},
		{"a < b & c", "a < b & c"},
		{"line\nbreak\ttab", "line break tab"},
		{"", ""},
	}
	for _, c := range cases {
		if got := SanitizeEngravingText(c.in); got != c.want {
			t.Fatalf("SanitizeEngravingText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
