package service

import (
	"testing"

	"github.com/awandha/engrave-shop/internal/constants"
	"github.com/awandha/engrave-shop/internal/models"
)

func TestCalculateEngravingFeeSumsPerUnit(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, Quantity: 2, EngravingText: "For Mom"},
		{ProductID: 2, Quantity: 3},
		{ProductID: 3, Quantity: 1, EngravingText: "Dad"},
	}
	setting := EngravingSetting{FeeAmount: 10000, MaxTextLength: 50}

	fees := CalculateEngravingFee(FeeContext{}, items, setting)
	if len(fees) != 1 {
		t.Fatalf("expected single fee line, got %d", len(fees))
	}
	if fees[0].Label != constants.EngravingFeeLabel {
		t.Fatalf("unexpected fee label: %s", fees[0].Label)
	}
	if got := fees[0].Amount.String(); got != "30000.00" {
		t.Fatalf("expected fee 30000.00, got %s", got)
	}
}

func TestCalculateEngravingFeeNoEngravedItems(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, Quantity: 2},
	}
	fees := CalculateEngravingFee(FeeContext{}, items, EngravingSetting{FeeAmount: 10000, MaxTextLength: 50})
	if len(fees) != 0 {
		t.Fatalf("expected no fee lines, got %+v", fees)
	}
}

func TestCalculateEngravingFeeZeroAmountSetting(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, Quantity: 1, EngravingText: "gift"},
	}
	fees := CalculateEngravingFee(FeeContext{}, items, EngravingSetting{FeeAmount: 0, MaxTextLength: 50})
	if len(fees) != 0 {
		t.Fatalf("expected no fee lines for zero fee amount, got %+v", fees)
	}
}

func TestCalculateEngravingFeeAdminContext(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, Quantity: 1, EngravingText: "gift"},
	}
	setting := EngravingSetting{FeeAmount: 10000, MaxTextLength: 50}

	if fees := CalculateEngravingFee(FeeContext{Admin: true}, items, setting); len(fees) != 0 {
		t.Fatalf("admin view should skip fee calculation, got %+v", fees)
	}
	fees := CalculateEngravingFee(FeeContext{Admin: true, CartUpdate: true}, items, setting)
	if len(fees) != 1 {
		t.Fatalf("admin cart recalculation should compute fees, got %+v", fees)
	}
}
