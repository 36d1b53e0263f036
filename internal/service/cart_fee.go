package service

import (
	"github.com/shopspring/decimal"

	"github.com/awandha/engrave-shop/internal/constants"
	"github.com/awandha/engrave-shop/internal/models"
)

// FeeContext 费用计算上下文
type FeeContext struct {
	Admin      bool // 请求来自管理端
	CartUpdate bool // 请求是购物车重算
}

// CalculateEngravingFee 计算刻字附加费，按带刻字的件数累计
func CalculateEngravingFee(ctx FeeContext, items []models.CartItem, setting EngravingSetting) []models.FeeLine {
	if ctx.Admin && !ctx.CartUpdate {
		return nil
	}
	if setting.FeeAmount <= 0 {
		return nil
	}

	perUnit := decimal.NewFromInt(setting.FeeAmount)
	total := decimal.Zero
	for _, item := range items {
		if !item.HasEngraving() {
			continue
		}
		total = total.Add(perUnit.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if total.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	return []models.FeeLine{{
		Label:  constants.EngravingFeeLabel,
		Amount: models.NewMoneyFromDecimal(total),
	}}
}
