package service

import (
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/awandha/engrave-shop/internal/config"
	"github.com/awandha/engrave-shop/internal/constants"
	"github.com/awandha/engrave-shop/internal/models"
	"github.com/awandha/engrave-shop/internal/repository"
)

// CartService 购物车业务服务
type CartService struct {
	cartRepo       repository.CartRepository
	productRepo    repository.ProductRepository
	settingService *SettingService
	engravingCfg   config.EngravingConfig
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, settingService *SettingService, engravingCfg config.EngravingConfig) *CartService {
	return &CartService{
		cartRepo:       cartRepo,
		productRepo:    productRepo,
		settingService: settingService,
		engravingCfg:   engravingCfg,
	}
}

// UpsertCartItemInput 加购/更新入参
type UpsertCartItemInput struct {
	CartToken     string `json:"-"`
	ProductID     uint   `json:"product_id" binding:"required"`
	Quantity      int    `json:"quantity"`
	EngravingText string `json:"engraving_text"`
}

// DisplayEntry 购物车项附加展示信息
type DisplayEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CartLine 购物车项摘要
type CartLine struct {
	ProductID   uint           `json:"product_id"`
	ProductSlug string         `json:"product_slug"`
	ProductName string         `json:"product_name"`
	UnitPrice   models.Money   `json:"unit_price"`
	Quantity    int            `json:"quantity"`
	LineTotal   models.Money   `json:"line_total"`
	ItemData    []DisplayEntry `json:"item_data,omitempty"`
}

// CartSummary 购物车/结算摘要
type CartSummary struct {
	Items       []CartLine        `json:"items"`
	Fees        []models.FeeLine  `json:"fees,omitempty"`
	ItemsAmount models.Money      `json:"items_amount"`
	FeeAmount   models.Money      `json:"fee_amount"`
	TotalAmount models.Money      `json:"total_amount"`
	Currency    string            `json:"currency"`
}

// EngravingSetting 获取当前生效的刻字配置
func (s *CartService) EngravingSetting() (EngravingSetting, error) {
	return s.settingService.GetEngravingSetting(s.engravingCfg)
}

// ValidateEngravingText 校验刻字文本长度，超限返回 ErrEngravingTooLong
// 长度按 Unicode 字符数计算，而不是字节数。
func ValidateEngravingText(text string, maxLength int) error {
	if utf8.RuneCountInString(text) > maxLength {
		return fmt.Errorf("%w: limit %d", ErrEngravingTooLong, maxLength)
	}
	return nil
}

// UpsertItem 新增或更新购物车项
func (s *CartService) UpsertItem(input UpsertCartItemInput) (*models.CartItem, error) {
	if input.CartToken == "" {
		return nil, ErrCartTokenRequired
	}
	if input.ProductID == 0 || input.Quantity <= 0 {
		return nil, ErrInvalidCartItem
	}

	setting, err := s.EngravingSetting()
	if err != nil {
		return nil, err
	}

	// 先按原始输入校验长度，再清洗入库。清洗只会缩短文本，
	// 因此通过校验的输入清洗后仍然合法。
	if err := ValidateEngravingText(input.EngravingText, setting.MaxTextLength); err != nil {
		return nil, err
	}
	engraving := SanitizeEngravingText(input.EngravingText)

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductNotAvailable
	}
	if !product.Engravable {
		engraving = ""
	}

	item := &models.CartItem{
		CartToken:     input.CartToken,
		ProductID:     product.ID,
		Quantity:      input.Quantity,
		EngravingText: engraving,
	}
	if err := s.cartRepo.Upsert(item); err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}

// RemoveItem 删除购物车项
func (s *CartService) RemoveItem(cartToken string, productID uint) error {
	if cartToken == "" {
		return ErrCartTokenRequired
	}
	return s.cartRepo.DeleteByTokenAndProduct(cartToken, productID)
}

// Summary 汇总购物车：条目、附加展示信息与费用行
func (s *CartService) Summary(feeCtx FeeContext, cartToken string) (*CartSummary, error) {
	if cartToken == "" {
		return nil, ErrCartTokenRequired
	}

	items, err := s.cartRepo.ListByToken(cartToken)
	if err != nil {
		return nil, err
	}

	setting, err := s.EngravingSetting()
	if err != nil {
		return nil, err
	}

	summary := &CartSummary{
		Items:    make([]CartLine, 0, len(items)),
		Currency: constants.DefaultCurrency,
	}

	itemsTotal := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		line := CartLine{
			ProductID:   item.ProductID,
			ProductSlug: item.Product.Slug,
			ProductName: item.Product.Name,
			UnitPrice:   item.Product.PriceAmount,
			Quantity:    item.Quantity,
			LineTotal:   models.NewMoneyFromDecimal(item.Product.PriceAmount.Mul(decimal.NewFromInt(int64(item.Quantity)))),
		}
		if item.HasEngraving() {
			line.ItemData = append(line.ItemData, DisplayEntry{
				Label: constants.EngravingItemDataLabel,
				Value: item.EngravingText,
			})
		}
		itemsTotal = itemsTotal.Add(line.LineTotal.Decimal)
		summary.Items = append(summary.Items, line)
	}

	summary.Fees = CalculateEngravingFee(feeCtx, items, setting)
	feeTotal := decimal.Zero
	for _, fee := range summary.Fees {
		feeTotal = feeTotal.Add(fee.Amount.Decimal)
	}

	summary.ItemsAmount = models.NewMoneyFromDecimal(itemsTotal)
	summary.FeeAmount = models.NewMoneyFromDecimal(feeTotal)
	summary.TotalAmount = models.NewMoneyFromDecimal(itemsTotal.Add(feeTotal))
	return summary, nil
}
