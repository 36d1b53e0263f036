package service

import (
	"crypto/rand"
	"fmt"
	"html"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/awandha/engrave-shop/internal/constants"
	"github.com/awandha/engrave-shop/internal/logger"
	"github.com/awandha/engrave-shop/internal/models"
	"github.com/awandha/engrave-shop/internal/repository"
)

// OrderService 订单业务服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	cartService *CartService
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, cartService *CartService) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		cartService: cartService,
	}
}

// CheckoutInput 结算入参
type CheckoutInput struct {
	CartToken string `json:"-"`
	Email     string `json:"email" binding:"required"`
	ClientIP  string `json:"-"`
}

// Checkout 将当前购物车结算为订单。
// 订单项保留商品名称与价格快照，刻字文本以元数据形式随订单项落库。
func (s *OrderService) Checkout(feeCtx FeeContext, input CheckoutInput) (*models.Order, error) {
	if input.CartToken == "" {
		return nil, ErrCartTokenRequired
	}

	email := strings.TrimSpace(input.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	cartItems, err := s.cartRepo.ListByToken(input.CartToken)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrCartEmpty
	}

	setting, err := s.cartService.EngravingSetting()
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(cartItems))
	itemsTotal := decimal.Zero
	for _, cartItem := range cartItems {
		if cartItem.Product == nil {
			return nil, ErrProductNotFound
		}
		if !cartItem.Product.IsActive {
			return nil, ErrProductNotAvailable
		}

		lineTotal := cartItem.Product.PriceAmount.Mul(decimal.NewFromInt(int64(cartItem.Quantity)))
		item := models.OrderItem{
			ProductID:   cartItem.ProductID,
			ProductName: cartItem.Product.Name,
			UnitPrice:   cartItem.Product.PriceAmount,
			Quantity:    cartItem.Quantity,
			TotalPrice:  models.NewMoneyFromDecimal(lineTotal),
		}
		if cartItem.HasEngraving() {
			item.AddMeta(constants.EngravingOrderMetaKey, cartItem.EngravingText, true)
		}
		itemsTotal = itemsTotal.Add(lineTotal)
		items = append(items, item)
	}

	fees := CalculateEngravingFee(feeCtx, cartItems, setting)
	feeTotal := decimal.Zero
	for _, fee := range fees {
		feeTotal = feeTotal.Add(fee.Amount.Decimal)
	}

	order := &models.Order{
		OrderNo:     generateOrderNo(),
		GuestEmail:  email,
		Status:      constants.OrderStatusPendingPayment,
		Currency:    constants.DefaultCurrency,
		ItemsAmount: models.NewMoneyFromDecimal(itemsTotal),
		FeeAmount:   models.NewMoneyFromDecimal(feeTotal),
		TotalAmount: models.NewMoneyFromDecimal(itemsTotal.Add(feeTotal)),
		Fees:        fees,
		ClientIP:    input.ClientIP,
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, items); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).ClearByToken(input.CartToken)
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order created",
		"order_no", order.OrderNo,
		"total_amount", order.TotalAmount.String(),
		"fee_amount", order.FeeAmount.String(),
		"items", len(items),
	)

	order.Items = items
	return order, nil
}

// GetByOrderNo 按订单号获取订单详情
func (s *OrderService) GetByOrderNo(orderNo string) (*models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrdersForAdmin 后台订单列表
func (s *OrderService) ListOrdersForAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// GetAdminOrder 后台订单详情
func (s *OrderService) GetAdminOrder(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// RenderEngravingMetaHTML 渲染订单项刻字信息的后台展示片段，未刻字返回空串
func RenderEngravingMetaHTML(item models.OrderItem) string {
	text := item.GetMeta(constants.EngravingOrderMetaKey)
	if text == "" {
		return ""
	}
	return fmt.Sprintf("<p><strong>%s:</strong> %s</p>", constants.EngravingOrderMetaKey, html.EscapeString(text))
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("ES%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
