package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// FeeLine 订单费用聚合行（如刻字费）
type FeeLine struct {
	Label  string `json:"label"`
	Amount Money  `json:"amount"`
}

// FeeLines 费用行列表，按 JSON 存储
type FeeLines []FeeLine

// Value 实现 driver.Valuer 接口
func (f FeeLines) Value() (driver.Value, error) {
	if f == nil {
		return nil, nil
	}
	return json.Marshal(f)
}

// Scan 实现 sql.Scanner 接口
func (f *FeeLines) Scan(value interface{}) error {
	if value == nil {
		*f = FeeLines{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return nil
		}
	}
	return json.Unmarshal(bytes, f)
}

// Order 订单表
type Order struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                        // 主键
	OrderNo     string         `gorm:"uniqueIndex;not null" json:"order_no"`                        // 订单编号
	GuestEmail  string         `gorm:"index" json:"guest_email,omitempty"`                          // 下单邮箱
	Status      string         `gorm:"index;not null" json:"status"`                                // 订单状态
	Currency    string         `gorm:"not null" json:"currency"`                                    // 币种
	ItemsAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"items_amount"`   // 商品小计
	FeeAmount   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"fee_amount"`     // 费用合计
	TotalAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`   // 实付金额
	Fees        FeeLines       `gorm:"type:json" json:"fees,omitempty"`                             // 费用行明细
	ClientIP    string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`                 // 下单客户端IP
	PaidAt      *time.Time     `gorm:"index" json:"paid_at"`                                        // 支付时间
	CanceledAt  *time.Time     `gorm:"index" json:"canceled_at"`                                    // 取消时间
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`                                     // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
