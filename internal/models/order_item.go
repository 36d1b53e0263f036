package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表
type OrderItem struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                      // 主键
	OrderID     uint           `gorm:"index;not null" json:"order_id"`                            // 订单ID
	ProductID   uint           `gorm:"index;not null" json:"product_id"`                          // 商品ID
	ProductName string         `gorm:"not null" json:"product_name"`                              // 商品名称快照
	UnitPrice   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`   // 单价
	Quantity    int            `gorm:"not null" json:"quantity"`                                  // 数量
	TotalPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`  // 小计
	MetaJSON    JSON           `gorm:"type:json" json:"meta,omitempty"`                           // 订单项元数据
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`                                   // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间
}

// AddMeta 写入订单项元数据。
// unique 为 true 时同键覆盖而不是追加，最后一次写入生效。
func (i *OrderItem) AddMeta(key, value string, unique bool) {
	if strings.TrimSpace(key) == "" {
		return
	}
	if i.MetaJSON == nil {
		i.MetaJSON = make(JSON)
	}
	if !unique {
		if existing, ok := i.MetaJSON[key]; ok {
			switch v := existing.(type) {
			case []interface{}:
				i.MetaJSON[key] = append(v, value)
			default:
				i.MetaJSON[key] = []interface{}{v, value}
			}
			return
		}
	}
	i.MetaJSON[key] = value
}

// GetMeta 读取订单项元数据，缺失时返回空串
func (i OrderItem) GetMeta(key string) string {
	if i.MetaJSON == nil {
		return ""
	}
	value, ok := i.MetaJSON[key]
	if !ok {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case []interface{}:
		if len(v) == 0 {
			return ""
		}
		if s, ok := v[len(v)-1].(string); ok {
			return s
		}
	}
	return ""
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
