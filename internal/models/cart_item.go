package models

import (
	"time"
)

// CartItem 购物车项
// 购物车行是临时数据，删除即物理删除，否则残留行会占用 (cart_token, product_id) 唯一索引。
type CartItem struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                             // 主键
	CartToken     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_token_product" json:"cart_token"` // 购物车令牌
	ProductID     uint      `gorm:"not null;uniqueIndex:idx_cart_token_product" json:"product_id"`    // 商品ID
	Quantity      int       `gorm:"not null" json:"quantity"`                                         // 数量
	EngravingText string    `gorm:"type:varchar(191)" json:"engraving_text,omitempty"`                // 刻字文本（空串表示未填写）
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                                          // 创建时间
	UpdatedAt     time.Time `gorm:"index" json:"updated_at"`                                          // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// HasEngraving 判断该购物车项是否携带刻字
// 字段缺失（空串）与填写过空白内容等价，都视为未刻字。
func (i CartItem) HasEngraving() bool {
	return i.EngravingText != ""
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
