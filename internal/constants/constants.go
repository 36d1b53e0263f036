package constants

// 订单状态常量
const (
	OrderStatusPendingPayment = "pending_payment"
	OrderStatusPaid           = "paid"
	OrderStatusCompleted      = "completed"
	OrderStatusCanceled       = "canceled"
)

// 刻字字段常量
const (
	// EngravingFieldName 加购请求中的刻字文本字段名
	EngravingFieldName = "engraving_text"
	// EngravingItemDataLabel 购物车/结算摘要里的展示标签
	EngravingItemDataLabel = "Engraving"
	// EngravingOrderMetaKey 订单项元数据里的固定键
	EngravingOrderMetaKey = "Engraving"
	// EngravingFeeLabel 刻字费用聚合行标签
	EngravingFeeLabel = "Engraving Fee"
)

// 刻字默认值
const (
	DefaultEngravingMaxTextLength = 50
	DefaultEngravingFeeAmount     = 10000
)

// 设置存储键常量
const (
	SettingKeySiteConfig      = "site_config"
	SettingKeyEngravingConfig = "engraving_config"

	// SettingFieldEngravingFeeAmount 刻字单件费用字段（settings 页面上的配置 id）
	SettingFieldEngravingFeeAmount = "engraving_fee_amount"
	// SettingFieldEngravingMaxLength 刻字最大长度字段
	SettingFieldEngravingMaxLength = "max_text_length"
)

// 设置页 schema 字段类型常量
const (
	SettingsFieldTypeTitle      = "title"
	SettingsFieldTypeNumber     = "number"
	SettingsFieldTypeSectionEnd = "sectionend"
)

// 购物车请求头常量
const (
	// CartTokenHeader 购物车令牌请求头
	CartTokenHeader = "X-Cart-Token"
)

// 币种常量
const (
	DefaultCurrency = "IDR"
)
