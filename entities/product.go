package entities

type Product struct {
	ProductID     uint   `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	CategoryID    uint   `gorm:"column:category_id;index" json:"category_id"`
	AssetsURL     string `gorm:"column:assets_url;type:varchar(255)" json:"assets_url"`
	Name          string `gorm:"column:name;type:varchar(100);not null;uniqueIndex" json:"name"`
	Price         int64  `gorm:"column:price;not null" json:"price"` // cents
	Size          string `gorm:"column:size;type:varchar(50)" json:"size"`
	AmountInStock int    `gorm:"column:amount_in_stock;not null;default:0" json:"amount_in_stock"`
}

func (Product) TableName() string {
	return TableProducts
}
