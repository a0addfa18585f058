package models

import "time"

type Product struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null"                 json:"name"`
	Price     float64   `gorm:"not null"                 json:"price"`
	Image     string    `gorm:"not null"                 json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"                        json:"id"`
	CartID    string    `gorm:"uniqueIndex:idx_cart_product;not null"           json:"cart_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_product;not null"           json:"product_id"`
	Quantity  int       `gorm:"not null;default:1;check:quantity>0"             json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
