package models

import "gorm.io/gorm"

type Item struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	SerialNumber string  `gorm:"column:serial_number;size:20;not null" json:"serialNumber"`
	CartID       uint    `gorm:"column:cart_id;not null;index" json:"-"`
	Cart         CartRef `gorm:"-" json:"cart"`
}

// CartRef is the serialized back-reference of an item; only the id travels,
// the owning cart is never embedded.
type CartRef struct {
	ID uint `json:"id"`
}

// AfterFind rebuilds the back-reference from the cart_id column.
func (i *Item) AfterFind(tx *gorm.DB) error {
	i.Cart = CartRef{ID: i.CartID}
	return nil
}

func (i *Item) AfterSave(tx *gorm.DB) error {
	i.Cart = CartRef{ID: i.CartID}
	return nil
}
