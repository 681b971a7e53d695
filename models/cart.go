package models

type Cart struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Items []Item `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
}

// LinkItems points every item back at the cart and guarantees a non-nil slice,
// so an empty cart serializes as "items":[].
func (c *Cart) LinkItems() {
	if c.Items == nil {
		c.Items = []Item{}
	}
	for i := range c.Items {
		c.Items[i].CartID = c.ID
		c.Items[i].Cart = CartRef{ID: c.ID}
	}
}
