package models

// CartItem is a snapshot of a menu item placed in a customer's cart.
// Name, image and price are copied at the time the item is added.
type CartItem struct {
	ID         string  `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;size:36"`
	MenuItemID string  `json:"menuItemId" bson:"menuItemId"`
	Email      string  `json:"email" bson:"email" gorm:"index"`
	Name       string  `json:"name" bson:"name"`
	Image      string  `json:"image" bson:"image"`
	Price      float64 `json:"price" bson:"price"`
	Quantity   int     `json:"quantity,omitempty" bson:"quantity,omitempty"`
}
