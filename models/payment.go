package models

import "time"

// Payment records a completed gateway transaction. Records are append-only.
type Payment struct {
	ID            string    `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;size:36"`
	Email         string    `json:"email" bson:"email" gorm:"index"`
	Price         float64   `json:"price" bson:"price"`
	TransactionID string    `json:"transactionId" bson:"transactionId"`
	Date          time.Time `json:"date" bson:"date"`
	CartIDs       []string  `json:"cartIds" bson:"cartIds" gorm:"serializer:json"`
	MenuItemIDs   []string  `json:"menuItemIds" bson:"menuItemIds" gorm:"serializer:json"`
	Status        string    `json:"status" bson:"status"`
}
