package models

type MenuItem struct {
	ID       string  `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;size:36"`
	Name     string  `json:"name" bson:"name" gorm:"not null"`
	Recipe   string  `json:"recipe" bson:"recipe"`
	Image    string  `json:"image" bson:"image"`
	Category string  `json:"category" bson:"category" gorm:"index"`
	Price    float64 `json:"price" bson:"price"`
}

// Review is a customer testimonial shown on the landing page.
type Review struct {
	ID      string  `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;size:36"`
	Name    string  `json:"name" bson:"name"`
	Details string  `json:"details" bson:"details"`
	Rating  float64 `json:"rating" bson:"rating"`
}
