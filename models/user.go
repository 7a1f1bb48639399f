package models

// UserRole is the authorization role stored on a user record.
// The zero value is a regular customer.
type UserRole string

const (
	RoleRegular UserRole = ""
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID       string   `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;size:36"`
	Name     string   `json:"name" bson:"name"`
	Email    string   `json:"email" bson:"email" gorm:"uniqueIndex;not null"`
	PhotoURL string   `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Role     UserRole `json:"role,omitempty" bson:"role,omitempty"`
}

// IsAdmin reports whether the stored role grants admin access.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
