package model

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`                         // Surrogate ID assigned by the database
	Username  string `gorm:"size:32;uniqueIndex;not null" json:"username"` // Username field
	Email     string `gorm:"uniqueIndex;not null" json:"email"`            // Email field
	FirstName string `gorm:"size:32" json:"first_name"`                    // First name field
	LastName  string `gorm:"size:32" json:"last_name"`                     // Last name field
	Password  string `gorm:"not null" json:"-"`                            // Hashed password, never serialized

	Notes []Note `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"notes"`
}
