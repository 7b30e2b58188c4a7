package model

import "time"

type Note struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Title   string    `gorm:"size:50;index;not null" json:"title"`
	Body    string    `gorm:"type:text" json:"body"`
	Created time.Time `gorm:"autoCreateTime;not null" json:"created"` // Assigned by the server at insert time
	OwnerID uint      `gorm:"index;not null" json:"owner_id"`
}
