package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	// ID is assigned in Go (uuid.New) so SQLite and Postgres behave the same.
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"` // Never expose password hash in JSON
	FirstName    string    `gorm:"type:varchar(50)" json:"first_name"`
	LastName     string    `gorm:"type:varchar(50)" json:"last_name"`
	About        string    `gorm:"type:varchar(500)" json:"about"`
	Favorite0    string    `gorm:"type:varchar(100)" json:"favorite0"`
	Favorite1    string    `gorm:"type:varchar(100)" json:"favorite1"`
	Favorite2    string    `gorm:"type:varchar(100)" json:"favorite2"`
	Favorite3    string    `gorm:"type:varchar(100)" json:"favorite3"`
	ProfilePic   *string   `gorm:"type:varchar(255)" json:"profile_pic,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
