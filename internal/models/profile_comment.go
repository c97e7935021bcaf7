package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileComment is a message left on a user's profile page. Any
// authenticated user may comment; only the author may edit or delete.
type ProfileComment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	ProfileUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Message       string    `gorm:"type:varchar(500);not null"`
	CreatedAt     time.Time `gorm:"index"`

	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
