package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a five-dimension evaluation of a musical work. The score fields
// are stored as free text: the submission form suggests a 1-10 scale but the
// system never enforced it.
type Rating struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Type string `gorm:"type:varchar(50);not null"`
	Name string `gorm:"type:varchar(50)"`

	LyricsScore    string `gorm:"type:varchar(50)"`
	LyricsReason   string `gorm:"type:varchar(500)"`
	BeatScore      string `gorm:"type:varchar(50)"`
	BeatReason     string `gorm:"type:varchar(500)"`
	FlowScore      string `gorm:"type:varchar(50)"`
	FlowReason     string `gorm:"type:varchar(500)"`
	MelodyScore    string `gorm:"type:varchar(50)"`
	MelodyReason   string `gorm:"type:varchar(500)"`
	CohesiveScore  string `gorm:"type:varchar(50)"`
	CohesiveReason string `gorm:"type:varchar(500)"`

	// Ownership is keyed by the immutable user ID, not the display name,
	// so renaming a user cannot orphan their ratings.
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Owner     User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
