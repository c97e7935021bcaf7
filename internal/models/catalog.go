package models

import (
	"time"

	"github.com/google/uuid"
)

// Catalog entities carried over from the original schema. The route surface
// does not serve them yet; they are migrated at startup and populated by the
// seeder so the browse pages have something to grow into.

type Artist struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null"`
	LastRelease string `gorm:"type:varchar(50)"`
	Genre       string `gorm:"type:varchar(50)"`
	UploadedBy  uuid.UUID `gorm:"type:uuid"`
	Upvotes     int
	Downvotes   int
	CreatedAt   time.Time
}

type Album struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(50);not null"`
	ArtistID    uint   `gorm:"index"`
	Artist      Artist `gorm:"foreignKey:ArtistID"`
	ReleaseYear int
	Genre       string    `gorm:"type:varchar(50)"`
	UploadedBy  uuid.UUID `gorm:"type:uuid"`
	Upvotes     int
	Downvotes   int
	CreatedAt   time.Time
}

type Song struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(50);not null"`
	ArtistID    uint   `gorm:"index"`
	Artist      Artist `gorm:"foreignKey:ArtistID"`
	AlbumID     *uint  `gorm:"index"`
	ReleaseYear int
	Genre       string    `gorm:"type:varchar(50)"`
	UploadedBy  uuid.UUID `gorm:"type:uuid"`
	Upvotes     int
	Downvotes   int
	CreatedAt   time.Time
}

type Playlist struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(50);not null"`
	Description string    `gorm:"type:varchar(50)"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;index"`
	Upvotes     int
	Downvotes   int
	CreatedAt   time.Time
}

type Follow struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	FollowedID uuid.UUID `gorm:"type:uuid;index"`
	FollowerID uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
}

type Like struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	RatingID  uint      `gorm:"index"`
	LikedBy   uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
}
