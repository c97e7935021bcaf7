package main

import (
	"log"

	"ratewave/internal/config"
	"ratewave/internal/database"
	"ratewave/internal/models"
	"ratewave/internal/utils"

	"github.com/google/uuid"
)

// Seeds a demo account plus a handful of catalog entries so a fresh install
// has something on the browse page.
func main() {
	cfg := config.Load()
	database.Connect(cfg)
	database.Migrate()

	var existing models.User
	if err := database.DB.Where("username = ?", "demo").First(&existing).Error; err == nil {
		log.Println("Demo data already seeded, nothing to do")
		return
	}

	passwordHash, err := utils.HashPassword("demo12345")
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	demo := models.User{
		ID:           uuid.New(),
		Username:     "demo",
		Email:        "demo@ratewave.local",
		PasswordHash: passwordHash,
		About:        "Just here for the beats.",
		Favorite0:    "To Pimp a Butterfly",
	}
	if err := database.DB.Create(&demo).Error; err != nil {
		log.Fatal("Failed to create demo user:", err)
	}

	rating := models.Rating{
		Type:           "Album",
		Name:           "Demo Days",
		LyricsScore:    "8",
		LyricsReason:   "Sharp writing throughout.",
		BeatScore:      "7",
		BeatReason:     "Solid production, a little samey.",
		FlowScore:      "9",
		FlowReason:     "Effortless delivery.",
		MelodyScore:    "7",
		MelodyReason:   "Hooks land on repeat listens.",
		CohesiveScore:  "8",
		CohesiveReason: "Plays front to back.",
		OwnerID:        demo.ID,
	}
	if err := database.DB.Create(&rating).Error; err != nil {
		log.Fatal("Failed to create demo rating:", err)
	}

	artist := models.Artist{Name: "The Placeholders", LastRelease: "Demo Days", Genre: "Hip-Hop", UploadedBy: demo.ID}
	if err := database.DB.Create(&artist).Error; err != nil {
		log.Fatal("Failed to create demo artist:", err)
	}

	album := models.Album{Title: "Demo Days", ArtistID: artist.ID, ReleaseYear: 2024, Genre: "Hip-Hop", UploadedBy: demo.ID}
	if err := database.DB.Create(&album).Error; err != nil {
		log.Fatal("Failed to create demo album:", err)
	}

	song := models.Song{Title: "First Track", ArtistID: artist.ID, AlbumID: &album.ID, ReleaseYear: 2024, Genre: "Hip-Hop", UploadedBy: demo.ID}
	if err := database.DB.Create(&song).Error; err != nil {
		log.Fatal("Failed to create demo song:", err)
	}

	playlist := models.Playlist{Title: "Starter Pack", Description: "Seeded picks", CreatedBy: demo.ID}
	if err := database.DB.Create(&playlist).Error; err != nil {
		log.Fatal("Failed to create demo playlist:", err)
	}

	log.Println("Demo data seeded successfully")
	log.Println("   Username: demo")
	log.Println("   Password: demo12345")
}
