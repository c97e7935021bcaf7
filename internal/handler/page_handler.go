package handler

import (
	"net/http"

	"ratewave/internal/middleware"
	"ratewave/internal/service"
	"ratewave/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageHandler serves the listing and placeholder pages.
type PageHandler struct {
	ratingService  *service.RatingService
	profileService *service.ProfileService
}

func NewPageHandler(ratingService *service.RatingService, profileService *service.ProfileService) *PageHandler {
	return &PageHandler{
		ratingService:  ratingService,
		profileService: profileService,
	}
}

// Home renders GET /.
func (h *PageHandler) Home(c *gin.Context) {
	h.renderListing(c, "index.html")
}

// Browse renders GET /browse.
func (h *PageHandler) Browse(c *gin.Context) {
	h.renderListing(c, "browse.html")
}

// Favorites renders GET /favorites.
func (h *PageHandler) Favorites(c *gin.Context) {
	h.renderListing(c, "favorites.html")
}

func (h *PageHandler) renderListing(c *gin.Context, template string) {
	ratings, err := h.ratingService.List()
	if err != nil {
		logger.Log.Error("Failed to load ratings", zap.Error(err))
	}

	viewer := middleware.CurrentUser(c)
	c.HTML(http.StatusOK, template, pageData(c, gin.H{
		"Ratings": buildRatingViews(ratings, viewer, h.profileService),
	}))
}

// Static placeholder pages carried over from the original site.

func (h *PageHandler) Playlists(c *gin.Context) {
	c.HTML(http.StatusOK, "playlists.html", pageData(c, nil))
}

func (h *PageHandler) Charts(c *gin.Context) {
	c.HTML(http.StatusOK, "charts.html", pageData(c, nil))
}

func (h *PageHandler) Genres(c *gin.Context) {
	c.HTML(http.StatusOK, "genres.html", pageData(c, nil))
}
