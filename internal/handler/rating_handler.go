package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"ratewave/internal/middleware"
	"ratewave/internal/service"
	"ratewave/internal/utils"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService  *service.RatingService
	profileService *service.ProfileService
}

func NewRatingHandler(ratingService *service.RatingService, profileService *service.ProfileService) *RatingHandler {
	return &RatingHandler{
		ratingService:  ratingService,
		profileService: profileService,
	}
}

// AddForm renders the submission form (GET /add).
func (h *RatingHandler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", pageData(c, gin.H{
		"FormAction": "/add",
	}))
}

// AddSubmit handles POST /add. A blank rating type means the submission is
// dropped without a notice, which is how the system always behaved.
func (h *RatingHandler) AddSubmit(c *gin.Context) {
	user := middleware.CurrentUser(c)
	input := ratingInputFromForm(c)

	if _, err := h.ratingService.Create(input, user.ID); err != nil {
		if !errors.Is(err, service.ErrTypeRequired) {
			utils.SetFlash(c, "error", "Could not save your rating. Please try again.")
		}
	}
	c.Redirect(http.StatusSeeOther, "/browse")
}

// EditForm renders the edit form (GET /edit/:id), owner-only.
func (h *RatingHandler) EditForm(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := parseRatingID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/browse")
		return
	}

	rating, err := h.ratingService.Get(id)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/browse")
		return
	}
	if rating.OwnerID != user.ID {
		utils.SetFlash(c, "error", "You can only edit your own ratings.")
		c.Redirect(http.StatusSeeOther, "/browse")
		return
	}

	c.HTML(http.StatusOK, "edit.html", pageData(c, gin.H{
		"Rating":     rating,
		"FormAction": "/edit/" + strconv.FormatUint(uint64(id), 10),
	}))
}

// EditSubmit handles POST /edit/:id with the same ownership gate.
func (h *RatingHandler) EditSubmit(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := parseRatingID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/browse")
		return
	}

	input := ratingInputFromForm(c)
	if err := h.ratingService.Update(id, input, user.ID); err != nil {
		if errors.Is(err, service.ErrNotOwner) {
			utils.SetFlash(c, "error", "You can only edit your own ratings.")
		}
		// Missing rating or blank type: silent bounce to the listing.
	}
	c.Redirect(http.StatusSeeOther, "/browse")
}

// Delete handles POST /delete/:id. Hard delete, owner-only.
func (h *RatingHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := parseRatingID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/browse")
		return
	}

	if err := h.ratingService.Delete(id, user.ID); err != nil {
		if errors.Is(err, service.ErrNotOwner) {
			utils.SetFlash(c, "error", "You can only delete your own ratings.")
		}
	}
	c.Redirect(http.StatusSeeOther, "/browse")
}

// Detail renders GET /rating/:id with the per-dimension reaction rows and a
// fresh match percentage.
func (h *RatingHandler) Detail(c *gin.Context) {
	id, ok := parseRatingID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/browse")
		return
	}

	rating, err := h.ratingService.Get(id)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/browse")
		return
	}

	ownerPic := ""
	if rating.Owner.ProfilePic != nil {
		ownerPic = h.profileService.ResolvePicture(*rating.Owner.ProfilePic)
	}

	detailReactions := make(map[string][]string, len(ratingCategories))
	for _, category := range ratingCategories {
		detailReactions[category] = sampleReactions(5)
	}

	c.HTML(http.StatusOK, "rating.html", pageData(c, gin.H{
		"Rating":          rating,
		"OwnerName":       rating.Owner.Username,
		"OwnerPic":        ownerPic,
		"DetailReactions": detailReactions,
		"Percent":         randomPercent(70, 99),
	}))
}

func ratingInputFromForm(c *gin.Context) service.RatingInput {
	return service.RatingInput{
		Type:           strings.TrimSpace(c.PostForm("rating_type")),
		Name:           strings.TrimSpace(c.PostForm("rating_name")),
		LyricsScore:    strings.TrimSpace(c.PostForm("lyrics")),
		LyricsReason:   strings.TrimSpace(c.PostForm("lyrics_reason")),
		BeatScore:      strings.TrimSpace(c.PostForm("beat")),
		BeatReason:     strings.TrimSpace(c.PostForm("beat_reason")),
		FlowScore:      strings.TrimSpace(c.PostForm("flow")),
		FlowReason:     strings.TrimSpace(c.PostForm("flow_reason")),
		MelodyScore:    strings.TrimSpace(c.PostForm("melody")),
		MelodyReason:   strings.TrimSpace(c.PostForm("melody_reason")),
		CohesiveScore:  strings.TrimSpace(c.PostForm("cohesive")),
		CohesiveReason: strings.TrimSpace(c.PostForm("cohesive_reason")),
	}
}

func parseRatingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
