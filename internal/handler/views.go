package handler

import (
	"net/http"
	"net/url"

	"ratewave/internal/middleware"
	"ratewave/internal/models"
	"ratewave/internal/service"
	"ratewave/internal/utils"

	"github.com/gin-gonic/gin"
)

// RatingView is a rating row plus its per-render decorations.
type RatingView struct {
	ID             uint
	Type           string
	Name           string
	LyricsScore    string
	LyricsReason   string
	BeatScore      string
	BeatReason     string
	FlowScore      string
	FlowReason     string
	MelodyScore    string
	MelodyReason   string
	CohesiveScore  string
	CohesiveReason string
	OwnerName      string
	OwnerPic       string
	IsOwner        bool

	// Decorated is false on the viewer's own ratings: no reactions or
	// match percentage are shown there.
	Decorated bool
	Reactions []string
	Percent   int
}

// CommentView is a profile comment prepared for display.
type CommentView struct {
	ID         uint
	Message    string
	AuthorName string
	AuthorPic  string
	TimeAgo    string
	IsAuthor   bool
}

// buildRatingViews decorates ratings for the listing pages. Owner avatars
// are re-validated against the filesystem so stale references degrade to
// the default image.
func buildRatingViews(ratings []models.Rating, viewer *models.User, profiles *service.ProfileService) []RatingView {
	views := make([]RatingView, 0, len(ratings))
	for _, r := range ratings {
		view := RatingView{
			ID:             r.ID,
			Type:           r.Type,
			Name:           r.Name,
			LyricsScore:    r.LyricsScore,
			LyricsReason:   r.LyricsReason,
			BeatScore:      r.BeatScore,
			BeatReason:     r.BeatReason,
			FlowScore:      r.FlowScore,
			FlowReason:     r.FlowReason,
			MelodyScore:    r.MelodyScore,
			MelodyReason:   r.MelodyReason,
			CohesiveScore:  r.CohesiveScore,
			CohesiveReason: r.CohesiveReason,
			OwnerName:      r.Owner.Username,
		}
		if r.Owner.ProfilePic != nil {
			view.OwnerPic = profiles.ResolvePicture(*r.Owner.ProfilePic)
		}
		if viewer != nil && viewer.ID == r.OwnerID {
			view.IsOwner = true
		} else {
			view.Decorated = true
			view.Reactions = sampleReactions(5)
			view.Percent = randomPercent(60, 99)
		}
		views = append(views, view)
	}
	return views
}

func buildCommentViews(comments []models.ProfileComment, viewer *models.User, profiles *service.ProfileService) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		view := CommentView{
			ID:         comment.ID,
			Message:    comment.Message,
			AuthorName: comment.Author.Username,
			TimeAgo:    timeAgo(comment.CreatedAt),
		}
		if comment.Author.ProfilePic != nil {
			view.AuthorPic = profiles.ResolvePicture(*comment.Author.ProfilePic)
		}
		if viewer != nil && viewer.ID == comment.AuthorID {
			view.IsAuthor = true
		}
		views = append(views, view)
	}
	return views
}

// pageData assembles the template context every page shares: the current
// user, a pending flash notice, and which auth panel (if any) to show.
func pageData(c *gin.Context, extra gin.H) gin.H {
	data := gin.H{
		"User":     middleware.CurrentUser(c),
		"Flash":    utils.TakeFlash(c),
		"AuthMode": authMode(c),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func authMode(c *gin.Context) string {
	mode, err := c.Cookie(middleware.AuthModeCookie)
	if err != nil {
		return ""
	}
	return mode
}

// redirectBack mirrors the original referrer handling: bounce to the
// referring page when it belongs to this host, otherwise go home.
func redirectBack(c *gin.Context) {
	ref := c.Request.Referer()
	if ref != "" {
		if u, err := url.Parse(ref); err == nil && u.Host == c.Request.Host {
			c.Redirect(http.StatusSeeOther, ref)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}
