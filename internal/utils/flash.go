package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// Flash is a one-shot notice shown on the next rendered page. Category is
// used by templates to pick where the notice appears ("error", "profile",
// "notice").
type Flash struct {
	Category string
	Message  string
}

// SetFlash stores a notice in a short-lived cookie. Gin URL-encodes cookie
// values, so messages may contain spaces and punctuation.
func SetFlash(c *gin.Context, category, message string) {
	c.SetCookie(flashCookie, category+"|"+message, 300, "/", "", false, true)
}

// TakeFlash returns the pending notice, if any, and clears it.
func TakeFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	category, message, found := strings.Cut(raw, "|")
	if !found {
		return &Flash{Category: "notice", Message: raw}
	}
	return &Flash{Category: category, Message: message}
}
