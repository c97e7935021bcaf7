package handler

import (
	"fmt"
	"math/rand"
	"time"
)

// ReactionEmojis is the canonical reaction set sampled for decorations.
var ReactionEmojis = []string{
	"👍", "❤️", "😂", "😮", "😢", "😡",
	"🔥", "👏", "🎉", "🤔", "👎", "⭐",
}

// ratingCategories drives the per-dimension reaction rows on the detail page.
var ratingCategories = []string{"Lyrics", "Beat", "Flow", "Melody", "Cohesive"}

// sampleReactions picks k distinct emojis. Unseeded on purpose: the samples
// are cosmetic and may differ on every render.
func sampleReactions(k int) []string {
	if k > len(ReactionEmojis) {
		k = len(ReactionEmojis)
	}
	perm := rand.Perm(len(ReactionEmojis))
	sample := make([]string, 0, k)
	for _, idx := range perm[:k] {
		sample = append(sample, ReactionEmojis[idx])
	}
	return sample
}

// randomPercent returns a value in [min, max]. The "match percentage" is a
// presentation flourish, not a scoring algorithm.
func randomPercent(min, max int) int {
	return min + rand.Intn(max-min+1)
}

// timeAgo formats a timestamp the way the comment threads show it.
func timeAgo(t time.Time) string {
	if t.IsZero() {
		return "just now"
	}
	seconds := int(time.Since(t).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return "just now"
	}
	minutes := seconds / 60
	if minutes < 60 {
		return plural(minutes, "minute")
	}
	hours := minutes / 60
	if hours < 24 {
		return plural(hours, "hour")
	}
	days := hours / 24
	if days < 7 {
		return plural(days, "day")
	}
	weeks := days / 7
	if weeks < 5 {
		return plural(weeks, "week")
	}
	months := days / 30
	if months < 12 {
		return plural(months, "month")
	}
	return plural(days/365, "year")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
