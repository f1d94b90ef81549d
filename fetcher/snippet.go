package fetcher

import (
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var strict = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return p
}()

// Snippet turns an entry body into a short plain text summary. Text longer
// than maxLen runes is cut on a word boundary to at most maxLen runes and
// then "..." is appended; the ellipsis is not counted against maxLen.
func Snippet(body string, maxLen int) string {
	text := html.UnescapeString(strict.Sanitize(body))
	text = strings.Join(strings.FieldsFunc(text, unicode.IsSpace), " ")

	runes := []rune(text)
	if maxLen <= 0 || len(runes) <= maxLen {
		return text
	}

	cut := runes[:maxLen]
	// A space right after the limit means the last word already fits
	if runes[maxLen] != ' ' {
		if i := lastSpace(cut); i > 0 {
			cut = cut[:i]
		}
	}
	return strings.TrimRightFunc(string(cut), unicode.IsPunct) + "..."
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}
