package renderer

import (
	"strings"

	"ggmap/internal/models"
)

// DefaultLinkLabel is shown on popup links without a linkLabel.
const DefaultLinkLabel = "詳細を見る"

// EscapeFunc escapes text for embedding in HTML.
type EscapeFunc func(string) string

var fallbackEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes &, <, >, " and '.
func EscapeHTML(s string) string {
	return fallbackEscaper.Replace(s)
}

// BuildPopupHTML renders the popup fragment for a marker. Every interpolated
// value goes through escape; a nil escape uses EscapeHTML.
func BuildPopupHTML(m models.Marker, escape EscapeFunc, defaultLabel string) string {
	if escape == nil {
		escape = EscapeHTML
	}
	if defaultLabel == "" {
		defaultLabel = DefaultLinkLabel
	}

	var b strings.Builder
	b.WriteString(`<article class="gg-map__popup">`)
	if title := string(m.Title); title != "" {
		b.WriteString(`<h3 class="gg-map__popup-title">`)
		b.WriteString(escape(title))
		b.WriteString(`</h3>`)
	}
	if text := m.Text(); text != "" {
		b.WriteString(`<p class="gg-map__popup-body">`)
		b.WriteString(escape(text))
		b.WriteString(`</p>`)
	}
	image, link := string(m.Image), string(m.Link)
	if image != "" || link != "" {
		b.WriteString(`<div class="gg-map__popup-meta">`)
		if image != "" {
			b.WriteString(`<img class="gg-map__popup-image" src="`)
			b.WriteString(escape(image))
			b.WriteString(`" alt="" loading="lazy">`)
		}
		if link != "" {
			label := string(m.LinkLabel)
			if label == "" {
				label = defaultLabel
			}
			b.WriteString(`<a class="gg-map__popup-link" href="`)
			b.WriteString(escape(link))
			b.WriteString(`" target="_blank" rel="noopener noreferrer">`)
			b.WriteString(escape(label))
			b.WriteString(`</a>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</article>`)
	return b.String()
}
