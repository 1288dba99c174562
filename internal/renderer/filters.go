package renderer

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultFilterHeading labels the category filter panel.
const DefaultFilterHeading = "カテゴリ"

// FilterRow is one checkbox in the filter panel.
type FilterRow struct {
	InputID    string `json:"inputId"`
	CategoryID string `json:"categoryId"`
	Label      string `json:"label"`
	Checked    bool   `json:"checked"`
}

// FilterPanel is the checkbox list shown next to a map container.
type FilterPanel struct {
	Heading string      `json:"heading"`
	Rows    []FilterRow `json:"rows"`

	onToggle func(categoryID string, enabled bool) bool
}

func newFilterPanel(containerID, heading string, categories []CategoryState, onToggle func(string, bool) bool) *FilterPanel {
	p := &FilterPanel{Heading: heading, onToggle: onToggle}
	for _, c := range categories {
		p.Rows = append(p.Rows, FilterRow{
			InputID:    containerID + "-filter-" + c.ID,
			CategoryID: c.ID,
			Label:      c.Name,
			Checked:    c.Visible,
		})
	}
	return p
}

// Toggle applies a checkbox change. It reports false for unknown categories.
func (p *FilterPanel) Toggle(categoryID string, checked bool) bool {
	for i := range p.Rows {
		if p.Rows[i].CategoryID != categoryID {
			continue
		}
		p.Rows[i].Checked = checked
		if p.onToggle != nil {
			return p.onToggle(categoryID, checked)
		}
		return true
	}
	return false
}

// HTML renders the panel markup.
func (p *FilterPanel) HTML() (string, error) {
	panel := element(atom.Aside, "gg-map__filters")

	heading := element(atom.P, "gg-map__filters-heading")
	heading.AppendChild(&html.Node{Type: html.TextNode, Data: p.Heading})
	panel.AppendChild(heading)

	list := element(atom.Ul, "gg-map__filters-list")
	panel.AppendChild(list)

	for _, row := range p.Rows {
		item := element(atom.Li, "gg-map__filters-item")

		input := element(atom.Input, "gg-map__filters-toggle")
		input.Attr = append(input.Attr,
			html.Attribute{Key: "type", Val: "checkbox"},
			html.Attribute{Key: "id", Val: row.InputID},
			html.Attribute{Key: "data-category", Val: row.CategoryID},
		)
		if row.Checked {
			input.Attr = append(input.Attr, html.Attribute{Key: "checked"})
		}

		label := element(atom.Label, "gg-map__filters-label")
		label.Attr = append(label.Attr, html.Attribute{Key: "for", Val: row.InputID})
		label.AppendChild(&html.Node{Type: html.TextNode, Data: row.Label})

		item.AppendChild(input)
		item.AppendChild(label)
		list.AppendChild(item)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, panel); err != nil {
		return "", fmt.Errorf("renderer: failed to render filter panel: %w", err)
	}
	return buf.String(), nil
}

func element(a atom.Atom, class string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
}
