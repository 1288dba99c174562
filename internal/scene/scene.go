// Package scene is an in-memory mapping library. It records what a renderer
// builds so the result can be inspected or sent to a client as JSON.
package scene

import (
	"strings"

	"ggmap/internal/mapkit"
	"ggmap/internal/models"
)

const (
	KindTile   = "tile"
	KindImage  = "image"
	KindGroup  = "group"
	KindMarker = "marker"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Library implements mapkit.Library, mapkit.IconBuilder and mapkit.HTMLEscaper.
type Library struct{}

// New returns a Library.
func New() *Library {
	return &Library{}
}

func (l *Library) NewMap(opts mapkit.MapOptions) mapkit.Map {
	return &Map{options: opts}
}

func (l *Library) TileLayer(url string, opts map[string]any) mapkit.Layer {
	return &TileLayer{URL: url, Options: opts}
}

func (l *Library) ImageOverlay(url string, bounds models.Bounds, opts map[string]any) mapkit.Layer {
	return &ImageOverlay{URL: url, Bounds: bounds, Options: opts}
}

func (l *Library) LayerGroup(name string) mapkit.Group {
	return &Group{Name: name}
}

func (l *Library) Marker(at models.LatLng, opts map[string]any) mapkit.Marker {
	return &Marker{LatLng: at, Options: opts}
}

func (l *Library) Icon(opts mapkit.IconOptions) mapkit.Icon {
	return opts
}

func (l *Library) EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Map is a map view and the layers currently attached to it.
type Map struct {
	options   mapkit.MapOptions
	layers    []mapkit.Layer
	fitBounds models.Bounds
	maxBounds models.Bounds
}

// Options returns the options the map was created with.
func (m *Map) Options() mapkit.MapOptions {
	return m.options
}

// Layers returns the attached layers in the order they were added.
func (m *Map) Layers() []mapkit.Layer {
	return append([]mapkit.Layer(nil), m.layers...)
}

func (m *Map) AddLayer(l mapkit.Layer) {
	if l == nil || m.HasLayer(l) {
		return
	}
	m.layers = append(m.layers, l)
}

func (m *Map) RemoveLayer(l mapkit.Layer) {
	for i, existing := range m.layers {
		if existing == l {
			m.layers = append(m.layers[:i], m.layers[i+1:]...)
			return
		}
	}
}

func (m *Map) HasLayer(l mapkit.Layer) bool {
	for _, existing := range m.layers {
		if existing == l {
			return true
		}
	}
	return false
}

func (m *Map) FitBounds(b models.Bounds) {
	m.fitBounds = b
}

func (m *Map) SetMaxBounds(b models.Bounds) {
	m.maxBounds = b
}

// MaxBounds returns the pan limits, if any were set.
func (m *Map) MaxBounds() models.Bounds {
	return m.maxBounds
}

// FittedBounds returns the box the viewport was fitted to, if any.
func (m *Map) FittedBounds() models.Bounds {
	return m.fitBounds
}

type TileLayer struct {
	URL     string
	Options map[string]any
}

func (t *TileLayer) Kind() string { return KindTile }

type ImageOverlay struct {
	URL     string
	Bounds  models.Bounds
	Options map[string]any
}

func (o *ImageOverlay) Kind() string { return KindImage }

// Group keeps its markers whether or not it is attached to a map.
type Group struct {
	Name    string
	markers []mapkit.Marker
}

func (g *Group) Kind() string { return KindGroup }

func (g *Group) AddLayer(m mapkit.Marker) {
	g.markers = append(g.markers, m)
}

func (g *Group) Markers() []mapkit.Marker {
	return append([]mapkit.Marker(nil), g.markers...)
}

type Marker struct {
	LatLng    models.LatLng
	Options   map[string]any
	Icon      mapkit.Icon
	Popup     string
	Tooltip   string
	TooltipOn mapkit.TooltipOptions
	PopupOpen bool

	hasPopup   bool
	hasTooltip bool
}

func (m *Marker) Kind() string { return KindMarker }

func (m *Marker) SetIcon(icon mapkit.Icon) {
	m.Icon = icon
}

func (m *Marker) BindPopup(html string) {
	m.Popup = html
	m.hasPopup = true
}

func (m *Marker) BindTooltip(text string, opts mapkit.TooltipOptions) {
	m.Tooltip = text
	m.TooltipOn = opts
	m.hasTooltip = true
}

func (m *Marker) HasPopup() bool {
	return m.hasPopup
}

// HasTooltip reports whether a tooltip was bound.
func (m *Marker) HasTooltip() bool {
	return m.hasTooltip
}

// OpenPopup is a no-op for markers without a bound popup.
func (m *Marker) OpenPopup() {
	if m.hasPopup {
		m.PopupOpen = true
	}
}
