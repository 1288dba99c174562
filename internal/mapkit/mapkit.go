// Package mapkit declares the surface of the mapping library a map is
// rendered into. Renderers depend on these interfaces only.
package mapkit

import "ggmap/internal/models"

// MapOptions configures a new map view. Unset numbers are left to the library.
type MapOptions struct {
	Center      models.LatLng
	Zoom        models.Number
	MinZoom     models.Number
	MaxZoom     models.Number
	ZoomControl bool
	CRS         string
	Options     map[string]any
}

// TooltipOptions configures a marker tooltip.
type TooltipOptions struct {
	Direction string
	Permanent bool
}

// IconOptions describes a marker icon with numeric arrays already coerced.
type IconOptions struct {
	IconURL       string    `json:"iconUrl,omitempty"`
	IconRetinaURL string    `json:"iconRetinaUrl,omitempty"`
	ShadowURL     string    `json:"shadowUrl,omitempty"`
	ClassName     string    `json:"className,omitempty"`
	IconSize      []float64 `json:"iconSize,omitempty"`
	IconAnchor    []float64 `json:"iconAnchor,omitempty"`
	PopupAnchor   []float64 `json:"popupAnchor,omitempty"`
	ShadowSize    []float64 `json:"shadowSize,omitempty"`
}

// Library constructs map objects.
type Library interface {
	NewMap(opts MapOptions) Map
	TileLayer(url string, opts map[string]any) Layer
	ImageOverlay(url string, bounds models.Bounds, opts map[string]any) Layer
	LayerGroup(name string) Group
	Marker(at models.LatLng, opts map[string]any) Marker
}

// IconBuilder is implemented by libraries that can construct custom icons.
type IconBuilder interface {
	Icon(opts IconOptions) Icon
}

// HTMLEscaper is implemented by libraries that ship their own HTML escaper.
type HTMLEscaper interface {
	EscapeHTML(s string) string
}

// Icon is an opaque icon handle.
type Icon any

// Layer is anything that can be attached to a map.
type Layer interface {
	Kind() string
}

// Map is a rendered map view.
type Map interface {
	AddLayer(l Layer)
	RemoveLayer(l Layer)
	HasLayer(l Layer) bool
	FitBounds(b models.Bounds)
	SetMaxBounds(b models.Bounds)
}

// Group is an overlay group whose members follow its visibility.
type Group interface {
	Layer
	AddLayer(m Marker)
	Markers() []Marker
}

// Marker is a point on the map.
type Marker interface {
	Layer
	SetIcon(icon Icon)
	BindPopup(html string)
	BindTooltip(text string, opts TooltipOptions)
	HasPopup() bool
	OpenPopup()
}
