package models

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// Layer types understood by the renderer. Anything else is treated as a tile layer.
const (
	LayerTypeTile  = "tile"
	LayerTypeImage = "image"
)

// CRSSimple selects planar coordinates for fictional or schematic maps.
const CRSSimple = "Simple"

// MapConfig is the root of a map document.
type MapConfig struct {
	Map        MapSettings `json:"map"`
	Categories []Category  `json:"categories"`
}

// MapSettings holds the view and base layer. CRS, ZoomControl and Options may
// also be given here; values on View take precedence.
type MapSettings struct {
	View        ViewConfig     `json:"view"`
	Layer       *LayerConfig   `json:"layer"`
	CRS         FlexString     `json:"crs"`
	ZoomControl Flag           `json:"zoomControl"`
	Options     map[string]any `json:"options"`
}

// ViewConfig describes the initial viewport.
type ViewConfig struct {
	Center      Coords         `json:"center"`
	Zoom        Number         `json:"zoom"`
	MinZoom     Number         `json:"minZoom"`
	MaxZoom     Number         `json:"maxZoom"`
	Bounds      Bounds         `json:"bounds"`
	CRS         FlexString     `json:"crs"`
	ZoomControl Flag           `json:"zoomControl"`
	Options     map[string]any `json:"options"`
}

// LayerConfig describes either a tile layer or an image overlay.
type LayerConfig struct {
	Type          FlexString     `json:"type"`
	URL           FlexString     `json:"url"`
	ImageURL      FlexString     `json:"imageUrl"`
	Bounds        Bounds         `json:"bounds"`
	MaxBounds     Bounds         `json:"maxBounds"`
	MinZoom       Number         `json:"minZoom"`
	MaxZoom       Number         `json:"maxZoom"`
	MinNativeZoom Number         `json:"minNativeZoom"`
	MaxNativeZoom Number         `json:"maxNativeZoom"`
	Attribution   FlexString     `json:"attribution"`
	Options       map[string]any `json:"options"`
}

// IsImage reports whether the layer is a usable image overlay.
func (l *LayerConfig) IsImage() bool {
	return l != nil && string(l.Type) == LayerTypeImage && l.ImageURL != "" && l.Bounds.Valid
}

// Category is an independently toggleable group of markers.
type Category struct {
	ID      FlexString `json:"id"`
	Name    FlexString `json:"name"`
	Visible Flag       `json:"visible"`
	Markers []Marker   `json:"markers"`
}

// ResolvedID returns the category id, falling back to its position.
func (c Category) ResolvedID(index int) string {
	if c.ID != "" {
		return string(c.ID)
	}
	return "category-" + strconv.Itoa(index)
}

// ResolvedName returns the display label, falling back to the id.
func (c Category) ResolvedName(index int) string {
	if c.Name != "" {
		return string(c.Name)
	}
	return c.ResolvedID(index)
}

// IsVisible reports the initial visibility. Only an explicit false hides a category.
func (c Category) IsVisible() bool {
	return !c.Visible.IsFalse()
}

// Marker is a single point of interest.
type Marker struct {
	ID          FlexString     `json:"id"`
	Coords      Coords         `json:"coords"`
	Title       FlexString     `json:"title"`
	Description FlexString     `json:"description"`
	Body        FlexString     `json:"body"`
	Link        FlexString     `json:"link"`
	LinkLabel   FlexString     `json:"linkLabel"`
	Image       FlexString     `json:"image"`
	Tooltip     FlexString     `json:"tooltip"`
	Popup       Flag           `json:"popup"`
	Icon        *Icon          `json:"icon"`
	Options     map[string]any `json:"options"`
}

// Text returns the description, falling back to body.
func (m Marker) Text() string {
	if m.Description != "" {
		return string(m.Description)
	}
	return string(m.Body)
}

// HasPopup reports whether a popup should be bound. Only an explicit false disables it.
func (m Marker) HasPopup() bool {
	return !m.Popup.IsFalse()
}

// Icon is a marker icon descriptor.
type Icon struct {
	IconURL       FlexString `json:"iconUrl"`
	IconRetinaURL FlexString `json:"iconRetinaUrl"`
	ShadowURL     FlexString `json:"shadowUrl"`
	ClassName     FlexString `json:"className"`
	IconSize      []Number   `json:"iconSize"`
	IconAnchor    []Number   `json:"iconAnchor"`
	PopupAnchor   []Number   `json:"popupAnchor"`
	ShadowSize    []Number   `json:"shadowSize"`
}

// DecodeMapConfig decodes a map document.
func DecodeMapConfig(data []byte) (*MapConfig, error) {
	var cfg MapConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("models: failed to decode map config: %w", err)
	}
	return &cfg, nil
}
