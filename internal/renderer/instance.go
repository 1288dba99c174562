package renderer

import (
	"net/url"

	"ggmap/internal/mapkit"
)

// CategoryState is a category as rendered.
type CategoryState struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
	Markers int    `json:"markers"`
}

// Instance is one rendered map. All lookups are private to it.
type Instance struct {
	ContainerID    string
	Map            mapkit.Map
	BaseLayer      mapkit.Layer
	Categories     []CategoryState
	Filters        *FilterPanel
	OpenedMarkerID string

	groups  map[string]mapkit.Group
	markers map[string]mapkit.Marker
}

// Toggle attaches or detaches a category's group. Markers stay in the group
// either way. It reports false when the category is unknown.
func (in *Instance) Toggle(categoryID string, enabled bool) bool {
	group, ok := in.groups[categoryID]
	if !ok {
		return false
	}
	if enabled {
		in.Map.AddLayer(group)
	} else {
		in.Map.RemoveLayer(group)
	}
	for i := range in.Categories {
		if in.Categories[i].ID == categoryID {
			in.Categories[i].Visible = enabled
		}
	}
	return true
}

// Group returns the overlay group of a category.
func (in *Instance) Group(categoryID string) (mapkit.Group, bool) {
	g, ok := in.groups[categoryID]
	return g, ok
}

// Marker returns the marker registered under id.
func (in *Instance) Marker(id string) (mapkit.Marker, bool) {
	m, ok := in.markers[id]
	return m, ok
}

// openDeepLink opens the popup of the marker named by the query parameter.
// The owning category is not forced visible.
func (in *Instance) openDeepLink(query url.Values, param string) {
	if query == nil || param == "" {
		return
	}
	id := query.Get(param)
	if id == "" {
		return
	}
	marker, ok := in.markers[id]
	if !ok {
		return
	}
	marker.OpenPopup()
	if marker.HasPopup() {
		in.OpenedMarkerID = id
	}
}
