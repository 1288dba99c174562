package scene

import (
	"ggmap/internal/mapkit"
	"ggmap/internal/models"
)

type ViewSnapshot struct {
	Center      models.LatLng  `json:"center"`
	Zoom        models.Number  `json:"zoom"`
	MinZoom     models.Number  `json:"minZoom"`
	MaxZoom     models.Number  `json:"maxZoom"`
	ZoomControl bool           `json:"zoomControl"`
	CRS         string         `json:"crs,omitempty"`
	Options     map[string]any `json:"options,omitempty"`
}

type LayerSnapshot struct {
	Kind     string           `json:"kind"`
	Category string           `json:"category,omitempty"`
	URL      string           `json:"url,omitempty"`
	Bounds   *models.Bounds   `json:"bounds,omitempty"`
	Options  map[string]any   `json:"options,omitempty"`
	Markers  []MarkerSnapshot `json:"markers,omitempty"`
}

type MarkerSnapshot struct {
	LatLng    models.LatLng  `json:"latlng"`
	Options   map[string]any `json:"options,omitempty"`
	Icon      any            `json:"icon,omitempty"`
	Popup     string         `json:"popup,omitempty"`
	Tooltip   string         `json:"tooltip,omitempty"`
	PopupOpen bool           `json:"popupOpen,omitempty"`
}

type MapSnapshot struct {
	View      ViewSnapshot    `json:"view"`
	Layers    []LayerSnapshot `json:"layers"`
	FitBounds *models.Bounds  `json:"fitBounds,omitempty"`
	MaxBounds *models.Bounds  `json:"maxBounds,omitempty"`
}

// Snapshot captures the layers attached to the map right now. Detached
// groups are not included.
func (m *Map) Snapshot() MapSnapshot {
	o := m.options
	snap := MapSnapshot{
		View: ViewSnapshot{
			Center:      o.Center,
			Zoom:        o.Zoom,
			MinZoom:     o.MinZoom,
			MaxZoom:     o.MaxZoom,
			ZoomControl: o.ZoomControl,
			CRS:         o.CRS,
			Options:     o.Options,
		},
		Layers:    []LayerSnapshot{},
		FitBounds: boundsPtr(m.fitBounds),
		MaxBounds: boundsPtr(m.maxBounds),
	}
	for _, l := range m.layers {
		snap.Layers = append(snap.Layers, snapshotLayer(l))
	}
	return snap
}

func snapshotLayer(l mapkit.Layer) LayerSnapshot {
	switch v := l.(type) {
	case *TileLayer:
		return LayerSnapshot{Kind: KindTile, URL: v.URL, Options: v.Options}
	case *ImageOverlay:
		return LayerSnapshot{Kind: KindImage, URL: v.URL, Bounds: boundsPtr(v.Bounds), Options: v.Options}
	case *Group:
		snap := LayerSnapshot{Kind: KindGroup, Category: v.Name, Markers: []MarkerSnapshot{}}
		for _, m := range v.markers {
			if sm, ok := m.(*Marker); ok {
				snap.Markers = append(snap.Markers, sm.snapshot())
			}
		}
		return snap
	case *Marker:
		ms := v.snapshot()
		return LayerSnapshot{Kind: KindMarker, Markers: []MarkerSnapshot{ms}}
	default:
		return LayerSnapshot{Kind: l.Kind()}
	}
}

func (m *Marker) snapshot() MarkerSnapshot {
	return MarkerSnapshot{
		LatLng:    m.LatLng,
		Options:   m.Options,
		Icon:      m.Icon,
		Popup:     m.Popup,
		Tooltip:   m.Tooltip,
		PopupOpen: m.PopupOpen,
	}
}

func boundsPtr(b models.Bounds) *models.Bounds {
	if !b.Valid {
		return nil
	}
	return &b
}
