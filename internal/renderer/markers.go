package renderer

import (
	"ggmap/internal/mapkit"
	"ggmap/internal/models"
)

var hoverTooltip = mapkit.TooltipOptions{Direction: "top", Permanent: false}

func (r *Renderer) addCategories(inst *Instance, categories []models.Category) {
	for i, c := range categories {
		state := CategoryState{
			ID:      c.ResolvedID(i),
			Name:    c.ResolvedName(i),
			Visible: c.IsVisible(),
		}

		group := r.lib.LayerGroup(state.ID)
		inst.groups[state.ID] = group
		if state.Visible {
			inst.Map.AddLayer(group)
		}

		for j, m := range c.Markers {
			at, ok := m.Coords.LatLng()
			if !ok {
				r.logger.Debug().Str("category", state.ID).Int("marker", j).Msg("skipping marker without coordinates")
				if r.skipped != nil {
					r.skipped.IncMarkerSkipped()
				}
				continue
			}
			marker := r.buildMarker(at, m)
			group.AddLayer(marker)
			state.Markers++
			if m.ID != "" {
				inst.markers[string(m.ID)] = marker
			}
		}

		inst.Categories = append(inst.Categories, state)
	}
}

func (r *Renderer) buildMarker(at models.LatLng, m models.Marker) mapkit.Marker {
	marker := r.lib.Marker(at, copyOptions(m.Options))

	if icon, ok := r.buildIcon(m.Icon); ok {
		marker.SetIcon(icon)
	}
	if m.HasPopup() {
		marker.BindPopup(BuildPopupHTML(m, r.escaper(), r.opts.LinkLabel))
	}
	if m.Tooltip != "" {
		marker.BindTooltip(string(m.Tooltip), hoverTooltip)
	}
	return marker
}

// buildIcon needs both a descriptor and a library that can make icons.
func (r *Renderer) buildIcon(desc *models.Icon) (mapkit.Icon, bool) {
	if desc == nil {
		return nil, false
	}
	builder, ok := r.lib.(mapkit.IconBuilder)
	if !ok {
		return nil, false
	}
	return builder.Icon(mapkit.IconOptions{
		IconURL:       string(desc.IconURL),
		IconRetinaURL: string(desc.IconRetinaURL),
		ShadowURL:     string(desc.ShadowURL),
		ClassName:     string(desc.ClassName),
		IconSize:      models.Numbers(desc.IconSize),
		IconAnchor:    models.Numbers(desc.IconAnchor),
		PopupAnchor:   models.Numbers(desc.PopupAnchor),
		ShadowSize:    models.Numbers(desc.ShadowSize),
	}), true
}

// escaper prefers the library's own escaper.
func (r *Renderer) escaper() EscapeFunc {
	if e, ok := r.lib.(mapkit.HTMLEscaper); ok {
		return e.EscapeHTML
	}
	return EscapeHTML
}
