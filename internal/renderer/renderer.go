// Package renderer turns a map document into map objects: the view, its base
// layer, one overlay group per category, an optional filter panel and an
// optional popup opened from a deep link.
package renderer

import (
	"net/url"
	"strings"

	"ggmap/internal/mapkit"
	"ggmap/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options tunes text the renderer emits.
type Options struct {
	LinkLabel     string
	FilterHeading string
}

// Container identifies the page element a map is rendered into.
type Container struct {
	ID      string
	Dataset models.Dataset
}

// SkipObserver is told about markers dropped for bad coordinates.
type SkipObserver interface {
	IncMarkerSkipped()
}

// Renderer builds map instances with a mapping library.
type Renderer struct {
	lib     mapkit.Library
	opts    Options
	logger  zerolog.Logger
	skipped SkipObserver
}

// New creates a renderer.
func New(lib mapkit.Library, opts Options, logger zerolog.Logger) *Renderer {
	if opts.LinkLabel == "" {
		opts.LinkLabel = DefaultLinkLabel
	}
	if opts.FilterHeading == "" {
		opts.FilterHeading = DefaultFilterHeading
	}
	return &Renderer{lib: lib, opts: opts, logger: logger}
}

// WithSkipObserver returns a copy of r that reports skipped markers to o.
func (r *Renderer) WithSkipObserver(o SkipObserver) *Renderer {
	cp := *r
	cp.skipped = o
	return &cp
}

// Render draws cfg into a new map for container. query is the page's query
// string and is only consulted for the deep-link parameter.
func (r *Renderer) Render(container Container, cfg *models.MapConfig, query url.Values) *Instance {
	if cfg == nil {
		cfg = &models.MapConfig{}
	}
	ds := container.Dataset

	m := r.lib.NewMap(mapOptions(cfg.Map, ds))
	inst := &Instance{
		ContainerID: container.ID,
		Map:         m,
		groups:      make(map[string]mapkit.Group),
		markers:     make(map[string]mapkit.Marker),
	}

	inst.BaseLayer = r.addBaseLayer(m, cfg.Map.Layer, ds)

	if cfg.Map.View.Bounds.Valid {
		m.FitBounds(cfg.Map.View.Bounds)
	}

	r.addCategories(inst, cfg.Categories)

	if ds.FiltersEnabled() && len(inst.Categories) > 0 {
		if inst.ContainerID == "" {
			inst.ContainerID = newContainerID()
		}
		inst.Filters = newFilterPanel(inst.ContainerID, r.opts.FilterHeading, inst.Categories, inst.Toggle)
	}

	inst.openDeepLink(query, ds.OpenParam())

	r.logger.Debug().
		Str("container", inst.ContainerID).
		Int("categories", len(inst.Categories)).
		Int("linkable_markers", len(inst.markers)).
		Str("opened", inst.OpenedMarkerID).
		Msg("map rendered")

	return inst
}

// mapOptions merges view settings: map.view over map over container
// attributes over library defaults.
func mapOptions(settings models.MapSettings, ds models.Dataset) mapkit.MapOptions {
	view := settings.View

	center, ok := view.Center.LatLng()
	if !ok {
		center = models.LatLng{0, 0}
	}

	zoomControl := true
	switch {
	case view.ZoomControl.Valid:
		zoomControl = view.ZoomControl.Value
	case settings.ZoomControl.Valid:
		zoomControl = settings.ZoomControl.Value
	}

	crs := string(view.CRS)
	if crs == "" {
		crs = string(settings.CRS)
	}
	if crs != models.CRSSimple {
		crs = ""
	}

	return mapkit.MapOptions{
		Center:      center,
		Zoom:        view.Zoom.Or(ds.Zoom),
		MinZoom:     view.MinZoom.Or(ds.MinZoom),
		MaxZoom:     view.MaxZoom.Or(ds.MaxZoom),
		ZoomControl: zoomControl,
		CRS:         crs,
		Options:     mergeOptions(settings.Options, view.Options),
	}
}

// addBaseLayer attaches an image overlay or a tile layer. It returns nil when
// neither can be built.
func (r *Renderer) addBaseLayer(m mapkit.Map, cfg *models.LayerConfig, ds models.Dataset) mapkit.Layer {
	if cfg.IsImage() {
		layer := r.lib.ImageOverlay(string(cfg.ImageURL), cfg.Bounds, copyOptions(cfg.Options))
		m.AddLayer(layer)
		if cfg.MaxBounds.Valid {
			m.SetMaxBounds(cfg.MaxBounds)
		}
		return layer
	}

	tileURL := ds.TilesURL
	if cfg != nil && cfg.URL != "" {
		tileURL = string(cfg.URL)
	}
	if tileURL == "" {
		r.logger.Debug().Msg("no tile url configured, map has no base layer")
		return nil
	}

	layer := r.lib.TileLayer(tileURL, tileOptions(cfg, ds))
	m.AddLayer(layer)
	if cfg != nil && cfg.MaxBounds.Valid {
		m.SetMaxBounds(cfg.MaxBounds)
	}
	return layer
}

// tileOptions merges container attributes, then explicit layer fields, then
// the layer's passthrough options. Unset values are dropped.
func tileOptions(cfg *models.LayerConfig, ds models.Dataset) map[string]any {
	if cfg == nil {
		cfg = &models.LayerConfig{}
	}
	attribution := string(cfg.Attribution)
	if attribution == "" {
		attribution = ds.Attribution
	}

	opts := map[string]any{}
	setNumber(opts, "minZoom", cfg.MinZoom.Or(ds.MinZoom))
	setNumber(opts, "maxZoom", cfg.MaxZoom.Or(ds.MaxZoom))
	setNumber(opts, "minNativeZoom", cfg.MinNativeZoom.Or(ds.MinNative))
	setNumber(opts, "maxNativeZoom", cfg.MaxNativeZoom.Or(ds.MaxNative))
	if attribution != "" {
		opts["attribution"] = attribution
	}
	for k, v := range cfg.Options {
		if v == nil {
			delete(opts, k)
			continue
		}
		opts[k] = v
	}
	return opts
}

func setNumber(opts map[string]any, key string, n models.Number) {
	if n.Valid {
		opts[key] = n.Value
	}
}

// mergeOptions copies maps left to right, later maps winning. nil values are dropped.
func mergeOptions(maps ...map[string]any) map[string]any {
	var out map[string]any
	for _, m := range maps {
		for k, v := range m {
			if out == nil {
				out = make(map[string]any)
			}
			if v == nil {
				delete(out, k)
				continue
			}
			out[k] = v
		}
	}
	return out
}

func copyOptions(m map[string]any) map[string]any {
	return mergeOptions(m)
}

func newContainerID() string {
	return "gg-map-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
}
