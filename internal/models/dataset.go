package models

// DefaultOpenIDParam is the query parameter used for deep links when a
// container does not name one.
const DefaultOpenIDParam = "id"

// Dataset holds the data attributes of a map container.
type Dataset struct {
	JSON        string `json:"json"`
	TilesURL    string `json:"tilesUrl,omitempty"`
	Zoom        Number `json:"zoom"`
	MinZoom     Number `json:"minzoom"`
	MaxZoom     Number `json:"maxzoom"`
	MinNative   Number `json:"minnative"`
	MaxNative   Number `json:"maxnative"`
	Attribution string `json:"attribution,omitempty"`
	Filters     string `json:"filters,omitempty"`
	OpenIDParam string `json:"openIdParam,omitempty"`
}

// FiltersEnabled reports whether the category filter panel was requested.
func (d Dataset) FiltersEnabled() bool {
	return d.Filters == "on"
}

// OpenParam returns the deep-link query parameter name.
func (d Dataset) OpenParam() string {
	if d.OpenIDParam == "" {
		return DefaultOpenIDParam
	}
	return d.OpenIDParam
}

// DatasetFromAttributes builds a Dataset from data-* attribute values keyed
// by their camel-cased names, as a browser's dataset would expose them.
func DatasetFromAttributes(get func(key string) string) Dataset {
	return Dataset{
		JSON:        get("json"),
		TilesURL:    get("tilesUrl"),
		Zoom:        ParseNumber(get("zoom")),
		MinZoom:     ParseNumber(get("minzoom")),
		MaxZoom:     ParseNumber(get("maxzoom")),
		MinNative:   ParseNumber(get("minnative")),
		MaxNative:   ParseNumber(get("maxnative")),
		Attribution: get("attribution"),
		Filters:     get("filters"),
		OpenIDParam: get("openIdParam"),
	}
}
