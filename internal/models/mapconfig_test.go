package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Number
	}{
		{name: "empty", input: "", expected: Number{}},
		{name: "whitespace", input: "  ", expected: Number{}},
		{name: "zero", input: "0", expected: NumberOf(0)},
		{name: "decimal", input: "12.5", expected: NumberOf(12.5)},
		{name: "garbage", input: "abc", expected: Number{}},
		{name: "infinity", input: "Inf", expected: Number{}},
		{name: "nan", input: "NaN", expected: Number{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseNumber(tt.input))
		})
	}
}

func TestDecodeMapConfig(t *testing.T) {
	doc := `{
		"map": {
			"view": {"center": [35.68, "139.76"], "zoom": "0", "bounds": [[0, 0], [100, 100]], "crs": "Simple"},
			"layer": {"type": "image", "imageUrl": "plan.png", "bounds": [[0, 0], [100, 100]], "maxZoom": "not-a-number"}
		},
		"categories": [
			{
				"id": 7,
				"visible": "false",
				"markers": [
					{"id": 42, "coords": [1, 2], "title": "Shrine", "popup": false},
					{"coords": [1]},
					{"coords": [1, "x"]}
				]
			},
			{"name": "Shops"}
		]
	}`

	cfg, err := DecodeMapConfig([]byte(doc))
	require.NoError(t, err)

	view := cfg.Map.View
	center, ok := view.Center.LatLng()
	require.True(t, ok)
	assert.Equal(t, LatLng{35.68, 139.76}, center)
	assert.Equal(t, NumberOf(0), view.Zoom)
	assert.Equal(t, NewBounds(LatLng{0, 0}, LatLng{100, 100}), view.Bounds)
	assert.Equal(t, CRSSimple, string(view.CRS))

	require.NotNil(t, cfg.Map.Layer)
	assert.True(t, cfg.Map.Layer.IsImage())
	assert.False(t, cfg.Map.Layer.MaxZoom.Valid)
	assert.False(t, cfg.Map.Layer.MaxBounds.Valid)

	require.Len(t, cfg.Categories, 2)
	first := cfg.Categories[0]
	assert.Equal(t, "7", first.ResolvedID(0))
	assert.Equal(t, "7", first.ResolvedName(0))
	assert.False(t, first.IsVisible())

	require.Len(t, first.Markers, 3)
	assert.Equal(t, FlexString("42"), first.Markers[0].ID)
	assert.False(t, first.Markers[0].HasPopup())
	_, ok = first.Markers[1].Coords.LatLng()
	assert.False(t, ok)
	_, ok = first.Markers[2].Coords.LatLng()
	assert.False(t, ok)

	second := cfg.Categories[1]
	assert.Equal(t, "category-1", second.ResolvedID(1))
	assert.Equal(t, "Shops", second.ResolvedName(1))
	assert.True(t, second.IsVisible())
}

func TestDecodeMapConfig_Malformed(t *testing.T) {
	_, err := DecodeMapConfig([]byte(`{"map": `))
	assert.Error(t, err)
}

func TestMarkerText(t *testing.T) {
	assert.Equal(t, "desc", Marker{Description: "desc", Body: "body"}.Text())
	assert.Equal(t, "body", Marker{Body: "body"}.Text())
	assert.Equal(t, "", Marker{}.Text())
}

func TestDatasetFromAttributes(t *testing.T) {
	attrs := map[string]string{
		"json":        "/maps/town.json",
		"zoom":        "5",
		"minzoom":     "",
		"maxzoom":     "x",
		"filters":     "on",
		"openIdParam": "spot",
	}
	ds := DatasetFromAttributes(func(key string) string { return attrs[key] })

	assert.Equal(t, "/maps/town.json", ds.JSON)
	assert.Equal(t, NumberOf(5), ds.Zoom)
	assert.False(t, ds.MinZoom.Valid)
	assert.False(t, ds.MaxZoom.Valid)
	assert.True(t, ds.FiltersEnabled())
	assert.Equal(t, "spot", ds.OpenParam())
	assert.Equal(t, DefaultOpenIDParam, Dataset{}.OpenParam())
}

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected FlexString
	}{
		{name: "string", input: `"spot-1"`, expected: "spot-1"},
		{name: "integer", input: `42`, expected: "42"},
		{name: "trailing zero fraction", input: `42.0`, expected: "42"},
		{name: "exponent", input: `4.2e1`, expected: "42"},
		{name: "fraction", input: `1.5`, expected: "1.5"},
		{name: "negative", input: `-3`, expected: "-3"},
		{name: "bool", input: `true`, expected: "true"},
		{name: "null", input: `null`, expected: ""},
		{name: "object", input: `{"a": 1}`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s FlexString
			require.NoError(t, s.UnmarshalJSON([]byte(tt.input)))
			assert.Equal(t, tt.expected, s)
		})
	}
}
