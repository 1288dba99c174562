package scene

import (
	"testing"

	"ggmap/internal/mapkit"
	"ggmap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_AddRemoveLayer(t *testing.T) {
	lib := New()
	m := lib.NewMap(mapkit.MapOptions{}).(*Map)
	group := lib.LayerGroup("food")

	m.AddLayer(group)
	m.AddLayer(group)
	assert.Len(t, m.Layers(), 1)
	assert.True(t, m.HasLayer(group))

	m.RemoveLayer(group)
	assert.False(t, m.HasLayer(group))
	assert.Empty(t, m.Layers())
}

func TestMarker_OpenPopupRequiresBinding(t *testing.T) {
	lib := New()
	marker := lib.Marker(models.LatLng{1, 2}, nil).(*Marker)

	marker.OpenPopup()
	assert.False(t, marker.PopupOpen)

	marker.BindPopup("<p>hi</p>")
	marker.OpenPopup()
	assert.True(t, marker.PopupOpen)
}

func TestMap_Snapshot(t *testing.T) {
	lib := New()
	m := lib.NewMap(mapkit.MapOptions{Center: models.LatLng{1, 2}, ZoomControl: true}).(*Map)
	m.AddLayer(lib.TileLayer("https://tiles/{z}/{x}/{y}.png", map[string]any{"maxZoom": 18.0}))

	group := lib.LayerGroup("sights")
	marker := lib.Marker(models.LatLng{3, 4}, nil)
	marker.BindTooltip("tip", mapkit.TooltipOptions{Direction: "top"})
	group.AddLayer(marker)
	m.AddLayer(group)
	m.FitBounds(models.NewBounds(models.LatLng{0, 0}, models.LatLng{5, 5}))

	snap := m.Snapshot()
	assert.Equal(t, models.LatLng{1, 2}, snap.View.Center)
	require.Len(t, snap.Layers, 2)
	assert.Equal(t, KindTile, snap.Layers[0].Kind)
	assert.Equal(t, KindGroup, snap.Layers[1].Kind)
	assert.Equal(t, "sights", snap.Layers[1].Category)
	assert.Empty(t, snap.Layers[0].Category)
	require.Len(t, snap.Layers[1].Markers, 1)
	assert.Equal(t, "tip", snap.Layers[1].Markers[0].Tooltip)
	require.NotNil(t, snap.FitBounds)
	assert.Nil(t, snap.MaxBounds)
}

func TestLibrary_EscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt;Tom &amp; Jerry&#39;s&lt;/a&gt;", New().EscapeHTML(`<a href="x">Tom & Jerry's</a>`))
}
