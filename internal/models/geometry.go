package models

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// LatLng is a coordinate pair. In planar mode the pair is y/x in map units.
type LatLng [2]float64

// Coords is a decoded coordinate array. Only the first two values matter.
type Coords []Number

// UnmarshalJSON decodes arrays only; anything else leaves c empty.
func (c *Coords) UnmarshalJSON(data []byte) error {
	*c = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil
	}
	var values []Number
	if err := json.Unmarshal(data, &values); err != nil {
		return nil
	}
	*c = values
	return nil
}

// LatLng returns the pair when at least two valid values are present.
func (c Coords) LatLng() (LatLng, bool) {
	if len(c) < 2 || !c[0].Valid || !c[1].Valid {
		return LatLng{}, false
	}
	return LatLng{c[0].Value, c[1].Value}, true
}

// Bounds is a south-west / north-east box. Malformed boxes decode as invalid.
type Bounds struct {
	SouthWest LatLng
	NorthEast LatLng
	Valid     bool
}

// NewBounds returns a valid box.
func NewBounds(sw, ne LatLng) Bounds {
	return Bounds{SouthWest: sw, NorthEast: ne, Valid: true}
}

func (b *Bounds) UnmarshalJSON(data []byte) error {
	*b = Bounds{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil
	}
	var corners []Coords
	if err := json.Unmarshal(data, &corners); err != nil {
		return nil
	}
	if len(corners) < 2 {
		return nil
	}
	sw, ok := corners[0].LatLng()
	if !ok {
		return nil
	}
	ne, ok := corners[1].LatLng()
	if !ok {
		return nil
	}
	*b = NewBounds(sw, ne)
	return nil
}

func (b Bounds) MarshalJSON() ([]byte, error) {
	if !b.Valid {
		return nullLiteral, nil
	}
	return json.Marshal([2]LatLng{b.SouthWest, b.NorthEast})
}
