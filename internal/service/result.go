package service

import (
	"fmt"

	"ggmap/internal/renderer"
	"ggmap/internal/scene"
)

// RenderResult is a rendered map in a form clients can consume.
type RenderResult struct {
	ContainerID    string                   `json:"containerId,omitempty"`
	Map            *scene.MapSnapshot       `json:"map,omitempty"`
	Categories     []renderer.CategoryState `json:"categories"`
	Filters        *renderer.FilterPanel    `json:"filters,omitempty"`
	FiltersHTML    string                   `json:"filtersHtml,omitempty"`
	OpenedMarkerID string                   `json:"openedMarkerId,omitempty"`
}

// NewRenderResult snapshots a rendered instance.
func NewRenderResult(inst *renderer.Instance) (*RenderResult, error) {
	result := &RenderResult{
		ContainerID:    inst.ContainerID,
		Categories:     inst.Categories,
		Filters:        inst.Filters,
		OpenedMarkerID: inst.OpenedMarkerID,
	}
	if result.Categories == nil {
		result.Categories = []renderer.CategoryState{}
	}
	if m, ok := inst.Map.(*scene.Map); ok {
		snap := m.Snapshot()
		result.Map = &snap
	}
	if inst.Filters != nil {
		out, err := inst.Filters.HTML()
		if err != nil {
			return nil, fmt.Errorf("service: %w", err)
		}
		result.FiltersHTML = out
	}
	return result, nil
}
