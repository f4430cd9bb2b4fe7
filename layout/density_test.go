package layout

import (
	"testing"

	"github.com/tsawler/pagemetry/model"
)

func TestDensityMapper_Empty(t *testing.T) {
	mapper := NewDensityMapper()

	m := mapper.Map(nil, nil, nil, 0, 0, 4, 4)
	if m.Rows != 0 || m.Cols != 0 {
		t.Errorf("Expected empty map for zero page, got %dx%d", m.Rows, m.Cols)
	}

	// Out-of-range lookups never panic
	if text, _, _ := m.Cell(2, 2); text != 0 {
		t.Errorf("Expected 0 for out-of-range cell, got %f", text)
	}
}

func TestDensityMapper_FullCoverage(t *testing.T) {
	mapper := NewDensityMapper()

	texts := []model.BBox{model.NewBBox(0, 0, 100, 100)}
	m := mapper.Map(texts, nil, nil, 100, 100, 2, 2)

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			text, image, path := m.Cell(r, c)
			if text != 1 {
				t.Errorf("Cell (%d,%d): expected text density 1, got %f", r, c, text)
			}
			if image != 0 || path != 0 {
				t.Errorf("Cell (%d,%d): expected empty image/path channels", r, c)
			}
		}
	}
}

func TestDensityMapper_TopLeftQuadrant(t *testing.T) {
	mapper := NewDensityMapper()

	// A box in the top-left page quadrant lands in cell (0,0)
	texts := []model.BBox{model.NewBBox(0, 50, 50, 100)}
	m := mapper.Map(texts, nil, nil, 100, 100, 2, 2)

	if text, _, _ := m.Cell(0, 0); text != 1 {
		t.Errorf("Expected full coverage at (0,0), got %f", text)
	}
	if text, _, _ := m.Cell(1, 1); text != 0 {
		t.Errorf("Expected no coverage at (1,1), got %f", text)
	}
}

func TestDensityMapper_ClampsOverlappingBoxes(t *testing.T) {
	mapper := NewDensityMapper()

	// Two identical boxes would sum past 1 without clamping
	box := model.NewBBox(0, 0, 100, 100)
	m := mapper.Map([]model.BBox{box, box}, nil, nil, 100, 100, 1, 1)

	if text, _, _ := m.Cell(0, 0); text != 1 {
		t.Errorf("Expected density clamped to 1, got %f", text)
	}
}
