package layout

import "testing"

func TestCenteredDetector_SymmetricLine(t *testing.T) {
	detector := NewCenteredDetector()

	// Margins 100 and 102 on a 300pt page: centered within 5pt tolerance
	blocks := []TextBlock{makeBlock(100, 700, 198, 712)}

	centered := detector.Detect(blocks, 300)

	if len(centered) != 1 {
		t.Fatalf("Expected 1 centered line, got %d", len(centered))
	}
	if centered[0].LeftMargin != 100 || centered[0].RightMargin != 102 {
		t.Errorf("Expected margins 100/102, got %f/%f", centered[0].LeftMargin, centered[0].RightMargin)
	}
	if centered[0].Symmetry != 2 {
		t.Errorf("Expected symmetry 2, got %f", centered[0].Symmetry)
	}
}

func TestCenteredDetector_AsymmetricLine(t *testing.T) {
	detector := NewCenteredDetector()

	// Margins 20 and 200 are nowhere near symmetric
	blocks := []TextBlock{makeBlock(20, 700, 100, 712)}

	if centered := detector.Detect(blocks, 300); len(centered) != 0 {
		t.Errorf("Expected no centered lines, got %d", len(centered))
	}
}

func TestCenteredDetector_MarginFloor(t *testing.T) {
	detector := NewCenteredDetector()

	// Symmetric but hugging both page edges: margins below the 20pt floor
	blocks := []TextBlock{makeBlock(10, 700, 290, 712)}

	if centered := detector.Detect(blocks, 300); len(centered) != 0 {
		t.Errorf("Expected no centered lines for edge-hugging text, got %d", len(centered))
	}
}

func TestCenteredDetector_SortedBySymmetry(t *testing.T) {
	detector := NewCenteredDetector()

	blocks := []TextBlock{
		makeBlock(100, 700, 196, 712), // margins 100/104, symmetry 4
		makeBlock(100, 650, 200, 662), // margins 100/100, symmetry 0
	}

	centered := detector.Detect(blocks, 300)

	if len(centered) != 2 {
		t.Fatalf("Expected 2 centered lines, got %d", len(centered))
	}
	if centered[0].Symmetry > centered[1].Symmetry {
		t.Errorf("Expected ascending symmetry order, got %f then %f", centered[0].Symmetry, centered[1].Symmetry)
	}
}
