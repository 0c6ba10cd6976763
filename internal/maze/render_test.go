package maze

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestStringFreshAndFullyWalled(t *testing.T) {
	m := mustNew(t, 2, 2)

	// Fresh maze: interior open, only the border drawn.
	want := " ___\n" +
		"|   |\n" +
		"| ##|\n" +
		"|   |\n"
	if got := m.String(); got != want {
		t.Errorf("fresh maze diagram:\n%q\nwant:\n%q", got, want)
	}

	m.EnableAllWalls()
	want = " ___\n" +
		"| # |\n" +
		"|###|\n" +
		"| # |\n"
	if got := m.String(); got != want {
		t.Errorf("fully walled diagram:\n%q\nwant:\n%q", got, want)
	}
}

func TestStringLayout(t *testing.T) {
	const width, height = 5, 3
	m := mustNew(t, width, height)

	lines := strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
	if got, want := len(lines), 2*height; got != want {
		t.Fatalf("diagram has %d lines, want %d", got, want)
	}

	if got, want := len(lines[0]), 2*width; got != want {
		t.Errorf("top border is %d chars, want %d", got, want)
	}
	for i, line := range lines[1:] {
		if got, want := len(line), 2*width+1; got != want {
			t.Errorf("line %d is %d chars, want %d", i+1, got, want)
		}
	}
}

// TestStringMatchesWallQueries checks that every marker in the diagram agrees
// with the wall query it projects: EAST markers for columns [0, width-1),
// SOUTH markers for rows [0, height-1).
func TestStringMatchesWallQueries(t *testing.T) {
	const width, height = 6, 5
	m, err := Generate(context.Background(), Size{Width: width, Height: height}, 2024)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	lines := strings.Split(m.String(), "\n")

	for row := 0; row < height; row++ {
		eastLine := lines[1+2*row]
		for col := 0; col < width-1; col++ {
			marker := eastLine[2*col+2] == '#'
			enabled := m.IsWallEnabled(Coord{Col: col, Row: row}, East)
			if marker != enabled {
				t.Errorf("east marker at (%d,%d) = %t, wall query = %t", col, row, marker, enabled)
			}
		}

		if row == height-1 {
			continue
		}
		southLine := lines[2+2*row]
		for col := 0; col < width-1; col++ {
			marker := southLine[1+2*col] == '#'
			enabled := m.IsWallEnabled(Coord{Col: col, Row: row}, South)
			if marker != enabled {
				t.Errorf("south marker at (%d,%d) = %t, wall query = %t", col, row, marker, enabled)
			}
		}
	}
}

func TestRenderWritesSameDiagram(t *testing.T) {
	m, err := Generate(context.Background(), Size{Width: 4, Height: 4}, 11)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var buf bytes.Buffer
	if err := m.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if buf.String() != m.String() {
		t.Error("Render and String produced different diagrams")
	}
}
