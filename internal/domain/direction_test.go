package domain

import (
	"encoding/json"
	"testing"
)

func TestDirectionRotation(t *testing.T) {
	// Полный круг в обе стороны возвращает в исходное
	d := North
	for i := 0; i < 4; i++ {
		d = d.Rotated(true)
	}
	if d != North {
		t.Errorf("Expected NORTH after full clockwise turn, got %s", d)
	}
	for i := 0; i < 4; i++ {
		d = d.Rotated(false)
	}
	if d != North {
		t.Errorf("Expected NORTH after full counter-clockwise turn, got %s", d)
	}

	if West.Rotated(true) != North {
		t.Error("WEST clockwise must wrap to NORTH")
	}
	if North.Rotated(false) != West {
		t.Error("NORTH counter-clockwise must wrap to WEST")
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{North, 0, -1},
		{East, 1, 0},
		{South, 0, 1},
		{West, -1, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%s.Delta() = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("EAST")
	if err != nil || d != East {
		t.Errorf("ParseDirection(EAST) = %v, %v", d, err)
	}
	if _, err := ParseDirection("UP"); err == nil {
		t.Error("Expected error for unknown direction")
	}
}

func TestDirectionJSON(t *testing.T) {
	data, err := json.Marshal(South)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"SOUTH"` {
		t.Errorf("Marshal = %s", data)
	}

	var d Direction
	if err := json.Unmarshal([]byte(`"WEST"`), &d); err != nil {
		t.Fatal(err)
	}
	if d != West {
		t.Errorf("Unmarshal = %s", d)
	}

	if err := json.Unmarshal([]byte(`"DOWN"`), &d); err == nil {
		t.Error("Expected error for unknown direction")
	}
}
