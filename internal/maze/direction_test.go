package maze

import "testing"

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		North: South,
		East:  West,
		South: North,
		West:  East,
	}

	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v, want %v", d, got, d)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	for _, d := range Directions {
		dcol, drow := d.Delta()
		if dcol == 0 && drow == 0 {
			t.Errorf("%v.Delta() = (0, 0), want a unit offset", d)
		}

		// Stepping in a direction and then in its opposite goes nowhere.
		ocol, orow := d.Opposite().Delta()
		if dcol+ocol != 0 || drow+orow != 0 {
			t.Errorf("%v.Delta() and %v.Delta() do not cancel", d, d.Opposite())
		}
	}

	if dcol, drow := North.Delta(); dcol != 0 || drow != -1 {
		t.Errorf("North.Delta() = (%d, %d), want (0, -1)", dcol, drow)
	}
	if dcol, drow := East.Delta(); dcol != 1 || drow != 0 {
		t.Errorf("East.Delta() = (%d, %d), want (1, 0)", dcol, drow)
	}
}

func TestDirectionString(t *testing.T) {
	names := map[Direction]string{
		North: "north",
		East:  "east",
		South: "south",
		West:  "west",
	}
	for d, want := range names {
		if got := d.String(); got != want {
			t.Errorf("Direction(%d).String() = %q, want %q", d, got, want)
		}
	}
}
