package cabin

import "testing"

func TestParseSeat(t *testing.T) {
	grid := DefaultGrid()

	valid := []struct {
		seat   string
		row    int
		letter string
	}{
		{"1A", 1, "A"},
		{"10F", 10, "F"},
		{"3C", 3, "C"},
		{"7D", 7, "D"},
	}

	for _, tc := range valid {
		row, letter, err := grid.ParseSeat(tc.seat)
		if err != nil {
			t.Fatalf("ParseSeat(%q) returned error: %v", tc.seat, err)
		}
		if row != tc.row || letter != tc.letter {
			t.Fatalf("ParseSeat(%q) = (%d, %q), want (%d, %q)", tc.seat, row, letter, tc.row, tc.letter)
		}
	}

	invalid := []string{"", "A", "0A", "11A", "1G", "A1", "04C", "1a", "-1A", "+5A", " 5A", "5 A", "5A "}
	for _, seat := range invalid {
		if _, _, err := grid.ParseSeat(seat); err == nil {
			t.Fatalf("ParseSeat(%q) succeeded, want error", seat)
		}
	}

	// A signed row must not alias the physical seat it points at.
	if grid.ValidSeat("+5A") {
		t.Fatal(`ValidSeat("+5A") accepted a signed row`)
	}
}

func TestSeatPositions(t *testing.T) {
	grid := DefaultGrid()

	if !grid.IsWindow("A") || !grid.IsWindow("F") {
		t.Fatal("expected A and F to be window seats")
	}
	if grid.IsWindow("B") || grid.IsWindow("C") {
		t.Fatal("expected B and C not to be window seats")
	}

	if !grid.IsAisle("C") || !grid.IsAisle("D") {
		t.Fatal("expected C and D to be aisle seats")
	}
	if grid.IsAisle("A") || grid.IsAisle("E") {
		t.Fatal("expected A and E not to be aisle seats")
	}
}

func TestIsPremiumRow(t *testing.T) {
	grid := DefaultGrid()

	for row := 1; row <= 3; row++ {
		if !grid.IsPremiumRow(row) {
			t.Fatalf("expected row %d to be premium", row)
		}
	}
	for _, row := range []int{0, 4, 10} {
		if grid.IsPremiumRow(row) {
			t.Fatalf("expected row %d not to be premium", row)
		}
	}
}

func TestSeatIDRoundTrip(t *testing.T) {
	grid := DefaultGrid()

	for row := 1; row <= grid.Rows; row++ {
		for idx := range grid.Letters {
			seat := grid.SeatID(row, idx)
			gotRow, gotLetter, err := grid.ParseSeat(seat)
			if err != nil {
				t.Fatalf("ParseSeat(%q) returned error: %v", seat, err)
			}
			if gotRow != row || gotLetter != grid.Letters[idx] {
				t.Fatalf("round trip for %q gave (%d, %q)", seat, gotRow, gotLetter)
			}
		}
	}
}

func TestNarrowGridPositions(t *testing.T) {
	// A four-abreast layout still derives windows and aisles from the letter
	// ordering rather than hard-coded letters.
	grid := Grid{Rows: 5, Letters: []string{"A", "B", "C", "D"}, PremiumRows: 1}

	if !grid.IsWindow("A") || !grid.IsWindow("D") {
		t.Fatal("expected A and D to be window seats")
	}
	if !grid.IsAisle("B") || !grid.IsAisle("C") {
		t.Fatal("expected B and C to be aisle seats")
	}
}
