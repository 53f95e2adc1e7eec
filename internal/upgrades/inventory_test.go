package upgrades

import (
	"testing"

	"flightdesk/internal/allocation"
	"flightdesk/internal/cabin"
	"flightdesk/internal/passengers"

	"github.com/google/uuid"
)

func TestPremiumInventoryRowMajorAndCapped(t *testing.T) {
	grid := cabin.DefaultGrid()
	pricing := DefaultPricing()

	offers := PremiumInventory(grid, pricing, nil, DefaultMaxOffers)

	if len(offers) != DefaultMaxOffers {
		t.Fatalf("expected %d offers on an empty cabin, got %d", DefaultMaxOffers, len(offers))
	}

	// Row-major: all of row 1 (six seats), then the first two of row 2.
	want := []string{"1A", "1B", "1C", "1D", "1E", "1F", "2A", "2B"}
	for i, offer := range offers {
		if offer.SeatNumber != want[i] {
			t.Fatalf("offer %d: expected %s, got %s", i, want[i], offer.SeatNumber)
		}
		if !offer.Available {
			t.Fatalf("offer %s not marked available", offer.SeatNumber)
		}
	}
}

func TestPremiumInventorySkipsOccupiedSeats(t *testing.T) {
	grid := cabin.DefaultGrid()
	pricing := DefaultPricing()

	manifest := []passengers.Passenger{
		{ID: uuid.New(), Seat: "1A"},
		{ID: uuid.New(), Seat: "1B"},
	}

	offers := PremiumInventory(grid, pricing, manifest, DefaultMaxOffers)

	if offers[0].SeatNumber != "1C" {
		t.Fatalf("expected first offer 1C, got %s", offers[0].SeatNumber)
	}
	for _, offer := range offers {
		if offer.SeatNumber == "1A" || offer.SeatNumber == "1B" {
			t.Fatalf("occupied seat %s offered for sale", offer.SeatNumber)
		}
	}
}

func TestPremiumInventoryTieredPricing(t *testing.T) {
	grid := cabin.DefaultGrid()
	pricing := DefaultPricing()

	offers := PremiumInventory(grid, pricing, nil, 18)

	row1 := pricing.TierForRow(1)
	row2 := pricing.TierForRow(2)
	row3 := pricing.TierForRow(3)

	if offers[0].UpgradePrice != row1.UpgradePrice {
		t.Fatalf("row 1 offer priced %.2f, want %.2f", offers[0].UpgradePrice, row1.UpgradePrice)
	}
	if offers[6].UpgradePrice != row2.UpgradePrice {
		t.Fatalf("row 2 offer priced %.2f, want %.2f", offers[6].UpgradePrice, row2.UpgradePrice)
	}
	if offers[12].UpgradePrice != row3.UpgradePrice {
		t.Fatalf("row 3 offer priced %.2f, want %.2f", offers[12].UpgradePrice, row3.UpgradePrice)
	}

	if !(row1.UpgradePrice > row2.UpgradePrice && row2.UpgradePrice > row3.UpgradePrice) {
		t.Fatal("expected prices to taper off behind row 1")
	}
	if !(len(offers[0].Features) > len(offers[6].Features)) {
		t.Fatal("expected row 1 to carry the richest feature set")
	}
}

func TestFindPreferredPremiumSeatWindowBeforeAisle(t *testing.T) {
	grid := cabin.DefaultGrid()

	prefs := &passengers.SeatPreferences{Position: []string{"aisle", "window"}}
	occupied := map[string]struct{}{}

	seat, ok := FindPreferredPremiumSeat(grid, occupied, prefs)
	if !ok {
		t.Fatal("expected a seat to be found")
	}
	// Window is evaluated strictly before aisle regardless of request order.
	if seat != "1A" {
		t.Fatalf("expected window seat 1A, got %s", seat)
	}
}

func TestFindPreferredPremiumSeatFallsThroughOccupiedWindows(t *testing.T) {
	grid := cabin.DefaultGrid()

	manifest := []passengers.Passenger{
		{ID: uuid.New(), Seat: "1A"},
		{ID: uuid.New(), Seat: "1F"},
	}
	occupied := allocation.OccupiedSeats(manifest, nil)

	prefs := &passengers.SeatPreferences{Position: []string{"window"}}
	seat, ok := FindPreferredPremiumSeat(grid, occupied, prefs)
	if !ok {
		t.Fatal("expected a seat to be found")
	}
	if seat != "2A" {
		t.Fatalf("expected next free window 2A, got %s", seat)
	}
}

func TestFindPreferredPremiumSeatAisleOnly(t *testing.T) {
	grid := cabin.DefaultGrid()

	prefs := &passengers.SeatPreferences{Position: []string{"aisle"}}
	seat, ok := FindPreferredPremiumSeat(grid, map[string]struct{}{}, prefs)
	if !ok {
		t.Fatal("expected a seat to be found")
	}
	if seat != "1C" {
		t.Fatalf("expected aisle seat 1C, got %s", seat)
	}
}

func TestFindPreferredPremiumSeatIgnoresOtherPositions(t *testing.T) {
	grid := cabin.DefaultGrid()

	prefs := &passengers.SeatPreferences{Position: []string{"middle"}}
	if _, ok := FindPreferredPremiumSeat(grid, map[string]struct{}{}, prefs); ok {
		t.Fatal("middle preference must never trigger a re-seat")
	}
}
