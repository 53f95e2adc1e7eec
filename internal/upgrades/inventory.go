package upgrades

import (
	"flightdesk/internal/allocation"
	"flightdesk/internal/cabin"
	"flightdesk/internal/passengers"
)

// DefaultMaxOffers caps the inventory list; staff only ever see the first
// offers in row-major order.
const DefaultMaxOffers = 8

// PremiumInventory lists the currently-free premium seats as priced offers.
// Occupancy is computed over the whole manifest with no exclusions: a seat
// held by anyone, checked in or not, is not for sale.
func PremiumInventory(grid cabin.Grid, pricing Pricing, manifest []passengers.Passenger, maxOffers int) []PremiumSeatUpsell {
	if maxOffers <= 0 {
		maxOffers = DefaultMaxOffers
	}

	occupied := allocation.OccupiedSeats(manifest, nil)

	offers := make([]PremiumSeatUpsell, 0, maxOffers)
	for row := 1; row <= grid.PremiumRows; row++ {
		tier := pricing.TierForRow(row)
		for idx := range grid.Letters {
			seat := grid.SeatID(row, idx)
			if _, taken := occupied[seat]; taken {
				continue
			}
			offers = append(offers, PremiumSeatUpsell{
				SeatNumber:   seat,
				BasePrice:    tier.BasePrice,
				UpgradePrice: tier.UpgradePrice,
				Currency:     pricing.Currency,
				Features:     tier.Features,
				Available:    true,
			})
			if len(offers) == maxOffers {
				return offers
			}
		}
	}

	return offers
}

// FindPreferredPremiumSeat searches premium rows for a free seat matching the
// passenger's position preference. Window is evaluated strictly before aisle:
// a preference naming both only acts on window. Other positions never trigger
// a re-seat.
func FindPreferredPremiumSeat(grid cabin.Grid, occupied map[string]struct{}, prefs *passengers.SeatPreferences) (string, bool) {
	var match func(letter string) bool
	switch {
	case prefs.HasPosition("window"):
		match = grid.IsWindow
	case prefs.HasPosition("aisle"):
		match = grid.IsAisle
	default:
		return "", false
	}

	for row := 1; row <= grid.PremiumRows; row++ {
		for idx, letter := range grid.Letters {
			if !match(letter) {
				continue
			}
			seat := grid.SeatID(row, idx)
			if _, taken := occupied[seat]; !taken {
				return seat, true
			}
		}
	}

	return "", false
}
