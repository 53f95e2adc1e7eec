package upgrades

// PremiumSeatUpsell is a sellable premium seat offer. Computed fresh on every
// inventory query, never persisted.
type PremiumSeatUpsell struct {
	SeatNumber   string   `json:"seat_number"`
	BasePrice    float64  `json:"base_price"`
	UpgradePrice float64  `json:"upgrade_price"`
	Currency     string   `json:"currency"`
	Features     []string `json:"features"`
	Available    bool     `json:"available"`
}

// Tier is the price and feature set attached to one premium row.
type Tier struct {
	BasePrice    float64
	UpgradePrice float64
	Features     []string
}

// Pricing maps premium rows to tiers. Row 1 is the priciest and carries the
// richest feature set; rows behind it taper off.
type Pricing struct {
	Currency string
	Tiers    map[int]Tier
}

// DefaultPricing returns the standard premium pricing table.
func DefaultPricing() Pricing {
	return Pricing{
		Currency: "USD",
		Tiers: map[int]Tier{
			1: {
				BasePrice:    299.99,
				UpgradePrice: 149.99,
				Features: []string{
					"Extra legroom",
					"Priority boarding",
					"Gourmet meal service",
					"Complimentary drinks",
					"Amenity kit",
					"Extra baggage allowance",
				},
			},
			2: {
				BasePrice:    199.99,
				UpgradePrice: 99.99,
				Features: []string{
					"Extra legroom",
					"Priority boarding",
					"Complimentary drinks",
					"Premium snacks",
					"USB power",
				},
			},
			3: {
				BasePrice:    149.99,
				UpgradePrice: 79.99,
				Features: []string{
					"Extra legroom",
					"Priority boarding",
					"Complimentary drinks",
					"Standard snacks",
				},
			},
		},
	}
}

// TierForRow returns the tier for a premium row, falling back to the deepest
// configured tier for rows past the table.
func (p Pricing) TierForRow(row int) Tier {
	if tier, ok := p.Tiers[row]; ok {
		return tier
	}

	deepest := 0
	for r := range p.Tiers {
		if r > deepest {
			deepest = r
		}
	}
	return p.Tiers[deepest]
}
