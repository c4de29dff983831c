package models

import "github.com/shopspring/decimal"

// Fare is one Tarifa row as managed by the fares admin screens. ClassID nil
// means the fare applies route-wide; ValidTo nil means open-ended.
type Fare struct {
	ID        int64   `json:"id"`
	RouteID   int64   `json:"routeId"`
	ClassID   *int64  `json:"classId"`
	BasePrice float64 `json:"basePrice"`
	Tax       float64 `json:"tax"`
	ValidFrom string  `json:"validFrom"` // "YYYY-MM-DD"
	ValidTo   *string `json:"validTo"`
}

// FareCandidate is one fare row already joined with the trip's bus class,
// as returned by the candidate lookup. Surcharges come from ClaseServicio
// and are zero when the bus has no class.
type FareCandidate struct {
	FareID         int64
	BasePrice      decimal.Decimal
	Tax            decimal.Decimal
	FixedSurcharge decimal.Decimal
	PctSurcharge   decimal.Decimal
	ValidFrom      string  // "YYYY-MM-DD"
	ValidTo        *string // nil = open-ended
	ClassSpecific  bool    // Tarifa.id_clase set (vs route-wide)
}

// FareQuote is the priced result for one trip. FinalPrice is already rounded
// to 2 decimals; convert to float only at the JSON boundary.
type FareQuote struct {
	FareID     int64
	FinalPrice decimal.Decimal
}
