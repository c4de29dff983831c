package services

import (
	"fmt"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"

	"github.com/shopspring/decimal"
)

// FareStore is the read capability the fare calculator needs. Implemented by
// repositories.FareRepository; tests plug in fakes.
type FareStore interface {
	LookupFareCandidates(tripID int64) ([]models.FareCandidate, error)
	LookupTripDeparture(tripID int64) (string, error)
}

// FareService prices a ticket for a trip. Pure derivation: it reads, never
// writes, and repeated calls over unchanged data return the same quote.
type FareService struct {
	Store     FareStore
	RequestID string
}

var (
	weekdayFactor = decimal.RequireFromString("1.10")
	hundred       = decimal.NewFromInt(100)
)

// ComputeFare resolves the applicable fare for a trip and computes the final
// ticket price: base + class fixed surcharge + pct surcharge on the base +
// fixed tax, times 1.10 when the departure falls Monday..Friday, rounded
// half-up to 2 decimals. A trip without a matching fare yields a NotFoundError
// for "fare"; that is a legitimate outcome the caller must handle, never a
// zero price.
func (s FareService) ComputeFare(tripID int64) (models.FareQuote, error) {
	var quote models.FareQuote

	departureRaw, err := s.Store.LookupTripDeparture(tripID)
	if err != nil {
		return quote, err
	}
	departure, err := utils.ParseDateTime(departureRaw)
	if err != nil {
		return quote, domain.DataIntegrityError{Resource: "trip", Msg: "unparseable departure timestamp", Err: err}
	}

	candidates, err := s.Store.LookupFareCandidates(tripID)
	if err != nil {
		return quote, err
	}
	for _, c := range candidates {
		if c.ValidTo != nil && c.ValidFrom > *c.ValidTo {
			return quote, domain.DataIntegrityError{
				Resource: "fare",
				Msg:      fmt.Sprintf("fare %d validity window starts after it ends", c.FareID),
			}
		}
	}
	if len(candidates) == 0 {
		return quote, domain.NotFoundError{Resource: "fare"}
	}

	best := pickBestFare(candidates)

	subtotal := best.BasePrice.Add(best.FixedSurcharge)
	subtotal = subtotal.Add(best.BasePrice.Mul(best.PctSurcharge.Div(hundred)))
	subtotal = subtotal.Add(best.Tax)
	if utils.IsWeekday(departure) {
		subtotal = subtotal.Mul(weekdayFactor)
	}

	quote.FareID = best.FareID
	quote.FinalPrice = utils.RoundMoney(subtotal)

	utils.LogEvent(s.RequestID, "fare", "compute",
		fmt.Sprintf("trip_id=%d fare_id=%d price=%s", tripID, quote.FareID, quote.FinalPrice.StringFixed(2)))
	return quote, nil
}

// pickBestFare applies the tie-break when several fares match the trip:
// a class-specific fare beats a route-wide one, then the latest validity
// start wins.
func pickBestFare(candidates []models.FareCandidate) models.FareCandidate {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if fareBeats(c, best) {
			best = c
		}
	}
	return best
}

func fareBeats(a, b models.FareCandidate) bool {
	if a.ClassSpecific != b.ClassSpecific {
		return a.ClassSpecific
	}
	// ISO dates compare correctly as strings.
	return a.ValidFrom > b.ValidFrom
}
