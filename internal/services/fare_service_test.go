package services

import (
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"

	"github.com/shopspring/decimal"
)

type fakeFareStore struct {
	departure    string
	departureErr error
	candidates   []models.FareCandidate
	candidateErr error
}

func (f fakeFareStore) LookupTripDeparture(tripID int64) (string, error) {
	return f.departure, f.departureErr
}

func (f fakeFareStore) LookupFareCandidates(tripID int64) ([]models.FareCandidate, error) {
	return f.candidates, f.candidateErr
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func plainCandidate(fareID int64, base, tax string) models.FareCandidate {
	return models.FareCandidate{
		FareID:    fareID,
		BasePrice: dec(base),
		Tax:       dec(tax),
		ValidFrom: "2024-01-01",
	}
}

func TestComputeFareWeekdaySurcharge(t *testing.T) {
	// 2025-01-01 is a Wednesday
	svc := FareService{Store: fakeFareStore{
		departure:  "2025-01-01 09:30:00",
		candidates: []models.FareCandidate{plainCandidate(7, "600.00", "30.00")},
	}}

	quote, err := svc.ComputeFare(1)
	if err != nil {
		t.Fatalf("ComputeFare returned error: %v", err)
	}
	if quote.FareID != 7 {
		t.Fatalf("fare id mismatch: got %d want 7", quote.FareID)
	}
	if got := quote.FinalPrice.StringFixed(2); got != "693.00" {
		t.Fatalf("weekday price mismatch: got %s want 693.00", got)
	}
}

func TestComputeFareWeekendNoSurcharge(t *testing.T) {
	// 2025-01-04 is a Saturday
	svc := FareService{Store: fakeFareStore{
		departure:  "2025-01-04 09:30:00",
		candidates: []models.FareCandidate{plainCandidate(7, "600.00", "30.00")},
	}}

	quote, err := svc.ComputeFare(1)
	if err != nil {
		t.Fatalf("ComputeFare returned error: %v", err)
	}
	if got := quote.FinalPrice.StringFixed(2); got != "630.00" {
		t.Fatalf("weekend price mismatch: got %s want 630.00", got)
	}
}

func TestComputeFareClassSurcharges(t *testing.T) {
	cand := models.FareCandidate{
		FareID:         3,
		BasePrice:      dec("100.00"),
		Tax:            dec("5.00"),
		FixedSurcharge: dec("20.00"),
		PctSurcharge:   dec("10"),
		ValidFrom:      "2024-06-01",
		ClassSpecific:  true,
	}
	svc := FareService{Store: fakeFareStore{
		departure:  "2025-01-05 12:00:00", // Sunday, no weekday surcharge
		candidates: []models.FareCandidate{cand},
	}}

	quote, err := svc.ComputeFare(1)
	if err != nil {
		t.Fatalf("ComputeFare returned error: %v", err)
	}
	// 100 + 20 + 100*10% + 5 = 135.00
	if got := quote.FinalPrice.StringFixed(2); got != "135.00" {
		t.Fatalf("surcharge price mismatch: got %s want 135.00", got)
	}
}

func TestComputeFareClassSpecificWins(t *testing.T) {
	routeWide := plainCandidate(1, "500.00", "0")
	routeWide.ValidFrom = "2024-12-01" // later start, still loses
	classed := plainCandidate(2, "800.00", "0")
	classed.ClassSpecific = true
	classed.ValidFrom = "2024-01-01"

	svc := FareService{Store: fakeFareStore{
		departure:  "2025-01-04 08:00:00",
		candidates: []models.FareCandidate{routeWide, classed},
	}}

	quote, err := svc.ComputeFare(1)
	if err != nil {
		t.Fatalf("ComputeFare returned error: %v", err)
	}
	if quote.FareID != 2 {
		t.Fatalf("class-specific fare should win, got fare %d", quote.FareID)
	}
}

func TestComputeFareLatestStartWins(t *testing.T) {
	older := plainCandidate(1, "500.00", "0")
	older.ValidFrom = "2024-01-01"
	newer := plainCandidate(2, "550.00", "0")
	newer.ValidFrom = "2024-09-01"

	svc := FareService{Store: fakeFareStore{
		departure:  "2025-01-04 08:00:00",
		candidates: []models.FareCandidate{older, newer},
	}}

	quote, err := svc.ComputeFare(1)
	if err != nil {
		t.Fatalf("ComputeFare returned error: %v", err)
	}
	if quote.FareID != 2 {
		t.Fatalf("latest validity start should win, got fare %d", quote.FareID)
	}
	if got := quote.FinalPrice.StringFixed(2); got != "550.00" {
		t.Fatalf("price mismatch: got %s want 550.00", got)
	}
}

func TestComputeFareNoCandidates(t *testing.T) {
	svc := FareService{Store: fakeFareStore{departure: "2025-01-01 09:00:00"}}

	_, err := svc.ComputeFare(1)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound for empty candidate set, got %v", err)
	}
}

func TestComputeFareMissingTrip(t *testing.T) {
	svc := FareService{Store: fakeFareStore{
		departureErr: domain.NotFoundError{Resource: "trip"},
	}}

	_, err := svc.ComputeFare(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound for missing trip, got %v", err)
	}
}

func TestComputeFareMalformedWindow(t *testing.T) {
	bad := plainCandidate(1, "500.00", "0")
	bad.ValidFrom = "2025-06-01"
	end := "2025-01-01"
	bad.ValidTo = &end

	svc := FareService{Store: fakeFareStore{
		departure:  "2025-01-01 09:00:00",
		candidates: []models.FareCandidate{bad},
	}}

	_, err := svc.ComputeFare(1)
	if !domain.IsDataIntegrity(err) {
		t.Fatalf("expected DataIntegrity for inverted window, got %v", err)
	}
}

func TestComputeFareIdempotent(t *testing.T) {
	svc := FareService{Store: fakeFareStore{
		departure:  "2025-01-01 09:30:00",
		candidates: []models.FareCandidate{plainCandidate(7, "600.00", "30.00")},
	}}

	first, err := svc.ComputeFare(1)
	if err != nil {
		t.Fatalf("first call error: %v", err)
	}
	second, err := svc.ComputeFare(1)
	if err != nil {
		t.Fatalf("second call error: %v", err)
	}
	if first.FareID != second.FareID || !first.FinalPrice.Equal(second.FinalPrice) {
		t.Fatalf("repeated calls differ: %v vs %v", first, second)
	}
}
