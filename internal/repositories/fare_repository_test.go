package repositories

import (
	"testing"

	"backoffice/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func TestLookupFareCandidatesParsesDecimals(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("id_tarifa").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id_tarifa", "precio_base", "impuesto", "recargo_fijo", "recargo_pct",
			"vigencia_inicio", "vigencia_fin", "class_specific",
		}).
			AddRow(1, "600.00", "30.00", "0.00", "0.00", "2024-01-01", nil, false).
			AddRow(2, "600.00", "30.00", "50.00", "12.50", "2024-06-01", "2025-12-31", true))

	repo := FareRepository{DB: db}
	candidates, err := repo.LookupFareCandidates(1)
	if err != nil {
		t.Fatalf("LookupFareCandidates returned error: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("candidate count mismatch: got %d want 2", len(candidates))
	}

	first := candidates[0]
	if !first.BasePrice.Equal(decimal.RequireFromString("600.00")) {
		t.Fatalf("base price mismatch: %s", first.BasePrice)
	}
	if first.ValidTo != nil {
		t.Fatalf("open-ended fare should have nil ValidTo")
	}
	if first.ClassSpecific {
		t.Fatalf("route-wide fare flagged as class-specific")
	}

	second := candidates[1]
	if !second.PctSurcharge.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("pct surcharge mismatch: %s", second.PctSurcharge)
	}
	if second.ValidTo == nil || *second.ValidTo != "2025-12-31" {
		t.Fatalf("validity end mismatch: %v", second.ValidTo)
	}
	if !second.ClassSpecific {
		t.Fatalf("class fare not flagged as class-specific")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLookupFareCandidatesBadDecimal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("id_tarifa").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id_tarifa", "precio_base", "impuesto", "recargo_fijo", "recargo_pct",
			"vigencia_inicio", "vigencia_fin", "class_specific",
		}).AddRow(1, "not-a-number", "30.00", "0", "0", "2024-01-01", nil, false))

	repo := FareRepository{DB: db}
	_, err = repo.LookupFareCandidates(1)
	if !domain.IsDataIntegrity(err) {
		t.Fatalf("expected DataIntegrity for unparseable price, got %v", err)
	}
}

func TestLookupTripDepartureNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT DATE_FORMAT").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"fecha_salida"}))

	repo := FareRepository{DB: db}
	_, err = repo.LookupTripDeparture(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound for missing trip, got %v", err)
	}
}
