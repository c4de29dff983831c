package repositories

import (
	"reflect"
	"testing"

	"backoffice/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestLookupTripCapacity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("capacidad").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"capacidad"}).AddRow(40))

	repo := TripRepository{DB: db}
	capacity, err := repo.LookupTripCapacity(1)
	if err != nil {
		t.Fatalf("LookupTripCapacity returned error: %v", err)
	}
	if capacity != 40 {
		t.Fatalf("capacity mismatch: got %d want 40", capacity)
	}
}

func TestLookupTripCapacityNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("capacidad").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"capacidad"}))

	repo := TripRepository{DB: db}
	_, err = repo.LookupTripCapacity(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound for missing trip, got %v", err)
	}
}

func TestLookupOccupiedSeatsFiltersByState(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("numero_asiento").
		WithArgs(int64(1), "Reservado", "Pagado", "Abordado").
		WillReturnRows(sqlmock.NewRows([]string{"numero_asiento"}).
			AddRow(3).AddRow(7).AddRow(40))

	repo := TripRepository{DB: db}
	seats, err := repo.LookupOccupiedSeats(1)
	if err != nil {
		t.Fatalf("LookupOccupiedSeats returned error: %v", err)
	}
	if !reflect.DeepEqual(seats, []int{3, 7, 40}) {
		t.Fatalf("seats mismatch: %v", seats)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
