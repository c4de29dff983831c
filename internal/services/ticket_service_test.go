package services

import (
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newTicketService(t *testing.T) (TicketService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}

	svc := TicketService{
		Fare:    FareService{Store: repositories.FareRepository{DB: db}},
		Seats:   SeatService{Store: repositories.TripRepository{DB: db}},
		Tickets: repositories.TicketRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func fareCandidateRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id_tarifa", "precio_base", "impuesto", "recargo_fijo", "recargo_pct",
		"vigencia_inicio", "vigencia_fin", "class_specific",
	}).AddRow(7, "600.00", "30.00", "0", "0", "2024-01-01", nil, true)
}

func TestSellTicketRecordsSale(t *testing.T) {
	svc, mock, done := newTicketService(t)
	defer done()

	mock.ExpectQuery("capacidad").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"capacidad"}).AddRow(40))
	mock.ExpectQuery("SELECT DATE_FORMAT").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"fecha_salida"}).AddRow("2025-01-01 09:30:00"))
	mock.ExpectQuery("id_tarifa").WithArgs(int64(1)).
		WillReturnRows(fareCandidateRows())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO Boleto").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("INSERT INTO Venta").
		WillReturnResult(sqlmock.NewResult(20, 1))
	mock.ExpectCommit()

	ticket, err := svc.SellTicket(SaleRequest{
		TripID:      1,
		PassengerID: 5,
		SeatNumber:  12,
		PayMethod:   "Efectivo",
		MarkPaid:    true,
		SoldByID:    3,
	})
	if err != nil {
		t.Fatalf("SellTicket returned error: %v", err)
	}
	if ticket.ID != 10 {
		t.Fatalf("ticket id mismatch: got %d want 10", ticket.ID)
	}
	if ticket.State != "Pagado" {
		t.Fatalf("ticket state mismatch: got %s want Pagado", ticket.State)
	}
	// 2025-01-01 is a Wednesday: (600+30)*1.10
	if ticket.Price != 693.00 {
		t.Fatalf("ticket price mismatch: got %.2f want 693.00", ticket.Price)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSellTicketSeatTaken(t *testing.T) {
	svc, mock, done := newTicketService(t)
	defer done()

	mock.ExpectQuery("capacidad").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"capacidad"}).AddRow(40))
	mock.ExpectQuery("SELECT DATE_FORMAT").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"fecha_salida"}).AddRow("2025-01-01 09:30:00"))
	mock.ExpectQuery("id_tarifa").WithArgs(int64(1)).
		WillReturnRows(fareCandidateRows())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO Boleto").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.SellTicket(SaleRequest{TripID: 1, PassengerID: 5, SeatNumber: 12})
	if !domain.IsConflict(err) {
		t.Fatalf("expected Conflict when seat already held, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSellTicketSeatBeyondCapacity(t *testing.T) {
	svc, mock, done := newTicketService(t)
	defer done()

	mock.ExpectQuery("capacidad").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"capacidad"}).AddRow(4))

	_, err := svc.SellTicket(SaleRequest{TripID: 1, PassengerID: 5, SeatNumber: 10})
	if !domain.IsValidation(err) {
		t.Fatalf("expected Validation for seat beyond capacity, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSellTicketNoFareRefusesSale(t *testing.T) {
	svc, mock, done := newTicketService(t)
	defer done()

	mock.ExpectQuery("capacidad").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"capacidad"}).AddRow(40))
	mock.ExpectQuery("SELECT DATE_FORMAT").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"fecha_salida"}).AddRow("2025-01-01 09:30:00"))
	mock.ExpectQuery("id_tarifa").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id_tarifa", "precio_base", "impuesto", "recargo_fijo", "recargo_pct",
			"vigencia_inicio", "vigencia_fin", "class_specific",
		}))

	_, err := svc.SellTicket(SaleRequest{TripID: 1, PassengerID: 5, SeatNumber: 12})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound when trip has no fare, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
