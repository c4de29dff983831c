package services

import (
	"strings"
	"testing"

	"backoffice/internal/repositories"
)

func TestDocsServiceGenerateTicketPDF(t *testing.T) {
	loader := func(id int64) (repositories.TicketDocData, error) {
		return repositories.TicketDocData{
			TicketID:      id,
			TripID:        4,
			PassengerName: "Ana Torres",
			SeatNumber:    12,
			Origin:        "Guadalajara",
			Destination:   "Morelia",
			Departure:     "2025-03-10 08:00:00",
			BusPlate:      "JKM-431-A",
			Class:         "Primera",
			Price:         693.00,
			State:         "Pagado",
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateTicketPDF(15)
	if err != nil {
		t.Fatalf("GenerateTicketPDF returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateTicketPDF returned empty data")
	}
	if !strings.HasPrefix(filename, "BOLETO_15_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename: %s", filename)
	}
}
