package services

import (
	"bytes"
	"fmt"
	"strings"

	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the printable ticket PDF handed to the passenger.
type DocsService struct {
	Tickets   repositories.TicketRepository
	RequestID string
	Loader    func(int64) (repositories.TicketDocData, error)
}

func (s DocsService) GenerateTicketPDF(ticketID int64) ([]byte, string, error) {
	var (
		data repositories.TicketDocData
		err  error
	)
	if s.Loader != nil {
		data, err = s.Loader(ticketID)
	} else {
		data, err = s.Tickets.GetDocData(ticketID)
	}
	if err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "docs", "generate_ticket", fmt.Sprintf("ticket_id=%d", ticketID))
	return buildTicketPDF(data)
}

func buildTicketPDF(d repositories.TicketDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bus Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUS TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Ticket No   : BOL-%d", d.TicketID),
		fmt.Sprintf("Passenger   : %s", safe(d.PassengerName, "-")),
		fmt.Sprintf("Route       : %s -> %s", safe(d.Origin, "-"), safe(d.Destination, "-")),
		fmt.Sprintf("Departure   : %s", safe(d.Departure, "-")),
		fmt.Sprintf("Seat        : %d", d.SeatNumber),
		fmt.Sprintf("Bus         : %s", safe(d.BusPlate, "-")),
		fmt.Sprintf("Class       : %s", safe(d.Class, "-")),
		fmt.Sprintf("Status      : %s", safe(d.State, "-")),
		fmt.Sprintf("Price       : %s", utils.FormatMoney(d.Price)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This ticket is valid for one passenger and one seat. Please present it when boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("BOLETO_%d_%s.pdf", d.TicketID, safeFilenamePart(d.PassengerName))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
