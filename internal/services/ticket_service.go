package services

import (
	"fmt"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// TicketService runs the sale flow: price the seat, then record Boleto +
// Venta in one transaction. The fare read must succeed before anything is
// written; a trip without a fare refuses the sale.
type TicketService struct {
	Fare      FareService
	Seats     SeatService
	Tickets   repositories.TicketRepository
	RequestID string
}

type SaleRequest struct {
	TripID      int64  `json:"tripId"`
	PassengerID int64  `json:"passengerId"`
	SeatNumber  int    `json:"seatNumber"`
	PayMethod   string `json:"payMethod"`
	MarkPaid    bool   `json:"markPaid"`
	SoldByID    int64  `json:"-"`
}

func (s TicketService) SellTicket(req SaleRequest) (models.Ticket, error) {
	var out models.Ticket

	if req.SeatNumber < 1 {
		return out, domain.ValidationError{Field: "seatNumber", Msg: "must be 1 or greater"}
	}
	if req.PassengerID < 1 {
		return out, domain.ValidationError{Field: "passengerId", Msg: "is required"}
	}

	capacity, err := s.Seats.Store.LookupTripCapacity(req.TripID)
	if err != nil {
		return out, err
	}
	if req.SeatNumber > capacity {
		return out, domain.ValidationError{
			Field: "seatNumber",
			Msg:   fmt.Sprintf("bus only has %d seats", capacity),
		}
	}

	quote, err := s.Fare.ComputeFare(req.TripID)
	if err != nil {
		return out, err
	}

	state := models.TicketReserved
	if req.MarkPaid {
		state = models.TicketPaid
	}

	ticketID, err := s.Tickets.Sell(repositories.TicketSale{
		TripID:      req.TripID,
		PassengerID: req.PassengerID,
		SeatNumber:  req.SeatNumber,
		State:       state,
		FareID:      quote.FareID,
		Amount:      quote.FinalPrice,
		SoldByID:    req.SoldByID,
		PayMethod:   req.PayMethod,
	})
	if err != nil {
		return out, err
	}

	utils.LogEvent(s.RequestID, "tickets", "sell",
		fmt.Sprintf("ticket_id=%d trip_id=%d seat=%d price=%s", ticketID, req.TripID, req.SeatNumber, quote.FinalPrice.StringFixed(2)))

	out = models.Ticket{
		ID:          ticketID,
		TripID:      req.TripID,
		PassengerID: req.PassengerID,
		SeatNumber:  req.SeatNumber,
		State:       state,
		Price:       quote.FinalPrice.InexactFloat64(),
	}
	return out, nil
}

func (s TicketService) CancelTicket(ticketID int64) error {
	if err := s.Tickets.Cancel(ticketID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "tickets", "cancel", fmt.Sprintf("ticket_id=%d", ticketID))
	return nil
}
