package models

// Ticket states stored in Boleto.estado. Reservado, Pagado and Abordado hold
// the seat; Cancelado and Reembolsado release it.
const (
	TicketReserved  = "Reservado"
	TicketPaid      = "Pagado"
	TicketBoarded   = "Abordado"
	TicketCancelled = "Cancelado"
	TicketRefunded  = "Reembolsado"
)

// SeatHoldingStates lists the states that keep a seat occupied.
var SeatHoldingStates = []string{TicketReserved, TicketPaid, TicketBoarded}

type Ticket struct {
	ID          int64   `json:"id"`
	TripID      int64   `json:"tripId"`
	PassengerID int64   `json:"passengerId"`
	SeatNumber  int     `json:"seatNumber"`
	State       string  `json:"state"`
	Passenger   string  `json:"passenger,omitempty"`
	Price       float64 `json:"price"`
}

type Sale struct {
	ID         int64   `json:"id"`
	TicketID   int64   `json:"ticketId"`
	UserID     int64   `json:"userId"`
	SoldAt     string  `json:"soldAt"`
	Amount     float64 `json:"amount"`
	PayMethod  string  `json:"payMethod"`
	SoldByName string  `json:"soldByName,omitempty"`
}
