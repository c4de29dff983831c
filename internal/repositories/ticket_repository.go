package repositories

import (
	"database/sql"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"

	"github.com/shopspring/decimal"
)

type TicketRepository struct {
	DB *sql.DB
}

func (r TicketRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// TicketSale carries everything needed to record one sale.
type TicketSale struct {
	TripID      int64
	PassengerID int64
	SeatNumber  int
	State       string
	FareID      int64
	Amount      decimal.Decimal
	SoldByID    int64
	PayMethod   string
}

// Sell inserts the Boleto and its Venta in one transaction. The insert is
// conditional on no other ticket holding the same seat, so two concurrent
// sales of one seat cannot both succeed even if availability said otherwise.
func (r TicketRepository) Sell(s TicketSale) (int64, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO Boleto (id_viaje, id_pasajero, numero_asiento, estado, id_tarifa, precio)
		SELECT ?, ?, ?, ?, ?, ?
		FROM DUAL
		WHERE NOT EXISTS (
			SELECT 1 FROM Boleto
			WHERE id_viaje = ? AND numero_asiento = ?
			  AND estado IN ('Reservado', 'Pagado', 'Abordado')
		)
	`,
		s.TripID,
		s.PassengerID,
		s.SeatNumber,
		s.State,
		s.FareID,
		s.Amount.StringFixed(2),
		s.TripID,
		s.SeatNumber,
	)
	if err != nil {
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, domain.ConflictError{Resource: "seat", Msg: "seat already taken for this trip"}
	}

	ticketID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if _, err := tx.Exec(`
		INSERT INTO Venta (id_boleto, id_usuario, fecha_venta, monto, metodo_pago)
		VALUES (?, ?, NOW(), ?, ?)
	`, ticketID, s.SoldByID, s.Amount.StringFixed(2), s.PayMethod); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return ticketID, nil
}

// Cancel releases the seat by moving the ticket out of its holding state.
func (r TicketRepository) Cancel(ticketID int64) error {
	res, err := r.db().Exec(`
		UPDATE Boleto
		SET estado = 'Cancelado'
		WHERE id_boleto = ? AND estado IN ('Reservado', 'Pagado', 'Abordado')
	`, ticketID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	var state string
	err = r.db().QueryRow(`SELECT estado FROM Boleto WHERE id_boleto = ?`, ticketID).Scan(&state)
	if err == sql.ErrNoRows {
		return domain.NotFoundError{Resource: "ticket"}
	}
	if err != nil {
		return err
	}
	return domain.ConflictError{Resource: "ticket", Msg: "ticket is already " + state}
}

func (r TicketRepository) ListByTrip(tripID int64) ([]models.Ticket, error) {
	rows, err := r.db().Query(`
		SELECT
			b.id_boleto,
			b.id_viaje,
			b.id_pasajero,
			b.numero_asiento,
			b.estado,
			COALESCE(p.nombre, ''),
			COALESCE(b.precio, 0)
		FROM Boleto b
		LEFT JOIN Pasajero p ON b.id_pasajero = p.id_pasajero
		WHERE b.id_viaje = ?
		ORDER BY b.numero_asiento ASC
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Ticket{}
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(&t.ID, &t.TripID, &t.PassengerID, &t.SeatNumber, &t.State, &t.Passenger, &t.Price); err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// TicketDocData holds everything the PDF generator needs for one ticket.
type TicketDocData struct {
	TicketID      int64
	TripID        int64
	PassengerName string
	SeatNumber    int
	Origin        string
	Destination   string
	Departure     string
	BusPlate      string
	Class         string
	Price         float64
	State         string
}

func (r TicketRepository) GetDocData(ticketID int64) (TicketDocData, error) {
	var d TicketDocData
	err := r.db().QueryRow(`
		SELECT
			b.id_boleto,
			b.id_viaje,
			COALESCE(p.nombre, ''),
			b.numero_asiento,
			r.origen,
			r.destino,
			DATE_FORMAT(v.fecha_salida, '%Y-%m-%d %H:%i:%s'),
			a.placa,
			COALESCE(cs.nombre, ''),
			COALESCE(b.precio, 0),
			b.estado
		FROM Boleto b
		JOIN Viaje v   ON b.id_viaje    = v.id_viaje
		JOIN Ruta r    ON v.id_ruta     = r.id_ruta
		JOIN Autobus a ON v.id_autobus  = a.id_autobus
		LEFT JOIN ClaseServicio cs ON a.id_clase    = cs.id_clase
		LEFT JOIN Pasajero p       ON b.id_pasajero = p.id_pasajero
		WHERE b.id_boleto = ?
	`, ticketID).Scan(
		&d.TicketID,
		&d.TripID,
		&d.PassengerName,
		&d.SeatNumber,
		&d.Origin,
		&d.Destination,
		&d.Departure,
		&d.BusPlate,
		&d.Class,
		&d.Price,
		&d.State,
	)
	if err == sql.ErrNoRows {
		return d, domain.NotFoundError{Resource: "ticket"}
	}
	return d, err
}

// ListSales returns sales for the daily closing report, optionally filtered
// by trip.
func (r TicketRepository) ListSales(date string, tripID int64) ([]models.Sale, error) {
	query := `
		SELECT
			s.id_venta,
			s.id_boleto,
			s.id_usuario,
			DATE_FORMAT(s.fecha_venta, '%Y-%m-%d %H:%i:%s'),
			s.monto,
			COALESCE(s.metodo_pago, ''),
			COALESCE(u.nombre_completo, '')
		FROM Venta s
		JOIN Boleto b ON s.id_boleto = b.id_boleto
		LEFT JOIN Usuario u ON s.id_usuario = u.id_usuario
		WHERE DATE(s.fecha_venta) = ?
	`
	args := []any{date}
	if tripID > 0 {
		query += " AND b.id_viaje = ?"
		args = append(args, tripID)
	}
	query += " ORDER BY s.fecha_venta ASC, s.id_venta ASC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Sale{}
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.TicketID, &s.UserID, &s.SoldAt, &s.Amount, &s.PayMethod, &s.SoldByName); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
