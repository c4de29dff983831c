package repositories

import (
	"database/sql"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// LookupTripCapacity resolves the seat count of the bus operating a trip.
func (r TripRepository) LookupTripCapacity(tripID int64) (int, error) {
	var capacity int
	err := r.db().QueryRow(`
		SELECT a.capacidad
		FROM Viaje v
		JOIN Autobus a ON v.id_autobus = a.id_autobus
		WHERE v.id_viaje = ?
	`, tripID).Scan(&capacity)
	if err == sql.ErrNoRows {
		return 0, domain.NotFoundError{Resource: "trip"}
	}
	return capacity, err
}

// LookupOccupiedSeats returns the seat numbers held by tickets in a
// seat-holding state. May contain duplicates or out-of-range numbers when the
// underlying data is dirty; the seat service deals with both.
func (r TripRepository) LookupOccupiedSeats(tripID int64) ([]int, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(models.SeatHoldingStates)), ",")
	args := []any{tripID}
	for _, s := range models.SeatHoldingStates {
		args = append(args, s)
	}

	rows, err := r.db().Query(`
		SELECT numero_asiento
		FROM Boleto
		WHERE id_viaje = ? AND estado IN (`+placeholders+`)
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []int{}
	for rows.Next() {
		var seat int
		if err := rows.Scan(&seat); err != nil {
			return out, err
		}
		out = append(out, seat)
	}
	return out, rows.Err()
}

// ListByDate returns the dashboard rows for one day.
func (r TripRepository) ListByDate(date string) ([]models.TripSummary, error) {
	rows, err := r.db().Query(`
		SELECT
			v.id_viaje,
			r.origen,
			r.destino,
			DATE_FORMAT(v.fecha_salida, '%Y-%m-%d %H:%i:%s'),
			COALESCE(DATE_FORMAT(v.fecha_llegada, '%Y-%m-%d %H:%i:%s'), ''),
			COALESCE(v.estado, ''),
			a.placa,
			COALESCE(cs.nombre, ''),
			COALESCE(ch.nombre_completo, ''),
			a.capacidad,
			(
				SELECT COUNT(*)
				FROM Boleto b
				WHERE b.id_viaje = v.id_viaje
				  AND b.estado IN ('Reservado', 'Pagado', 'Abordado')
			)
		FROM Viaje v
		JOIN Ruta r    ON v.id_ruta    = r.id_ruta
		JOIN Autobus a ON v.id_autobus = a.id_autobus
		LEFT JOIN ClaseServicio cs ON a.id_clase  = cs.id_clase
		LEFT JOIN Chofer ch        ON v.id_chofer = ch.id_chofer
		WHERE DATE(v.fecha_salida) = ?
		ORDER BY v.fecha_salida ASC, v.id_viaje ASC
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TripSummary{}
	for rows.Next() {
		var t models.TripSummary
		if err := rows.Scan(
			&t.ID,
			&t.Origin,
			&t.Destination,
			&t.Departure,
			&t.Arrival,
			&t.Status,
			&t.BusPlate,
			&t.Class,
			&t.DriverName,
			&t.Capacity,
			&t.SeatsSold,
		); err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripRepository) GetByID(tripID int64) (models.Trip, error) {
	var t models.Trip
	err := r.db().QueryRow(`
		SELECT
			id_viaje,
			id_ruta,
			id_autobus,
			COALESCE(id_chofer, 0),
			DATE_FORMAT(fecha_salida, '%Y-%m-%d %H:%i:%s'),
			COALESCE(DATE_FORMAT(fecha_llegada, '%Y-%m-%d %H:%i:%s'), ''),
			COALESCE(estado, '')
		FROM Viaje
		WHERE id_viaje = ?
	`, tripID).Scan(&t.ID, &t.RouteID, &t.BusID, &t.DriverID, &t.Departure, &t.Arrival, &t.Status)
	if err == sql.ErrNoRows {
		return t, domain.NotFoundError{Resource: "trip"}
	}
	return t, err
}

func (r TripRepository) Create(t models.Trip) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO Viaje (id_ruta, id_autobus, id_chofer, fecha_salida, fecha_llegada, estado)
		VALUES (?, ?, ?, ?, ?, ?)
	`, t.RouteID, t.BusID, t.DriverID, t.Departure, t.Arrival, t.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TripRepository) Update(t models.Trip) error {
	res, err := r.db().Exec(`
		UPDATE Viaje
		SET id_ruta = ?, id_autobus = ?, id_chofer = ?, fecha_salida = ?, fecha_llegada = ?, estado = ?
		WHERE id_viaje = ?
	`, t.RouteID, t.BusID, t.DriverID, t.Departure, t.Arrival, t.Status, t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}

func (r TripRepository) Delete(tripID int64) error {
	res, err := r.db().Exec(`DELETE FROM Viaje WHERE id_viaje = ?`, tripID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}
