package repositories

import (
	"database/sql"

	intconfig "backoffice/internal/config"
	intdb "backoffice/internal/db"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"

	"github.com/shopspring/decimal"
)

type FareRepository struct {
	DB *sql.DB
}

func (r FareRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// LookupFareCandidates returns every Tarifa row that could price the given
// trip: same route, class matching the trip's bus class or route-wide, and
// validity window containing the departure date. Ranking happens in the fare
// service, not here.
func (r FareRepository) LookupFareCandidates(tripID int64) ([]models.FareCandidate, error) {
	rows, err := r.db().Query(`
		SELECT
			t.id_tarifa,
			CAST(t.precio_base AS CHAR),
			CAST(t.impuesto AS CHAR),
			CAST(COALESCE(cs.recargo_fijo, 0) AS CHAR),
			CAST(COALESCE(cs.recargo_pct, 0) AS CHAR),
			DATE_FORMAT(t.vigencia_inicio, '%Y-%m-%d'),
			DATE_FORMAT(t.vigencia_fin, '%Y-%m-%d'),
			(t.id_clase IS NOT NULL)
		FROM Viaje v
		JOIN Ruta r        ON v.id_ruta    = r.id_ruta
		JOIN Autobus a     ON v.id_autobus = a.id_autobus
		LEFT JOIN ClaseServicio cs ON a.id_clase = cs.id_clase
		JOIN Tarifa t
		  ON t.id_ruta = r.id_ruta
		 AND (t.id_clase = a.id_clase OR t.id_clase IS NULL)
		 AND DATE(v.fecha_salida) >= t.vigencia_inicio
		 AND (t.vigencia_fin IS NULL OR DATE(v.fecha_salida) <= t.vigencia_fin)
		WHERE v.id_viaje = ?
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.FareCandidate{}
	for rows.Next() {
		var (
			cand                  models.FareCandidate
			base, tax, fixed, pct string
			validTo               sql.NullString
		)
		if err := rows.Scan(
			&cand.FareID,
			&base,
			&tax,
			&fixed,
			&pct,
			&cand.ValidFrom,
			&validTo,
			&cand.ClassSpecific,
		); err != nil {
			return out, err
		}
		if cand.BasePrice, err = decimal.NewFromString(base); err != nil {
			return out, domain.DataIntegrityError{Resource: "fare", Msg: "base price is not a valid decimal", Err: err}
		}
		if cand.Tax, err = decimal.NewFromString(tax); err != nil {
			return out, domain.DataIntegrityError{Resource: "fare", Msg: "tax is not a valid decimal", Err: err}
		}
		if cand.FixedSurcharge, err = decimal.NewFromString(fixed); err != nil {
			return out, domain.DataIntegrityError{Resource: "fare", Msg: "fixed surcharge is not a valid decimal", Err: err}
		}
		if cand.PctSurcharge, err = decimal.NewFromString(pct); err != nil {
			return out, domain.DataIntegrityError{Resource: "fare", Msg: "pct surcharge is not a valid decimal", Err: err}
		}
		cand.ValidTo = intdb.NullableString(validTo)
		out = append(out, cand)
	}
	return out, rows.Err()
}

// LookupTripDeparture returns the departure timestamp of a trip.
func (r FareRepository) LookupTripDeparture(tripID int64) (string, error) {
	var departure string
	err := r.db().QueryRow(`
		SELECT DATE_FORMAT(fecha_salida, '%Y-%m-%d %H:%i:%s')
		FROM Viaje
		WHERE id_viaje = ?
	`, tripID).Scan(&departure)
	if err == sql.ErrNoRows {
		return "", domain.NotFoundError{Resource: "trip"}
	}
	return departure, err
}

// ListFares returns all Tarifa rows for the admin screens.
func (r FareRepository) ListFares() ([]models.Fare, error) {
	rows, err := r.db().Query(`
		SELECT
			id_tarifa,
			id_ruta,
			id_clase,
			precio_base,
			impuesto,
			DATE_FORMAT(vigencia_inicio, '%Y-%m-%d'),
			DATE_FORMAT(vigencia_fin, '%Y-%m-%d')
		FROM Tarifa
		ORDER BY id_ruta, vigencia_inicio DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Fare{}
	for rows.Next() {
		var (
			f       models.Fare
			classID sql.NullInt64
			validTo sql.NullString
		)
		if err := rows.Scan(&f.ID, &f.RouteID, &classID, &f.BasePrice, &f.Tax, &f.ValidFrom, &validTo); err != nil {
			return out, err
		}
		f.ClassID = intdb.NullableInt64(classID)
		f.ValidTo = intdb.NullableString(validTo)
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r FareRepository) CreateFare(f models.Fare) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO Tarifa (id_ruta, id_clase, precio_base, impuesto, vigencia_inicio, vigencia_fin)
		VALUES (?, ?, ?, ?, ?, ?)
	`, f.RouteID, f.ClassID, f.BasePrice, f.Tax, f.ValidFrom, nullableStr(f.ValidTo))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r FareRepository) UpdateFare(f models.Fare) error {
	res, err := r.db().Exec(`
		UPDATE Tarifa
		SET id_ruta = ?, id_clase = ?, precio_base = ?, impuesto = ?, vigencia_inicio = ?, vigencia_fin = ?
		WHERE id_tarifa = ?
	`, f.RouteID, f.ClassID, f.BasePrice, f.Tax, f.ValidFrom, nullableStr(f.ValidTo), f.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "fare"}
	}
	return nil
}

func (r FareRepository) DeleteFare(id int64) error {
	res, err := r.db().Exec(`DELETE FROM Tarifa WHERE id_tarifa = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "fare"}
	}
	return nil
}

func nullableStr(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
