package store

import (
	"context"
	"time"

	"github.com/flybz/discoverair/internal/model"
)

const aircraftColumns = `id, name, model, tail_number, price, capacity, avionics,
	description, image_url, is_active, display_order, created_at, updated_at`

func scanAircraft(row interface{ Scan(...any) error }) (model.Aircraft, error) {
	var a model.Aircraft
	err := row.Scan(&a.ID, &a.Name, &a.Model, &a.TailNumber, &a.Price, &a.Capacity,
		&a.Avionics, &a.Description, &a.ImageURL, &a.IsActive, &a.DisplayOrder,
		&a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// GetAircraftByID returns one aircraft, active or not.
func (q *Queries) GetAircraftByID(ctx context.Context, id int64) (model.Aircraft, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+aircraftColumns+` FROM aircraft WHERE id = ?`, id)
	return scanAircraft(row)
}

// ListAircraft returns every aircraft ordered for the admin screen:
// display_order ascending, then id for a stable order among ties.
func (q *Queries) ListAircraft(ctx context.Context) ([]model.Aircraft, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+aircraftColumns+` FROM aircraft ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []model.Aircraft
	for rows.Next() {
		a, err := scanAircraft(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// ListActiveAircraft returns the public fleet: active aircraft ordered
// by display_order ascending.
func (q *Queries) ListActiveAircraft(ctx context.Context) ([]model.Aircraft, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+aircraftColumns+` FROM aircraft WHERE is_active = 1 ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []model.Aircraft
	for rows.Next() {
		a, err := scanAircraft(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// CreateAircraftParams holds parameters for CreateAircraft.
type CreateAircraftParams struct {
	Name         string
	Model        string
	TailNumber   string
	Price        float64
	Capacity     string
	Avionics     string
	Description  string
	ImageURL     string
	IsActive     bool
	DisplayOrder int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateAircraft inserts a new aircraft and returns it.
func (q *Queries) CreateAircraft(ctx context.Context, arg CreateAircraftParams) (model.Aircraft, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO aircraft (name, model, tail_number, price, capacity, avionics,
			description, image_url, is_active, display_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Name, arg.Model, arg.TailNumber, arg.Price, arg.Capacity, arg.Avionics,
		arg.Description, arg.ImageURL, arg.IsActive, arg.DisplayOrder,
		arg.CreatedAt, arg.UpdatedAt)
	if err != nil {
		return model.Aircraft{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Aircraft{}, err
	}
	return q.GetAircraftByID(ctx, id)
}

// UpdateAircraftParams holds parameters for UpdateAircraft.
type UpdateAircraftParams struct {
	Name         string
	Model        string
	TailNumber   string
	Price        float64
	Capacity     string
	Avionics     string
	Description  string
	ImageURL     string
	IsActive     bool
	DisplayOrder int64
	UpdatedAt    time.Time
	ID           int64
}

// UpdateAircraft updates every editable column of one aircraft.
func (q *Queries) UpdateAircraft(ctx context.Context, arg UpdateAircraftParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE aircraft SET name = ?, model = ?, tail_number = ?, price = ?,
			capacity = ?, avionics = ?, description = ?, image_url = ?,
			is_active = ?, display_order = ?, updated_at = ?
		WHERE id = ?`,
		arg.Name, arg.Model, arg.TailNumber, arg.Price, arg.Capacity, arg.Avionics,
		arg.Description, arg.ImageURL, arg.IsActive, arg.DisplayOrder,
		arg.UpdatedAt, arg.ID)
	return err
}

// SetAircraftActiveParams holds parameters for SetAircraftActive.
type SetAircraftActiveParams struct {
	IsActive  bool
	UpdatedAt time.Time
	ID        int64
}

// SetAircraftActive toggles an aircraft in or out of the public
// listing without touching its other fields.
func (q *Queries) SetAircraftActive(ctx context.Context, arg SetAircraftActiveParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE aircraft SET is_active = ?, updated_at = ? WHERE id = ?`,
		arg.IsActive, arg.UpdatedAt, arg.ID)
	return err
}

// DeleteAircraft removes an aircraft permanently.
func (q *Queries) DeleteAircraft(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM aircraft WHERE id = ?`, id)
	return err
}

// CountAircraft returns the total number of aircraft, active or not.
func (q *Queries) CountAircraft(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM aircraft`).Scan(&count)
	return count, err
}

// MaxAircraftDisplayOrder returns the highest display_order in use, or
// zero when the fleet is empty.
func (q *Queries) MaxAircraftDisplayOrder(ctx context.Context) (int64, error) {
	var max int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(display_order), 0) FROM aircraft`).Scan(&max)
	return max, err
}
