package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/flybz/discoverair/internal/model"
)

const heroColumns = `id, title, subtitle, button_text, background_image_url,
	is_active, created_at, updated_at`

func scanHero(row interface{ Scan(...any) error }) (model.HeroContent, error) {
	var h model.HeroContent
	err := row.Scan(&h.ID, &h.Title, &h.Subtitle, &h.ButtonText,
		&h.BackgroundImageURL, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}

// GetHeroByID returns one hero record.
func (q *Queries) GetHeroByID(ctx context.Context, id int64) (model.HeroContent, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+heroColumns+` FROM hero_content WHERE id = ?`, id)
	return scanHero(row)
}

// GetActiveHero returns the single active hero record. sql.ErrNoRows
// when none is active.
func (q *Queries) GetActiveHero(ctx context.Context) (model.HeroContent, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+heroColumns+` FROM hero_content WHERE is_active = 1 ORDER BY id LIMIT 1`)
	return scanHero(row)
}

// ListHeroContent returns all hero records, newest first.
func (q *Queries) ListHeroContent(ctx context.Context) ([]model.HeroContent, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+heroColumns+` FROM hero_content ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []model.HeroContent
	for rows.Next() {
		h, err := scanHero(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	return result, rows.Err()
}

// CreateHeroParams holds parameters for CreateHero.
type CreateHeroParams struct {
	Title              string
	Subtitle           string
	ButtonText         string
	BackgroundImageURL string
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CreateHero inserts a new hero record and returns it. It does NOT
// enforce the single-active invariant; callers that create an active
// record go through ActivateHero afterwards.
func (q *Queries) CreateHero(ctx context.Context, arg CreateHeroParams) (model.HeroContent, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO hero_content (title, subtitle, button_text, background_image_url,
			is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		arg.Title, arg.Subtitle, arg.ButtonText, arg.BackgroundImageURL,
		arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
	if err != nil {
		return model.HeroContent{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.HeroContent{}, err
	}
	return q.GetHeroByID(ctx, id)
}

// UpdateHeroParams holds parameters for UpdateHero.
type UpdateHeroParams struct {
	Title              string
	Subtitle           string
	ButtonText         string
	BackgroundImageURL string
	UpdatedAt          time.Time
	ID                 int64
}

// UpdateHero updates the content fields of one hero record, leaving
// its active flag alone.
func (q *Queries) UpdateHero(ctx context.Context, arg UpdateHeroParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE hero_content SET title = ?, subtitle = ?, button_text = ?,
			background_image_url = ?, updated_at = ?
		WHERE id = ?`,
		arg.Title, arg.Subtitle, arg.ButtonText, arg.BackgroundImageURL,
		arg.UpdatedAt, arg.ID)
	return err
}

// DeleteHero removes a hero record.
func (q *Queries) DeleteHero(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM hero_content WHERE id = ?`, id)
	return err
}

// ActivateHero makes the given record the single active hero. The
// invariant (at most one active row) is enforced application-side in
// one transaction: deactivate all, then activate one.
func ActivateHero(ctx context.Context, db *sql.DB, id int64) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	if _, err := tx.ExecContext(ctx,
		`UPDATE hero_content SET is_active = 0, updated_at = ? WHERE is_active = 1`, now); err != nil {
		return fmt.Errorf("deactivating hero records: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE hero_content SET is_active = 1, updated_at = ? WHERE id = ?`, now, id)
	if err != nil {
		return fmt.Errorf("activating hero record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}
