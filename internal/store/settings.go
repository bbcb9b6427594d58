package store

import (
	"context"
	"time"

	"github.com/flybz/discoverair/internal/model"
)

const settingColumns = `id, key, value, description, created_at, updated_at`

func scanSetting(row interface{ Scan(...any) error }) (model.SiteSetting, error) {
	var s model.SiteSetting
	err := row.Scan(&s.ID, &s.Key, &s.Value, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// GetSettingByKey returns one site setting by key.
func (q *Queries) GetSettingByKey(ctx context.Context, key string) (model.SiteSetting, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+settingColumns+` FROM site_settings WHERE key = ?`, key)
	return scanSetting(row)
}

// ListSettings returns all site settings ordered by key.
func (q *Queries) ListSettings(ctx context.Context) ([]model.SiteSetting, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+settingColumns+` FROM site_settings ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []model.SiteSetting
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// SettingsMap returns every setting as a key→value map.
func (q *Queries) SettingsMap(ctx context.Context) (model.SettingsMap, error) {
	settings, err := q.ListSettings(ctx)
	if err != nil {
		return nil, err
	}
	m := make(model.SettingsMap, len(settings))
	for _, s := range settings {
		m[s.Key] = s.Value
	}
	return m, nil
}

// UpsertSettingParams holds parameters for UpsertSetting.
type UpsertSettingParams struct {
	Key         string
	Value       string
	Description string
	UpdatedAt   time.Time
}

// UpsertSetting creates or updates a site setting by key. The
// description is only written when non-empty so a value-only save does
// not clobber it.
func (q *Queries) UpsertSetting(ctx context.Context, arg UpsertSettingParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO site_settings (key, value, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			description = CASE WHEN excluded.description != '' THEN excluded.description ELSE site_settings.description END,
			updated_at = excluded.updated_at`,
		arg.Key, arg.Value, arg.Description, arg.UpdatedAt, arg.UpdatedAt)
	return err
}

// DeleteSetting removes a site setting by key.
func (q *Queries) DeleteSetting(ctx context.Context, key string) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM site_settings WHERE key = ?`, key)
	return err
}
