package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
	"github.com/skumaran/petti-kadai-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implements the SettingsRepository port over PostgreSQL.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository builds the persistence adapter for settings.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get fetches the settings row for a user, nil when never saved.
func (r *SettingsRepo) Get(userID string) (*entity.Settings, error) {
	query := `
		SELECT user_id, store_name, address, phone, currency_symbol, tax_rate, dark_mode, updated_at
		FROM settings WHERE user_id = $1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&s.UserID, &s.StoreName, &s.Address, &s.Phone, &s.CurrencySymbol,
		&s.TaxRate, &s.DarkMode, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert writes the settings row, inserting on first save.
func (r *SettingsRepo) Upsert(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (user_id, store_name, address, phone, currency_symbol, tax_rate, dark_mode, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			currency_symbol = EXCLUDED.currency_symbol,
			tax_rate = EXCLUDED.tax_rate,
			dark_mode = EXCLUDED.dark_mode,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.UserID, settings.StoreName, settings.Address, settings.Phone,
		settings.CurrencySymbol, settings.TaxRate, settings.DarkMode, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
