package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/skumaran/petti-kadai-api/internal/application/dto"
	"github.com/skumaran/petti-kadai-api/internal/domain"
	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
	"github.com/skumaran/petti-kadai-api/internal/domain/repository"
)

// SettingsUseCase per-user store settings. GetOrDefault is also used by
// checkout to pick the tax rate and by the receipt generator for the header.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase builds the use case.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get returns the caller's settings, falling back to defaults when the user
// never saved any.
func (uc *SettingsUseCase) Get(userID string) (*dto.SettingsResponse, error) {
	s, err := uc.GetOrDefault(userID)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

// GetOrDefault returns the stored settings entity or the defaults.
func (uc *SettingsUseCase) GetOrDefault(userID string) (*entity.Settings, error) {
	s, err := uc.repo.Get(userID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return entity.DefaultSettings(userID), nil
	}
	return s, nil
}

// Update patches and persists the caller's settings.
func (uc *SettingsUseCase) Update(userID string, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	s, err := uc.GetOrDefault(userID)
	if err != nil {
		return nil, err
	}
	if in.StoreName != nil {
		if *in.StoreName == "" {
			return nil, domain.ErrInvalidInput
		}
		s.StoreName = *in.StoreName
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	if in.Phone != nil {
		s.Phone = *in.Phone
	}
	if in.CurrencySymbol != nil {
		if *in.CurrencySymbol == "" {
			return nil, domain.ErrInvalidInput
		}
		s.CurrencySymbol = *in.CurrencySymbol
	}
	if in.TaxRate != nil {
		if in.TaxRate.IsNegative() || in.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.ErrInvalidInput
		}
		s.TaxRate = *in.TaxRate
	}
	if in.DarkMode != nil {
		s.DarkMode = *in.DarkMode
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Upsert(s); err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		StoreName:      s.StoreName,
		Address:        s.Address,
		Phone:          s.Phone,
		CurrencySymbol: s.CurrencySymbol,
		TaxRate:        s.TaxRate,
		DarkMode:       s.DarkMode,
	}
}
