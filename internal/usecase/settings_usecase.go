package usecase

import (
	"context"

	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase/interfaces"
)

// ISettingsUseCase owns per-user application settings. Loads merge stored
// values over defaults so accounts created before a field existed still get
// its default.

type ISettingsUseCase interface {
	Get(ctx context.Context, ownerID, fallbackUserName string) (entities.AppSettings, error)
	Update(ctx context.Context, ownerID string, patch SettingsPatch) (entities.AppSettings, error)
}

// SettingsPatch is a partial update; nil fields keep their stored value.

type SettingsPatch struct {
	CustomLogo                  *string
	AsaasURL                    *string
	UserName                    *string
	PrimaryColor                *string
	AccentColor                 *string
	SplashScreenBackgroundColor *string
	PrivacyModeEnabled          *bool
	GoogleCalendarConnected     *bool
	GoogleCalendarLastSync      *string
}

type SettingsUseCase struct {
	store interfaces.IBlobStore
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(store interfaces.IBlobStore) *SettingsUseCase {
	return &SettingsUseCase{store: store}
}

func (u *SettingsUseCase) Get(ctx context.Context, ownerID, fallbackUserName string) (entities.AppSettings, error) {
	settings, err := loadSettings(ctx, u.store, ownerID)
	if err != nil {
		return entities.AppSettings{}, err
	}
	if settings.UserName == "" {
		settings.UserName = fallbackUserName
	}
	return settings, nil
}

func (u *SettingsUseCase) Update(ctx context.Context, ownerID string, patch SettingsPatch) (entities.AppSettings, error) {
	settings, err := loadSettings(ctx, u.store, ownerID)
	if err != nil {
		return entities.AppSettings{}, err
	}
	settings = applyPatch(settings, patch)
	if err := saveSettings(ctx, u.store, ownerID, settings); err != nil {
		return entities.AppSettings{}, err
	}
	return settings, nil
}

func applyPatch(s entities.AppSettings, p SettingsPatch) entities.AppSettings {
	if p.CustomLogo != nil {
		s.CustomLogo = *p.CustomLogo
	}
	if p.AsaasURL != nil {
		s.AsaasURL = *p.AsaasURL
	}
	if p.UserName != nil {
		s.UserName = *p.UserName
	}
	if p.PrimaryColor != nil {
		s.PrimaryColor = *p.PrimaryColor
	}
	if p.AccentColor != nil {
		s.AccentColor = *p.AccentColor
	}
	if p.SplashScreenBackgroundColor != nil {
		s.SplashScreenBackgroundColor = *p.SplashScreenBackgroundColor
	}
	if p.PrivacyModeEnabled != nil {
		s.PrivacyModeEnabled = *p.PrivacyModeEnabled
	}
	if p.GoogleCalendarConnected != nil {
		s.GoogleCalendarConnected = *p.GoogleCalendarConnected
	}
	if p.GoogleCalendarLastSync != nil {
		s.GoogleCalendarLastSync = *p.GoogleCalendarLastSync
	}
	return s.MergeDefaults()
}
