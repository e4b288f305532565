package request

import "big_studio/internal/usecase"

// SettingsUpdateRequest is a partial update: absent fields keep their stored
// value, so a pointer nil means "not sent".

type SettingsUpdateRequest struct {
	CustomLogo                  *string `json:"customLogo"`
	AsaasURL                    *string `json:"asaasUrl"`
	UserName                    *string `json:"userName"`
	PrimaryColor                *string `json:"primaryColor"`
	AccentColor                 *string `json:"accentColor"`
	SplashScreenBackgroundColor *string `json:"splashScreenBackgroundColor"`
	PrivacyModeEnabled          *bool   `json:"privacyModeEnabled"`
	GoogleCalendarConnected     *bool   `json:"googleCalendarConnected"`
	GoogleCalendarLastSync      *string `json:"googleCalendarLastSync"`
}

func (r SettingsUpdateRequest) ToPatch() usecase.SettingsPatch {
	return usecase.SettingsPatch{
		CustomLogo:                  r.CustomLogo,
		AsaasURL:                    r.AsaasURL,
		UserName:                    r.UserName,
		PrimaryColor:                r.PrimaryColor,
		AccentColor:                 r.AccentColor,
		SplashScreenBackgroundColor: r.SplashScreenBackgroundColor,
		PrivacyModeEnabled:          r.PrivacyModeEnabled,
		GoogleCalendarConnected:     r.GoogleCalendarConnected,
		GoogleCalendarLastSync:      r.GoogleCalendarLastSync,
	}
}
