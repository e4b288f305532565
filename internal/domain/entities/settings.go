package entities

const (
	defaultPrimaryColor  = "#f8fafc"
	defaultAccentColor   = "#1e293b"
	defaultSplashBgColor = "#111827"
	defaultPaymentPortal = "https://www.asaas.com/login"
)

// AppSettings is per-user application configuration (branding, privacy mode,
// calendar connection). Loaded settings are merged over defaults so new
// fields pick up their zero-configuration values.

type AppSettings struct {
	CustomLogo                  string `json:"customLogo,omitempty"`
	AsaasURL                    string `json:"asaasUrl"`
	UserName                    string `json:"userName"`
	PrimaryColor                string `json:"primaryColor"`
	AccentColor                 string `json:"accentColor"`
	SplashScreenBackgroundColor string `json:"splashScreenBackgroundColor"`
	PrivacyModeEnabled          bool   `json:"privacyModeEnabled"`
	GoogleCalendarConnected     bool   `json:"googleCalendarConnected"`
	GoogleCalendarLastSync      string `json:"googleCalendarLastSync,omitempty"`
}

// DefaultSettings returns the settings applied to a fresh account.
func DefaultSettings() AppSettings {
	return AppSettings{
		AsaasURL:                    defaultPaymentPortal,
		PrimaryColor:                defaultPrimaryColor,
		AccentColor:                 defaultAccentColor,
		SplashScreenBackgroundColor: defaultSplashBgColor,
	}
}

// MergeDefaults fills empty branding fields with their defaults.
func (s AppSettings) MergeDefaults() AppSettings {
	d := DefaultSettings()
	if s.AsaasURL == "" {
		s.AsaasURL = d.AsaasURL
	}
	if s.PrimaryColor == "" {
		s.PrimaryColor = d.PrimaryColor
	}
	if s.AccentColor == "" {
		s.AccentColor = d.AccentColor
	}
	if s.SplashScreenBackgroundColor == "" {
		s.SplashScreenBackgroundColor = d.SplashScreenBackgroundColor
	}
	return s
}
