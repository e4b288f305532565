package usecase

import (
	"context"
	"testing"

	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase/interfaces"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestSettingsUseCase_Get(t *testing.T) {
	owner := "u1"

	t.Run("fresh account gets defaults with fallback name", func(t *testing.T) {
		uc := NewSettingsUseCase(newMemStore())
		settings, err := uc.Get(context.Background(), owner, "lara")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		defaults := entities.DefaultSettings()
		if settings.PrimaryColor != defaults.PrimaryColor || settings.AsaasURL != defaults.AsaasURL {
			t.Fatalf("expected defaults, got %#v", settings)
		}
		if settings.UserName != "lara" {
			t.Fatalf("expected fallback user name, got %q", settings.UserName)
		}
	})

	t.Run("stored values win over fallback", func(t *testing.T) {
		store := newMemStore()
		store.putJSON(t, owner, interfaces.BlobKeySettings, entities.AppSettings{UserName: "Estúdio BIG"})
		uc := NewSettingsUseCase(store)

		settings, err := uc.Get(context.Background(), owner, "lara")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if settings.UserName != "Estúdio BIG" {
			t.Fatalf("expected stored name, got %q", settings.UserName)
		}
	})
}

func TestSettingsUseCase_Update(t *testing.T) {
	owner := "u1"

	t.Run("patch only touches sent fields", func(t *testing.T) {
		store := newMemStore()
		store.putJSON(t, owner, interfaces.BlobKeySettings, entities.AppSettings{
			UserName:     "Estúdio BIG",
			PrimaryColor: "#101010",
		})
		uc := NewSettingsUseCase(store)

		settings, err := uc.Update(context.Background(), owner, SettingsPatch{
			PrivacyModeEnabled: boolPtr(true),
			AccentColor:        strPtr("#ff0000"),
		})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if !settings.PrivacyModeEnabled || settings.AccentColor != "#ff0000" {
			t.Fatalf("patch not applied: %#v", settings)
		}
		if settings.UserName != "Estúdio BIG" || settings.PrimaryColor != "#101010" {
			t.Fatalf("untouched fields must survive: %#v", settings)
		}
	})

	t.Run("clearing a color falls back to default", func(t *testing.T) {
		store := newMemStore()
		store.putJSON(t, owner, interfaces.BlobKeySettings, entities.AppSettings{PrimaryColor: "#101010"})
		uc := NewSettingsUseCase(store)

		settings, err := uc.Update(context.Background(), owner, SettingsPatch{PrimaryColor: strPtr("")})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if settings.PrimaryColor != entities.DefaultSettings().PrimaryColor {
			t.Fatalf("expected default color, got %q", settings.PrimaryColor)
		}
	})
}
