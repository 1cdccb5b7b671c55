package config

import (
	"strings"

	"github.com/spf13/viper"

	apperrors "linkedin-auto-poster/pkg/errors"
)

// LLM holds the settings for the Gemini backend.
type LLM struct {
	APIKey string
	Model  string
}

// LinkedIn holds the settings for the LinkedIn REST API.
type LinkedIn struct {
	APIURL       string
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

// LoadLLM reads the LLM settings from the environment. All required
// variables are checked before returning so the error names every
// missing one, not just the first.
func LoadLLM() (*LLM, error) {
	v := newViper()

	cfg := &LLM{
		APIKey: v.GetString("LLM_API_KEY"),
		Model:  v.GetString("LLM_MODEL"),
	}

	var missing []string
	if cfg.APIKey == "" {
		missing = append(missing, "LLM_API_KEY")
	}
	if cfg.Model == "" {
		missing = append(missing, "LLM_MODEL")
	}
	if len(missing) > 0 {
		return nil, missingVarsError(missing)
	}

	return cfg, nil
}

// LoadLinkedIn reads the LinkedIn settings from the environment.
func LoadLinkedIn() (*LinkedIn, error) {
	v := newViper()

	cfg := &LinkedIn{
		APIURL:       v.GetString("LINKEDIN_API_URL"),
		ClientID:     v.GetString("LINKEDIN_CLIENT_ID"),
		ClientSecret: v.GetString("LINKEDIN_CLIENT_SECRET"),
		RedirectURI:  v.GetString("LINKEDIN_REDIRECT_URI"),
	}

	var missing []string
	if cfg.APIURL == "" {
		missing = append(missing, "LINKEDIN_API_URL")
	}
	if cfg.ClientID == "" {
		missing = append(missing, "LINKEDIN_CLIENT_ID")
	}
	if cfg.ClientSecret == "" {
		missing = append(missing, "LINKEDIN_CLIENT_SECRET")
	}
	if cfg.RedirectURI == "" {
		missing = append(missing, "LINKEDIN_REDIRECT_URI")
	}
	if len(missing) > 0 {
		return nil, missingVarsError(missing)
	}

	return cfg, nil
}

// AccessToken reads LINKEDIN_ACCESS_TOKEN from the environment.
func AccessToken() (string, error) {
	token := newViper().GetString("LINKEDIN_ACCESS_TOKEN")
	if token == "" {
		return "", missingVarsError([]string{"LINKEDIN_ACCESS_TOKEN"})
	}
	return token, nil
}

func missingVarsError(missing []string) error {
	return apperrors.Newf(apperrors.KindConfiguration,
		"missing required environment variables: %s", strings.Join(missing, ", "))
}
