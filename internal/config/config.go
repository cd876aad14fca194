package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every service setting, loaded once at startup and injected
// into components. Handlers never read the environment directly.
type Config struct {
	Port string

	MongoURI      string
	MongoDatabase string

	SlackClientID     string
	SlackClientSecret string
	SlackRedirectURI  string

	// AdminKey protects the /companies, /teams and /global-data routes.
	AdminKey string

	GoogleServiceAccountEmail string
	GooglePrivateKey          string
	GoogleImpersonateSubject  string
	CalendarID                string
	CalendarTimezone          string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("Port", "3000")
	v.SetDefault("MongoDatabase", "mockdesk")
	v.SetDefault("CalendarTimezone", "Asia/Kolkata")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envMappings := map[string]string{
		"Port":                      "PORT",
		"MongoURI":                  "MONGODB_URI",
		"MongoDatabase":             "MONGODB_DATABASE",
		"SlackClientID":             "SLACK_CLIENT_ID",
		"SlackClientSecret":         "SLACK_CLIENT_SECRET",
		"SlackRedirectURI":          "SLACK_REDIRECT_URI",
		"AdminKey":                  "KEY",
		"GoogleServiceAccountEmail": "GOOGLE_SERVICE_ACCOUNT_EMAIL",
		"GooglePrivateKey":          "GOOGLE_PRIVATE_KEY",
		"GoogleImpersonateSubject":  "GOOGLE_IMPERSONATE_SUBJECT",
		"CalendarID":                "CALENDAR_ID",
		"CalendarTimezone":          "CALENDAR_TIMEZONE",
	}

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", envVar, err)
		}
	}

	cfg := &Config{
		Port:                      v.GetString("Port"),
		MongoURI:                  v.GetString("MongoURI"),
		MongoDatabase:             v.GetString("MongoDatabase"),
		SlackClientID:             v.GetString("SlackClientID"),
		SlackClientSecret:         v.GetString("SlackClientSecret"),
		SlackRedirectURI:          v.GetString("SlackRedirectURI"),
		AdminKey:                  v.GetString("AdminKey"),
		GoogleServiceAccountEmail: v.GetString("GoogleServiceAccountEmail"),
		GooglePrivateKey:          v.GetString("GooglePrivateKey"),
		GoogleImpersonateSubject:  v.GetString("GoogleImpersonateSubject"),
		CalendarID:                v.GetString("CalendarID"),
		CalendarTimezone:          v.GetString("CalendarTimezone"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	required := map[string]string{
		"MONGODB_URI":         c.MongoURI,
		"SLACK_CLIENT_ID":     c.SlackClientID,
		"SLACK_CLIENT_SECRET": c.SlackClientSecret,
		"SLACK_REDIRECT_URI":  c.SlackRedirectURI,
		"KEY":                 c.AdminKey,
	}

	missing := []string{}
	for name, value := range required {
		if value == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// CalendarConfigured reports whether the calendar mirror can be enabled.
func (c *Config) CalendarConfigured() bool {
	return c.GoogleServiceAccountEmail != "" && c.GooglePrivateKey != ""
}
