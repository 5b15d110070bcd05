package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Source selects where the task list is loaded from.
const (
	SourceSheetCSV = "sheet_csv"
	SourceSheetAPI = "sheet_api"
	SourceGitHub   = "github"
	SourceLocal    = "local"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Tracker specifics
	Date DateConfig
	Auth AuthConfig
	Sync SyncConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DateConfig pins the canonical calendar used for deadlines and earnings.
type DateConfig struct {
	UTCOffsetHours  int
	DisplayTimezone string
}

// UserConfig is one configured login. PasswordHash is a bcrypt hash.
// Password is a development convenience: a plaintext value hashed at
// startup, never accepted in production.
type UserConfig struct {
	Username     string
	PasswordHash string
	Password     string
}

type AuthConfig struct {
	SessionTTL      time.Duration
	LoginRatePerMin int
	Users           []UserConfig
}

type SyncConfig struct {
	Source       string
	PollInterval time.Duration
	Owners       []string

	SheetCSV SheetCSVConfig
	SheetAPI SheetAPIConfig
	GitHub   GitHubConfig
	Local    LocalConfig
}

type SheetCSVConfig struct {
	// URL is the published CSV export of the shared spreadsheet.
	URL string
}

type SheetAPIConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	ReadRange       string
}

type GitHubConfig struct {
	APIBaseURL string
	RawBaseURL string
	Owner      string
	Repo       string
	Branch     string
	Path       string
}

type LocalConfig struct {
	// Path is the snapshot database file. Also used as the durable
	// fallback for the remote sources.
	Path string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Date
	cfg.Date.UTCOffsetHours = viper.GetInt("date.utc_offset_hours")
	cfg.Date.DisplayTimezone = viper.GetString("date.display_timezone")

	// Auth
	cfg.Auth.SessionTTL = viper.GetDuration("auth.session_ttl")
	cfg.Auth.LoginRatePerMin = viper.GetInt("auth.login_rate_per_min")
	if viper.IsSet("auth.users") {
		usersRaw := viper.Get("auth.users")
		if usersList, ok := usersRaw.([]interface{}); ok {
			for _, u := range usersList {
				if userMap, ok := u.(map[string]interface{}); ok {
					cfg.Auth.Users = append(cfg.Auth.Users, UserConfig{
						Username:     getStringFromMap(userMap, "username"),
						PasswordHash: getStringFromMap(userMap, "password_hash"),
						Password:     getStringFromMap(userMap, "password"),
					})
				}
			}
		}
	}
	if err := validateAuth(&cfg.Auth, cfg.Environment.Name); err != nil {
		return nil, err
	}

	// Sync
	cfg.Sync.Source = viper.GetString("sync.source")
	cfg.Sync.PollInterval = viper.GetDuration("sync.poll_interval")
	cfg.Sync.Owners = viper.GetStringSlice("sync.owners")

	cfg.Sync.SheetCSV.URL = viper.GetString("sync.sheet_csv.url")

	cfg.Sync.SheetAPI.CredentialsPath = viper.GetString("sync.sheet_api.credentials_path")
	cfg.Sync.SheetAPI.SpreadsheetID = viper.GetString("sync.sheet_api.spreadsheet_id")
	cfg.Sync.SheetAPI.ReadRange = viper.GetString("sync.sheet_api.read_range")

	cfg.Sync.GitHub.APIBaseURL = viper.GetString("sync.github.api_base_url")
	cfg.Sync.GitHub.RawBaseURL = viper.GetString("sync.github.raw_base_url")
	cfg.Sync.GitHub.Owner = viper.GetString("sync.github.owner")
	cfg.Sync.GitHub.Repo = viper.GetString("sync.github.repo")
	cfg.Sync.GitHub.Branch = viper.GetString("sync.github.branch")
	cfg.Sync.GitHub.Path = viper.GetString("sync.github.path")

	cfg.Sync.Local.Path = viper.GetString("sync.local.path")

	if err := validateSync(&cfg.Sync); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("date.utc_offset_hours", 3)
	viper.SetDefault("date.display_timezone", "Africa/Nairobi")

	viper.SetDefault("auth.session_ttl", "12h")
	viper.SetDefault("auth.login_rate_per_min", 10)

	viper.SetDefault("sync.source", SourceLocal)
	viper.SetDefault("sync.poll_interval", "30s")
	viper.SetDefault("sync.owners", []string{"Alice", "Ben"})
	viper.SetDefault("sync.sheet_api.read_range", "Tasks!A:H")
	viper.SetDefault("sync.github.api_base_url", "https://api.github.com")
	viper.SetDefault("sync.github.raw_base_url", "https://raw.githubusercontent.com")
	viper.SetDefault("sync.github.branch", "main")
	viper.SetDefault("sync.local.path", "data/tracker.db")
}

func validateAuth(cfg *AuthConfig, environment string) error {
	if len(cfg.Users) == 0 {
		return fmt.Errorf("no users configured - please add auth.users section to config.yaml")
	}
	for _, u := range cfg.Users {
		if u.Username == "" {
			return fmt.Errorf("auth user with empty username")
		}
		if u.PasswordHash == "" && u.Password == "" {
			return fmt.Errorf("auth user %q: password_hash is required", u.Username)
		}
		if u.PasswordHash == "" && environment != "development" {
			return fmt.Errorf("auth user %q: plaintext password is only allowed in development", u.Username)
		}
	}
	return nil
}

func validateSync(cfg *SyncConfig) error {
	switch cfg.Source {
	case SourceSheetCSV:
		if cfg.SheetCSV.URL == "" {
			return fmt.Errorf("sync.sheet_csv.url is required for source %q", cfg.Source)
		}
	case SourceSheetAPI:
		if cfg.SheetAPI.CredentialsPath == "" || cfg.SheetAPI.SpreadsheetID == "" {
			return fmt.Errorf("sync.sheet_api.credentials_path and spreadsheet_id are required for source %q", cfg.Source)
		}
	case SourceGitHub:
		if cfg.GitHub.Owner == "" || cfg.GitHub.Repo == "" || cfg.GitHub.Path == "" {
			return fmt.Errorf("sync.github.owner, repo and path are required for source %q", cfg.Source)
		}
	case SourceLocal:
	default:
		return fmt.Errorf("unknown sync.source %q", cfg.Source)
	}

	if cfg.PollInterval < time.Second {
		return fmt.Errorf("sync.poll_interval must be at least 1s")
	}
	if len(cfg.Owners) == 0 {
		return fmt.Errorf("sync.owners must name at least one person")
	}
	return nil
}

// Helper function to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
