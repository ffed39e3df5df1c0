// Package settings holds application-level options (paths, tick rate,
// server and commentary endpoints) layered from defaults, an optional
// settings.yaml, PIXELDASH_* environment variables and command-line flags.
// Game tuning lives in internal/config.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyLogLevel    = "log_level"
	KeyLogFile     = "log_file"
	KeyFPS         = "fps"
	KeySeed        = "seed"
	KeyDB          = "db"
	KeyConfig      = "config"
	KeyDifficulty  = "difficulty"
	KeyMute        = "mute"
	KeySSHAddr     = "ssh.addr"
	KeyHostKey     = "ssh.host_key"
	KeyIdleTimeout = "ssh.idle_timeout"
	KeyAPIKey      = "commentary.api_key"
	KeyModel       = "commentary.model"
	KeyBaseURL     = "commentary.base_url"
	KeyTimeout     = "commentary.timeout"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "PIXELDASH"

// flagKeys maps command-line flag names to settings keys.
var flagKeys = map[string]string{
	"log-level":    KeyLogLevel,
	"log-file":     KeyLogFile,
	"fps":          KeyFPS,
	"seed":         KeySeed,
	"db":           KeyDB,
	"config":       KeyConfig,
	"difficulty":   KeyDifficulty,
	"mute":         KeyMute,
	"ssh":          KeySSHAddr,
	"host-key":     KeyHostKey,
	"idle-timeout": KeyIdleTimeout,
}

// Settings is a resolved snapshot.
type Settings struct {
	LogLevel       string
	LogFile        string
	FPS            int
	Seed           int64
	DBPath         string
	ConfigPath     string
	Difficulty     string
	Mute           bool
	SSHAddr        string
	HostKeyPath    string
	IdleTimeout    time.Duration
	APIKey         string
	Model          string
	BaseURL        string
	CommentTimeout time.Duration
}

// Dir returns ~/.pixeldash, or ./.pixeldash when the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pixeldash"
	}
	return filepath.Join(home, ".pixeldash")
}

// SetDefaults registers default values.
func SetDefaults() {
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFile, "~/.pixeldash/pixeldash.log")
	viper.SetDefault(KeyFPS, 60)
	viper.SetDefault(KeySeed, 0)
	viper.SetDefault(KeyDB, "~/.pixeldash/scores.db")
	viper.SetDefault(KeyConfig, "")
	viper.SetDefault(KeyDifficulty, "")
	viper.SetDefault(KeyMute, false)

	viper.SetDefault(KeySSHAddr, ":23234")
	viper.SetDefault(KeyHostKey, "")
	viper.SetDefault(KeyIdleTimeout, "30m")

	viper.SetDefault(KeyAPIKey, "")
	viper.SetDefault(KeyModel, "gemini-2.5-flash")
	viper.SetDefault(KeyBaseURL, "https://generativelanguage.googleapis.com")
	viper.SetDefault(KeyTimeout, "8s")
}

// Load sets defaults, wires environment overrides and reads settings.yaml
// from dir when present. A missing file is not an error.
func Load(dir string) error {
	SetDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.BindEnv(KeyAPIKey, EnvPrefix+"_COMMENTARY_API_KEY", "GEMINI_API_KEY", "API_KEY"); err != nil {
		return fmt.Errorf("settings: bind env: %w", err)
	}

	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("settings: error reading settings file: %w", err)
	}
	return nil
}

// BindFlags lets explicitly set flags override every other source.
// Flags absent from fs are skipped.
func BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("settings: bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Current resolves every setting.
func Current() Settings {
	return Settings{
		LogLevel:       viper.GetString(KeyLogLevel),
		LogFile:        ExpandHome(viper.GetString(KeyLogFile)),
		FPS:            viper.GetInt(KeyFPS),
		Seed:           viper.GetInt64(KeySeed),
		DBPath:         viper.GetString(KeyDB),
		ConfigPath:     viper.GetString(KeyConfig),
		Difficulty:     viper.GetString(KeyDifficulty),
		Mute:           viper.GetBool(KeyMute),
		SSHAddr:        viper.GetString(KeySSHAddr),
		HostKeyPath:    viper.GetString(KeyHostKey),
		IdleTimeout:    viper.GetDuration(KeyIdleTimeout),
		APIKey:         viper.GetString(KeyAPIKey),
		Model:          viper.GetString(KeyModel),
		BaseURL:        viper.GetString(KeyBaseURL),
		CommentTimeout: viper.GetDuration(KeyTimeout),
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
