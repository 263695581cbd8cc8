package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppDirName is the per-user directory holding logs
const AppDirName = "ytgrab"

// Env holds process-level configuration read from YTGRAB_* variables.
type Env struct {
	LogLevel      string `env:"YTGRAB_LOG_LEVEL"        envDefault:"info"`
	LogDir        string `env:"YTGRAB_LOG_DIR"`
	LogMaxSizeMB  int    `env:"YTGRAB_LOG_MAX_SIZE_MB"  envDefault:"10"`
	LogMaxBackups int    `env:"YTGRAB_LOG_MAX_BACKUPS"  envDefault:"3"`
	LogMaxAgeDays int    `env:"YTGRAB_LOG_MAX_AGE_DAYS" envDefault:"28"`

	// DownloadDir overrides the directory stored in preferences
	DownloadDir string `env:"YTGRAB_DOWNLOAD_DIR"`

	// SocketTimeout is handed to yt-dlp as --socket-timeout
	SocketTimeout time.Duration `env:"YTGRAB_SOCKET_TIMEOUT" envDefault:"15s"`
	ProbeDebounce time.Duration `env:"YTGRAB_PROBE_DEBOUNCE" envDefault:"1s"`
	CancelGrace   time.Duration `env:"YTGRAB_CANCEL_GRACE"   envDefault:"1s"`

	// YTDLPPath points at a specific yt-dlp executable; empty resolves one automatically
	YTDLPPath   string `env:"YTGRAB_YTDLP_PATH"`
	AutoInstall bool   `env:"YTGRAB_YTDLP_AUTO_INSTALL" envDefault:"true"`
}

// LoadEnv loads optional dotenv files (".env" when none given) and parses the environment.
// Missing dotenv files are ignored.
func LoadEnv(dotenvFiles ...string) (*Env, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load dotenv: %w", err)
	}

	cfg := &Env{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.LogDir == "" {
		cfg.LogDir = DefaultLogDir()
	}

	if cfg.DownloadDir != "" {
		abs, err := filepath.Abs(cfg.DownloadDir)
		if err != nil {
			return nil, fmt.Errorf("download dir: %w", err)
		}
		cfg.DownloadDir = abs
	}

	if cfg.SocketTimeout <= 0 {
		return nil, fmt.Errorf("socket timeout must be positive, got %s", cfg.SocketTimeout)
	}

	return cfg, nil
}

// DefaultLogDir returns <user config dir>/ytgrab/logs, falling back to the temp dir
func DefaultLogDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		base = os.TempDir()
	}
	return filepath.Join(base, AppDirName, "logs")
}
