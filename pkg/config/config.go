package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage   StorageConfig `yaml:"storage"`
	Probe     ProbeConfig   `yaml:"probe"`
	Backup    BackupConfig  `yaml:"backup"`
	Log       LogConfig     `yaml:"log"`
	Server    ServerConfig  `yaml:"server"`
	Bookmarks []Bookmark    `yaml:"bookmarks"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type ProbeConfig struct {
	Timeout     time.Duration `yaml:"timeout"`
	UserAgent   string        `yaml:"userAgent"`
	Concurrency int           `yaml:"concurrency"`
	RatePerHost float64       `yaml:"ratePerHost"`
	Burst       int           `yaml:"burst"`
}

type BackupConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	File string `yaml:"file"`
}

type ServerConfig struct {
	Addr          string        `yaml:"addr"`
	CheckInterval time.Duration `yaml:"checkInterval"`
}

// Bookmark is a scan site shortcut.
type Bookmark struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return home
}

func DataDir() string {
	return filepath.Join(homeDir(), ".mangatrack")
}

func Default() Config {
	return Config{
		Storage: StorageConfig{
			Driver: "duckdb",
			Path:   filepath.Join(DataDir(), "mangas.db"),
		},
		Probe: ProbeConfig{
			Timeout:   10 * time.Second,
			UserAgent: "mangatrack/1.0",
			Burst:     1,
		},
		Backup: BackupConfig{
			Path: filepath.Join(homeDir(), "mangas_backup.json"),
		},
		Log: LogConfig{
			File: filepath.Join(DataDir(), "mangatrack.log"),
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Bookmarks: []Bookmark{
			{Name: "FR Team", URL: "https://fmteam.fr"},
			{Name: "Demonic Scans", URL: "https://demonicscans.org"},
			{Name: "Mangas Origines", URL: "https://mangas-origines.fr"},
			{Name: "Comick", URL: "https://comick.io"},
			{Name: "Reaper Scans", URL: "https://reaper-scans.fr"},
			{Name: "Phenix Scans", URL: "https://phenixscans.fr"},
		},
	}
}

// Candidates lists the files Load tries when no explicit path is given.
func Candidates() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "mangatrack", "config.yaml"))
	}
	return append(paths, filepath.Join(DataDir(), "config.yaml"))
}

// Load reads the config at path, or the first existing candidate when path
// is empty, and applies environment overrides. A missing file yields the
// defaults; an explicit path that can't be read is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := merge(&cfg, raw); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else {
		for _, candidate := range Candidates() {
			raw, err := os.ReadFile(candidate)
			if err != nil {
				continue
			}
			if err := merge(&cfg, raw); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", candidate, err)
			}
			break
		}
	}

	if err := ApplyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	cfg.expandPaths()
	return cfg, nil
}

// merge decodes raw on top of cfg so absent keys keep their defaults.
func merge(cfg *Config, raw []byte) error {
	bookmarks := cfg.Bookmarks
	cfg.Bookmarks = nil
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		cfg.Bookmarks = bookmarks
		return err
	}
	if cfg.Bookmarks == nil {
		cfg.Bookmarks = bookmarks
	}
	return nil
}

func ApplyEnvOverrides(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("MANGATRACK_DB_DRIVER")); v != "" {
		cfg.Storage.Driver = v
	}
	if v := strings.TrimSpace(os.Getenv("MANGATRACK_DB_PATH")); v != "" {
		cfg.Storage.Path = v
	}
	if v := strings.TrimSpace(os.Getenv("MANGATRACK_BACKUP_PATH")); v != "" {
		cfg.Backup.Path = v
	}
	if v := strings.TrimSpace(os.Getenv("MANGATRACK_LOG_FILE")); v != "" {
		cfg.Log.File = v
	}
	if v := strings.TrimSpace(os.Getenv("MANGATRACK_SERVER_ADDR")); v != "" {
		cfg.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("MANGATRACK_PROBE_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("MANGATRACK_PROBE_TIMEOUT: %w", err)
		}
		cfg.Probe.Timeout = d
	}
	if v := strings.TrimSpace(os.Getenv("MANGATRACK_PROBE_CONCURRENCY")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MANGATRACK_PROBE_CONCURRENCY: %w", err)
		}
		cfg.Probe.Concurrency = n
	}
	return nil
}

func (c *Config) expandPaths() {
	c.Storage.Path = expandHome(c.Storage.Path)
	c.Backup.Path = expandHome(c.Backup.Path)
	c.Log.File = expandHome(c.Log.File)
}

func expandHome(p string) string {
	if p == "~" {
		return homeDir()
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(homeDir(), p[2:])
	}
	return p
}
