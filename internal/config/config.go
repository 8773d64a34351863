package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Config carries runtime settings. There is no config file; defaults cover
// normal use and the CLI overrides the rest.
type Config struct {
	CacheDir   string
	DBPath     string
	LogPath    string
	BaseURL    string
	PostTTL    time.Duration
	CommentTTL time.Duration
}

func Default() Config {
	cacheDir := filepath.Join(xdg.CacheHome, "threadlet")
	return Config{
		CacheDir:   cacheDir,
		DBPath:     filepath.Join(cacheDir, "cache.db"),
		LogPath:    filepath.Join(cacheDir, "debug.log"),
		BaseURL:    "https://api.example.discussion",
		PostTTL:    5 * time.Minute,
		CommentTTL: 10 * time.Minute,
	}
}
