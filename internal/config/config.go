package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/adriandez/de-zamacona-data/internal/constants"
)

type Config struct {
	Paths    PathsConfig
	Pipeline PipelineConfig
	Archive  ArchiveConfig
}

type PathsConfig struct {
	DataDir string // lexical resource files (whitelist, synonyms, reject list); defaults to data
	OutDir  string // stage outputs and logs; defaults to out
}

type PipelineConfig struct {
	Concurrency int // per-record workers; defaults to constants.WorkerPoolSize
}

type ArchiveConfig struct {
	Domain string // site serving ark identifiers (e.g., https://www.familysearch.org)
	Lang   string // UI language for record links; empty omits the parameter
}

// RecordURL returns the public URL of an archive record, or "" when the
// domain or the ark identifier is missing.
func (c *ArchiveConfig) RecordURL(ark string) string {
	ark = strings.Trim(strings.TrimSpace(ark), "/")
	if c.Domain == "" || ark == "" {
		return ""
	}
	url := strings.TrimRight(c.Domain, "/") + "/" + ark
	if c.Lang != "" {
		url += "?lang=" + c.Lang
	}
	return url
}

// RecordLink returns an OSC 8 hyperlink for terminal emulators (iTerm2, etc.)
// Displays the ark identifier but makes it clickable to open the record.
// Returns the plain identifier if no URL can be built
func (c *ArchiveConfig) RecordLink(ark string) string {
	url := c.RecordURL(ark)
	if url == "" {
		return ark
	}
	// OSC 8 hyperlink format: \e]8;;URL\e\\TEXT\e]8;;\e\\
	return "\x1b]8;;" + url + "\x1b\\" + ark + "\x1b]8;;\x1b\\"
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func envString(key, defaultVal string) string {
	if s, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(s)
	}
	return defaultVal
}

func Load() *Config {
	return &Config{
		Paths: PathsConfig{
			DataDir: envString("ZAMACONA_DATA_DIR", "data"),
			OutDir:  envString("ZAMACONA_OUT_DIR", "out"),
		},
		Pipeline: PipelineConfig{
			Concurrency: envInt("ZAMACONA_CONCURRENCY", constants.WorkerPoolSize),
		},
		Archive: ArchiveConfig{
			Domain: envString("ZAMACONA_ARCHIVE_DOMAIN", constants.DefaultArchiveDomain),
			Lang:   envString("ZAMACONA_LANG", constants.DefaultArchiveLang),
		},
	}
}
