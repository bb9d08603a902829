package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
)

// Data sources the catalog can be loaded from.
const (
	SourceEmbedded  = "embedded"
	SourceDirectory = "dir"
	SourceHTTP      = "http"
	SourceFirestore = "firestore"
)

// ServerConfig is a struct that contains configuration values for the server.
type ServerConfig struct {
	// AllowedOrigins is a list of URLs that the server will accept requests from.
	AllowedOrigins []string
	// Port is the port the server should run on.
	Port int

	// DataSource selects where the catalog data files are read from: embedded, dir, http or
	// firestore.
	DataSource string
	// DataDir is the directory holding courses.json and friends when DataSource is dir.
	DataDir string
	// DataBaseURL is the URL prefix of the data files when DataSource is http.
	DataBaseURL string
	// FetchTimeout bounds a single data file request.
	FetchTimeout time.Duration

	// FirebaseProjectID and FirebaseCredentialsFile configure the firestore data source. Empty
	// credentials use the application default credentials.
	FirebaseProjectID       string
	FirebaseCredentialsFile string
	// FirestoreWatch reloads the catalog whenever a watched Firestore collection changes.
	FirestoreWatch bool

	// ServeDataFiles exposes the raw data files at the site root, e.g. /courses.json.
	ServeDataFiles bool
}

func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		AllowedOrigins: []string{"*"},
		Port:           8080,
		DataSource:     SourceEmbedded,
		DataDir:        "data",
		FetchTimeout:   10 * time.Second,
		ServeDataFiles: true,
	}
}

// Load returns the default configuration overridden by NEXTSKILL_* environment variables. A
// .env file in the working directory is read first if it exists.
func Load() (*ServerConfig, error) {
	if err := godotenv.Load(); err != nil {
		glog.Infoln("🙂️ No .env file found. Using the environment and defaults.")
	}

	return FromEnv(os.Getenv)
}

// FromEnv applies overrides read through getenv to the default configuration.
func FromEnv(getenv func(string) string) (*ServerConfig, error) {
	cfg := DefaultConfig()

	if v := getenv("NEXTSKILL_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	if v := getenv("NEXTSKILL_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid NEXTSKILL_PORT %q", v)
		}
		cfg.Port = port
	}
	if v := getenv("NEXTSKILL_DATA_SOURCE"); v != "" {
		cfg.DataSource = strings.ToLower(v)
	}
	if v := getenv("NEXTSKILL_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := getenv("NEXTSKILL_DATA_BASE_URL"); v != "" {
		cfg.DataBaseURL = v
	}
	if v := getenv("NEXTSKILL_FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid NEXTSKILL_FETCH_TIMEOUT %q", v)
		}
		cfg.FetchTimeout = d
	}
	if v := getenv("NEXTSKILL_FIREBASE_PROJECT_ID"); v != "" {
		cfg.FirebaseProjectID = v
	}
	if v := getenv("NEXTSKILL_FIREBASE_CREDENTIALS"); v != "" {
		cfg.FirebaseCredentialsFile = v
	}
	if v := getenv("NEXTSKILL_FIRESTORE_WATCH"); v != "" {
		watch, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid NEXTSKILL_FIRESTORE_WATCH %q", v)
		}
		cfg.FirestoreWatch = watch
	}
	if v := getenv("NEXTSKILL_SERVE_DATA_FILES"); v != "" {
		serve, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid NEXTSKILL_SERVE_DATA_FILES %q", v)
		}
		cfg.ServeDataFiles = serve
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the selected data source has what it needs.
func (c *ServerConfig) Validate() error {
	switch c.DataSource {
	case SourceEmbedded, SourceFirestore:
	case SourceDirectory:
		if c.DataDir == "" {
			return fmt.Errorf("data source %q requires NEXTSKILL_DATA_DIR", c.DataSource)
		}
	case SourceHTTP:
		if c.DataBaseURL == "" {
			return fmt.Errorf("data source %q requires NEXTSKILL_DATA_BASE_URL", c.DataSource)
		}
	default:
		return fmt.Errorf("unknown data source %q", c.DataSource)
	}

	return nil
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
