// Package config is used to configure the application settings.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config - application configuration structure.
type Config struct {
	// Addr: address on which the local dashboard will listen (e.g., "localhost:3000").
	Addr string `json:"listen_address"`
	// APIBaseURL: base URL of the shortener backend the dashboard talks to.
	APIBaseURL string `json:"api_base_url"`
	// TokenFile: path to the file the credential is persisted in between runs.
	TokenFile string `json:"token_file"`
	// ConfigPath: path to configuration file.
	ConfigPath string
	// Timeout: request processing timeout in seconds, applied to backend calls
	// and to dashboard handlers.
	Timeout int
	// SuccessDwell: seconds a settings flow shows its success state before
	// closing itself.
	SuccessDwell int
}

var cfgDefault = Config{
	Addr:         "localhost:3000",
	APIBaseURL:   "http://localhost:8000",
	TokenFile:    defaultTokenFile(),
	Timeout:      15,
	SuccessDwell: 2,
	ConfigPath:   "",
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".linkboard-token"
	}
	return filepath.Join(home, ".linkboard", "token")
}

// NewConfig creates and returns a new instance of the Config structure with predefined values.
func NewConfig() *Config {
	c := cfgDefault
	return &c
}

// ErrReadConfig - error reading json config.
var ErrReadConfig = errors.New("reading json config")

// ErrParseConfig - error parsing json config.
var ErrParseConfig = errors.New("parse json config")

// Init initializes the application configuration using a .env file,
// environment variables and command-line flags, in increasing precedence.
func Init(c *Config) error {
	_ = godotenv.Load()

	if val, exist := os.LookupEnv("LINKBOARD_ADDRESS"); exist {
		c.Addr = val
	}
	if val, exist := os.LookupEnv("LINKBOARD_API_URL"); exist {
		c.APIBaseURL = val
	}
	if val, exist := os.LookupEnv("LINKBOARD_TOKEN_FILE"); exist {
		c.TokenFile = val
	}
	if val, exist := os.LookupEnv("LINKBOARD_TIMEOUT"); exist {
		valInt, err := strconv.Atoi(val)
		if err == nil {
			c.Timeout = valInt
		}
	}

	var flagCfg Config
	flag.StringVar(&flagCfg.Addr, "a", "", "dashboard listen address")
	flag.StringVar(&flagCfg.APIBaseURL, "api", "", "base URL of the shortener backend")
	flag.StringVar(&flagCfg.TokenFile, "t", "", "path to the persisted credential file")
	flag.StringVar(&flagCfg.ConfigPath, "c", "", "path to config file (json)")

	flag.Parse()

	if flagCfg.ConfigPath != "" {
		file, err := os.ReadFile(flagCfg.ConfigPath)
		if err != nil {
			return ErrReadConfig
		}
		if err := json.Unmarshal(file, &c); err != nil {
			return ErrParseConfig
		}
	}

	// override
	if flagCfg.Addr != "" {
		c.Addr = flagCfg.Addr
	}
	if flagCfg.APIBaseURL != "" {
		c.APIBaseURL = flagCfg.APIBaseURL
	}
	if flagCfg.TokenFile != "" {
		c.TokenFile = flagCfg.TokenFile
	}

	return nil
}
