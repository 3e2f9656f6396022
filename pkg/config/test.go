package config

import (
	"time"
)

// NewForTest returns a config suitable for in-process tests without reading
// the environment.
func NewForTest() *Config {
	cfg := &Config{
		DatabaseBusyTimeout:       5 * time.Second,
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		DatabaseMaxRetries:        3,
		GoogleBooksBaseURL:        "https://www.googleapis.com/books/v1",
		GoogleBooksRateLimit:      2,
		GoogleBooksTimeout:        10 * time.Second,
		Hostname:                  "test",
		ServerPort:                8000,
	}
	loadTestConfig(cfg)
	return cfg
}

func loadTestConfig(cfg *Config) {
	cfg.DatabaseFilePath = ":memory:"
	// Tests talk to in-process stub servers, so the polite provider limit
	// would only add wall-clock time.
	cfg.GoogleBooksRateLimit = 1000
	cfg.ServerHost = "127.0.0.1"
	// Port 0 lets the OS pick a free port so parallel test runs don't collide.
	cfg.ServerPort = 0
}
