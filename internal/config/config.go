package config

import "os"

// Config holds the service configuration, read once from the environment
// at startup. Every value is optional: a missing database URL or name
// does not stop the process, it only shows up in diagnostic output.
type Config struct {
	Port         string
	DatabaseURL  string
	DatabaseName string
}

// Load reads the configuration from the environment.
func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	return Config{
		Port:         port,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
	}
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
