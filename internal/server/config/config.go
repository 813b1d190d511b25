// Package config handles configuration for the liftlog server, including
// defaults, a JSON overlay and command-line flags.
package config

import "time"

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the HTTP form interface.
//   - DatabaseDriver: "sqlite" (embedded) or "postgres".
//   - DatabaseDSN: file path / URI for SQLite, connection string for PostgreSQL (pgx).
//   - SessionSecret: HMAC secret signing the session cookie. Override in production.
//   - SessionTTL: lifetime of a session and therefore of its draft.
//   - ReadTimeout / WriteTimeout: HTTP server timeouts.
type Config struct {
	EndpointAddrHTTP string
	DatabaseDriver   string
	DatabaseDSN      string
	SessionSecret    string
	SessionTTL       time.Duration
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":10000"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "components.db"
	c.SessionSecret = "supersecret"
	c.SessionTTL = 24 * time.Hour
	c.ReadTimeout = 10 * time.Second
	c.WriteTimeout = 10 * time.Second
}

// LoadConfig applies defaults, then the JSON file named by -c/-config, then
// the flags found in args (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
