package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags.
//
//	-a string   HTTP bind address (e.g. ":10000")
//	-r string   database driver: sqlite | postgres
//	-d string   database DSN
//	-s string   session signing secret
//	-t int      session lifetime, minutes
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-r", "-d", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "r", config.DatabaseDriver, "database driver (sqlite|postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SessionSecret, "s", config.SessionSecret, "session secret key")
	sessionTTL := fs.Int("t", int(config.SessionTTL.Minutes()), "session lifetime (in minutes)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// -t has minute resolution; leave a finer TTL from defaults or JSON alone.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
		}
	})
	return nil
}
