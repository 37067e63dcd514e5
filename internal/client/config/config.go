// Package config handles configuration for the CLI client.
package config

import (
	"flag"
	"os"

	"github.com/JoshuaSkootsky/roll-own-auth/internal/flagx"
)

// Config holds runtime settings for the auth CLI.
type Config struct {
	ServerEndpointAddr string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8081"
}

// LoadConfig builds a Config by applying defaults and overlaying
// command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the auth server
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "auth server base URL")
	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	return cfg
}
