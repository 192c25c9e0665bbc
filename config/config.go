// Package config loads judgekit's optional TOML configuration file.
//
// Example file:
//
//	[log]
//	logfile = "/var/log/judgekit.log"
//	max_log_size = 10   # megabytes
//	max_log_age = 7     # days
//	verbose = false
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/judgekit/logging"
)

// ErrUnknownKey indicates the file sets keys judgekit does not understand,
// which is almost always a typo.
var ErrUnknownKey = errors.New("config: unknown key")

// Config is the decoded configuration file.
type Config struct {
	Log logging.Config `toml:"log"`
}

// Default returns the configuration used when no file is given:
// log to stderr, no debug output.
func Default() *Config {
	return &Config{}
}

// Load decodes the TOML file at path. An empty path returns Default().
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("config: could not decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	return c, nil
}
