package conf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Conf is the tool configuration. Every field has a working default so the
// tool runs with no config file at all.
type Conf struct {
	DB    DB    `yaml:"db"`
	Cache Cache `yaml:"cache"`
}

// DB locates the counters database.
type DB struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	Index    int    `yaml:"index"`
}

// Cache locates the saved-snapshot base directory.
type Cache struct {
	Dir string `yaml:"dir"`
}

func (c *Conf) setDefaults() {
	if c.DB.Addr == "" {
		c.DB.Addr = "localhost:6379"
	}
	if c.DB.Index == 0 {
		c.DB.Index = 2
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = os.TempDir()
	}
}

func (c *Conf) validate() []error {
	var errs []error
	if !strings.Contains(c.DB.Addr, ":") {
		errs = append(errs, fmt.Errorf("db.addr %q must be host:port", c.DB.Addr))
	}
	if c.DB.Index < 0 || c.DB.Index > 15 {
		errs = append(errs, fmt.Errorf("db.index %d out of range 0-15", c.DB.Index))
	}
	return errs
}

// Load reads the config file at path. An empty path, or a missing file at the
// default locations, yields the defaults.
func Load(path string) (*Conf, error) {
	c := &Conf{}
	if path == "" {
		path = firstExisting(defaultPaths())
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	c.setDefaults()
	if errs := c.validate(); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

func defaultPaths() []string {
	paths := []string{"/etc/sonic/tunnelstat.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home+"/.tunnelstat.yaml")
	}
	return paths
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
