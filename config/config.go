package config

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/go-imsto/imresize/image"
)

// NAME is the environment prefix, e.g. IMRESIZE_FILTER
const NAME = "imresize"

// Version is set at build time with -ldflags "-X github.com/go-imsto/imresize/config.Version=..."
var Version = "dev"

// Config defaults loaded from the environment, overridable by flags
type Config struct {
	Filter   image.Filter `envconfig:"FILTER" default:"nearest"`
	Engine   string       `envconfig:"ENGINE" default:"imaging"`
	Quality  int          `envconfig:"QUALITY" default:"75"`
	Debug    bool         `envconfig:"DEBUG"`
	LogLevel string       `envconfig:"LOG_LEVEL" default:"warn"`
}

// Current the loaded config
var Current = new(Config)

func init() {
	_ = Load()
}

// Load reads IMRESIZE_* variables into Current
func Load() error {
	c := new(Config)
	if err := envconfig.Process(NAME, c); err != nil {
		return err
	}
	Current = c
	return nil
}

// InDevelop ...
func InDevelop() bool {
	return Current.Debug
}
