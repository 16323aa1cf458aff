// Package config holds the settings of the command line tools, loaded from
// a YAML file.
package config

import (
	"bytes"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/xml"
)

// Config is the settings of a tool run.
type Config struct {
	// Release is the release that produced the data, such as "jd2019".
	Release string `yaml:"release"`

	// Root is the directory holding the unpacked game data.
	Root string `yaml:"root"`

	// Encoding is the character set of written XML documents.
	Encoding string `yaml:"encoding"`

	// LogLevel is the minimum level of logged lines, such as "warn".
	LogLevel string `yaml:"log_level"`

	// Workers is the number of files processed concurrently. Zero means one
	// per CPU.
	Workers int `yaml:"workers"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Release:  ubiart.JD2022.String(),
		Root:     ".",
		Encoding: xml.DefaultEncoding,
		LogLevel: zerolog.LevelInfoValue,
	}
}

// Parse decodes settings from YAML data. Settings absent from data keep
// their default. Unknown keys are an error.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && len(bytes.TrimSpace(data)) > 0 {
		return c, errors.Wrap(err, "parse config")
	}
	return c, c.Validate()
}

// Load reads settings from the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), errors.Wrap(err, "load config")
	}
	c, err := Parse(data)
	if err != nil {
		return c, errors.Wrapf(err, "%s", path)
	}
	return c, nil
}

// Validate returns an error for the first setting that is not usable.
func (c Config) Validate() error {
	if _, err := c.ParseRelease(); err != nil {
		return err
	}
	if !xml.SupportedEncoding(c.Encoding) {
		return errors.Errorf("unsupported encoding %q", c.Encoding)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return errors.Errorf("negative worker count %d", c.Workers)
	}
	return nil
}

// ParseRelease returns the configured release.
func (c Config) ParseRelease() (ubiart.Release, error) {
	return ubiart.ParseRelease(c.Release)
}

// Level returns the configured log level.
func (c Config) Level() (zerolog.Level, error) {
	l, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "log level")
	}
	return l, nil
}

// WorkerCount returns the number of files to process concurrently.
func (c Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Marshal encodes the settings as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
