package config

import (
	"io"

	"rlz/log"
	"rlz/rle"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string        `mapstructure:"log_level"`
	Encoder  EncoderConfig `mapstructure:"encoder"`
	Decoder  DecoderConfig `mapstructure:"decoder"`
}

type EncoderConfig struct {
	Workers   int    `mapstructure:"workers"`
	ByteOrder string `mapstructure:"byte_order"`
	Verify    bool   `mapstructure:"verify"`
}

type DecoderConfig struct {
	BufferSize int `mapstructure:"buffer_size"`
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return config, nil
}

// applyDefaults fills in every option left unset (or set to its zero
// value) from DefaultConfig.
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultConfig.LogLevel
	}
	if c.Encoder.Workers == 0 {
		c.Encoder.Workers = DefaultConfig.Encoder.Workers
	}
	if c.Encoder.ByteOrder == "" {
		c.Encoder.ByteOrder = DefaultConfig.Encoder.ByteOrder
	}
	if c.Decoder.BufferSize == 0 {
		c.Decoder.BufferSize = DefaultConfig.Decoder.BufferSize
	}
}

func (c *Config) Validate() error {
	if _, err := log.NewLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Encoder.Workers < 1 {
		return errors.Wrapf(rle.ErrInvalidWorkerCount, "encoder.workers = %d", c.Encoder.Workers)
	}
	if _, err := rle.ParseByteOrder(c.Encoder.ByteOrder); err != nil {
		return errors.Wrap(err, "encoder.byte_order")
	}
	if c.Decoder.BufferSize < 1 {
		return errors.Errorf("decoder.buffer_size must be positive, got %d", c.Decoder.BufferSize)
	}
	return nil
}

// Format returns the record layout selected by encoder.byte_order. Both
// directions use it, so a file must be decompressed with the byte order it
// was compressed with.
func (c *Config) Format() (rle.Format, error) {
	return rle.NewFormat(c.Encoder.ByteOrder)
}

func (c *Config) Level() (log.Level, error) {
	return log.NewLevel(c.LogLevel)
}
