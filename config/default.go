package config

import (
	"bytes"
	"io"
	"os"
	"text/template"

	"rlz/log"
	"rlz/rle"

	"github.com/pkg/errors"
)

var DefaultConfig = Config{
	LogLevel: log.LevelInfo.String(),
	Encoder: EncoderConfig{
		Workers:   4,
		ByteOrder: "little",
		Verify:    false,
	},
	Decoder: DecoderConfig{
		BufferSize: rle.DefaultBufferSize,
	},
}

const defaultConfigTemplateText = `# rlz Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
# - trace
log_level = "{{.LogLevel}}"

# Configures compression.
[encoder]
  # Sets the byte order of each record's 64-bit run length. Can be
  # "little" or "big". Files must be decompressed with the byte order
  # they were compressed with.
  byte_order = "{{.Encoder.ByteOrder}}"
  # Decodes every compressed file in memory and compares its digest
  # with the input's before writing it out.
  verify = {{.Encoder.Verify}}
  # Sets how many chunks the input is split into and encoded
  # concurrently. Overridden by --jobs.
  workers = {{.Encoder.Workers}}

# Configures decompression.
[decoder]
  # Sets the size in bytes of the buffer between the decoder and
  # the output file.
  buffer_size = {{.Decoder.BufferSize}}
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// ReadConfigFile reads the config file in homeDir. A missing file yields
// the defaults.
func ReadConfigFile(homeDir string) (*Config, error) {
	f, err := os.OpenFile(ExpandConfigPath(homeDir), os.O_RDONLY, 0)
	if os.IsNotExist(err) {
		cfg := DefaultConfig
		return &cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(ExpandConfigPath(homeDir), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
