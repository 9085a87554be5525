package cli

import (
	"strconv"

	"rlz/config"
	"rlz/rle"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func GetHomeDir(cmd *cobra.Command) string {
	homeDirUnexp, err := cmd.Flags().GetString(FlagHome)
	if err != nil {
		panic(err)
	}
	homeDir := config.ExpandHomePath(homeDirUnexp)
	return homeDir
}

func InitHomeDir(cmd *cobra.Command) (string, error) {
	homeDir := GetHomeDir(cmd)
	exists, err := config.HomeDirExists(homeDir)
	if err != nil {
		return "", err
	}
	if exists {
		return "", errors.New("home directory is already initialized")
	}
	if err := config.InitHomeDir(homeDir); err != nil {
		return "", err
	}
	return homeDir, nil
}

// LoadConfig reads the config file from the home directory, falling back to
// the defaults if there is none, and applies any flags set on cmd on top.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	homeDir := GetHomeDir(cmd)
	exists, err := config.HomeDirExists(homeDir)
	if err != nil {
		return nil, errors.Wrap(err, "error checking home directory")
	}

	cfg := config.DefaultConfig
	if exists {
		read, err := config.ReadConfigFile(homeDir)
		if err != nil {
			return nil, err
		}
		cfg = *read
	}

	flags := cmd.Flags()
	if flags.Lookup(FlagLogLevel) != nil && flags.Changed(FlagLogLevel) {
		cfg.LogLevel, _ = flags.GetString(FlagLogLevel)
	}
	if flags.Lookup(FlagJobs) != nil && flags.Changed(FlagJobs) {
		raw, _ := flags.GetString(FlagJobs)
		jobs, err := ParseJobs(raw)
		if err != nil {
			return nil, err
		}
		cfg.Encoder.Workers = jobs
	}
	if flags.Lookup(FlagVerify) != nil && flags.Changed(FlagVerify) {
		cfg.Encoder.Verify, _ = flags.GetBool(FlagVerify)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseJobs parses a worker count the way strtol does with base 0, so
// "0x10" and "010" are accepted.
func ParseJobs(raw string) (int, error) {
	jobs, err := strconv.ParseInt(raw, 0, 0)
	if err != nil || jobs < 1 {
		return 0, errors.Wrapf(rle.ErrInvalidWorkerCount, "invalid argument - '%s'", raw)
	}
	return int(jobs), nil
}
