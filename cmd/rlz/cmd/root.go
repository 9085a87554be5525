package cmd

import (
	"fmt"
	"os"

	"rlz/cli"
	"rlz/config"
	"rlz/log"
	"rlz/rle"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	decompress bool
	toStdout   bool

	cfg *config.Config
	lgr = log.WithModule("main")
)

var rootCmd = &cobra.Command{
	Use:   "rlz [OPTION]... FILE",
	Short: "Parallel run-length compressor.",
	Long: `Compresses FILE into FILE.rlz, or with --decompress restores FILE
from FILE.rlz. Compression splits the input across --jobs workers.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.CalledAs() == "init" || cmd.CalledAs() == "version" {
			return nil
		}
		loaded, err := cli.LoadConfig(cmd)
		if err != nil {
			return errors.Wrap(err, "error loading config")
		}
		level, err := loaded.Level()
		if err != nil {
			return errors.Wrap(err, "error parsing log level")
		}
		log.SetLevel(level)
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			if cmd.Flags().NFlag() == 0 {
				return errors.New("invalid number of arguments")
			}
			return errors.New("missing input file")
		}
		inPath := args[0]

		format, err := cfg.Format()
		if err != nil {
			return err
		}
		if decompress {
			return runDecompress(inPath, format)
		}
		return runCompress(inPath, format)
	},
}

func runCompress(inPath string, format rle.Format) error {
	enc, err := rle.NewEncoder(cfg.Encoder.Workers, format)
	if err != nil {
		return err
	}
	opts := &cli.CompressOpts{
		Encoder: enc,
		Verify:  cfg.Encoder.Verify,
	}

	var stats *cli.CompressStats
	outPath := cli.CompressedName(inPath)
	if toStdout {
		outPath = "-"
		if err := cli.EnsureNotTerminal(os.Stdout); err != nil {
			return err
		}
		stats, err = cli.CompressTo(os.Stdout, inPath, opts)
	} else {
		stats, err = cli.CompressFile(inPath, outPath, opts)
	}
	if err != nil {
		return err
	}

	lgr.Info(
		"compressed file",
		"in", inPath,
		"out", outPath,
		"workers", stats.Workers,
		"in_bytes", stats.InputBytes,
		"out_bytes", stats.OutputBytes,
		"records", stats.Records,
		"ratio", fmt.Sprintf("%.3f", stats.Ratio()),
		"elapsed", stats.Elapsed,
	)
	if cfg.Encoder.Verify {
		lgr.Info("verified output", "digest", stats.Digest.String())
	}
	return nil
}

func runDecompress(inPath string, format rle.Format) error {
	outPath, err := cli.DecompressedName(inPath)
	if err != nil {
		return err
	}
	dec := rle.NewDecoder(format, cfg.Decoder.BufferSize)

	var stats *cli.DecompressStats
	if toStdout {
		outPath = "-"
		stats, err = cli.DecompressTo(os.Stdout, inPath, dec)
	} else {
		stats, err = cli.DecompressFile(inPath, outPath, dec)
	}
	if err != nil {
		return err
	}

	lgr.Info(
		"decompressed file",
		"in", inPath,
		"out", outPath,
		"records", stats.Records,
		"in_bytes", stats.InputBytes,
		"out_bytes", stats.OutputBytes,
		"elapsed", stats.Elapsed,
	)
	return nil
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, config.DefaultHomeDir, "Home directory for rlz's config file.")
	rootCmd.PersistentFlags().String(cli.FlagLogLevel, config.DefaultConfig.LogLevel, "Log level (trace, debug, info, warn, error, fatal).")
	rootCmd.Flags().BoolP(cli.FlagCompress, "c", false, "Compress FILE (the default).")
	rootCmd.Flags().BoolVarP(&decompress, cli.FlagDecompress, "d", false, "Decompress FILE, which must end in .rlz.")
	rootCmd.Flags().StringP(cli.FlagJobs, "j", fmt.Sprint(config.DefaultConfig.Encoder.Workers), "Number of compression workers.")
	rootCmd.Flags().Bool(cli.FlagVerify, false, "Decode the compressed output in memory and check it against the input.")
	rootCmd.Flags().BoolVar(&toStdout, cli.FlagStdout, false, "Write output to stdout instead of a file.")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", rootCmd.Name(), err)
		os.Exit(1)
	}
}
