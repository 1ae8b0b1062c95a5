package cli

import (
	"github.com/mgpai22/srtkit/internal/config"
	"github.com/mgpai22/srtkit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	force      bool
	configPath string
	cfg        *config.Config
	logger     *logging.Logger

	// replaced in tests to capture log entries
	newLogger = logging.NewLogger
)

var rootCmd = &cobra.Command{
	Use:   "srtkit",
	Short: "Edit SubRip subtitle timing and content",
	Long: `srtkit parses SubRip (.srt) files, applies edits such as shifting
or merging, and writes them back renumbered from 1.

Timecodes are written without zero padding (1:2:3,250).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = newLogger(verbose || cfg.Log.Verbose)
		logger.Debugw("Loaded configuration",
			"config", configPath,
			"suffix", cfg.Output.Suffix,
			"overwrite", cfg.Output.Overwrite,
		)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&force, "force", "f", false, "Overwrite an existing output file")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().
		StringP("output", "o", "", "Output file path (- for stdout)")
}
