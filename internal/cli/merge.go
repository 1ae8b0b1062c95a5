package cli

import (
	"github.com/mgpai22/srtkit/internal/subtitle"
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [subtitle_file] [subtitle_file]...",
	Short: "Concatenate subtitle files into one",
	Long: `Merge SubRip files in argument order. Cues keep their times and
are renumbered from 1 across the whole output; nothing is re-sorted.

The default output name is derived from the first file.

Examples:
  srtkit merge part1.srt part2.srt -o full.srt`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	outputPath, err := resolveOutput(cmd, args[0])
	if err != nil {
		return err
	}

	merged := subtitle.New()
	for _, input := range args {
		doc, err := openDocument(input)
		if err != nil {
			return err
		}
		merged.Merge(doc)
	}

	logger.Infow("Merged subtitle files",
		"files", len(args),
		"sections", merged.Len(),
	)

	return writeDocument(cmd, merged, outputPath)
}
