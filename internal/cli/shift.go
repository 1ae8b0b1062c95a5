package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [subtitle_file]",
	Short: "Move every cue by a number of seconds",
	Long: `Shift all cues of a SubRip file forward or backward in time.

Negative offsets move cues earlier. Cues pushed before zero are kept
and reported as warnings.

Examples:
  srtkit shift movie.srt --by 2.5
  srtkit shift movie.srt --by=-1 -o fixed.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().
		Float64P("by", "b", 0, "Offset in seconds (required)")

	_ = shiftCmd.MarkFlagRequired("by")
}

func runShift(cmd *cobra.Command, args []string) error {
	input := args[0]
	offset, _ := cmd.Flags().GetFloat64("by")

	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return fmt.Errorf("offset must be a finite number, got %v", offset)
	}

	outputPath, err := resolveOutput(cmd, input)
	if err != nil {
		return err
	}

	doc, err := openDocument(input)
	if err != nil {
		return err
	}

	logger.Infow("Shifting sections",
		"sections", doc.Len(),
		"offset", offset,
	)
	doc.Shift(offset)

	for i, section := range doc.Sections() {
		if section.Start() < 0 {
			logger.Warnw("Section starts before zero",
				"section", i+1,
				"start", section.Start(),
			)
		}
	}

	return writeDocument(cmd, doc, outputPath)
}
