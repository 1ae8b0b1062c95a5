package cli

import (
	"github.com/spf13/cobra"
)

var renumberCmd = &cobra.Command{
	Use:   "renumber [subtitle_file]",
	Short: "Rewrite a subtitle file with sequential numbering",
	Long: `Parse a SubRip file and write it back with cues numbered from 1
in file order. Timecodes are re-rendered and durations are rounded to
whole seconds.

Examples:
  srtkit renumber movie.srt
  srtkit renumber movie.srt -o -`,
	Args: cobra.ExactArgs(1),
	RunE: runRenumber,
}

func init() {
	rootCmd.AddCommand(renumberCmd)
}

func runRenumber(cmd *cobra.Command, args []string) error {
	input := args[0]

	outputPath, err := resolveOutput(cmd, input)
	if err != nil {
		return err
	}

	doc, err := openDocument(input)
	if err != nil {
		return err
	}

	return writeDocument(cmd, doc, outputPath)
}
