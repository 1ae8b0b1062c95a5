package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/mgpai22/srtkit/internal/subtitle"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_file]",
	Short: "List the cues of a subtitle file",
	Long: `Print every cue with its start, duration and content.

On a terminal the cues are shown as a table; otherwise one line per cue
is printed in the form (start, duration), "content".

Examples:
  srtkit inspect movie.srt
  srtkit inspect movie.srt | grep -n "Hello"`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, err := openDocument(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if isTerminal(out) {
		fmt.Fprintln(out, renderSections(doc))
		return nil
	}

	for i, section := range doc.Sections() {
		fmt.Fprintf(out, "%d %s\n", i+1, section)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func renderSections(doc *subtitle.Document) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Start", "Duration", "Timecode", "Content"})

	for i, section := range doc.Sections() {
		tw.AppendRow(table.Row{
			i + 1,
			strconv.FormatFloat(section.Start(), 'f', -1, 64),
			strconv.FormatFloat(section.Duration(), 'f', -1, 64),
			section.Timecode(),
			strconv.Quote(section.Content()),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, WidthMax: 60},
	})
	tw.AppendFooter(table.Row{"", "", "", "Sections", doc.Len()})

	return tw.Render()
}
