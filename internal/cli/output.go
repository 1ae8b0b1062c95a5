package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mgpai22/srtkit/internal/subtitle"
	"github.com/spf13/cobra"
)

const stdoutPath = "-"

// picks -o or <base>.<suffix>.srt and refuses to clobber unless allowed
func resolveOutput(cmd *cobra.Command, input string) (string, error) {
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == stdoutPath {
		return outputPath, nil
	}
	if outputPath == "" {
		outputPath = subtitle.OutputPath(input, cfg.Output.Suffix)
	}

	if force || cfg.Output.Overwrite {
		return outputPath, nil
	}
	if _, err := os.Stat(outputPath); err == nil {
		return "", fmt.Errorf(
			"output file %s already exists: use --force or set output.overwrite",
			outputPath,
		)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to check output file: %w", err)
	}
	return outputPath, nil
}

func openDocument(path string) (*subtitle.Document, error) {
	logger.Infow("Parsing subtitle file", "input", path)
	doc, err := subtitle.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse subtitle file: %w", err)
	}
	logger.Infow("Parsed subtitle file",
		"input", path,
		"sections", doc.Len(),
	)
	return doc, nil
}

func writeDocument(
	cmd *cobra.Command,
	doc *subtitle.Document,
	outputPath string,
) error {
	if outputPath == stdoutPath {
		if _, err := doc.WriteTo(cmd.OutOrStdout()); err != nil {
			return err
		}
		return nil
	}

	logger.Infow("Writing output file", "output", outputPath)
	if err := doc.Write(outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles written: %s\n", absOutput)
	fmt.Fprintf(cmd.OutOrStdout(), "  Sections: %d\n", doc.Len())
	return nil
}
