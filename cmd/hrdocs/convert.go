package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lifeofgurpreet/hr-document-generator/internal/convert"
)

var convertOutDir string

var convertCmd = &cobra.Command{
	Use:   "convert <markdown-file-or-dir>",
	Short: "Convert generated markdown documents to print-ready HTML",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutDir, "out", "o", "", "Output directory (defaults to the input's directory)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	converter := convert.New()

	if strings.HasSuffix(input, ".md") {
		outDir := convertOutDir
		if outDir == "" {
			outDir = filepath.Dir(input)
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
		outName := strings.TrimSuffix(filepath.Base(input), ".md") + ".html"
		outPath := filepath.Join(outDir, outName)
		if err := converter.ConvertFile(input, outPath); err != nil {
			return err
		}
		fmt.Println(outPath)
		return nil
	}

	outDir := convertOutDir
	if outDir == "" {
		outDir = input
	}
	outputs, err := converter.ConvertDir(input, outDir)
	if err != nil {
		return err
	}
	for _, out := range outputs {
		fmt.Println(out)
	}
	return nil
}
