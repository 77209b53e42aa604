package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "hrdocs",
	Short: "Generate and convert HR documents from the command line",
	Long: `hrdocs runs the same document pipeline as the HTTP service:
employee data is merged into the markdown templates, optionally polished
through the generation backend, and written to the output directory.`,
	SilenceUsage: true,
}

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(convertCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
