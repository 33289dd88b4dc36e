package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"library/internal/app"
	"library/internal/config"
)

func main() {
	var (
		dataDir string
		debug   bool
	)

	rootCmd := &cobra.Command{
		Use:   "library",
		Short: "Interactive library catalog manager",
		Long: `Manages a small library's catalog: books with physical copies,
authors, students, and loans. Records are kept as delimited text files
that are loaded at startup and written back on exit.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if it exists
			if err := godotenv.Load(); err != nil {
				log.Println("No .env file found, using system environment variables")
			}

			cfg, err := config.LoadFromEnv()
			if err != nil {
				return err
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			if debug {
				cfg.Debug = true
			}

			application, err := app.New(cfg)
			if err != nil {
				return err
			}
			return application.Run()
		},
	}

	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "directory holding the catalog data files (overrides LIBRARY_DATA_DIR)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable development logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
