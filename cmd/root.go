package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zamacona",
	Short: "A CLI tool for cleaning the Zamacona genealogical record set",
	Long: `Zamacona cleans a CSV of genealogical records: it normalizes person
names, classifies each record by how confidently it belongs to the Zamacona
family, promotes records naming the surname, checks children's surnames
against their parents' and audits every surname against a canonical
whitelist.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().String("data-dir", "", "Directory with lexical resource files (overrides ZAMACONA_DATA_DIR)")
	rootCmd.PersistentFlags().String("out-dir", "", "Directory for outputs and logs (overrides ZAMACONA_OUT_DIR)")
	rootCmd.PersistentFlags().Int("concurrency", 0, "Number of parallel workers (overrides ZAMACONA_CONCURRENCY)")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
