// Copyright ETOS group, Aalto University, 2026. MIT license.

// Package main is the entry point for the msds-scraper CLI. It scrapes
// hazard statement data (CAS numbers, H-phrases, CMR and SVHC flags) from
// Sigma-Aldrich MSDS PDF files in a directory and prints a per-file report.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/etos-chem/msds-scraper/internal/hazard"
	"github.com/etos-chem/msds-scraper/internal/msds"
	"github.com/etos-chem/msds-scraper/internal/pdftext"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd scans a directory of MSDS files. The scan is the root action so
// the tool runs with no arguments, the way the laboratory workflow expects:
// download the sheets, run the scraper in the same directory.
var rootCmd = &cobra.Command{
	Use:   "msds-scraper [directory]",
	Short: "Scrape hazard statements from Sigma-Aldrich MSDS files",
	Long: `msds-scraper reads every .pdf file in a directory (default: the current
directory), extracts the compound name, CAS number, and GHS hazard statement
codes, and prints a per-file safety summary. Hazard codes are classified
against the CMR and particularly-hazardous (SVHC) lists required by the
Aalto School of Chemical Engineering laboratory safety process.

A corrupt or image-only PDF is still reported, with NOT FOUND fields; only an
unreadable directory aborts the run.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	scanner := msds.Scanner{
		Extractor: pdftext.New(),
		Lists:     hazardLists(),
	}

	records, err := scanner.Scan(dir, os.Stdout)
	if err != nil {
		return err
	}

	if yamlPath, _ := cmd.Flags().GetString("yaml"); yamlPath != "" {
		return msds.WriteYAML(yamlPath, records)
	}
	return nil
}

// hazardLists returns the compiled-in code lists with any config overrides
// applied. An absent key leaves that list at its default.
func hazardLists() hazard.Lists {
	lists := hazard.Defaults()
	if viper.IsSet("hazard.red-flags") {
		lists.RedFlags = viper.GetStringSlice("hazard.red-flags")
	}
	if viper.IsSet("hazard.cmr") {
		lists.CMR = viper.GetStringSlice("hazard.cmr")
	}
	return lists
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./msds-scraper.yaml or ~/.config/msds-scraper/msds-scraper.yaml)")
	rootCmd.Flags().String("yaml", "", "also write the scan records to a YAML report file")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("msds-scraper")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "msds-scraper"))
		}
	}

	viper.SetEnvPrefix("MSDS_SCRAPER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
