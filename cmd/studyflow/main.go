// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the studyflow CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the studyflow CLI.
var rootCmd = &cobra.Command{
	Use:   "studyflow",
	Short: "Synthesize personal study schedules from course documents",
	Long: `studyflow turns loosely structured course-document text (syllabi,
assignment briefs) into a multi-week study calendar: time-boxed work
sessions, progress checkpoints, review sessions, and recall prompts, all
attributed back to the source assignments.

Each stage is a subcommand: parse extracts structured assignments from
text, schedule runs the full synthesis, and store manages saved
schedules.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./studyflow.yaml or ~/.config/studyflow/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("studyflow")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "studyflow"))
		}
	}

	viper.SetEnvPrefix("STUDYFLOW")
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
