// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/CrudusLiv/StudyFlow-sub000/internal/store"
	"github.com/CrudusLiv/StudyFlow-sub000/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage saved schedules (list, export, users)",
	Long: `Store manages the local SQLite database of saved schedules. Use
subcommands to list a user's entries, export a schedule to YAML or JSON,
or show which users have saved schedules.`,
}

// --- list subcommand ---

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's saved schedule entries",
	Long: `List prints a user's saved entries in chronological order, with
optional filters by kind, course, and time range.`,
	RunE: runStoreList,
}

func runStoreList(cmd *cobra.Command, args []string) error {
	s, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	opts, err := listOptsFromFlags(cmd)
	if err != nil {
		return err
	}

	entries, err := s.ListEntries(context.Background(), opts)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return nil
	}
	printScheduleTable(entries)
	return nil
}

// --- export subcommand ---

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a user's schedule to YAML or JSON",
	RunE:  runStoreExport,
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	s, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	opts, err := listOptsFromFlags(cmd)
	if err != nil {
		return err
	}

	var path string
	switch format {
	case "yaml", "":
		path, err = s.ExportYAML(context.Background(), opts)
	case "json":
		path, err = s.ExportJSON(context.Background(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Println("Exported to", path)
	return nil
}

// --- users subcommand ---

var storeUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Show which users have saved schedules",
	RunE:  runStoreUsers,
}

func runStoreUsers(cmd *cobra.Command, args []string) error {
	s, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	summaries, err := s.Summaries(context.Background())
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No saved schedules.")
		return nil
	}

	fmt.Printf("%-24s  %-8s  %s\n", "User", "Entries", "Saved")
	fmt.Println(strings.Repeat("-", 54))
	for _, sum := range summaries {
		fmt.Printf("%-24s  %-8d  %s\n", sum.UserID, sum.EntryCount, sum.SavedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// --- shared helpers ---

func listOptsFromFlags(cmd *cobra.Command) (store.ListOptions, error) {
	userID, _ := cmd.Flags().GetString("user")
	if userID == "" {
		return store.ListOptions{}, fmt.Errorf("--user required")
	}

	kind, _ := cmd.Flags().GetString("kind")
	course, _ := cmd.Flags().GetString("course")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := store.ListOptions{
		UserID:     userID,
		Kind:       types.EntryKind(kind),
		CourseCode: course,
		MaxResults: limit,
	}

	if fromStr, _ := cmd.Flags().GetString("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return store.ListOptions{}, fmt.Errorf("invalid --from date %q: use YYYY-MM-DD", fromStr)
		}
		opts.From = from
	}
	if toStr, _ := cmd.Flags().GetString("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return store.ListOptions{}, fmt.Errorf("invalid --to date %q: use YYYY-MM-DD", toStr)
		}
		opts.To = to
	}

	return opts, nil
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	storeCmd.PersistentFlags().String("data-dir", "", "base directory for the schedule store (default \"data\")")
	storeCmd.PersistentFlags().Int("max-results", 0, "maximum number of listed entries")

	// List flags.
	storeListCmd.Flags().String("user", "", "user ID to list entries for")
	storeListCmd.Flags().String("kind", "", "filter by kind: study-session, revision, milestone, topic-study, knowledge-check")
	storeListCmd.Flags().String("course", "", "filter by course code")
	storeListCmd.Flags().String("from", "", "only entries starting on or after this date (YYYY-MM-DD)")
	storeListCmd.Flags().String("to", "", "only entries starting before this date (YYYY-MM-DD)")
	storeListCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	storeListCmd.Flags().Bool("json", false, "output entries as JSON")

	// Export flags.
	storeExportCmd.Flags().String("user", "", "user ID to export")
	storeExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	storeExportCmd.Flags().String("kind", "", "filter by kind for partial export")
	storeExportCmd.Flags().String("course", "", "filter by course code for partial export")
	storeExportCmd.Flags().String("from", "", "only entries starting on or after this date (YYYY-MM-DD)")
	storeExportCmd.Flags().String("to", "", "only entries starting before this date (YYYY-MM-DD)")
	storeExportCmd.Flags().Int("limit", 0, "maximum entries to export (0 = all)")

	// Wire subcommands.
	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeUsersCmd)

	rootCmd.AddCommand(storeCmd)
}
