// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/CrudusLiv/StudyFlow-sub000/internal/schedule"
	"github.com/CrudusLiv/StudyFlow-sub000/internal/store"
	"github.com/CrudusLiv/StudyFlow-sub000/pkg/types"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule [file]",
	Short: "Synthesize a study schedule from course-document text",
	Long: `Schedule runs the full pipeline: parse assignments from the input
text, resolve due dates, estimate effort, distribute study sessions, and
generate supplementary entries (final reviews, progress checks,
topic-study sessions, knowledge checks).

The result is printed as a chronological table by default. Use --save
to persist it for the user, --json for machine-readable output, or
--topics to add topic-study sessions from a YAML topic list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSchedule,
}

func runSchedule(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	userID, _ := cmd.Flags().GetString("user")

	meta := metadataFromFlags(cmd)
	if topicsPath, _ := cmd.Flags().GetString("topics"); topicsPath != "" {
		topics, err := loadTopics(topicsPath)
		if err != nil {
			return err
		}
		meta.Topics = topics
	}

	entries := schedule.SynthesizeText(text, userID, meta)
	if len(entries) == 0 {
		fmt.Println("No schedulable assignments found.")
		return nil
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		if userID == "" {
			return fmt.Errorf("--save requires --user")
		}
		s, err := store.NewStore(storeConfig(cmd))
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.SaveSchedule(context.Background(), userID, entries); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %d entries for user %s\n", len(entries), userID)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	printScheduleTable(entries)
	return nil
}

// printScheduleTable renders entries sorted chronologically; the engine
// itself imposes no order.
func printScheduleTable(entries []types.ScheduleEntry) {
	sorted := make([]types.ScheduleEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	fmt.Printf("%-16s  %-16s  %-18s  %-8s  %s\n", "Start", "End", "Kind", "Priority", "Title")
	fmt.Println(strings.Repeat("-", 100))

	counts := map[types.EntryKind]int{}
	for _, e := range sorted {
		counts[e.Kind]++
		title := e.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Printf("%-16s  %-16s  %-18s  %-8s  %s\n",
			e.Start.Format("2006-01-02 15:04"), e.End.Format("2006-01-02 15:04"),
			e.Kind, e.Priority, title)
	}

	fmt.Printf("\n%d entries (%d sessions, %d revisions, %d milestones, %d topics, %d checks)\n",
		len(sorted),
		counts[types.KindStudySession], counts[types.KindRevision],
		counts[types.KindMilestone], counts[types.KindTopicStudy],
		counts[types.KindKnowledgeCheck])
}

// loadTopics reads a YAML list of topics.
func loadTopics(path string) ([]types.Topic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading topics %s: %w", path, err)
	}
	var topics []types.Topic
	if err := yaml.Unmarshal(data, &topics); err != nil {
		return nil, fmt.Errorf("parsing topics %s: %w", path, err)
	}
	return topics, nil
}

// storeConfig resolves the store settings from flags, then the config
// file, then defaults.
func storeConfig(cmd *cobra.Command) types.StoreConfig {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = viper.GetString("store.data_dir")
	}
	if dataDir == "" {
		dataDir = "data"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	return types.StoreConfig{DataDir: dataDir, MaxResults: maxResults}
}

func init() {
	scheduleCmd.Flags().String("user", "", "user ID the schedule belongs to")
	scheduleCmd.Flags().String("course", "", "course code attached to generated entries")
	scheduleCmd.Flags().String("topics", "", "YAML file of topics for topic-study sessions")
	scheduleCmd.Flags().Bool("day-first", true, "read slashed dates as DD/MM/YYYY")
	scheduleCmd.Flags().Float64("hours-per-day", 0, "sustainable study hours per day (default 2)")
	scheduleCmd.Flags().Bool("save", false, "persist the schedule to the store")
	scheduleCmd.Flags().String("data-dir", "", "base directory for the schedule store (default \"data\")")
	scheduleCmd.Flags().Int("max-results", 0, "store list limit when saving")
	scheduleCmd.Flags().Bool("json", false, "output entries as JSON")

	rootCmd.AddCommand(scheduleCmd)
}
