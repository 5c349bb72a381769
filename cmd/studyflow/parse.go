// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/CrudusLiv/StudyFlow-sub000/internal/parse"
	"github.com/CrudusLiv/StudyFlow-sub000/internal/schedule"
	"github.com/CrudusLiv/StudyFlow-sub000/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Extract structured assignments from course-document text",
	Long: `Parse reads plain text extracted from a course document, detects
assignment-like sections, and prints the structured assignments with
resolved due dates, estimated hours, and priority. Use "-" to read from
standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	meta := metadataFromFlags(cmd)
	parsed := parse.Parse(text, meta.Config.Parser)

	assignments := make([]types.Assignment, 0, len(parsed))
	for _, p := range parsed {
		assignments = append(assignments, schedule.Prepare(p.Assignment, p.Section, meta))
	}

	if len(assignments) == 0 {
		fmt.Println("No schedulable assignments found.")
		return nil
	}

	outPath, _ := cmd.Flags().GetString("out")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if outPath != "" {
		return writeAssignments(outPath, assignments, jsonOutput)
	}
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(assignments)
	}

	printAssignmentTable(os.Stdout, assignments)
	return nil
}

func printAssignmentTable(w io.Writer, assignments []types.Assignment) {
	fmt.Fprintf(w, "%-36s  %-12s  %-10s  %-8s  %-6s  %s\n",
		"Title", "Type", "Due", "Priority", "Hours", "Days")
	fmt.Fprintln(w, strings.Repeat("-", 84))

	for _, a := range assignments {
		title := a.Title
		if len(title) > 36 {
			title = title[:33] + "..."
		}
		fmt.Fprintf(w, "%-36s  %-12s  %-10s  %-8s  %-6.1f  %d\n",
			title, a.Type, a.DueDate.Format("2006-01-02"), a.Priority, a.TotalHours, a.DaysNeeded)
	}
	fmt.Fprintf(w, "\n%d assignments\n", len(assignments))
}

func writeAssignments(path string, assignments []types.Assignment, jsonOutput bool) error {
	var (
		data []byte
		err  error
	)
	if jsonOutput {
		data, err = json.MarshalIndent(assignments, "", "  ")
	} else {
		data, err = yaml.Marshal(assignments)
	}
	if err != nil {
		return fmt.Errorf("marshaling assignments: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Wrote %d assignments to %s\n", len(assignments), path)
	return nil
}

// readInput returns the text of the named file, or stdin for "-" or no
// argument.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

// metadataFromFlags builds synthesis metadata from shared flags.
func metadataFromFlags(cmd *cobra.Command) schedule.Metadata {
	cfg := types.DefaultPipelineConfig()

	if cmd.Flags().Changed("day-first") {
		cfg.Resolver.DayFirst, _ = cmd.Flags().GetBool("day-first")
	}
	if hours, _ := cmd.Flags().GetFloat64("hours-per-day"); hours > 0 {
		cfg.Estimator.HoursPerDay = hours
	}
	course, _ := cmd.Flags().GetString("course")

	return schedule.Metadata{
		CourseCode: course,
		Config:     cfg,
		Log:        os.Stderr,
	}
}

func init() {
	parseCmd.Flags().String("course", "", "course code attached to parsed assignments")
	parseCmd.Flags().Bool("day-first", true, "read slashed dates as DD/MM/YYYY")
	parseCmd.Flags().Float64("hours-per-day", 0, "sustainable study hours per day (default 2)")
	parseCmd.Flags().String("out", "", "write assignments to a file instead of stdout")
	parseCmd.Flags().Bool("json", false, "output JSON instead of YAML/table")

	rootCmd.AddCommand(parseCmd)
}
