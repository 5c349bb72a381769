// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse segments raw course-document text into sections and
// extracts structured Assignment records from assignment-like sections.
// Parsing is a pure function of the input text: sections that match no
// label rule are silently skipped, and malformed fields degrade to their
// zero values rather than failing the parse.
package parse

import (
	"regexp"
	"strings"

	"github.com/CrudusLiv/StudyFlow-sub000/pkg/types"
)

// Parsed pairs an extracted Assignment with the section text it came
// from. The section is retained so the date resolver can scan it.
type Parsed struct {
	Assignment types.Assignment
	Section    string
}

// blankLineRe splits text into paragraph-like sections.
var blankLineRe = regexp.MustCompile(`\n\s*\n`)

// courseCodeRe matches course identifiers like "CS101" or "COMP2041".
var courseCodeRe = regexp.MustCompile(`\b([A-Z]{2,4}\d{3,4})\b`)

// Parse splits text into blank-line-delimited sections and extracts at
// most one Assignment per section. Sections matching no label rule
// produce nothing: not every paragraph is an assignment.
func Parse(text string, cfg types.ParserConfig) []Parsed {
	if cfg.MaxTitleLen <= 0 {
		cfg.MaxTitleLen = 80
	}

	var results []Parsed
	for _, section := range SplitSections(text) {
		a, ok := parseSection(section, cfg)
		if !ok {
			continue
		}
		results = append(results, Parsed{Assignment: a, Section: section})
	}
	return results
}

// SplitSections breaks text on blank lines and drops empty sections.
func SplitSections(text string) []string {
	var sections []string
	for _, raw := range blankLineRe.Split(text, -1) {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		sections = append(sections, raw)
	}
	return sections
}

// parseSection extracts one Assignment from a section. ok is false when
// the section matches no label rule.
func parseSection(section string, cfg types.ParserConfig) (types.Assignment, bool) {
	_, number, ok := matchLabel(section)
	if !ok {
		return types.Assignment{}, false
	}
	if number <= 0 {
		number = 1
	}

	a := types.Assignment{Number: number}

	extractFields(&a, section)
	a.Type = classifyType(section)

	if a.Title == "" {
		a.Title = fallbackTitle(section, cfg.MaxTitleLen)
	}
	if len(a.Requirements) == 0 {
		a.Requirements = bulletItems(section)
	}
	if len(a.Deliverables) == 0 && len(a.Requirements) == 0 {
		a.Deliverables = bulletItems(section)
	}
	if m := courseCodeRe.FindStringSubmatch(section); m != nil {
		a.CourseCode = m[1]
	}

	return a, true
}

// fallbackTitle returns the section's first non-empty line, truncated,
// or "Untitled Assignment" when the section has none.
func fallbackTitle(section string, maxLen int) string {
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > maxLen {
			line = strings.TrimSpace(line[:maxLen])
		}
		return line
	}
	return "Untitled Assignment"
}
