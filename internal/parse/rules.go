// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/CrudusLiv/StudyFlow-sub000/pkg/types"
)

// labelRule detects whether a section describes an assignment. Rules are
// tried in order; the first match wins and optionally captures the
// assignment number.
type labelRule struct {
	name string
	re   *regexp.Regexp
}

// labelRules is the ordered detection table. A section matching none of
// these yields no assignment.
var labelRules = []labelRule{
	{"assignment", regexp.MustCompile(`(?i)\bassignment\s*#?\s*(\d+)?`)},
	{"assessment", regexp.MustCompile(`(?i)\bassessment\s*#?\s*(\d+)?`)},
	{"project", regexp.MustCompile(`(?i)\bproject\s*#?\s*(\d+)?`)},
	{"task", regexp.MustCompile(`(?i)\btask\s*#?\s*(\d+)?`)},
	{"deliverable", regexp.MustCompile(`(?i)\bdeliverable\s*#?\s*(\d+)?`)},
}

// matchLabel returns the matching rule name and captured assignment
// number (0 when the label carries none). ok is false when no rule fires.
func matchLabel(section string) (name string, number int, ok bool) {
	for _, rule := range labelRules {
		m := rule.re.FindStringSubmatch(section)
		if m == nil {
			continue
		}
		num := 0
		if len(m) > 1 && m[1] != "" {
			num, _ = strconv.Atoi(m[1])
		}
		return rule.name, num, true
	}
	return "", 0, false
}

// fieldRule extracts one Assignment field from a section. Patterns are
// tried in order; the first submatch wins. The table makes the parser's
// precedence auditable: earlier patterns always beat later ones.
type fieldRule struct {
	name     string
	patterns []*regexp.Regexp
	apply    func(a *types.Assignment, match []string)
}

var (
	titleLabelRe  = regexp.MustCompile(`(?im)^\s*(?:title|topic)\s*[:\-]\s*(\S.*)$`)
	titleInlineRe = regexp.MustCompile(`(?im)\b(?:assignment|assessment|project|task|deliverable)\s*#?\s*\d*\s*[:\-]\s*(\S.*)$`)

	weightAfterRe  = regexp.MustCompile(`(?i)\b(?:worth|value|weighting|weight|grade)\b\D{0,24}?(\d{1,3}(?:\.\d+)?)\s*(?:%|percent|points|marks)`)
	weightBeforeRe = regexp.MustCompile(`(?i)(\d{1,3}(?:\.\d+)?)\s*(?:%|percent)\s+(?:of\s+)?(?:\w+\s+)?(?:worth|value|weighting|weight|grade)`)

	requirementsRe = regexp.MustCompile(`(?im)^\s*(?:requirements?|must\s+include)\s*[:\-]\s*(\S.*)$`)
	deliverablesRe = regexp.MustCompile(`(?im)^\s*(?:deliverables?|submit|submission)\s*[:\-]\s*(\S.*)$`)

	wordCountRe = regexp.MustCompile(`(?i)\b(\d{3,5})\s*[-\s]?\s*words?\b`)

	hoursHintRe = regexp.MustCompile(`(?i)\bestimated\s+(?:time|hours?|effort)\s*[:\-]?\s*(\d+(?:\.\d+)?)\s*(?:hours?|hrs?)?`)

	bulletRe = regexp.MustCompile(`(?m)^\s*(?:[-*•]|\d+[.)])\s+(\S.*)$`)
)

// fieldRules is the ordered extraction table, evaluated generically by
// extractFields. Field order matters only for readability; each rule's
// internal pattern order encodes its precedence.
var fieldRules = []fieldRule{
	{
		name:     "title",
		patterns: []*regexp.Regexp{titleLabelRe, titleInlineRe},
		apply: func(a *types.Assignment, m []string) {
			a.Title = cleanTitle(m[1])
		},
	},
	{
		name:     "weight",
		patterns: []*regexp.Regexp{weightAfterRe, weightBeforeRe},
		apply: func(a *types.Assignment, m []string) {
			if w, err := strconv.ParseFloat(m[1], 64); err == nil && w > 0 && w <= 100 {
				a.Weight = &w
			}
		},
	},
	{
		name:     "requirements",
		patterns: []*regexp.Regexp{requirementsRe},
		apply: func(a *types.Assignment, m []string) {
			a.Requirements = splitItemList(m[1])
		},
	},
	{
		name:     "deliverables",
		patterns: []*regexp.Regexp{deliverablesRe},
		apply: func(a *types.Assignment, m []string) {
			a.Deliverables = splitItemList(m[1])
		},
	},
	{
		name:     "word_count",
		patterns: []*regexp.Regexp{wordCountRe},
		apply: func(a *types.Assignment, m []string) {
			if n, err := strconv.Atoi(m[1]); err == nil {
				a.WordCount = n
			}
		},
	},
	{
		name:     "estimated_hours",
		patterns: []*regexp.Regexp{hoursHintRe},
		apply: func(a *types.Assignment, m []string) {
			if h, err := strconv.ParseFloat(m[1], 64); err == nil && h > 0 {
				a.EstimatedHours = h
			}
		},
	},
}

// extractFields runs every field rule against the section, applying the
// first matching pattern per rule. Fields with no match keep their zero
// value; the estimator treats those as neutral.
func extractFields(a *types.Assignment, section string) {
	for _, rule := range fieldRules {
		for _, re := range rule.patterns {
			if m := re.FindStringSubmatch(section); m != nil {
				rule.apply(a, m)
				break
			}
		}
	}
}

// typeRule maps keywords to an AssignmentType. First match wins.
type typeRule struct {
	typ types.AssignmentType
	re  *regexp.Regexp
}

// typeRules is the fixed classification table.
var typeRules = []typeRule{
	{types.TypeReport, regexp.MustCompile(`(?i)\b(?:report|paper|essay)\b`)},
	{types.TypeProject, regexp.MustCompile(`(?i)\b(?:project|development|implementation)\b`)},
	{types.TypePresentation, regexp.MustCompile(`(?i)\b(?:presentation|slides)\b`)},
	{types.TypeQuiz, regexp.MustCompile(`(?i)\b(?:quiz|test|exam)\b`)},
	{types.TypeHomework, regexp.MustCompile(`(?i)\b(?:homework|exercise|problem\s+set)\b`)},
}

// classifyType returns the first matching type, defaulting to task.
func classifyType(section string) types.AssignmentType {
	for _, rule := range typeRules {
		if rule.re.MatchString(section) {
			return rule.typ
		}
	}
	return types.TypeTask
}

// titleCutRe marks where inline metadata starts within a title line,
// so "Build a parser. Due: 15/03/2025, worth 20%" keeps only the task.
var titleCutRe = regexp.MustCompile(`(?i)[,.;(]?\s*\b(?:due|deadline|submission|worth|weighting|weight|value)\b.*$`)

// cleanTitle strips trailing due-date and weight clauses from a title.
func cleanTitle(text string) string {
	text = titleCutRe.ReplaceAllString(text, "")
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(text), ".,;:-"))
}

// splitItemList breaks a label's trailing text into items on semicolons
// or commas, trimming empties.
func splitItemList(text string) []string {
	sep := ","
	if strings.Contains(text, ";") {
		sep = ";"
	}
	var items []string
	for _, part := range strings.Split(text, sep) {
		part = strings.TrimSpace(strings.TrimRight(part, "."))
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

// bulletItems collects bullet or numbered list lines from a section,
// used as the fallback when no requirements/deliverables label exists.
func bulletItems(section string) []string {
	var items []string
	for _, m := range bulletRe.FindAllStringSubmatch(section, -1) {
		item := strings.TrimSpace(m[1])
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
