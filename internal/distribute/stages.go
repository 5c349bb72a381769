// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package distribute

import "github.com/CrudusLiv/StudyFlow-sub000/pkg/types"

// Stage sets per assignment type. Percentages within each set sum to
// 100, so cumulative ranges cover every session's normalized progress.
var stageSets = map[types.AssignmentType][]types.LearningStage{
	types.TypeEssay: {
		{Name: "Research", Percent: 20},
		{Name: "Outline", Percent: 15},
		{Name: "Draft Writing", Percent: 35},
		{Name: "Revision", Percent: 20},
		{Name: "Finalize", Percent: 10},
	},
	types.TypeReport: {
		{Name: "Research", Percent: 20},
		{Name: "Outline", Percent: 15},
		{Name: "Draft Writing", Percent: 35},
		{Name: "Revision", Percent: 20},
		{Name: "Finalize", Percent: 10},
	},
	types.TypeProject: {
		{Name: "Research", Percent: 15},
		{Name: "Planning", Percent: 15},
		{Name: "Development", Percent: 40},
		{Name: "Testing", Percent: 20},
		{Name: "Finalize", Percent: 10},
	},
	types.TypePresentation: {
		{Name: "Research", Percent: 25},
		{Name: "Content Design", Percent: 30},
		{Name: "Slide Building", Percent: 25},
		{Name: "Rehearsal", Percent: 20},
	},
	types.TypeQuiz: {
		{Name: "Content Review", Percent: 35},
		{Name: "Practice", Percent: 45},
		{Name: "Final Review", Percent: 20},
	},
	types.TypeHomework: {
		{Name: "Problem Review", Percent: 30},
		{Name: "Solving", Percent: 50},
		{Name: "Checking", Percent: 20},
	},
	types.TypeLab: {
		{Name: "Preparation", Percent: 30},
		{Name: "Experiment", Percent: 45},
		{Name: "Write-up", Percent: 25},
	},
	types.TypeTask: {
		{Name: "Research", Percent: 25},
		{Name: "Planning", Percent: 20},
		{Name: "Execution", Percent: 40},
		{Name: "Review", Percent: 15},
	},
}

// stageVerbs maps stage names to the activity phrase used in session
// descriptions.
var stageVerbs = map[string]string{
	"Research":       "research the topic and gather materials",
	"Outline":        "plan the structure and outline key points",
	"Planning":       "plan the approach and break down the work",
	"Draft Writing":  "develop the draft",
	"Development":    "develop the main body of work",
	"Content Design": "develop the content and narrative",
	"Slide Building": "develop the slides",
	"Solving":        "work through the problems",
	"Experiment":     "run the experiment and record results",
	"Practice":       "practice with past questions",
	"Content Review": "review the covered material",
	"Problem Review": "review the problem set and relevant notes",
	"Preparation":    "review the method and prepare equipment",
	"Testing":        "review and test what was built",
	"Revision":       "review and revise the draft",
	"Checking":       "review and check the answers",
	"Review":         "review progress and tidy loose ends",
	"Write-up":       "finalize the write-up",
	"Rehearsal":      "finalize the delivery through rehearsal",
	"Finalize":       "finalize and polish the work",
	"Final Review":   "finalize preparation with a full review",
}

// Stages returns the LearningStage set for an assignment type. Unknown
// types use the task set.
func Stages(t types.AssignmentType) []types.LearningStage {
	if set, ok := stageSets[t]; ok {
		return set
	}
	return stageSets[types.TypeTask]
}

// stageFor maps normalized progress in [0,1) to the stage whose
// cumulative percentage range contains it.
func stageFor(stages []types.LearningStage, progress float64) types.LearningStage {
	cum := 0.0
	for _, s := range stages {
		cum += s.Percent / 100
		if progress < cum {
			return s
		}
	}
	return stages[len(stages)-1]
}
