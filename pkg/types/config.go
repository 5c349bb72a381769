package types

// ParserConfig holds settings for the assignment parser.
type ParserConfig struct {
	// MaxTitleLen truncates fallback titles taken from a section's first
	// line (default 80).
	MaxTitleLen int `json:"max_title_len" yaml:"max_title_len"`
}

// ResolverConfig holds settings for due-date resolution.
type ResolverConfig struct {
	// DayFirst selects DD/MM/YYYY interpretation for slash-separated
	// dates (default true). When the selected order yields an impossible
	// calendar date, the other order is tried.
	DayFirst bool `json:"day_first" yaml:"day_first"`

	// FallbackBaseDays is the base offset for fabricated due dates
	// (default 14).
	FallbackBaseDays int `json:"fallback_base_days" yaml:"fallback_base_days"`

	// FallbackSpacingDays spaces fabricated dates by assignment number
	// (default 14), so un-dated assignments spread across the term.
	FallbackSpacingDays int `json:"fallback_spacing_days" yaml:"fallback_spacing_days"`

	// SemesterEnds maps semester number to an approximate end date as
	// "MM-DD" (defaults: 1 → "06-15", 2 → "11-15").
	SemesterEnds map[int]string `json:"semester_ends,omitempty" yaml:"semester_ends,omitempty"`
}

// EstimatorConfig holds settings for effort and complexity estimation.
type EstimatorConfig struct {
	// HoursPerDay is the sustainable focused pace used to size the study
	// window (default 2).
	HoursPerDay float64 `json:"hours_per_day" yaml:"hours_per_day"`

	// BaseHours overrides the per-type base hour table when non-empty.
	BaseHours map[AssignmentType]float64 `json:"base_hours,omitempty" yaml:"base_hours,omitempty"`
}

// DistributorConfig holds settings for study-session distribution.
type DistributorConfig struct {
	// SlotHours are the start hours sessions cycle through
	// (default 9, 13, 16, 19).
	SlotHours []int `json:"slot_hours,omitempty" yaml:"slot_hours,omitempty"`

	// MinSessionHours clamps session length from below (default 1.5).
	MinSessionHours float64 `json:"min_session_hours" yaml:"min_session_hours"`

	// MaxSessionHours clamps session length from above (default 2.5).
	MaxSessionHours float64 `json:"max_session_hours" yaml:"max_session_hours"`
}

// StoreConfig holds settings for the schedule store.
type StoreConfig struct {
	// DataDir is the base directory for the SQLite database and exports
	// (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of listed entries
	// (default 200).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for one synthesis run.
type PipelineConfig struct {
	Parser      ParserConfig      `json:"parser" yaml:"parser"`
	Resolver    ResolverConfig    `json:"resolver" yaml:"resolver"`
	Estimator   EstimatorConfig   `json:"estimator" yaml:"estimator"`
	Distributor DistributorConfig `json:"distributor" yaml:"distributor"`
	Store       StoreConfig       `json:"store" yaml:"store"`
}

// DefaultPipelineConfig returns a PipelineConfig with every field set to
// its documented default.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Parser: ParserConfig{MaxTitleLen: 80},
		Resolver: ResolverConfig{
			DayFirst:            true,
			FallbackBaseDays:    14,
			FallbackSpacingDays: 14,
			SemesterEnds:        map[int]string{1: "06-15", 2: "11-15"},
		},
		Estimator:   EstimatorConfig{HoursPerDay: 2},
		Distributor: DistributorConfig{SlotHours: []int{9, 13, 16, 19}, MinSessionHours: 1.5, MaxSessionHours: 2.5},
		Store:       StoreConfig{DataDir: "data", MaxResults: 200},
	}
}
