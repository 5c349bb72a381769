// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the StudyFlow
// schedule-synthesis pipeline: parsed assignments, the schedule entries
// emitted to callers, external inputs (topics, class timetables), and
// per-stage configuration.
package types
