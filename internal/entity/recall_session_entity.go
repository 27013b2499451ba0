package entity

import (
	"time"

	"github.com/google/uuid"
)

type RecallSession struct {
	Id         uuid.UUID
	SectionId  uuid.UUID
	UserRecall string
	Analysis   *Analysis
	Score      *int
	CreatedAt  time.Time
}

// Analysis is the structured feedback the model produces for one recall
// attempt. It is stored as a JSON column on the session, never as rows.
type Analysis struct {
	Score         int           `json:"score"`
	CorrectPoints []string      `json:"correct_points"`
	MissedPoints  []MissedPoint `json:"missed_points"`
	Inaccuracies  []Inaccuracy  `json:"inaccuracies"`
	Suggestions   []string      `json:"suggestions"`
	Summary       string        `json:"summary"`
}

type MissedPoint struct {
	Topic       string `json:"topic"`
	Explanation string `json:"explanation"`
}

type Inaccuracy struct {
	WhatTheySaid string `json:"what_they_said"`
	Correction   string `json:"correction"`
	Explanation  string `json:"explanation"`
}
