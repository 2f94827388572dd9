// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Assessment status constants
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Dosha identifies one of the three constitutional axes.
// The canonical casing below is the wire format; nothing else is valid.
type Dosha string

const (
	Vata  Dosha = "Vata"
	Pitta Dosha = "Pitta"
	Kapha Dosha = "Kapha"
)

// Doshas returns the three axes in fixed priority order.
// This order breaks ties everywhere ties can occur (ranking, rounding).
func Doshas() [3]Dosha {
	return [3]Dosha{Vata, Pitta, Kapha}
}

// Scores is a three-axis integer vector, used both for an option's weight
// contribution and for a session's running totals.
type Scores struct {
	Vata  int `json:"vata"`
	Pitta int `json:"pitta"`
	Kapha int `json:"kapha"`
}

// Axis returns the component for the given dosha.
func (s Scores) Axis(d Dosha) int {
	switch d {
	case Pitta:
		return s.Pitta
	case Kapha:
		return s.Kapha
	default:
		return s.Vata
	}
}

// Percentages is the normalized share per dosha. Components always sum to
// exactly 100.
type Percentages struct {
	Vata  int `json:"vata"`
	Pitta int `json:"pitta"`
	Kapha int `json:"kapha"`
}

// Axis returns the component for the given dosha.
func (p Percentages) Axis(d Dosha) int {
	switch d {
	case Pitta:
		return p.Pitta
	case Kapha:
		return p.Kapha
	default:
		return p.Vata
	}
}

// Domain types

type Option struct {
	Index   int    `json:"index"`
	Text    string `json:"text"`
	Weights Scores `json:"-"` // Never expose weights to clients
}

type Question struct {
	ID       string   `json:"id"`
	Ordinal  int      `json:"ordinal"`
	Text     string   `json:"text"`
	Category string   `json:"category"`
	Options  []Option `json:"options"`
}

// PrakritiResult is the final classification attached to a completed session.
type PrakritiResult struct {
	Primary     Dosha       `json:"primary"`
	Secondary   *Dosha      `json:"secondary,omitempty"`
	IsDual      bool        `json:"is_dual"`
	Percentages Percentages `json:"percentages"`
}

// Session is one assessment attempt. A session is mutated only by its own
// respondent's sequential submits and becomes immutable once completed.
type Session struct {
	ID            string          `json:"session_id"`
	RespondentRef string          `json:"respondent_ref"`
	Ordinal       int             `json:"ordinal"`
	Scores        Scores          `json:"scores"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
	Result        *PrakritiResult `json:"result,omitempty"`
}

// Answer is the audit record of one submitted answer.
type Answer struct {
	SessionID   string
	Ordinal     int
	OptionIndex int
	Weights     Scores
	AnsweredAt  time.Time
}

// Request types

type StartAssessmentRequest struct {
	RespondentRef string `json:"respondent_ref"`
}

type SubmitAnswerRequest struct {
	QuestionOrdinal int `json:"question_ordinal"`
	OptionIndex     int `json:"option_index"`
}

// Response types

type StartAssessmentResponse struct {
	SessionID      string   `json:"session_id"`
	SessionKey     string   `json:"session_key"`
	FirstQuestion  Question `json:"first_question"`
	TotalQuestions int      `json:"total_questions"`
}

type SubmitAnswerResponse struct {
	CurrentScores      Scores          `json:"current_scores"`
	CompletedQuestions int             `json:"completed_questions"`
	TotalQuestions     int             `json:"total_questions"`
	IsComplete         bool            `json:"is_complete"`
	Result             *PrakritiResult `json:"result,omitempty"`
}

type ProgressResponse struct {
	SessionID          string          `json:"session_id"`
	Status             string          `json:"status"`
	CompletedQuestions int             `json:"completed_questions"`
	TotalQuestions     int             `json:"total_questions"`
	CurrentScores      Scores          `json:"current_scores"`
	Answers            map[int]int     `json:"answers"` // ordinal -> chosen option index
	CompletedAt        *time.Time      `json:"completed_at,omitempty"`
	Result             *PrakritiResult `json:"result,omitempty"`
}

type QuestionListResponse struct {
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

type CurrentPrakritiResponse struct {
	PrakritiCompleted bool            `json:"prakriti_completed"`
	SessionID         string          `json:"session_id,omitempty"`
	CompletedAt       *time.Time      `json:"completed_at,omitempty"`
	Result            *PrakritiResult `json:"result,omitempty"`
}

type HistoryEntry struct {
	SessionID   string         `json:"session_id"`
	CompletedAt time.Time      `json:"completed_at"`
	TotalScores Scores         `json:"total_scores"`
	Result      PrakritiResult `json:"result"`
}

type HistoryResponse struct {
	RespondentRef string         `json:"respondent_ref"`
	Assessments   []HistoryEntry `json:"assessments"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
