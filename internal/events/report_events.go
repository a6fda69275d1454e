package events

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"

	"github.com/coursecast/grade-service/internal/models"
)

// ReportEventType identifies which engine entry point produced a report.
type ReportEventType string

const (
	EventReportCalculated   ReportEventType = "grade_report.calculated"
	EventWhatIfEvaluated    ReportEventType = "grade_report.what_if"
	EventNeededScoresSolved ReportEventType = "grade_report.needed_scores"
)

const eventSource = "grade-service"
const eventVersion = "1.0"

// ReportEvent is the published summary of one computed grade report. It
// carries only derived aggregates, never the raw grade rows.
type ReportEvent struct {
	ID                string          `json:"id"`
	Type              ReportEventType `json:"type"`
	Source            string          `json:"source"`
	Version           string          `json:"version"`
	Timestamp         time.Time       `json:"timestamp"`
	CourseName        string          `json:"course_name,omitempty"`
	OverallPercentage *float64        `json:"overall_percentage"`
	LetterGrade       string          `json:"letter_grade"`
	CategoryCount     int             `json:"category_count"`
}

// NewReportCalculatedEvent summarizes a freshly computed report.
func NewReportCalculatedEvent(policy *models.GradingPolicy, result *models.CalculationResult) *ReportEvent {
	return newReportEvent(EventReportCalculated, policy, result)
}

// NewWhatIfEvent summarizes a what-if evaluation.
func NewWhatIfEvent(policy *models.GradingPolicy, result *models.CalculationResult) *ReportEvent {
	return newReportEvent(EventWhatIfEvaluated, policy, result)
}

func newReportEvent(eventType ReportEventType, policy *models.GradingPolicy, result *models.CalculationResult) *ReportEvent {
	return &ReportEvent{
		ID:                watermill.NewUUID(),
		Type:              eventType,
		Source:            eventSource,
		Version:           eventVersion,
		Timestamp:         time.Now().UTC(),
		CourseName:        policy.CourseName,
		OverallPercentage: result.OverallPercentage,
		LetterGrade:       result.LetterGrade,
		CategoryCount:     len(policy.Categories),
	}
}
