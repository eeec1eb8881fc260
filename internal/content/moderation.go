package content

import "sort"

type ReportType string

const (
	ReportTypeComment      ReportType = "comment"
	ReportTypeQuizAnswer   ReportType = "quiz_answer"
	ReportTypeUserBehavior ReportType = "user_behavior"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

// ModerationReport is a report about content or user behavior raised by a
// learner or by automatic detection.
type ModerationReport struct {
	ID           string       `yaml:"id" validate:"required"`
	Type         ReportType   `yaml:"type" validate:"oneof=comment quiz_answer user_behavior"`
	Content      string       `yaml:"content" validate:"required"`
	Reporter     string       `yaml:"reporter" validate:"required"`
	ReportedUser string       `yaml:"reported_user,omitempty"`
	Reason       string       `yaml:"reason" validate:"required"`
	Severity     Severity     `yaml:"severity" validate:"oneof=low medium high"`
	Status       ReportStatus `yaml:"status" validate:"oneof=pending resolved dismissed"`
	ReportedAt   Date         `yaml:"reported_at"`
}

var severityRanks = map[Severity]int{
	SeverityHigh:   0,
	SeverityMedium: 1,
	SeverityLow:    2,
}

// PendingReports returns the pending reports, most severe first. Reports of
// the same severity keep the oldest first.
func PendingReports(reports []ModerationReport) []ModerationReport {
	var pending []ModerationReport
	for _, report := range reports {
		if report.Status == ReportStatusPending {
			pending = append(pending, report)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		ri, rj := severityRanks[pending[i].Severity], severityRanks[pending[j].Severity]
		if ri != rj {
			return ri < rj
		}
		return pending[i].ReportedAt.Before(pending[j].ReportedAt.Time)
	})
	return pending
}

// CountReports returns the number of reports per status.
func CountReports(reports []ModerationReport) map[ReportStatus]int {
	counts := make(map[ReportStatus]int, 3)
	for _, report := range reports {
		counts[report.Status]++
	}
	return counts
}
