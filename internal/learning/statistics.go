package learning

import (
	"fmt"
	"sort"

	"github.com/at-ishikawa/examprep/internal/progress"
)

// PeriodStatistics holds attempt figures for one month
type PeriodStatistics struct {
	Period            string // "2024-01"
	Attempts          int
	Passed            int
	AveragePercentage int
	ReferencesStudied int // distinct editorials or decks
}

// AggregateStatistics holds totals across all periods
type AggregateStatistics struct {
	Attempts          int
	Passed            int
	AveragePercentage int
	ReferencesStudied int // deduplicated across periods
	BestPercentage    int
}

type StatisticsResult struct {
	Periods   []PeriodStatistics
	Aggregate AggregateStatistics
}

type periodData struct {
	attempts   int
	passed     int
	percentSum int
	references map[string]struct{}
}

// CalculateStatistics summarizes attempts per month, newest month first.
// It accepts optional year and month filters (0 means no filter).
// An attempt passes when its percentage reaches passMark.
func CalculateStatistics(attempts []Attempt, year, month, passMark int) StatisticsResult {
	stats := make(map[string]*periodData)
	globalReferences := make(map[string]struct{})
	var aggregate AggregateStatistics
	percentSum := 0

	for _, a := range attempts {
		if a.CompletedAt.IsZero() {
			continue
		}
		if !matchesFilter(a.CompletedAt.Year(), int(a.CompletedAt.Month()), year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", a.CompletedAt.Year(), int(a.CompletedAt.Month()))
		data := stats[period]
		if data == nil {
			data = &periodData{references: make(map[string]struct{})}
			stats[period] = data
		}

		refKey := fmt.Sprintf("%s|%s", a.Activity, a.ReferenceID)
		data.attempts++
		data.percentSum += a.Percentage
		data.references[refKey] = struct{}{}
		globalReferences[refKey] = struct{}{}
		aggregate.Attempts++
		percentSum += a.Percentage
		if a.Percentage >= passMark {
			data.passed++
			aggregate.Passed++
		}
		aggregate.BestPercentage = max(aggregate.BestPercentage, a.Percentage)
	}

	periods := make([]PeriodStatistics, 0, len(stats))
	for period, data := range stats {
		periods = append(periods, PeriodStatistics{
			Period:            period,
			Attempts:          data.attempts,
			Passed:            data.passed,
			AveragePercentage: progress.Percentage(data.percentSum, data.attempts*100),
			ReferencesStudied: len(data.references),
		})
	}

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	aggregate.AveragePercentage = progress.Percentage(percentSum, aggregate.Attempts*100)
	aggregate.ReferencesStudied = len(globalReferences)
	return StatisticsResult{
		Periods:   periods,
		Aggregate: aggregate,
	}
}

func matchesFilter(attemptYear, attemptMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if attemptYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return attemptMonth == filterMonth
}
