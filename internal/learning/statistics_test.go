package learning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustParseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCalculateStatistics(t *testing.T) {
	attempts := []Attempt{
		{Activity: ActivityEditorialQuiz, ReferenceID: "1", Percentage: 67, CompletedAt: mustParseDate("2024-01-10")},
		{Activity: ActivityEditorialQuiz, ReferenceID: "1", Percentage: 100, CompletedAt: mustParseDate("2024-01-12")},
		{Activity: ActivityVocabularyQuiz, ReferenceID: "vocabulary", Percentage: 80, CompletedAt: mustParseDate("2024-02-01")},
		{Activity: ActivityEditorialQuiz, ReferenceID: "2", Percentage: 40, CompletedAt: mustParseDate("2023-12-30")},
		{Activity: ActivityEditorialQuiz, ReferenceID: "3", Percentage: 90},
	}

	tests := []struct {
		name              string
		year              int
		month             int
		expectedPeriods   []PeriodStatistics
		expectedAggregate AggregateStatistics
	}{
		{
			name: "all time",
			expectedPeriods: []PeriodStatistics{
				{Period: "2024-02", Attempts: 1, Passed: 1, AveragePercentage: 80, ReferencesStudied: 1},
				{Period: "2024-01", Attempts: 2, Passed: 1, AveragePercentage: 84, ReferencesStudied: 1},
				{Period: "2023-12", Attempts: 1, Passed: 0, AveragePercentage: 40, ReferencesStudied: 1},
			},
			expectedAggregate: AggregateStatistics{Attempts: 4, Passed: 2, AveragePercentage: 72, ReferencesStudied: 3, BestPercentage: 100},
		},
		{
			name: "year filter",
			year: 2024,
			expectedPeriods: []PeriodStatistics{
				{Period: "2024-02", Attempts: 1, Passed: 1, AveragePercentage: 80, ReferencesStudied: 1},
				{Period: "2024-01", Attempts: 2, Passed: 1, AveragePercentage: 84, ReferencesStudied: 1},
			},
			expectedAggregate: AggregateStatistics{Attempts: 3, Passed: 2, AveragePercentage: 82, ReferencesStudied: 2, BestPercentage: 100},
		},
		{
			name:  "month filter",
			year:  2024,
			month: 1,
			expectedPeriods: []PeriodStatistics{
				{Period: "2024-01", Attempts: 2, Passed: 1, AveragePercentage: 84, ReferencesStudied: 1},
			},
			expectedAggregate: AggregateStatistics{Attempts: 2, Passed: 1, AveragePercentage: 84, ReferencesStudied: 1, BestPercentage: 100},
		},
		{
			name:              "no matches",
			year:              2020,
			expectedPeriods:   []PeriodStatistics{},
			expectedAggregate: AggregateStatistics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateStatistics(attempts, tt.year, tt.month, 80)
			assert.Equal(t, tt.expectedPeriods, got.Periods)
			assert.Equal(t, tt.expectedAggregate, got.Aggregate)
		})
	}
}
