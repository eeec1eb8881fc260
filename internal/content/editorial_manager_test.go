package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterEditorials(t *testing.T) {
	editorials := []Editorial{
		{ID: "1", Title: "Digital India Initiative", Category: CategoryPolitics},
		{ID: "2", Title: "Renewable Energy Transition", Category: CategoryEnvironment},
		{ID: "3", Title: "Fiscal Deficit Targets", Category: CategoryEconomy},
	}

	tests := []struct {
		name     string
		search   string
		category string
		want     []string
	}{
		{name: "no filters", want: []string{"1", "2", "3"}},
		{name: "title search is case-insensitive", search: "ENERGY", want: []string{"2"}},
		{name: "search matches category name", search: "econ", want: []string{"3"}},
		{name: "category all", category: CategoryAll, want: []string{"1", "2", "3"}},
		{name: "category filter", category: "politics", want: []string{"1"}},
		{name: "search and category combine", search: "digital", category: "economy", want: nil},
		{name: "surrounding whitespace is ignored", search: "  fiscal ", want: []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterEditorials(editorials, tt.search, tt.category)
			var ids []string
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestCategories(t *testing.T) {
	editorials := []Editorial{
		{Category: CategorySocial},
		{Category: CategoryEconomy},
		{Category: CategorySocial},
	}

	assert.Equal(t, []Category{CategoryEconomy, CategorySocial}, Categories(editorials))
	assert.Empty(t, Categories(nil))
}
