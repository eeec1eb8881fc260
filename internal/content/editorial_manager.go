package content

import (
	"sort"
	"strings"
)

// CategoryAll disables category filtering in FilterEditorials.
const CategoryAll = "all"

// FilterEditorials keeps editorials whose title or category contains search
// (case-insensitive) and whose category equals category, unless category is
// empty or CategoryAll.
func FilterEditorials(editorials []Editorial, search, category string) []Editorial {
	search = strings.ToLower(strings.TrimSpace(search))
	var result []Editorial
	for _, editorial := range editorials {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(editorial.Title), search) ||
			strings.Contains(strings.ToLower(string(editorial.Category)), search)
		matchesCategory := category == "" || category == CategoryAll || string(editorial.Category) == category
		if matchesSearch && matchesCategory {
			result = append(result, editorial)
		}
	}
	return result
}

// Categories returns the distinct categories used by editorials, sorted.
func Categories(editorials []Editorial) []Category {
	seen := make(map[Category]struct{})
	for _, editorial := range editorials {
		seen[editorial.Category] = struct{}{}
	}
	categories := make([]Category, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i] < categories[j]
	})
	return categories
}
