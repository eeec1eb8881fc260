package progress

import "sort"

// MasteryState is the set of vocabulary card IDs a learner has mastered.
// Marks are never removed. The zero value is not usable, use NewMasteryState.
type MasteryState struct {
	ids map[string]struct{}
}

// NewMasteryState returns a state with ids already mastered.
func NewMasteryState(ids ...string) *MasteryState {
	m := &MasteryState{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		m.Mark(id)
	}
	return m
}

// Mark records id as mastered and reports whether it was new.
func (m *MasteryState) Mark(id string) bool {
	if _, ok := m.ids[id]; ok {
		return false
	}
	m.ids[id] = struct{}{}
	return true
}

// Has reports whether id is mastered. A nil state has nothing mastered.
func (m *MasteryState) Has(id string) bool {
	if m == nil {
		return false
	}
	_, ok := m.ids[id]
	return ok
}

// Count returns the number of mastered IDs.
func (m *MasteryState) Count() int {
	if m == nil {
		return 0
	}
	return len(m.ids)
}

// IDs returns the mastered IDs in lexical order.
func (m *MasteryState) IDs() []string {
	if m == nil {
		return nil
	}
	ids := make([]string, 0, len(m.ids))
	for id := range m.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type MasterySummary struct {
	Total      int
	Mastered   int
	Learning   int
	Percentage int
}

// Summarize reports mastery over the deck identified by deckIDs.
// Marks for IDs outside the deck are not counted.
func Summarize(deckIDs []string, m *MasteryState) MasterySummary {
	total := len(deckIDs)
	mastered := 0
	for _, id := range deckIDs {
		if m.Has(id) {
			mastered++
		}
	}
	return MasterySummary{
		Total:      total,
		Mastered:   mastered,
		Learning:   total - mastered,
		Percentage: Percentage(mastered, total),
	}
}
