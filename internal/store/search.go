package store

import "strings"

const searchHistoryLimit = 5

// SearchHistory keeps the last distinct search terms most-recent-first. It is
// the one piece of state an application shell may choose to persist durably;
// see port.SearchTermRepository.
type SearchHistory struct {
	terms []string
}

func NewSearchHistory() *SearchHistory {
	return &SearchHistory{}
}

// Record moves a repeated term to the front, trims surrounding whitespace and
// ignores empty input.
func (s *SearchHistory) Record(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	for i, existing := range s.terms {
		if existing == term {
			s.terms = append(s.terms[:i], s.terms[i+1:]...)
			break
		}
	}

	s.terms = append([]string{term}, s.terms...)
	if len(s.terms) > searchHistoryLimit {
		s.terms = s.terms[:searchHistoryLimit]
	}
}

func (s *SearchHistory) Clear() {
	s.terms = nil
}

func (s *SearchHistory) Terms() []string {
	terms := make([]string, len(s.terms))
	copy(terms, s.terms)
	return terms
}
