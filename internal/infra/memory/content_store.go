package memory

import (
	"sync"

	"psy211-course-service/internal/domain"
)

// ContentStore accumulates generated questions and glossary terms per unit.
// It is append-only for the lifetime of the process; base course content is
// never written here.
type ContentStore struct {
	mu        sync.RWMutex
	questions map[int][]domain.Question
	glossary  map[int][]domain.GlossaryTerm
}

func NewContentStore() *ContentStore {
	return &ContentStore{
		questions: make(map[int][]domain.Question),
		glossary:  make(map[int][]domain.GlossaryTerm),
	}
}

// AppendQuestions adds generated questions to the unit's pool in arrival order.
func (s *ContentStore) AppendQuestions(unitID int, questions []domain.Question) {
	if len(questions) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions[unitID] = append(s.questions[unitID], questions...)
}

// Questions returns a copy of the unit's generated question pool.
func (s *ContentStore) Questions(unitID int) []domain.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pool := s.questions[unitID]
	out := make([]domain.Question, len(pool))
	copy(out, pool)
	return out
}

// AppendGlossary adds generated terms to the unit's pool in arrival order.
func (s *ContentStore) AppendGlossary(unitID int, terms []domain.GlossaryTerm) {
	if len(terms) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.glossary[unitID] = append(s.glossary[unitID], terms...)
}

// Glossary returns a copy of the unit's generated glossary pool.
func (s *ContentStore) Glossary(unitID int) []domain.GlossaryTerm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pool := s.glossary[unitID]
	out := make([]domain.GlossaryTerm, len(pool))
	copy(out, pool)
	return out
}
