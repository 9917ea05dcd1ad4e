package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"psy211-course-service/internal/domain"
	"psy211-course-service/internal/infra/memory"
)

// ContentStore is a Redis-aware variant of the in-memory content store.
// Notes:
//   - The local store stays the hot path for reads; Redis mirrors each append
//     as a JSON list entry so a pool outlives a single process and can be
//     shared across instances.
//   - Appends are best-effort: a Redis failure never loses the local append.
type ContentStore struct {
	client *redis.Client
	ttl    time.Duration
	local  *memory.ContentStore
}

func NewContentStore(client *redis.Client, ttl time.Duration) *ContentStore {
	return &ContentStore{
		client: client,
		ttl:    ttl,
		local:  memory.NewContentStore(),
	}
}

func (s *ContentStore) AppendQuestions(unitID int, questions []domain.Question) {
	s.local.AppendQuestions(unitID, questions)
	s.mirror(s.questionsKey(unitID), len(questions), func(i int) any { return questions[i] })
}

func (s *ContentStore) Questions(unitID int) []domain.Question {
	if local := s.local.Questions(unitID); len(local) > 0 {
		return local
	}
	var out []domain.Question
	s.restore(s.questionsKey(unitID), func(raw string) {
		var q domain.Question
		if err := json.Unmarshal([]byte(raw), &q); err == nil && q.Valid() {
			out = append(out, q)
		}
	})
	if len(out) > 0 {
		s.local.AppendQuestions(unitID, out)
	}
	return out
}

func (s *ContentStore) AppendGlossary(unitID int, terms []domain.GlossaryTerm) {
	s.local.AppendGlossary(unitID, terms)
	s.mirror(s.glossaryKey(unitID), len(terms), func(i int) any { return terms[i] })
}

func (s *ContentStore) Glossary(unitID int) []domain.GlossaryTerm {
	if local := s.local.Glossary(unitID); len(local) > 0 {
		return local
	}
	var out []domain.GlossaryTerm
	s.restore(s.glossaryKey(unitID), func(raw string) {
		var t domain.GlossaryTerm
		if err := json.Unmarshal([]byte(raw), &t); err == nil {
			out = append(out, t)
		}
	})
	if len(out) > 0 {
		s.local.AppendGlossary(unitID, out)
	}
	return out
}

func (s *ContentStore) mirror(key string, n int, item func(int) any) {
	ctx := context.Background()
	pipe := s.client.Pipeline()
	for i := 0; i < n; i++ {
		raw, err := json.Marshal(item(i))
		if err != nil {
			continue
		}
		pipe.RPush(ctx, key, raw)
	}
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	_, _ = pipe.Exec(ctx)
}

func (s *ContentStore) restore(key string, each func(string)) {
	raws, err := s.client.LRange(context.Background(), key, 0, -1).Result()
	if err != nil {
		return
	}
	for _, raw := range raws {
		each(raw)
	}
}

func (s *ContentStore) questionsKey(unitID int) string {
	return "course:unit:" + strconv.Itoa(unitID) + ":generated:questions"
}

func (s *ContentStore) glossaryKey(unitID int) string {
	return "course:unit:" + strconv.Itoa(unitID) + ":generated:glossary"
}
