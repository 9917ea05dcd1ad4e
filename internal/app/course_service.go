package app

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"psy211-course-service/internal/domain"
	"psy211-course-service/internal/gateway"
)

// Localized failure copy shown on the error banner.
const (
	msgAuthRequired    = "يرجى تفعيل مفتاح الوصول لاستخدام ميزات الذكاء الاصطناعي."
	msgQuestionsFailed = "فشل في توليد الأسئلة."
	msgGlossaryFailed  = "فشل في توليد المصطلحات."
	msgQuizStartFailed = "فشل في بدء التقييم."
	msgExamStartFailed = "فشل في بدء الامتحان الشامل."
)

// practiceBatchSize is the number of questions one practice-bank request adds.
const practiceBatchSize = 10

// ContentStore abstracts the append-only dynamic pools (in-memory, Redis).
type ContentStore interface {
	AppendQuestions(unitID int, questions []domain.Question)
	Questions(unitID int) []domain.Question
	AppendGlossary(unitID int, terms []domain.GlossaryTerm)
	Glossary(unitID int) []domain.GlossaryTerm
}

// UnitRepository serves the immutable course units.
type UnitRepository interface {
	GetUnit(ctx context.Context, unitID int) (domain.UnitData, error)
	ListUnits(ctx context.Context) ([]domain.UnitData, error)
}

// UnitSummary is the home-screen card for one unit.
type UnitSummary struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// CourseService is the single coordinator that owns navigation state, the
// active quiz session and its timer, and access to the dynamic content
// pools. All mutation happens under one mutex so user intents and timer
// ticks interleave on a serialized stream and never race.
type CourseService struct {
	course    domain.CourseInfo
	summaries []UnitSummary
	units     UnitRepository
	store     ContentStore
	gen       gateway.Generator
	keys      gateway.KeyStore

	tickInterval time.Duration

	mu           sync.Mutex
	screen       domain.Screen
	subTab       domain.SubTab
	activeUnit   *domain.UnitData
	session      *QuizSession
	timer        *Timer
	epoch        uint64
	busy         bool
	errMsg       string
	authRequired bool
	lastCorrect  *bool
	analyses     map[string]bool
	subscribers  map[chan ViewState]struct{}
}

// NewCourseService preloads the unit catalog and starts at the home screen.
func NewCourseService(ctx context.Context, course domain.CourseInfo, units UnitRepository, store ContentStore, gen gateway.Generator, keys gateway.KeyStore) (*CourseService, error) {
	return newCourseServiceWithInterval(ctx, course, units, store, gen, keys, time.Second)
}

// newCourseServiceWithInterval allows deterministic countdowns in tests.
func newCourseServiceWithInterval(ctx context.Context, course domain.CourseInfo, units UnitRepository, store ContentStore, gen gateway.Generator, keys gateway.KeyStore, tick time.Duration) (*CourseService, error) {
	all, err := units.ListUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("load unit catalog: %w", err)
	}
	summaries := make([]UnitSummary, 0, len(all))
	for _, u := range all {
		summaries = append(summaries, UnitSummary{ID: u.ID, Title: u.Title, Summary: u.Summary})
	}
	return &CourseService{
		course:       course,
		summaries:    summaries,
		units:        units,
		store:        store,
		gen:          gen,
		keys:         keys,
		tickInterval: tick,
		screen:       domain.ScreenHome,
		subTab:       domain.TabInfo,
		analyses:     make(map[string]bool),
		subscribers:  make(map[chan ViewState]struct{}),
	}, nil
}

// Subscribe returns a channel receiving a view snapshot on every state
// change. The caller must invoke the returned cancel function to avoid leaks.
func (s *CourseService) Subscribe() (<-chan ViewState, func()) {
	ch := make(chan ViewState, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	initial := s.viewLocked()
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// View returns the current snapshot.
func (s *CourseService) View() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// OpenUnit navigates into a unit: sub-tab resets to INFO and any prior
// session or error is cleared.
func (s *CourseService) OpenUnit(ctx context.Context, unitID int) error {
	unit, err := s.units.GetUnit(ctx, unitID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.abandonLocked()
	s.screen = domain.ScreenUnitView
	s.subTab = domain.TabInfo
	s.activeUnit = &unit
	s.errMsg = ""
	s.authRequired = false
	s.broadcastLocked()
	return nil
}

// SetTab switches the unit view section.
func (s *CourseService) SetTab(tab domain.SubTab) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen != domain.ScreenUnitView {
		return domain.ErrInvalidState
	}
	switch tab {
	case domain.TabInfo, domain.TabGlossary, domain.TabPractice, domain.TabCases, domain.TabQuiz:
	default:
		return fmt.Errorf("unknown tab %q", tab)
	}
	s.subTab = tab
	s.broadcastLocked()
	return nil
}

// GoHome abandons any active session and returns to the home screen.
func (s *CourseService) GoHome() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.abandonLocked()
	s.screen = domain.ScreenHome
	s.activeUnit = nil
	s.errMsg = ""
	s.authRequired = false
	s.broadcastLocked()
}

// Abandon discards the active session without leaving the current screen.
func (s *CourseService) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.abandonLocked()
	s.broadcastLocked()
}

// abandonLocked stops the timer before any other state is discarded so a
// stale expiry can never fire against a reused slot.
func (s *CourseService) abandonLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.session = nil
	s.lastCorrect = nil
	s.epoch++
}

// ToggleAnalysis flips the expert-analysis panel of a case study.
func (s *CourseService) ToggleAnalysis(caseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[caseID] = !s.analyses[caseID]
	s.broadcastLocked()
}

// SetAPIKey installs the generation credential for this process.
func (s *CourseService) SetAPIKey(key string) error {
	if err := s.keys.SetKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
	s.authRequired = false
	s.broadcastLocked()
	return nil
}

// GenerateQuestions grows the active unit's practice bank by one batch.
// Single-flight: a second trigger while one is outstanding is rejected.
func (s *CourseService) GenerateQuestions(ctx context.Context) error {
	unit, err := s.beginGeneration()
	if err != nil {
		return err
	}

	questions, genErr := s.gen.GenerateQuestions(ctx, strconv.Itoa(unit.ID), unit.Title, practiceBatchSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if genErr != nil {
		s.recordFailureLocked(genErr, msgQuestionsFailed)
		s.broadcastLocked()
		return genErr
	}
	// Stores are keyed by unit id and outlive navigation, so a late result
	// still lands in the right pool.
	s.store.AppendQuestions(unit.ID, questions)
	s.broadcastLocked()
	return nil
}

// GenerateGlossary grows the active unit's glossary with generated terms.
func (s *CourseService) GenerateGlossary(ctx context.Context) error {
	unit, err := s.beginGeneration()
	if err != nil {
		return err
	}

	terms, genErr := s.gen.GenerateGlossaryTerms(ctx, unit.ID, unit.Title)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if genErr != nil {
		s.recordFailureLocked(genErr, msgGlossaryFailed)
		s.broadcastLocked()
		return genErr
	}
	s.store.AppendGlossary(unit.ID, terms)
	s.broadcastLocked()
	return nil
}

// beginGeneration flips the busy flag for an augmentation call and resolves
// the active unit.
func (s *CourseService) beginGeneration() (domain.UnitData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == nil {
		return domain.UnitData{}, &domain.GenerationError{Authorization: true, Err: domain.ErrGenerationBusy}
	}
	if s.busy {
		return domain.UnitData{}, domain.ErrGenerationBusy
	}
	if s.activeUnit == nil {
		return domain.UnitData{}, domain.ErrUnitNotFound
	}
	s.busy = true
	s.errMsg = ""
	s.authRequired = false
	unit := *s.activeUnit
	s.broadcastLocked()
	return unit, nil
}

// StartUnitQuiz snapshots the active unit's pool (base + generated), topping
// it up from the gateway when short, and starts a 20-question session.
func (s *CourseService) StartUnitQuiz(ctx context.Context) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return domain.ErrGenerationBusy
	}
	if s.activeUnit == nil {
		s.mu.Unlock()
		return domain.ErrUnitNotFound
	}
	unit := *s.activeUnit
	s.busy = true
	s.errMsg = ""
	s.authRequired = false
	epoch := s.epoch
	s.broadcastLocked()
	s.mu.Unlock()

	want := domain.ModeUnitQuiz.QuestionCount()
	pool := append(append([]domain.Question{}, unit.Questions...), s.store.Questions(unit.ID)...)
	if len(pool) < want && s.gen != nil {
		label := "التقييم النهائي للوحدة: " + unit.Title
		generated, err := s.gen.GenerateQuestions(ctx, strconv.Itoa(unit.ID), label, want-len(pool))
		if err == nil {
			s.store.AppendQuestions(unit.ID, generated)
			pool = append(pool, generated...)
		} else if len(pool) == 0 {
			return s.failStart(err, msgQuizStartFailed)
		}
	}
	if len(pool) > want {
		pool = pool[:want]
	}

	return s.commitStart(epoch, domain.ModeUnitQuiz, pool, msgQuizStartFailed)
}

// StartFullExam snapshots a 30-question set across every unit and starts
// the comprehensive exam.
func (s *CourseService) StartFullExam(ctx context.Context) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return domain.ErrGenerationBusy
	}
	s.busy = true
	s.errMsg = ""
	s.authRequired = false
	epoch := s.epoch
	s.broadcastLocked()
	s.mu.Unlock()

	want := domain.ModeFullExam.QuestionCount()
	var pool []domain.Question
	units, err := s.units.ListUnits(ctx)
	if err != nil {
		return s.failStart(err, msgExamStartFailed)
	}
	for _, u := range units {
		pool = append(pool, u.Questions...)
		pool = append(pool, s.store.Questions(u.ID)...)
	}
	if len(pool) < want && s.gen != nil {
		generated, genErr := s.gen.GenerateQuestions(ctx, domain.ScopeAllUnits, "الامتحان النهائي الشامل للمقرر", want-len(pool))
		if genErr == nil {
			pool = append(pool, generated...)
		} else if len(pool) == 0 {
			return s.failStart(genErr, msgExamStartFailed)
		}
	}
	if len(pool) > want {
		pool = pool[:want]
	}

	if err := s.commitStart(epoch, domain.ModeFullExam, pool, msgExamStartFailed); err != nil {
		return err
	}
	s.mu.Lock()
	s.screen = domain.ScreenFullExam
	s.broadcastLocked()
	s.mu.Unlock()
	return nil
}

// commitStart installs a fresh session unless the user navigated away while
// the pool was being assembled.
func (s *CourseService) commitStart(epoch uint64, mode domain.SessionMode, pool []domain.Question, failMsg string) error {
	session, err := NewQuizSession(mode, pool)
	if err != nil {
		return s.failStart(err, failMsg)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if s.epoch != epoch {
		// Stale start: the user abandoned or navigated during generation.
		s.broadcastLocked()
		return nil
	}
	s.abandonLocked()
	if err := session.Start(mode.TimeLimitMinutes()); err != nil {
		s.broadcastLocked()
		return err
	}
	s.session = session
	s.lastCorrect = nil

	timer := newTimerWithInterval(mode.TimeLimitMinutes()*60, s.tickInterval)
	s.timer = timer
	sessionEpoch := s.epoch
	timer.Start(
		func(remaining int) { s.onTick(sessionEpoch, remaining) },
		func() { s.onExpire(sessionEpoch) },
	)
	s.broadcastLocked()
	return nil
}

func (s *CourseService) failStart(err error, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	s.recordFailureLocked(err, msg)
	s.broadcastLocked()
	return err
}

// recordFailureLocked maps a failure to the user-facing banner. A running
// session is never touched: a failed augmentation cannot corrupt a quiz.
func (s *CourseService) recordFailureLocked(err error, fallback string) {
	if domain.IsAuthorization(err) {
		s.errMsg = msgAuthRequired
		s.authRequired = true
		return
	}
	s.errMsg = fallback
}

// SubmitAnswer judges the choice for the current question.
func (s *CourseService) SubmitAnswer(choice string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.ErrNoSession
	}
	wasAnswered := s.session.Answered()
	correct, err := s.session.SubmitAnswer(choice)
	if err != nil {
		return err
	}
	if !wasAnswered {
		c := correct
		s.lastCorrect = &c
	}
	s.broadcastLocked()
	return nil
}

// Advance moves to the next question or finishes the session.
func (s *CourseService) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.ErrNoSession
	}
	if err := s.session.Advance(); err != nil {
		return err
	}
	s.lastCorrect = nil
	if s.session.Phase() == domain.PhaseFinished && s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.broadcastLocked()
	return nil
}

// Retry re-attempts the finished session's mode with a fresh snapshot. The
// pool may legitimately differ if augmentation ran in between.
func (s *CourseService) Retry(ctx context.Context) error {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return domain.ErrNoSession
	}
	mode := s.session.Mode()
	s.mu.Unlock()

	if mode == domain.ModeFullExam {
		return s.StartFullExam(ctx)
	}
	return s.StartUnitQuiz(ctx)
}

// onTick is the timer callback for countdown progress.
func (s *CourseService) onTick(epoch uint64, remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch || s.session == nil {
		return
	}
	s.session.Tick(remaining)
	s.broadcastLocked()
}

// onExpire force-finishes the session when the countdown runs out. The epoch
// guard discards expiries from timers belonging to abandoned sessions.
func (s *CourseService) onExpire(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch || s.session == nil {
		return
	}
	s.session.Expire()
	s.timer = nil
	s.broadcastLocked()
}

func (s *CourseService) broadcastLocked() {
	view := s.viewLocked()
	for ch := range s.subscribers {
		select {
		case ch <- view:
		default:
			// Drop the stale snapshot so a slow consumer never blocks the engine.
			select {
			case <-ch:
			default:
			}
			ch <- view
		}
	}
}
