package app

import (
	"psy211-course-service/internal/domain"
)

// QuizSession is the state machine for one quiz or exam run. The question
// set is snapshotted at construction and never mutated mid-session. The
// struct is not self-locking: the owning CourseService serializes every
// mutation (user intents and timer ticks share one lock).
type QuizSession struct {
	mode             domain.SessionMode
	questions        []domain.Question
	currentIndex     int
	score            int
	answeredCurrent  bool
	phase            domain.Phase
	remainingSeconds int
}

// NewQuizSession snapshots the question set. An empty set is a programmer
// error and rejected up front.
func NewQuizSession(mode domain.SessionMode, questions []domain.Question) (*QuizSession, error) {
	if len(questions) == 0 {
		return nil, domain.ErrInvalidSession
	}
	snapshot := make([]domain.Question, len(questions))
	copy(snapshot, questions)
	return &QuizSession{
		mode:      mode,
		questions: snapshot,
		phase:     domain.PhaseNotStarted,
	}, nil
}

// Start moves the session into RUNNING and resets all progress. Valid from
// NOT_STARTED; a re-attempt is a brand-new session, never a restart.
func (s *QuizSession) Start(timeLimitMinutes int) error {
	if s.phase == domain.PhaseRunning {
		return domain.ErrInvalidState
	}
	s.currentIndex = 0
	s.score = 0
	s.answeredCurrent = false
	s.phase = domain.PhaseRunning
	s.remainingSeconds = timeLimitMinutes * 60
	return nil
}

// SubmitAnswer judges a choice against the current question. A second call
// while the question is already answered is a silent no-op. The index never
// advances here.
func (s *QuizSession) SubmitAnswer(choice string) (bool, error) {
	if s.phase != domain.PhaseRunning {
		return false, domain.ErrInvalidState
	}
	if s.answeredCurrent {
		return false, nil
	}
	correct := choice == s.questions[s.currentIndex].Answer
	if correct {
		s.score++
	}
	s.answeredCurrent = true
	return correct, nil
}

// Advance moves to the next question, or finishes the session on the last
// one. Answering first is enforced here, not at the presentation layer.
// Once the countdown has reached zero expiry wins over a pending advance.
func (s *QuizSession) Advance() error {
	if s.phase != domain.PhaseRunning {
		return domain.ErrInvalidState
	}
	if !s.answeredCurrent {
		return domain.ErrInvalidState
	}
	if s.remainingSeconds <= 0 {
		s.phase = domain.PhaseFinished
		return nil
	}
	if s.currentIndex == len(s.questions)-1 {
		s.phase = domain.PhaseFinished
		return nil
	}
	s.currentIndex++
	s.answeredCurrent = false
	return nil
}

// Tick records the countdown progress pushed by the session timer.
func (s *QuizSession) Tick(remaining int) {
	if s.phase != domain.PhaseRunning {
		return
	}
	s.remainingSeconds = remaining
}

// Expire force-finishes a running session regardless of the answered flag.
// This is the only transition that can end a session mid-question.
func (s *QuizSession) Expire() {
	if s.phase != domain.PhaseRunning {
		return
	}
	s.remainingSeconds = 0
	s.phase = domain.PhaseFinished
}

func (s *QuizSession) Mode() domain.SessionMode { return s.mode }
func (s *QuizSession) Phase() domain.Phase      { return s.phase }
func (s *QuizSession) Score() int               { return s.score }
func (s *QuizSession) CurrentIndex() int        { return s.currentIndex }
func (s *QuizSession) Answered() bool           { return s.answeredCurrent }
func (s *QuizSession) Len() int                 { return len(s.questions) }
func (s *QuizSession) Remaining() int           { return s.remainingSeconds }

// Current returns the question under the cursor.
func (s *QuizSession) Current() domain.Question {
	return s.questions[s.currentIndex]
}

// SessionResult is the performance report of a finished session.
type SessionResult struct {
	Score      int                `json:"score"`
	Total      int                `json:"total"`
	Percentage float64            `json:"percentage"`
	Grade      domain.Grade       `json:"grade"`
	Advice     string             `json:"advice"`
	Mode       domain.SessionMode `json:"mode"`
}

// Result grades a finished session. Calling it earlier is a caller bug.
func (s *QuizSession) Result() (SessionResult, error) {
	if s.phase != domain.PhaseFinished {
		return SessionResult{}, domain.ErrInvalidState
	}
	percentage := float64(s.score) / float64(len(s.questions)) * 100
	return SessionResult{
		Score:      s.score,
		Total:      len(s.questions),
		Percentage: percentage,
		Grade:      domain.GradeFor(percentage),
		Advice:     adviceFor(percentage),
		Mode:       s.mode,
	}, nil
}

// adviceFor mirrors the three-tier feedback copy of the report screen.
func adviceFor(percentage float64) string {
	switch {
	case percentage >= 85:
		return "تهانينا! لقد أثبت كفاءة أكاديمية استثنائية تليق بطلاب علم النفس المتميزين."
	case percentage >= 50:
		return "نتيجة مرضية، ننصحك بالتركيز على المصطلحات الدقيقة لرفع تقديرك في الامتحان النهائي."
	default:
		return "تحتاج إلى إعادة قراءة مخرجات التعلم والقاموس الذكي قبل المحاولة القادمة."
	}
}
