package app

import (
	"sort"

	"psy211-course-service/internal/domain"
)

// ViewState is the full snapshot pushed to a subscriber after every state
// change. It is self-contained so a freshly connected client can render
// from the first message without any other round trip.
type ViewState struct {
	Screen       domain.Screen     `json:"screen"`
	Course       domain.CourseInfo `json:"course"`
	Units        []UnitSummary     `json:"units"`
	HasKey       bool              `json:"hasKey"`
	Busy         bool              `json:"busy"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
	AuthRequired bool              `json:"authRequired"`
	Unit         *UnitView         `json:"unit,omitempty"`
	Quiz         *QuizView         `json:"quiz,omitempty"`
}

// UnitView projects the open unit with the dynamic pools merged in. Base
// content always comes first, generated entries follow in arrival order.
type UnitView struct {
	ID              int                      `json:"id"`
	Title           string                   `json:"title"`
	Summary         string                   `json:"summary"`
	Objectives      []string                 `json:"objectives"`
	WeeklyPlan      []domain.WeeklyPlanEntry `json:"weeklyPlan"`
	Glossary        []domain.GlossaryTerm    `json:"glossary"`
	Questions       []domain.Question        `json:"questions"`
	Cases           []domain.CaseStudy       `json:"cases"`
	Assessment      []domain.AssessmentEntry `json:"assessment"`
	SubTab          domain.SubTab            `json:"subTab"`
	VisibleAnalyses []string                 `json:"visibleAnalyses,omitempty"`
}

// QuizView projects the active session. The correct answer and the
// explanation of the current question are withheld until it was answered.
type QuizView struct {
	Mode             domain.SessionMode `json:"mode"`
	Phase            domain.Phase       `json:"phase"`
	Index            int                `json:"index"`
	Total            int                `json:"total"`
	Question         *QuestionView      `json:"question,omitempty"`
	Answered         bool               `json:"answered"`
	LastCorrect      *bool              `json:"lastCorrect,omitempty"`
	RemainingSeconds int                `json:"remainingSeconds"`
	RemainingDisplay string             `json:"remainingDisplay"`
	Result           *SessionResult     `json:"result,omitempty"`
}

// QuestionView is one question as shown to the learner.
type QuestionView struct {
	ID          string              `json:"id"`
	Text        string              `json:"question"`
	Options     []string            `json:"options"`
	Answer      string              `json:"answer,omitempty"`
	Explanation *domain.Explanation `json:"explanation,omitempty"`
}

func (s *CourseService) viewLocked() ViewState {
	view := ViewState{
		Screen:       s.screen,
		Course:       s.course,
		Units:        s.summaries,
		Busy:         s.busy,
		ErrorMessage: s.errMsg,
		AuthRequired: s.authRequired,
	}
	if s.keys != nil {
		view.HasKey = s.keys.HasKey()
	}
	if s.activeUnit != nil && s.screen == domain.ScreenUnitView {
		view.Unit = s.unitViewLocked()
	}
	if s.session != nil {
		view.Quiz = s.quizViewLocked()
	}
	return view
}

func (s *CourseService) unitViewLocked() *UnitView {
	unit := s.activeUnit
	uv := &UnitView{
		ID:         unit.ID,
		Title:      unit.Title,
		Summary:    unit.Summary,
		Objectives: unit.Objectives,
		WeeklyPlan: unit.WeeklyPlan,
		Cases:      unit.Cases,
		Assessment: unit.Assessment,
		SubTab:     s.subTab,
	}
	uv.Glossary = append(append([]domain.GlossaryTerm{}, unit.Glossary...), s.store.Glossary(unit.ID)...)
	uv.Questions = append(append([]domain.Question{}, unit.Questions...), s.store.Questions(unit.ID)...)
	for id, visible := range s.analyses {
		if visible {
			uv.VisibleAnalyses = append(uv.VisibleAnalyses, id)
		}
	}
	sort.Strings(uv.VisibleAnalyses)
	return uv
}

func (s *CourseService) quizViewLocked() *QuizView {
	session := s.session
	qv := &QuizView{
		Mode:             session.Mode(),
		Phase:            session.Phase(),
		Index:            session.CurrentIndex(),
		Total:            session.Len(),
		Answered:         session.Answered(),
		LastCorrect:      s.lastCorrect,
		RemainingSeconds: session.Remaining(),
		RemainingDisplay: FormatRemaining(session.Remaining()),
	}
	if session.Phase() == domain.PhaseRunning {
		q := session.Current()
		projected := &QuestionView{
			ID:      q.ID,
			Text:    q.Text,
			Options: q.Options,
		}
		if session.Answered() {
			projected.Answer = q.Answer
			explanation := q.Explanation
			projected.Explanation = &explanation
		}
		qv.Question = projected
	}
	if session.Phase() == domain.PhaseFinished {
		if result, err := session.Result(); err == nil {
			qv.Result = &result
		}
	}
	return qv
}
