package domain

// ScopeAllUnits is the generation scope covering every unit of the course.
const ScopeAllUnits = "ALL"

// Explanation is the pedagogical bundle attached to every question.
type Explanation struct {
	Theory          string `json:"theory"`
	DetailedExample string `json:"detailedExample"`
	Implications    string `json:"implications"`
	Applications    string `json:"applications"`
}

// Question models an MCQ question. Answer always equals one of Options verbatim.
type Question struct {
	ID          string      `json:"id"`
	Unit        int         `json:"unit"` // 0 means comprehensive (all units)
	Text        string      `json:"question"`
	Options     []string    `json:"options"`
	Answer      string      `json:"answer"`
	Explanation Explanation `json:"explanation"`
}

// Valid reports whether the question satisfies the MCQ invariants:
// at least two options and an answer matching one option verbatim.
func (q Question) Valid() bool {
	if q.Text == "" || len(q.Options) < 2 {
		return false
	}
	for _, opt := range q.Options {
		if opt == q.Answer {
			return true
		}
	}
	return false
}

// GlossaryTerm is a bilingual course term. Terms have no identity beyond
// their content; duplicates are allowed.
type GlossaryTerm struct {
	TermAr       string `json:"termAr"`
	TermEn       string `json:"termEn"`
	Definition   string `json:"definition"`
	Theory       string `json:"theory"`
	LocalExample string `json:"localExample"`
	Impact       string `json:"impact"`
	Application  string `json:"application"`
}

// ExpertAnalysis accompanies a case study.
type ExpertAnalysis struct {
	Theory            string `json:"theory"`
	LocalInsight      string `json:"localInsight"`
	PracticalSolution string `json:"practicalSolution"`
}

// CaseStudy is an interactive scenario with discussion questions.
type CaseStudy struct {
	ID             string         `json:"id"`
	Scenario       string         `json:"scenario"`
	Questions      []string       `json:"questions"`
	TargetSkill    string         `json:"targetSkill"`
	ExpertAnalysis ExpertAnalysis `json:"expertAnalysis"`
}

// WeeklyPlanEntry is one row of a unit's teaching plan.
type WeeklyPlanEntry struct {
	Week         int    `json:"week"`
	Topic        string `json:"topic"`
	Activity     string `json:"activity"`
	LocalExample string `json:"localExample"`
}

// AssessmentEntry ties a grading method to its weight percentage.
type AssessmentEntry struct {
	Method string `json:"method"`
	Weight int    `json:"weight"`
}

// UnitData is the immutable static content of one course unit. Generated
// content never mutates it; augmentation accumulates in side stores keyed
// by unit id and is concatenated at read time.
type UnitData struct {
	ID         int               `json:"id"`
	Title      string            `json:"title"`
	Summary    string            `json:"summary"`
	Objectives []string          `json:"objectives"`
	WeeklyPlan []WeeklyPlanEntry `json:"weeklyPlan"`
	Glossary   []GlossaryTerm    `json:"glossary"`
	Questions  []Question        `json:"questions"`
	Cases      []CaseStudy       `json:"cases"`
	Assessment []AssessmentEntry `json:"assessment"`
}

// CourseInfo is the course-level metadata shown on the home screen.
type CourseInfo struct {
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	University  string   `json:"university"`
	Faculty     string   `json:"faculty"`
	Level       string   `json:"level"`
	Hours       string   `json:"hours"`
	Coordinator string   `json:"coordinator"`
	Objectives  []string `json:"objectives"`
	References  []string `json:"references"`
}

// SessionMode distinguishes a single-unit quiz from the comprehensive exam.
type SessionMode string

const (
	ModeUnitQuiz SessionMode = "UNIT_QUIZ"
	ModeFullExam SessionMode = "FULL_EXAM"
)

// QuestionCount returns the fixed question budget for the mode.
func (m SessionMode) QuestionCount() int {
	if m == ModeFullExam {
		return 30
	}
	return 20
}

// TimeLimitMinutes returns the fixed countdown budget for the mode.
func (m SessionMode) TimeLimitMinutes() int {
	if m == ModeFullExam {
		return 45
	}
	return 20
}

// Phase is the coarse lifecycle stage of a quiz session.
type Phase string

const (
	PhaseNotStarted Phase = "NOT_STARTED"
	PhaseRunning    Phase = "RUNNING"
	PhaseFinished   Phase = "FINISHED"
)

// Grade is the five-band classification of a finished session.
type Grade string

const (
	GradeExcellent Grade = "Excellent"
	GradeVeryGood  Grade = "Very Good"
	GradeGood      Grade = "Good"
	GradePass      Grade = "Pass"
	GradeFail      Grade = "Fail"
)

// GradeFor classifies a percentage. Bands are inclusive at their lower
// bound and evaluated highest first.
func GradeFor(percentage float64) Grade {
	switch {
	case percentage >= 85:
		return GradeExcellent
	case percentage >= 75:
		return GradeVeryGood
	case percentage >= 65:
		return GradeGood
	case percentage >= 50:
		return GradePass
	default:
		return GradeFail
	}
}

// Screen is the top-level navigation state.
type Screen string

const (
	ScreenHome     Screen = "HOME"
	ScreenUnitView Screen = "UNIT_VIEW"
	ScreenFullExam Screen = "FULL_EXAM"
)

// SubTab selects a section inside the unit view.
type SubTab string

const (
	TabInfo     SubTab = "INFO"
	TabGlossary SubTab = "GLOSSARY"
	TabPractice SubTab = "PRACTICE"
	TabCases    SubTab = "CASES"
	TabQuiz     SubTab = "QUIZ"
)
