package content

import "testing"

func TestCourseMetadata(t *testing.T) {
	course := Course()
	if course.Code != "PSY 211" {
		t.Fatalf("unexpected course code %q", course.Code)
	}
	if course.Name == "" || course.Coordinator == "" {
		t.Fatalf("expected complete course header, got %+v", course)
	}
	if len(course.Objectives) == 0 || len(course.References) == 0 {
		t.Fatalf("expected objectives and references")
	}
}

func TestUnitsAreComplete(t *testing.T) {
	units := Units()
	if len(units) != 5 {
		t.Fatalf("expected 5 units, got %d", len(units))
	}
	for i, unit := range units {
		if unit.ID != i+1 {
			t.Fatalf("expected sequential ids, got %d at position %d", unit.ID, i)
		}
		if unit.Title == "" || unit.Summary == "" {
			t.Fatalf("unit %d missing header", unit.ID)
		}
		if len(unit.Objectives) == 0 {
			t.Fatalf("unit %d has no learning outcomes", unit.ID)
		}
		if len(unit.Glossary) == 0 {
			t.Fatalf("unit %d has no glossary", unit.ID)
		}
		if len(unit.Questions) == 0 {
			t.Fatalf("unit %d has no seed questions", unit.ID)
		}
		if len(unit.Cases) == 0 {
			t.Fatalf("unit %d has no case studies", unit.ID)
		}
	}
}

func TestSeedQuestionsSatisfyMCQInvariants(t *testing.T) {
	seen := make(map[string]bool)
	for _, unit := range Units() {
		for _, q := range unit.Questions {
			if !q.Valid() {
				t.Fatalf("invalid seed question %q in unit %d", q.ID, unit.ID)
			}
			if q.Unit != unit.ID {
				t.Fatalf("question %q tagged unit %d but lives in unit %d", q.ID, q.Unit, unit.ID)
			}
			if seen[q.ID] {
				t.Fatalf("duplicate question id %q", q.ID)
			}
			seen[q.ID] = true
			if q.Explanation.Theory == "" {
				t.Fatalf("seed question %q missing its theory note", q.ID)
			}
		}
	}
}

func TestAssessmentEntries(t *testing.T) {
	for _, unit := range Units() {
		if len(unit.Assessment) == 0 {
			t.Fatalf("unit %d has no assessment entry", unit.ID)
		}
		for _, entry := range unit.Assessment {
			if entry.Method == "" || entry.Weight <= 0 {
				t.Fatalf("unit %d has an incomplete assessment entry: %+v", unit.ID, entry)
			}
		}
	}
}

func TestCaseStudiesCarryExpertAnalysis(t *testing.T) {
	seen := make(map[string]bool)
	for _, unit := range Units() {
		for _, cs := range unit.Cases {
			if cs.ID == "" || cs.Scenario == "" {
				t.Fatalf("incomplete case study in unit %d: %+v", unit.ID, cs)
			}
			if seen[cs.ID] {
				t.Fatalf("duplicate case id %q", cs.ID)
			}
			seen[cs.ID] = true
			if cs.ExpertAnalysis.Theory == "" || cs.ExpertAnalysis.PracticalSolution == "" {
				t.Fatalf("case %q missing expert analysis", cs.ID)
			}
		}
	}
}
