package domain

import "testing"

func TestBuiltInSuites_AgreeWithReference(t *testing.T) {
	for _, s := range []Suite{LessonSuite(), BonusSuite()} {
		for i, f := range s.Fixtures {
			if got := GCD(f.A, f.B); got != f.WantGCD {
				t.Fatalf("%s[%d] %s: GCD=%d, fixture says %d", s.Name, i, f.Name, got, f.WantGCD)
			}
			if got := LCM(f.A, f.B); got != f.WantLCM {
				t.Fatalf("%s[%d] %s: LCM=%d, fixture says %d", s.Name, i, f.Name, got, f.WantLCM)
			}
		}
	}
}

func TestLessonSuite_HasTenFixtures(t *testing.T) {
	s := LessonSuite()
	if len(s.Fixtures) != 10 {
		t.Fatalf("expected 10 fixtures, got %d", len(s.Fixtures))
	}
	if s.Fixtures[0].Name != "12 and 18" {
		t.Fatalf("unexpected first fixture name %q", s.Fixtures[0].Name)
	}
}

func TestLessonSuite_ReturnsFreshCopy(t *testing.T) {
	s := LessonSuite()
	s.Fixtures[0].WantGCD = 999

	if LessonSuite().Fixtures[0].WantGCD != 6 {
		t.Fatalf("expected built-in table to be unaffected by caller mutation")
	}
}

func TestBuiltInSuite(t *testing.T) {
	if s, ok := BuiltInSuite(SuiteBonus); !ok || s.Name != SuiteBonus {
		t.Fatalf("expected bonus suite, got %+v ok=%v", s, ok)
	}
	if _, ok := BuiltInSuite("nope"); ok {
		t.Fatalf("expected unknown suite to be absent")
	}
	if len(BuiltInSuiteRefs()) != 2 {
		t.Fatalf("expected two built-in refs")
	}
}

func TestCandidateMissing(t *testing.T) {
	c := Candidate{Name: "student"}
	if c.Implemented() {
		t.Fatalf("expected empty candidate to be unimplemented")
	}
	if m := c.Missing(); len(m) != 2 || m[0] != "gcd" || m[1] != "lcm" {
		t.Fatalf("unexpected missing list %v", m)
	}

	c.GCD = GCD
	if m := c.Missing(); len(m) != 1 || m[0] != "lcm" {
		t.Fatalf("unexpected missing list %v", m)
	}

	if !Reference().Implemented() {
		t.Fatalf("expected reference candidate to be complete")
	}
}
