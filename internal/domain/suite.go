package domain

// Fixture is one known answer: the operands and the expected GCD and LCM.
type Fixture struct {
	Name    string `json:"name"`
	A       int64  `json:"a"`
	B       int64  `json:"b"`
	WantGCD int64  `json:"want_gcd"`
	WantLCM int64  `json:"want_lcm"`
}

// Suite groups fixtures under one logical unit. Order matters: results are
// reported in the same order.
type Suite struct {
	Name        string
	Description string
	Fixtures    []Fixture
}

// SuiteRef is a lightweight reference to a suite. Path is empty for built-in suites.
type SuiteRef struct {
	Name    string
	Path    string
	BuiltIn bool
}

const (
	SuiteLesson = "lesson"
	SuiteBonus  = "bonus"
)

// LessonSuite returns the ten primary fixtures of the GCD/LCM lesson.
// Each call returns a fresh copy.
func LessonSuite() Suite {
	return Suite{
		Name:        SuiteLesson,
		Description: "Lesson 1: coprime pairs, small common factors and a large common factor",
		Fixtures: []Fixture{
			fixture(12, 18, 6, 36),
			fixture(8, 12, 4, 24),
			fixture(15, 25, 5, 75),
			fixture(9, 16, 1, 144),
			fixture(35, 77, 7, 385),
			fixture(48, 18, 6, 144),
			fixture(100, 75, 25, 300),
			fixture(7, 13, 1, 91),
			fixture(24, 36, 12, 72),
			fixture(50, 125, 25, 250),
		},
	}
}

// BonusSuite returns the edge-case fixtures: a zero operand, equal operands,
// two primes and large operands.
func BonusSuite() Suite {
	return Suite{
		Name:        SuiteBonus,
		Description: "Bonus challenge: zero, equal numbers, primes and big numbers",
		Fixtures: []Fixture{
			fixture(0, 5, 5, 0),
			fixture(1, 1, 1, 1),
			fixture(17, 23, 1, 391),
			fixture(1000, 1001, 1, 1001000),
			fixture(2147483647, 2147483648, 1, 4611686016279904256),
		},
	}
}

// BuiltInSuite returns a built-in suite by name.
func BuiltInSuite(name string) (Suite, bool) {
	switch name {
	case SuiteLesson:
		return LessonSuite(), true
	case SuiteBonus:
		return BonusSuite(), true
	default:
		return Suite{}, false
	}
}

// BuiltInSuiteRefs lists the built-in suites in display order.
func BuiltInSuiteRefs() []SuiteRef {
	return []SuiteRef{
		{Name: SuiteLesson, BuiltIn: true},
		{Name: SuiteBonus, BuiltIn: true},
	}
}

func fixture(a, b, gcd, lcm int64) Fixture {
	return Fixture{
		Name:    FixtureName(a, b),
		A:       a,
		B:       b,
		WantGCD: gcd,
		WantLCM: lcm,
	}
}
