package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/euclid/internal/domain"
)

type fakeLocator struct {
	root string
	err  error
}

func (f fakeLocator) FindRoot(string) (string, error) { return f.root, f.err }

type fakeInitializer struct {
	calls int
	force bool
	err   error
}

func (f *fakeInitializer) Init(_ domain.WorkspaceSpec, force bool) error {
	f.calls++
	f.force = force
	return f.err
}

func testModel(t *testing.T) model {
	t.Helper()
	return newModel(Deps{
		WorkspaceLocator: fakeLocator{err: errors.New("no workspace")},
	})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", next)
	}
	return mm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func selectMenu(t *testing.T, m model, title string) (model, tea.Cmd) {
	t.Helper()
	for i, it := range m.menu.Items() {
		if it.(menuItem).title == title {
			m.menu.Select(i)
			return update(t, m, key("enter"))
		}
	}
	t.Fatalf("menu item %q not found", title)
	return m, nil
}

func TestNewModel_DefaultsToReferenceCandidate(t *testing.T) {
	m := testModel(t)

	if m.deps.Candidate.Name != domain.CandidateReference {
		t.Fatalf("expected reference candidate, got %q", m.deps.Candidate.Name)
	}
	if m.workspaceFound {
		t.Fatalf("expected no workspace")
	}
	if m.scr != screenHome {
		t.Fatalf("expected home screen")
	}
}

func TestNewModel_DetectsWorkspace(t *testing.T) {
	m := newModel(Deps{WorkspaceLocator: fakeLocator{root: "/tmp/ws"}})

	if !m.workspaceFound || m.workspaceRoot != "/tmp/ws" {
		t.Fatalf("expected workspace /tmp/ws, got found=%v root=%q", m.workspaceFound, m.workspaceRoot)
	}
	if !strings.Contains(m.View(), "Workspace: /tmp/ws") {
		t.Fatalf("expected banner with workspace root")
	}
}

func TestHome_QuitKeys(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := update(t, testModel(t), key(k))
		if !isQuit(cmd) {
			t.Fatalf("%s: expected quit", k)
		}
	}

	_, cmd := selectMenu(t, testModel(t), menuQuit)
	if !isQuit(cmd) {
		t.Fatalf("Quit item: expected quit")
	}
}

func TestCalculator_ComputesGCDAndLCM(t *testing.T) {
	m, _ := selectMenu(t, testModel(t), menuCalculator)
	if m.scr != screenCalc {
		t.Fatalf("expected calculator screen")
	}

	m.inputs[0].SetValue("12")
	m, _ = update(t, m, key("enter"))
	if m.focus != 1 {
		t.Fatalf("enter on an empty second input should move focus, got %d", m.focus)
	}

	m.inputs[1].SetValue("18")
	m, _ = update(t, m, key("enter"))

	if m.calcErr != "" {
		t.Fatalf("unexpected error: %s", m.calcErr)
	}
	if m.calcResult == nil {
		t.Fatalf("expected a result")
	}
	if m.calcResult.GCD != 6 || m.calcResult.LCM != 36 {
		t.Fatalf("got gcd=%d lcm=%d", m.calcResult.GCD, m.calcResult.LCM)
	}

	v := m.View()
	for _, want := range []string{"GCD(12, 18) = 6", "LCM(12, 18) = 36", "36 ÷ 12 = 3", "12: 12, 24, 36*", "18: 18, 36*", "Steps:"} {
		if !strings.Contains(v, want) {
			t.Fatalf("view missing %q:\n%s", want, v)
		}
	}
}

func TestCalculator_RejectsNonNumericInput(t *testing.T) {
	m, _ := selectMenu(t, testModel(t), menuCalculator)
	m.inputs[0].SetValue("abc")
	m.inputs[1].SetValue("4")
	m.focus = 1

	m, _ = update(t, m, key("enter"))

	if m.calcResult != nil {
		t.Fatalf("expected no result")
	}
	if !strings.Contains(m.calcErr, `"abc" is not a whole number`) {
		t.Fatalf("unexpected error: %q", m.calcErr)
	}
	if m.scr != screenCalc {
		t.Fatalf("calculator should stay open after bad input")
	}
}

func TestCalculator_AppliesOperandPolicy(t *testing.T) {
	m := newModel(Deps{
		WorkspaceLocator: fakeLocator{err: errors.New("no workspace")},
		Operands:         domain.OperandsConfig{AllowNegative: false},
	})
	m, _ = selectMenu(t, m, menuCalculator)
	m.inputs[0].SetValue("-12")
	m.inputs[1].SetValue("18")
	m.focus = 1

	m, _ = update(t, m, key("enter"))

	if !strings.Contains(m.calcErr, "a=-12 must be >= 0") {
		t.Fatalf("unexpected error: %q", m.calcErr)
	}
}

func TestCalculator_BackToMenu(t *testing.T) {
	for _, k := range []string{"esc", "q"} {
		m, _ := selectMenu(t, testModel(t), menuCalculator)
		m, cmd := update(t, m, key(k))
		if m.scr != screenHome {
			t.Fatalf("%s: expected home screen", k)
		}
		if isQuit(cmd) {
			t.Fatalf("%s: should not quit from the calculator", k)
		}
	}
}

func TestCalculator_TabCyclesFocus(t *testing.T) {
	m, _ := selectMenu(t, testModel(t), menuCalculator)

	m, _ = update(t, m, key("tab"))
	if m.focus != 1 {
		t.Fatalf("expected focus 1, got %d", m.focus)
	}
	m, _ = update(t, m, key("tab"))
	if m.focus != 0 {
		t.Fatalf("expected focus 0, got %d", m.focus)
	}
}

func TestVerify_LessonWithReference(t *testing.T) {
	m, cmd := selectMenu(t, testModel(t), menuLesson)
	if m.scr != screenVerify || !m.running {
		t.Fatalf("expected running verify screen")
	}
	if cmd == nil {
		t.Fatalf("expected a command")
	}

	m, _ = update(t, m, cmd())

	if m.running {
		t.Fatalf("expected run to finish")
	}
	if m.report == nil {
		t.Fatalf("expected a report")
	}
	if !m.report.AllPassed() || m.report.Total() != 10 {
		t.Fatalf("expected 10/10, got %d/%d", m.report.Passed(), m.report.Total())
	}
	if m.reportID != "" {
		t.Fatalf("nothing should be saved outside a workspace, got %q", m.reportID)
	}
	if !strings.Contains(m.View(), "Score: 10/10 passed") {
		t.Fatalf("view missing score:\n%s", m.View())
	}
}

func TestVerify_StudentWithoutFunctions(t *testing.T) {
	m := newModel(Deps{
		WorkspaceLocator: fakeLocator{err: errors.New("no workspace")},
		Candidate:        domain.Candidate{Name: "student"},
	})

	m, cmd := selectMenu(t, m, menuBonus)
	m, _ = update(t, m, cmd())

	if m.report == nil {
		t.Fatalf("expected a report")
	}
	if m.report.Implemented() {
		t.Fatalf("expected missing functions")
	}
	if got := m.report.Count(domain.OutcomeNotImplemented); got != m.report.Total() {
		t.Fatalf("expected every fixture not implemented, got %d of %d", got, m.report.Total())
	}
	if !strings.Contains(m.View(), "Not implemented yet: gcd, lcm") {
		t.Fatalf("view missing not-implemented hint:\n%s", m.View())
	}
}

func TestVerify_IgnoresResultForOtherSuite(t *testing.T) {
	m := testModel(t)
	m.scr = screenVerify
	m.running = true
	m.verifySuite = domain.SuiteBonus

	m, _ = update(t, m, verifyDoneMsg{suite: domain.SuiteLesson})

	if !m.running {
		t.Fatalf("a stale result should not stop the current run")
	}
}

func TestVerify_ErrorIsShown(t *testing.T) {
	m := testModel(t)
	m.scr = screenVerify
	m.running = true
	m.verifySuite = domain.SuiteLesson

	m, _ = update(t, m, verifyDoneMsg{
		suite: domain.SuiteLesson,
		err:   &domain.OpError{Op: "suite.resolve", Kind: domain.KindNotFound, Err: domain.ErrNotFound},
	})

	if m.running || m.report != nil {
		t.Fatalf("expected finished run without report")
	}
	if m.verifyErr != "Suite not found" {
		t.Fatalf("unexpected error: %q", m.verifyErr)
	}
}

func TestInitWorkspace_RefreshesOnSuccess(t *testing.T) {
	fi := &fakeInitializer{}
	m := newModel(Deps{
		WorkspaceLocator:     fakeLocator{err: errors.New("no workspace")},
		WorkspaceInitializer: fi,
	})

	m, cmd := selectMenu(t, m, menuInit)
	if cmd == nil {
		t.Fatalf("expected init command")
	}
	msg := cmd()
	if fi.calls != 1 || fi.force {
		t.Fatalf("expected one non-forced init, got calls=%d force=%v", fi.calls, fi.force)
	}

	m, refresh := update(t, m, msg)
	if !strings.HasPrefix(m.toast, "Workspace ready at ") {
		t.Fatalf("unexpected toast: %q", m.toast)
	}
	if refresh == nil {
		t.Fatalf("expected a workspace refresh")
	}

	m, _ = update(t, m, workspaceRefreshedMsg{found: true, root: "/tmp/ws"})
	if !m.workspaceFound || m.workspaceRoot != "/tmp/ws" {
		t.Fatalf("workspace not refreshed")
	}
}

func TestInitWorkspace_ErrorToast(t *testing.T) {
	m := testModel(t)
	m, _ = update(t, m, initWorkspaceDoneMsg{root: "/x", err: errors.New("boom")})

	if m.toast != "Unexpected error (see logs)" {
		t.Fatalf("unexpected toast: %q", m.toast)
	}
}

func TestSafeModel_RecoversPanicInUpdate(t *testing.T) {
	m := testModel(t)
	m.scr = screenCalc
	m.inputs = nil
	m.running = true

	next, cmd := wrapSafe(m, nil).Update(struct{}{})

	s, ok := next.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}
	if cmd != nil {
		t.Fatalf("expected no command after a panic")
	}
	if s.m.scr != screenHome || s.m.running {
		t.Fatalf("expected reset to home")
	}
	if s.m.toast != "Unexpected error (see logs)" {
		t.Fatalf("unexpected toast: %q", s.m.toast)
	}
}

func TestSafeModel_DelegatesUpdate(t *testing.T) {
	next, cmd := wrapSafe(testModel(t), nil).Update(key("q"))

	if _, ok := next.(safeModel); !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}
	if !isQuit(cmd) {
		t.Fatalf("expected quit")
	}
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound}, "Workspace not found"},
		{&domain.OpError{Op: "yamlsuite.load", Kind: domain.KindNotFound}, "Suite not found"},
		{&domain.OpError{Op: "arith.lcm", Kind: domain.KindOverflow}, "The LCM is too big for a 64-bit integer"},
		{fmt.Errorf("wrapped: %w", domain.ErrOverflow), "The LCM is too big for a 64-bit integer"},
		{&domain.OpError{Op: "yamlsuite.load", Kind: domain.KindInvalidConfig, Path: "/ws/suites/a.yaml", Err: errors.New("yaml: line 4: did not find expected key")}, "Invalid YAML at a.yaml line 4"},
		{&domain.OpError{Op: "config.load", Kind: domain.KindInvalidConfig, Err: errors.New("bad")}, "Invalid config"},
		{errors.New("something else"), "Unexpected error (see logs)"},
	}

	for _, tc := range cases {
		if got := userMessage(tc.err); got != tc.want {
			t.Fatalf("userMessage(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("gcd", 10); got != "gcd" {
		t.Fatalf("got %q", got)
	}
	if got := clampString("greatest", 3); got != "gre…" {
		t.Fatalf("got %q", got)
	}
	if got := clampString("x", 0); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderCalculation_ZeroOperand(t *testing.T) {
	out := renderCalculation(domain.Calculation{A: 0, B: 5, GCD: 5, LCM: 0})

	if !strings.Contains(out, "GCD(0, 5) = 5") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "÷") {
		t.Fatalf("no multiples expected when the LCM is 0:\n%s", out)
	}
}

func TestMultiplesUpTo_ElidesLongRuns(t *testing.T) {
	if got := multiplesUpTo(4, 12); got != "4, 8, 12*" {
		t.Fatalf("got %q", got)
	}
	if got := multiplesUpTo(1000, 1001000); got != "1000, 2000, 3000, 4000, 5000, 6000, …, 1001000*" {
		t.Fatalf("got %q", got)
	}
}
