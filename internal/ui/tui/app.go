package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/euclid/internal/domain"
	"github.com/aalvaropc/euclid/internal/usecase"
)

type screen int

const (
	screenHome screen = iota
	screenCalc
	screenVerify
)

const (
	menuCalculator = "Calculator"
	menuLesson     = "Verify lesson"
	menuBonus      = "Verify bonus"
	menuInit       = "Init workspace"
	menuQuit       = "Quit"
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps
	calc  *usecase.Calculate

	scr   screen
	menu  list.Model
	toast string

	// calculator
	inputs     []textinput.Model
	focus      int
	calcResult *domain.Calculation
	calcErr    string

	// verifier
	running     bool
	verifySuite string
	report      *domain.Report
	reportID    string
	verifyErr   string

	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	if deps.Candidate.Name == "" && deps.Candidate.GCD == nil && deps.Candidate.LCM == nil {
		deps.Candidate = domain.Reference()
	}

	items := []list.Item{
		menuItem{menuCalculator, "GCD and LCM of two numbers, with Euclid's steps"},
		menuItem{menuLesson, "Check your functions against the ten lesson fixtures"},
		menuItem{menuBonus, "Zero, equal numbers, primes and big numbers"},
		menuItem{menuInit, "Create euclid.yaml, suites/ and runs/ here"},
		menuItem{menuQuit, "Exit euclid"},
	}

	// Sized until the first WindowSizeMsg arrives.
	l := list.New(items, list.NewDefaultDelegate(), 60, 24)
	l.Title = "euclid"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme:  t,
		deps:   deps,
		calc:   usecase.NewCalculate(deps.Operands),
		scr:    screenHome,
		menu:   l,
		inputs: newOperandInputs(),
	}

	wd, err := os.Getwd()
	if err == nil && deps.WorkspaceLocator != nil {
		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr == nil {
			m.workspaceFound = true
			m.workspaceRoot = root
		}
	}

	return m
}

func newOperandInputs() []textinput.Model {
	placeholders := []string{"first number", "second number"}
	out := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 20
		ti.Width = 24
		out[i] = ti
	}
	return out
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace ready at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case verifyDoneMsg:
		if msg.suite != m.verifySuite {
			return m, nil
		}
		m.running = false
		m.reportID = msg.id
		m.verifyErr = ""
		if msg.err != nil {
			m.verifyErr = userMessage(msg.err)
		}
		if msg.report.Total() > 0 || msg.err == nil {
			r := msg.report
			m.report = &r
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenCalc:
			return m.updateCalc(msg)
		case screenVerify:
			return m.updateVerify(msg)
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	if m.scr == screenCalc {
		return m.updateFocusedInput(msg)
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menu.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		return m.open(it.title)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) open(title string) (tea.Model, tea.Cmd) {
	m.toast = ""

	switch title {
	case menuCalculator:
		m.scr = screenCalc
		m.calcResult = nil
		m.calcErr = ""
		m.inputs = newOperandInputs()
		m.focus = 0
		return m, m.inputs[0].Focus()

	case menuLesson:
		return m.startVerify(domain.SuiteLesson)

	case menuBonus:
		return m.startVerify(domain.SuiteBonus)

	case menuInit:
		wd, err := os.Getwd()
		if err != nil {
			m.toast = userMessage(err)
			return m, nil
		}
		m.toast = "Creating workspace…"
		return m, cmdInitWorkspaceHere(m.deps, wd)

	case menuQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m model) startVerify(suite string) (tea.Model, tea.Cmd) {
	m.scr = screenVerify
	if m.running {
		return m, nil
	}

	m.running = true
	m.verifySuite = suite
	m.report = nil
	m.reportID = ""
	m.verifyErr = ""

	_, cmd := startVerifyAsync(m.workspaceRoot, suite, m.deps.Candidate, m.deps.Logger, m.deps.Debug)
	return m, cmd
}

func (m model) updateCalc(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.scr = screenHome
		return m, nil

	case "tab", "down":
		return m.setFocus((m.focus + 1) % len(m.inputs))

	case "shift+tab", "up":
		return m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))

	case "enter":
		if m.focus == 0 && strings.TrimSpace(m.inputs[1].Value()) == "" {
			return m.setFocus(1)
		}
		m.calculate()
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m model) setFocus(i int) (tea.Model, tea.Cmd) {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return m, cmd
}

// calculate reads both inputs and stores either a result or an inline error.
func (m *model) calculate() {
	m.calcResult = nil
	m.calcErr = ""

	ops := make([]int64, len(m.inputs))
	for i, in := range m.inputs {
		s := strings.TrimSpace(in.Value())
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			if s == "" {
				m.calcErr = "Please type two whole numbers"
			} else {
				m.calcErr = fmt.Sprintf("%q is not a whole number", s)
			}
			return
		}
		ops[i] = n
	}

	res, err := m.calc.Execute(ops[0], ops[1])
	if err != nil {
		m.calcErr = userMessage(err)
		return
	}
	m.calcResult = &res
}

func (m model) updateVerify(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "b":
		m.scr = screenHome
		return m, nil
	case "r":
		if !m.running && m.verifySuite != "" {
			return m.startVerify(m.verifySuite)
		}
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("euclid") + "\n" +
		m.theme.Subtitle.Render("Greatest common divisor and least common multiple, step by step") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Help.Render("No workspace: results are not saved. Use Init workspace to create one.")
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.menu.View()) + toast + "\n" + help)

	case screenCalc:
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.viewCalc()) + toast)

	case screenVerify:
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.viewVerify()) + toast)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) viewCalc() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(menuCalculator))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.calcErr != "":
		b.WriteString(m.theme.Fail.Render(m.calcErr))
		b.WriteString("\n\n")
	case m.calcResult != nil:
		b.WriteString(renderCalculation(*m.calcResult))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Help.Render("tab switch • enter calculate • esc/q menu • ctrl+c quit"))
	return b.String()
}

func (m model) viewVerify() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(fmt.Sprintf("Verify %s (%s)", m.verifySuite, m.deps.Candidate.Name)))
	b.WriteString("\n\n")

	if m.running {
		b.WriteString("Checking…\n\n")
	}
	if m.report != nil {
		b.WriteString(m.renderReport(*m.report, m.reportID))
		b.WriteString("\n")
	}
	if m.verifyErr != "" {
		b.WriteString(m.theme.Fail.Render(m.verifyErr))
		b.WriteString("\n\n")
	}

	b.WriteString(m.theme.Help.Render("r run again • esc/q menu • ctrl+c quit"))
	return b.String()
}
