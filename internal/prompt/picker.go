package prompt

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	keyUp        = "up"
	keyDown      = "down"
	keyEnter     = "enter"
	keyEscape    = "esc"
	keyCtrlC     = "ctrl+c"
	keyBackspace = "backspace"
)

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)).Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6))
	questionStyle = lipgloss.NewStyle().Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(1))
)

// New returns a Picker if both in and out are terminals, otherwise a line based Terminal.
func New(in io.Reader, out io.Writer) Prompter {
	if isTerminal(in) && isTerminal(out) {
		return NewPicker(in, out)
	}
	return NewTerminal(in, out)
}

func isTerminal(s any) bool {
	f, ok := s.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Picker is a Prompter for interactive terminals.
// The options of SelectOne are chosen with the arrow keys.
type Picker struct {
	in  io.Reader
	out io.Writer
}

// NewPicker creates a Picker that reads keys from in and draws to out.
func NewPicker(in io.Reader, out io.Writer) *Picker {
	return &Picker{in: in, out: out}
}

func (p *Picker) run(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
}

func (p *Picker) SelectOne(message string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}

	final, err := p.run(selectModel{message: message, options: options})
	if err != nil {
		return "", err
	}

	m := final.(selectModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.options[m.cursor], nil
}

func (p *Picker) ReadText(message string, validate func(string) error) (string, error) {
	final, err := p.run(textModel{message: message, validate: validate})
	if err != nil {
		return "", err
	}

	m := final.(textModel)
	if m.aborted {
		return "", ErrAborted
	}
	return strings.TrimSpace(m.value), nil
}

type selectModel struct {
	message string
	options []string
	cursor  int
	done    bool
	aborted bool
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case keyUp, "k", "shift+tab":
		if m.cursor > 0 {
			m.cursor--
		}
	case keyDown, "j", "tab":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case keyEnter:
		m.done = true
		return m, tea.Quit
	case keyEscape, keyCtrlC, "q":
		m.aborted = true
		return m, tea.Quit
	}

	return m, nil
}

func (m selectModel) View() string {
	if m.aborted {
		return ""
	}
	if m.done {
		return fmt.Sprintf("? %s %s\n", questionStyle.Render(m.message), answerStyle.Render(m.options[m.cursor]))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "? %s\n", questionStyle.Render(m.message))
	for i, o := range m.options {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "+o) + "\n")
		} else {
			b.WriteString("  " + o + "\n")
		}
	}
	return b.String()
}

type textModel struct {
	message  string
	validate func(string) error
	value    string
	err      error
	done     bool
	aborted  bool
}

func (m textModel) Init() tea.Cmd {
	return nil
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case keyEnter:
		if m.validate != nil {
			if m.err = m.validate(strings.TrimSpace(m.value)); m.err != nil {
				return m, nil
			}
		}
		m.done = true
		return m, tea.Quit
	case keyEscape, keyCtrlC:
		m.aborted = true
		return m, tea.Quit
	case keyBackspace:
		if rs := []rune(m.value); len(rs) > 0 {
			m.value = string(rs[:len(rs)-1])
		}
	case " ":
		m.value += " "
	default:
		if key.Type == tea.KeyRunes {
			m.value += string(key.Runes)
		}
	}

	return m, nil
}

func (m textModel) View() string {
	if m.aborted {
		return ""
	}
	if m.done {
		return fmt.Sprintf("? %s: %s\n", questionStyle.Render(m.message), answerStyle.Render(m.value))
	}

	s := fmt.Sprintf("? %s: %s\n", questionStyle.Render(m.message), m.value)
	if m.err != nil {
		s += errorStyle.Render("  "+m.err.Error()) + "\n"
	}
	return s
}
