// internal/tui/app.go
//
// Terminal front end for the reshape engine: two path fields, a spinner while the
// file is processed and a status panel that follows the engine's log output.

package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"csv-formatter/internal/models"
	"csv-formatter/internal/reshape"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// Formatter runs one reshape
type Formatter interface {
	Format(inputPath, outputPath string) (*models.Result, error)
}

const (
	fieldInput = iota
	fieldOutput
	fieldCount
)

const (
	defaultWidth  = 80
	statusHeight  = 8
	readyMessage  = "Ready to format CSV files. Please select an input file to begin."
	noInputError  = "Please select an input CSV file first."
	noOutputError = "Please specify an output location."
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Width(18)
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// LogLineMsg carries one engine log entry into the status panel
type LogLineMsg struct {
	Level logrus.Level
	Text  string
}

type formatDoneMsg struct {
	result *models.Result
	err    error
}

// App is the bubbletea model for the interactive formatter
type App struct {
	formatter Formatter
	prefix    string

	fields       [fieldCount]textinput.Model
	focus        int
	outputEdited bool

	spinner spinner.Model
	status  viewport.Model
	lines   []string

	running bool
	result  *models.Result
	err     error
}

// NewApp creates the model. initialInput and initialOutput pre-fill the path fields;
// without an output, prefix is used to suggest a file next to the input.
func NewApp(formatter Formatter, prefix, initialInput, initialOutput string) *App {
	a := &App{
		formatter: formatter,
		prefix:    prefix,
	}

	for i := range a.fields {
		ti := textinput.New()
		ti.Prompt = "│ "
		ti.CharLimit = 4096
		ti.Width = defaultWidth - 24
		a.fields[i] = ti
	}
	a.fields[fieldInput].Placeholder = "path/to/contacts.csv"
	a.fields[fieldOutput].Placeholder = "path/to/Formatted_contacts.csv"
	a.fields[fieldInput].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	a.spinner = sp

	a.status = viewport.New(defaultWidth-2, statusHeight)
	a.appendLine(readyMessage)

	if initialOutput != "" {
		a.fields[fieldOutput].SetValue(initialOutput)
		a.outputEdited = true
	}
	if initialInput != "" {
		a.fields[fieldInput].SetValue(initialInput)
		a.suggestOutput()
	}

	return a
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "down":
			return a, a.setFocus((a.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return a, a.setFocus((a.focus + fieldCount - 1) % fieldCount)
		case "enter":
			return a, a.start()
		}
		if a.running {
			return a, nil
		}
		return a, a.updateFields(msg)

	case LogLineMsg:
		a.appendLine(formatLogLine(msg))
		return a, nil

	case formatDoneMsg:
		a.finish(msg)
		return a, nil

	case spinner.TickMsg:
		if !a.running {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, a.updateFields(msg)
}

func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CSV Formatter"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Input CSV file:") + a.fields[fieldInput].View() + "\n")
	b.WriteString(labelStyle.Render("Output location:") + a.fields[fieldOutput].View() + "\n\n")

	switch {
	case a.running:
		b.WriteString(a.spinner.View() + " Formatting...\n")
	case a.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("%s: %v", reshape.KindOf(a.err), a.err)) + "\n")
	case a.result != nil:
		b.WriteString(successStyle.Render(fmt.Sprintf("Output saved to %s", a.result.OutputPath)) + "\n")
	default:
		b.WriteString("\n")
	}

	b.WriteString("Status:\n")
	b.WriteString(panelStyle.Render(a.status.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: switch field • enter: format • esc: quit"))

	return b.String()
}

func (a *App) setFocus(i int) tea.Cmd {
	a.fields[a.focus].Blur()
	a.focus = i
	return a.fields[a.focus].Focus()
}

func (a *App) updateFields(msg tea.Msg) tea.Cmd {
	before := [fieldCount]string{a.fields[fieldInput].Value(), a.fields[fieldOutput].Value()}

	cmds := make([]tea.Cmd, 0, fieldCount)
	for i := range a.fields {
		var cmd tea.Cmd
		a.fields[i], cmd = a.fields[i].Update(msg)
		cmds = append(cmds, cmd)
	}

	if out := a.fields[fieldOutput].Value(); out != before[fieldOutput] {
		a.outputEdited = out != ""
	}
	if a.fields[fieldInput].Value() != before[fieldInput] {
		a.suggestOutput()
	}

	return tea.Batch(cmds...)
}

// suggestOutput fills the output field from the input path until the user types their own
func (a *App) suggestOutput() {
	if a.outputEdited {
		return
	}
	in := strings.TrimSpace(a.fields[fieldInput].Value())
	if in == "" {
		a.fields[fieldOutput].SetValue("")
		return
	}
	a.fields[fieldOutput].SetValue(reshape.SuggestOutputPath(in, a.prefix))
}

func (a *App) start() tea.Cmd {
	if a.running {
		return nil
	}

	in := strings.TrimSpace(a.fields[fieldInput].Value())
	out := strings.TrimSpace(a.fields[fieldOutput].Value())
	switch {
	case in == "":
		a.appendLine(errorStyle.Render("Error: " + noInputError))
		return nil
	case out == "":
		a.appendLine(errorStyle.Render("Error: " + noOutputError))
		return nil
	}

	a.running = true
	a.result = nil
	a.err = nil
	a.appendLine(fmt.Sprintf("Starting CSV formatting of %s...", filepath.Base(in)))

	formatter := a.formatter
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		result, err := formatter.Format(in, out)
		return formatDoneMsg{result: result, err: err}
	})
}

func (a *App) finish(msg formatDoneMsg) {
	a.running = false
	a.result = msg.result
	a.err = msg.err

	if msg.err != nil {
		a.appendLine(errorStyle.Render(fmt.Sprintf("ERROR: Error processing CSV: %v", msg.err)))
		return
	}

	r := msg.result
	if r.HasWarnings() {
		a.appendLine(warnStyle.Render(fmt.Sprintf("Warning: %d expected columns were missing from the input (%d rows).",
			len(r.MissingKeepCols)+len(r.MissingPhoneCols), r.InputRows)))
	}
	a.appendLine(successStyle.Render(fmt.Sprintf("SUCCESS! Formatted data saved with %d rows (%d removed) in %s.",
		r.Rows, r.RowsRemoved, r.Duration.Round(time.Millisecond))))
}

func (a *App) appendLine(line string) {
	a.lines = append(a.lines, line)
	a.status.SetContent(strings.Join(a.lines, "\n"))
	a.status.GotoBottom()
}

func (a *App) resize(width int) {
	if width <= 0 {
		return
	}
	a.status.Width = width - 2
	for i := range a.fields {
		a.fields[i].Width = max(width-24, 10)
	}
}

func formatLogLine(msg LogLineMsg) string {
	switch {
	case msg.Level <= logrus.ErrorLevel:
		return errorStyle.Render(msg.Text)
	case msg.Level == logrus.WarnLevel:
		return warnStyle.Render("Warning: " + msg.Text)
	default:
		return msg.Text
	}
}
