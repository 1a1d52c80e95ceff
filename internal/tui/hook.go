package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// LogHook forwards engine log entries to the running program as LogLineMsg.
// Errors are left to the final result so they are shown once.
type LogHook struct {
	send func(tea.Msg)
}

// NewLogHook creates a hook that delivers messages through send, usually (*tea.Program).Send
func NewLogHook(send func(tea.Msg)) *LogHook {
	return &LogHook{send: send}
}

func (h *LogHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.WarnLevel, logrus.InfoLevel}
}

func (h *LogHook) Fire(entry *logrus.Entry) error {
	h.send(LogLineMsg{Level: entry.Level, Text: entry.Message})
	return nil
}

// Run starts the interactive formatter. newFormatter receives a log entry whose output
// is routed into the status panel instead of the terminal.
func Run(newFormatter func(*logrus.Entry) Formatter, prefix, initialInput, initialOutput string) error {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.InfoLevel)

	app := NewApp(nil, prefix, initialInput, initialOutput)
	p := tea.NewProgram(app, tea.WithAltScreen())

	logger.AddHook(NewLogHook(p.Send))
	app.formatter = newFormatter(logrus.NewEntry(logger))

	_, err := p.Run()
	return err
}
