package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"plando"
	"plando/charmlog"
	"plando/memory"
)

var logger plando.Logger

func main() {
	if len(os.Args) > 1 {
		fmt.Println(colorize(colorYellow, programUsage))
		os.Exit(0)
	}

	// conf
	conf := plando.LoadConfig()
	var f *os.File
	logger, f, _ = logFileOrStderr(conf)
	if f != nil {
		defer f.Close() //nolint:errcheck
	}
	logger.Info("loaded config", "config", conf)

	// the whole collection lives and dies with the process
	store := memory.NewTaskStore(logger)

	// start program
	fmt.Println(colorize(colorYellow, logo))
	fmt.Printf("\nEnter \"/h\" for help\n\n")

	userinput := textinput.New()
	userinput.Focus()
	userinput.CharLimit = 280
	userinput.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("221"))

	m := model{
		l:            logger,
		store:        store,
		dateFormat:   conf.DateFormat,
		upcomingDays: conf.UpcomingDays,
		userinput:    userinput,
		vp:           viewport.New(0, 0),
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		logger.Error(err.Error())
	}
}

// logFileOrStderr prefers the configured log file so the TUI's terminal stays
// clean, falling back to stderr if the file cannot be opened.
func logFileOrStderr(conf plando.Config) (plando.Logger, *os.File, error) {
	l, f, err := charmlog.NewFileLogger(conf.LogPath, conf.LogLevel)
	if err != nil {
		l = charmlog.NewLogger(charmlog.Options{Level: conf.LogLevel})
		l.Warn("failed to open log file, logging to stderr", "path", conf.LogPath, "error", err)
		return l, nil, err
	}
	return l, f, nil
}
