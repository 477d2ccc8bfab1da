package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"plando"
)

const logo = `
	██████╗ ██╗      █████╗ ███╗   ██╗██████╗  ██████╗
	██╔══██╗██║     ██╔══██╗████╗  ██║██╔══██╗██╔═══██╗
	██████╔╝██║     ███████║██╔██╗ ██║██║  ██║██║   ██║
	██╔═══╝ ██║     ██╔══██║██║╚██╗██║██║  ██║██║   ██║
	██║     ███████╗██║  ██║██║ ╚████║██████╔╝╚██████╔╝
	╚═╝     ╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═════╝  ╚═════╝`

const programUsage = `Usage:
  plando: start the planner`

const commandHelp = `COMMANDS:
  /a <title> [#subject] [!priority] [@date] [+ notes]: add a task
  /l: list all tasks
  /f s <status> | /f c <subject> | /f p <priority>: filter tasks
  /o: show overdue tasks
  /u [days]: show tasks due within days (default from config)
  /k <keyword>: search titles and notes (bare input searches too)
  /p [asc]: sort by priority, urgent first unless asc
  /d [desc]: sort by due date, soonest first unless desc
  /m <pos> <status>: set the status of the task at a displayed position
  /x <pos>: delete the task at a displayed position
  /c: show status counts
  /h: show this help
  /q: quit
`

type model struct {
	// children
	vp        viewport.Model
	userinput textinput.Model

	// supplied
	l     plando.Logger
	store plando.TaskStore

	// state
	view      []plando.Task
	viewTitle string
	query     func() []plando.Task
	alerts    []string
	quitting  bool
	h         int

	// configuration
	dateFormat   string
	upcomingDays int
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.initView, textinput.Blink)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var tiCmd, vpCmd, cmd tea.Cmd

	m, cmd = m.updateParent(msg)

	// update children

	m.userinput, tiCmd = m.userinput.Update(msg)

	switch msg.(type) {
	case tea.KeyMsg:
		// vp updates on KeyMsg cause view flickering
	default:
		m.vp, vpCmd = m.vp.Update(msg)
	}

	return m, tea.Batch(tiCmd, vpCmd, cmd)
}

func (m model) updateParent(msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.h = msg.Height
		m.userinput.Width = msg.Width
		m.vp.Width = msg.Width
		m.resizeViewport()
		return m, nil
	case InitViewMsg:
		m.viewTitle = msg.title
		m.view = msg.tasks
		m.query = m.store.All
		m.vp.SetContent(m.renderView())
		m.resizeViewport()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			input := m.userinput.Value()
			m.userinput.Reset()
			if input == "" {
				return m, nil
			}

			var cmd tea.Cmd
			m.alerts = nil
			m, cmd = m.handleInput(input)
			m.vp.SetContent(m.renderView())
			m.resizeViewport()
			return m, cmd
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) initView() tea.Msg {
	return InitViewMsg{
		title: "all tasks",
		tasks: m.store.All(),
	}
}

func (m model) handleInput(input string) (model, tea.Cmd) {
	m.l.Debug("handling input", "input", input)

	if strings.HasPrefix(input, "/") {
		parts := strings.SplitN(input, " ", 2)
		arg := ""
		if len(parts) > 1 {
			arg = strings.TrimSpace(parts[1])
		}

		switch parts[0] {
		case "/a":
			if arg == "" {
				m.addAlert("usage: /a <title> [#subject] [!priority] [@date] [+ notes]", colorYellow)
				return m, nil
			}
			req, err := parseAddInput(arg, m.dateFormat)
			if err != nil {
				m.addAlert(err.Error(), colorRed)
				return m, nil
			}
			id, err := m.store.Add(req)
			if err != nil {
				m.addAlert(err.Error(), colorRed)
				return m, nil
			}
			m.addAlert("added task "+strconv.Itoa(id), colorCyan)
			m.refresh()
			return m, nil
		case "/l":
			m.setView("all tasks", m.store.All)
			return m, nil
		case "/f":
			title, query, err := parseFilterInput(arg, m.store)
			if err != nil {
				m.addAlert(err.Error(), colorRed)
				return m, nil
			}
			m.setView(title, query)
			return m, nil
		case "/o":
			m.setView("overdue tasks", m.store.Overdue)
			return m, nil
		case "/u":
			days := m.upcomingDays
			if arg != "" {
				n, err := strconv.Atoi(arg)
				if err != nil || n < 0 {
					m.addAlert("usage: /u [days]", colorYellow)
					return m, nil
				}
				days = n
			}
			m.setView("due within "+strconv.Itoa(days)+" days", func() []plando.Task {
				return m.store.Upcoming(days)
			})
			return m, nil
		case "/k":
			m.search(arg)
			return m, nil
		case "/p":
			descending := arg != "asc"
			m.setView("by priority", func() []plando.Task {
				return m.store.SortedByPriority(descending)
			})
			return m, nil
		case "/d":
			ascending := arg != "desc"
			m.setView("by due date", func() []plando.Task {
				return m.store.SortedByDueDate(ascending)
			})
			return m, nil
		case "/m":
			posArg, statusArg, ok := strings.Cut(arg, " ")
			if !ok {
				m.addAlert("usage: /m <pos> <status>", colorYellow)
				return m, nil
			}
			i, err := parsePosition(posArg, len(m.view))
			if err != nil {
				m.addAlert(err.Error(), colorRed)
				return m, nil
			}
			status, err := plando.ParseStatus(statusArg)
			if err != nil {
				m.addAlert(err.Error(), colorRed)
				return m, nil
			}
			// the view maps displayed positions to permanent ids
			if !m.store.UpdateStatus(m.view[i].ID, status) {
				m.addAlert("task no longer exists", colorRed)
			}
			m.refresh()
			return m, nil
		case "/x":
			i, err := parsePosition(arg, len(m.view))
			if err != nil {
				m.addAlert(err.Error(), colorRed)
				return m, nil
			}
			if !m.store.Remove(m.view[i].ID) {
				m.addAlert("task no longer exists", colorRed)
			}
			m.refresh()
			return m, nil
		case "/c":
			m.addAlert(renderCounts(m.store.Counts()), colorCyan)
			return m, nil
		case "/h":
			m.addAlert(commandHelp, colorYellow)
			return m, nil
		case "/q":
			m.quitting = true
			return m, tea.Quit
		default:
			m.addAlert("unknown command "+parts[0]+"; /h for help", colorYellow)
			return m, nil
		}
	}

	m.search(input)
	return m, nil
}

func (m *model) setView(title string, query func() []plando.Task) {
	m.viewTitle = title
	m.query = query
	m.view = query()
}

func (m *model) refresh() {
	if m.query == nil {
		m.query = m.store.All
	}
	m.view = m.query()
}

func (m *model) search(keyword string) {
	kw := strings.TrimSpace(keyword)
	m.setView(`matches for "`+kw+`"`, func() []plando.Task {
		return m.store.Search(kw)
	})
}

func (m model) renderView() string {
	return renderTasks(m.viewTitle, m.view, m.dateFormat, time.Now())
}

func (m model) renderFooter() string {
	if m.quitting {
		return ""
	}

	var footer strings.Builder
	footer.WriteRune('\n')
	footer.WriteString(m.userinput.View())
	footer.WriteString("\n\n")

	if len(m.alerts) > 0 {
		footer.WriteString(strings.Join(m.alerts, "\n"))
		footer.WriteString("\n\n")
	} else {
		footer.WriteString(faintStyle.Render("(/h for help, ctrl+c to quit)"))
		footer.WriteRune('\n')
	}

	return footer.String()
}

func (m model) View() string {
	return lipgloss.JoinVertical(0, m.vp.View(), m.renderFooter())
}

func (m *model) addAlert(alert string, c color) {
	m.alerts = append(m.alerts, colorize(c, alert))
}

func (m *model) resizeViewport() {
	contentHeight := lipgloss.Height(m.renderView())
	footerHeight := lipgloss.Height(m.renderFooter())
	m.vp.Height = min(contentHeight, m.h-footerHeight)
	m.vp.GotoBottom()
}
