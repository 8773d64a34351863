package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/threadlet/threadlet/internal/ui/threadview"
)

// App is the bubbletea root. The thread view is the only screen; the
// original client's other surfaces are not part of this program.
type App struct {
	thread threadview.Model
}

// NewApp wraps a thread view as the program root.
func NewApp(tv threadview.Model) App {
	return App{thread: tv}
}

func (a App) Init() tea.Cmd {
	return a.thread.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.thread, cmd = a.thread.Update(msg)
	return a, cmd
}

func (a App) View() string {
	return a.thread.View()
}
