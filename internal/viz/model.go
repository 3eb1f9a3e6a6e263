package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/juju/loggo"

	"github.com/teraspora/multiple-canvases/internal/export"
	"github.com/teraspora/multiple-canvases/internal/grid"
	"github.com/teraspora/multiple-canvases/internal/surface"
)

var logger = loggo.GetLogger("canvasgrid.viz")

const (
	// chromeLines is the number of terminal rows kept for the status bar.
	chromeLines  = 3
	linkHistory  = 120
	sparkWidth   = 30
	defaultWidth = 80
	defaultRows  = 24
)

type TickMsg time.Time

// Model hosts a grid in the terminal.
type Model struct {
	grid          *grid.Grid
	width, height int
	scale         float64
	fps           int
	theme         Theme

	links     []float64
	recording bool
	gif       *export.GIF
	gifPath   string
	showHelp  bool
	status    string
	err       error
}

// NewModel builds a grid whose cells draw on braille canvases. The grid is
// populated on the first window size message.
func NewModel(opts grid.Options, fps int, gifPath string) (Model, error) {
	scale := float64(DefaultScale)
	g, err := grid.New(opts, func(w, h int) surface.Surface {
		return NewSurface(w, h, scale)
	})
	if err != nil {
		return Model{}, err
	}
	if fps <= 0 {
		fps = 60
	}
	return Model{
		grid:    g,
		width:   defaultWidth,
		height:  defaultRows,
		scale:   scale,
		fps:     fps,
		theme:   Themes[0],
		gifPath: gifPath,
	}, nil
}

func (m Model) Grid() *grid.Grid { return m.grid }
func (m Model) Err() error       { return m.err }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// area converts the terminal size into grid pixels.
func (m Model) area() (int, int) {
	rows := m.height - chromeLines
	if rows < 1 {
		rows = 1
	}
	return int(float64(m.width*2) * m.scale), int(float64(rows*4) * m.scale)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w, h := m.area()
		if err := m.grid.Resize(w, h); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.links = m.links[:0]
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		m.grid.Tick()
		m.links = append(m.links, float64(m.totalLinks()))
		if len(m.links) > linkHistory {
			m.links = m.links[1:]
		}
		if m.recording && !m.grid.State().Paused {
			m.gif.AddFrame(m.capture())
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "t":
		m.theme = m.theme.next()
		return m, nil
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "g":
		m.toggleRecording()
		return m, nil
	}

	name, mods := keyName(key)
	action, err := m.grid.Key(name, mods)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	switch action {
	case grid.ActionQuit:
		return m, tea.Quit
	case grid.ActionRebuilt:
		m.links = m.links[:0]
	}
	return m, nil
}

// keyName maps a Bubble Tea key string onto grid key names and modifiers.
func keyName(key string) (string, grid.Modifiers) {
	var mods grid.Modifiers
	for {
		switch {
		case strings.HasPrefix(key, "ctrl+"):
			mods.Ctrl = true
			key = strings.TrimPrefix(key, "ctrl+")
			continue
		case strings.HasPrefix(key, "alt+"):
			mods.Alt = true
			key = strings.TrimPrefix(key, "alt+")
			continue
		case strings.HasPrefix(key, "shift+"):
			mods.Shift = true
			key = strings.TrimPrefix(key, "shift+")
			continue
		}
		break
	}
	switch key {
	case " ":
		key = "space"
	case "esc":
		key = "escape"
	}
	return key, mods
}

func (m *Model) toggleRecording() {
	if !m.recording {
		m.recording = true
		m.gif = export.NewGIF(100 / m.fps)
		m.status = "recording"
		return
	}
	m.recording = false
	if err := m.gif.Save(m.gifPath); err != nil {
		logger.Warningf("saving %s: %v", m.gifPath, err)
		m.status = "gif: " + err.Error()
	} else {
		logger.Infof("saved %d frames to %s", m.gif.Len(), m.gifPath)
		m.status = fmt.Sprintf("saved %s", m.gifPath)
	}
	m.gif = nil
}

type linker interface {
	Links() int
}

func (m Model) totalLinks() int {
	n := 0
	for _, c := range m.grid.Cells() {
		if l, ok := c.Scene.(linker); ok {
			n += l.Links()
		}
	}
	return n
}

func (m Model) View() string {
	st := m.theme.styles()
	var s strings.Builder

	d := m.grid.Columns()
	cells := m.grid.Cells()
	rows := make([]string, 0, d)
	for r := 0; r < d && r*d < len(cells); r++ {
		cols := make([]string, 0, d)
		for _, c := range cells[r*d : min((r+1)*d, len(cells))] {
			if cv, ok := c.Surface.(*Surface); ok {
				cols = append(cols, st.cell.Render(cv.Render()))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	s.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	s.WriteString("\n")

	state := m.grid.State()
	status := st.running.Render("RUNNING")
	if state.Paused {
		status = st.paused.Render("PAUSED")
	}
	if m.recording {
		status += " " + st.alert.Render("● REC")
	}
	labels := "off"
	if state.Labels {
		labels = "on"
	}
	s.WriteString(fmt.Sprintf("%s %s  %s  %s  %s  %s",
		st.title.Render("canvasgrid"),
		status,
		st.text.Render(fmt.Sprintf("%d×%d", d, d)),
		st.muted.Render(fmt.Sprintf("gen %d", state.Generation)),
		st.muted.Render("labels "+labels),
		Sparkline(m.links, sparkWidth, st.text),
	))
	if m.status != "" {
		s.WriteString("  " + st.muted.Render(m.status))
	}
	s.WriteString("\n")
	if m.showHelp {
		s.WriteString(st.muted.Render("0-9 grid · l labels · space pause · t theme · g gif · q quit"))
	} else {
		s.WriteString(st.muted.Render("? help"))
	}
	return s.String()
}

// Run starts the terminal host and returns when the user quits.
func Run(opts grid.Options, fps int, gifPath string) error {
	m, err := NewModel(opts, fps, gifPath)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	fm := final.(Model)
	fm.grid.Close()
	return fm.err
}
