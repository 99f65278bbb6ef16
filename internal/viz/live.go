package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbitsim/internal/audio"
	"github.com/san-kum/orbitsim/internal/input"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	width           = 72
	height          = 26
	statsWidth      = 36
	historyCapacity = 600
	trailShades     = 8
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(statsWidth)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

type TickMsg time.Time

type Options struct {
	FPS   int
	Theme string
	Audio audio.Player
}

// Model is the Bubble Tea front end. It decodes keys and mouse events
// into commands and drives the controller from its tick message.
type Model struct {
	ctrl          *sim.Controller
	queue         *input.Queue
	layout        input.Layout
	canvas        *Canvas
	player        audio.Player
	fps           int
	hover         int
	energyHistory []float64
	showHelp      bool
}

func NewModel(ctrl *sim.Controller, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Theme != "" {
		SetTheme(opts.Theme)
	}

	return Model{
		ctrl:          ctrl,
		queue:         input.NewQueue(),
		layout:        TerminalLayout(),
		canvas:        NewCanvas(width, height),
		player:        opts.Audio,
		fps:           opts.FPS,
		hover:         -1,
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

// TerminalLayout places the window controls on the first terminal row.
func TerminalLayout() input.Layout {
	return input.RowLayout(0, 1, 1, input.DefaultLayout().Buttons...)
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "c", "C":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		default:
			m.queue.Push(input.KeyCommand(msg.String()))
		}
	case tea.MouseMsg:
		x, y := float64(msg.X), float64(msg.Y)
		m.hover = m.layout.Hover(x, y)
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.queue.Push(m.layout.HitTest(x, y))
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		cmds := m.queue.Drain()
		if !m.ctrl.Tick(cmds) {
			return m, tea.Quit
		}
		speed := m.ctrl.State().Speed
		for _, c := range cmds {
			m.player.Cue(c, speed)
		}
		m.record()
		m.draw()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	cw := max(20, w-statsWidth-4)
	ch := max(8, h-2)
	if cw != m.canvas.Width || ch != m.canvas.Height {
		m.canvas = NewCanvas(cw, ch)
		m.draw()
	}
}

func (m *Model) record() {
	f := m.ctrl.Frame()
	m.energyHistory = append(m.energyHistory, physics.TotalEnergy(f.Bodies, f.Attractor))
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

// project maps viewport coordinates to canvas sub-pixels.
func (m *Model) project(p r2.Vec) (int, int) {
	pw, ph := m.canvas.PixelSize()
	x := p.X / physics.Viewport.Width * float64(pw-1)
	y := p.Y / physics.Viewport.Height * float64(ph-1)
	return int(math.Round(x)), int(math.Round(y))
}

func (m *Model) draw() {
	f := m.ctrl.Frame()
	m.canvas.Clear()
	pw, _ := m.canvas.PixelSize()
	scale := float64(pw) / physics.Viewport.Width

	if f.TrailsOn {
		for _, b := range f.Bodies {
			m.drawTrail(b)
		}
	}

	for _, b := range append([]*physics.Body{f.Attractor}, f.Bodies...) {
		x, y := m.project(b.Pos)
		m.canvas.SetColor(b.Color)
		m.canvas.FillCircle(x, y, int(b.Radius*scale))
	}
	m.canvas.SetColor("")
}

// drawTrail fades older segments toward the background.
func (m *Model) drawTrail(b *physics.Body) {
	n := b.Trail.Len()
	if n < 2 {
		return
	}
	var shades [trailShades]string
	for k := range shades {
		shades[k] = Fade(b.Color, 0.8*float64(k)/trailShades)
	}

	px, py := m.project(b.Trail.At(0))
	for i := 1; i < n; i++ {
		x, y := m.project(b.Trail.At(i))
		age := float64(n-1-i) / float64(n)
		m.canvas.SetColor(shades[int(age*trailShades)])
		m.canvas.DrawLine(px, py, x, y)
		px, py = x, y
	}
}

func (m Model) buttonBar() string {
	parts := make([]string, len(m.layout.Buttons))
	for i, b := range m.layout.Buttons {
		parts[i] = ButtonStyle(i == m.hover).Render(b.Label)
	}
	return strings.Join(parts, " ")
}

// View renders the TUI interface.
func (m Model) View() string {
	f := m.ctrl.Frame()
	theme := CurrentTheme

	var s strings.Builder
	s.WriteString(GradientText("ORBITSIM", theme.Secondary, theme.Accent) + "\n")
	if m.ctrl.Done() {
		s.WriteString(StatusStopped.Render("STOPPED") + "\n\n")
	} else {
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	}

	s.WriteString(MetricValue.Render(f.SpeedLabel()) + "\n")
	s.WriteString(SpeedBar(f.Speed, sim.MinSpeed, sim.MaxSpeed, 20) + "\n\n")

	trails := "off"
	if f.TrailsOn {
		trails = "on"
	}
	s.WriteString(MetricLabel.Render("Trails") + trails + "\n")
	s.WriteString(MetricLabel.Render("Tick") + fmt.Sprintf("%d", f.Tick) + "\n")
	s.WriteString(MetricLabel.Render("dt") + fmt.Sprintf("%.2f", f.Dt) + "\n")

	if spread(m.energyHistory) > 0 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(24), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\n" + Separator(statsWidth-4) + "\n")
	for _, b := range f.Bodies {
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)).Render(fmt.Sprintf("%-8s", b.Name))
		s.WriteString(fmt.Sprintf("%s r=%6.1f v=%4.2f\n", name, b.DistanceTo(f.Attractor), b.Speed()))
	}

	s.WriteString("\n" + KeyHint.Render(input.KeyHelp()+"\nC:Theme  ?:Help"))

	canvasView := canvasStyle.Render(m.canvas.String())
	statsView := statsStyle.Render(s.String())
	view := lipgloss.JoinVertical(lipgloss.Left, m.buttonBar(), lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView))

	if m.showHelp {
		return view + "\n" + helpText
	}
	return view
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  T        - Toggle orbit trails      ║
║  + / =    - Speed up (1.5x)          ║
║  -        - Slow down (1.5x)         ║
║  C        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q / Esc  - Quit                     ║
║  Mouse    - Click the buttons above  ║
╚══════════════════════════════════════╝`

func spread(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	return hi - lo
}

// Run starts the terminal front end and blocks until the user quits.
func Run(ctrl *sim.Controller, opts Options) error {
	p := tea.NewProgram(NewModel(ctrl, opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
