package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/polytone/internal/anim"
	"github.com/olivier-w/polytone/internal/export"
	"github.com/olivier-w/polytone/internal/logx"
	"github.com/olivier-w/polytone/internal/render"
	"github.com/olivier-w/polytone/internal/scene"
	"github.com/olivier-w/polytone/internal/seed"
	"github.com/olivier-w/polytone/internal/shape"
	"github.com/olivier-w/polytone/internal/tone"
)

const (
	// chromeRows is the number of terminal rows used around the drawing surface.
	chromeRows   = 11
	scopeRows    = 3
	// scopePeriods is how many oscillator periods the scope shows.
	scopePeriods = 3
)

const statusTTL = 5 * time.Second

// Options configure a new Model.
type Options struct {
	Mode   scene.Mode
	Scale  tone.Scale
	Player *tone.Player
	OutDir string
}

// Model is the Bubbletea model for the polytone TUI.
type Model struct {
	sched   *frameScheduler
	morph   *anim.Morph
	cascade *anim.Cascade
	chrome  *chromeLoop
	player  *tone.Player
	canvas  *render.BrailleCanvas

	input   textinput.Model
	bar     progress.Model
	spinner spinner.Model

	mode   scene.Mode
	scale  tone.Scale
	text   string
	tone   tone.Params
	toneOK bool
	wave   []float64

	bounds        shape.Bounds
	width, height int
	profile       render.ColorProfile

	outDir      string
	saving      bool
	statusMsg   string    // transient status message
	statusTime  time.Time // when statusMsg was set
	audioTried  bool
	quitting    bool
	now         func() time.Time
}

// New creates a Model with an empty text field.
func New(opts Options) Model {
	sched := newFrameScheduler()

	ti := textinput.New()
	ti.Placeholder = export.Prompt
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	player := opts.Player
	if player == nil {
		player = tone.NewPlayer(true)
	}

	m := Model{
		sched:   sched,
		morph:   anim.NewMorph(sched),
		cascade: anim.NewCascade(sched, cascadeMode(opts.Mode)),
		chrome:  newChromeLoop(sched),
		player:  player,
		input:   ti,
		bar:     progress.New(progress.WithSolidFill("#888888"), progress.WithoutPercentage()),
		spinner: s,
		mode:    opts.Mode,
		scale:   opts.Scale,
		outDir:  opts.OutDir,
		profile: render.DetectColorProfile(),
		now:     time.Now,
	}
	m.resize(80, 24)
	return m
}

func cascadeMode(mode scene.Mode) anim.CascadeMode {
	if mode == scene.Bounce {
		return anim.Bounce
	}
	return anim.Settle
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle(windowTitle("")))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		m.sched.fire(time.Time(msg))
		m.expireStatus()
		return m, m.sched.cmd()

	case statusExpiredMsg:
		m.expireStatus()
		return m, nil

	case exportedMsg:
		m.saving = false
		if msg.err != nil {
			logx.Error("export failed", msg.err, logx.Fields{"dir": m.outDir})
			m.setStatus(fmt.Sprintf("Save failed: %v", msg.err))
		} else {
			logx.Info("exported", logx.Fields{"png": msg.result.PNG, "wav": msg.result.WAV})
			saved := msg.result.PNG
			if msg.result.WAV != "" {
				saved += ", " + msg.result.WAV
			}
			m.setStatus("Saved " + saved)
		}
		return m, expireAfter(statusTTL)

	case spinner.TickMsg:
		if !m.saving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, m.sched.cmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		m.morph.Clear()
		m.cascade.Clear()
		m.chrome.stop()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}
	m.initAudio()

	switch msg.String() {
	case "tab":
		m.setMode(m.mode.Next())
		return m, m.sched.cmd()
	case "ctrl+t":
		m.scale = m.scale.Next()
		m.setTone(tone.Derive(m.text, m.scale))
		return m, nil
	case "ctrl+o":
		m.player.ToggleMute()
		return m, nil
	case "ctrl+s":
		if m.saving {
			return m, nil
		}
		m.saving = true
		m.setStatus("Saving...")
		req := export.Request{
			Dir:   m.outDir,
			Text:  m.text,
			Mode:  m.mode,
			Scale: m.scale,
			Size:  render.MaxSurface,
		}
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			res, err := export.Save(req)
			return exportedMsg{result: res, err: err}
		})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.text {
		m.applyText(v)
		return m, tea.Batch(cmd, m.sched.cmd(), tea.SetWindowTitle(windowTitle(v)))
	}
	return m, cmd
}

// initAudio opens the audio context on the first key press.
func (m *Model) initAudio() {
	if m.audioTried {
		return
	}
	m.audioTried = true
	if err := m.player.Init(); err != nil {
		logx.Error("audio unavailable", err, nil)
	}
}

// applyText runs the full pipeline for the current input value: shapes,
// chrome and tone.
func (m *Model) applyText(text string) {
	m.text = text
	logx.Debug("text changed", logx.Fields{"len": len([]rune(text)), "hash": seed.Hash(text)})
	if text == "" {
		m.morph.Clear()
		m.cascade.Clear()
		m.chrome.reset()
		m.setTone(tone.Params{}, false)
		return
	}

	if m.mode.PerCharacter() {
		m.cascade.SetText(text, m.bounds)
	} else {
		d, _ := shape.Synthesize(text, m.bounds)
		m.morph.SetTarget(d, m.now())
	}
	m.chrome.setHue(shape.Hue(seed.Hash(text)))

	m.setTone(tone.Derive(text, m.scale))
	if m.toneOK {
		m.player.Play(m.tone)
	}
}

// setTone records the current tone and the start of its waveform for the
// scope.
func (m *Model) setTone(p tone.Params, ok bool) {
	m.tone, m.toneOK, m.wave = p, ok, nil
	if !ok || p.Frequency <= 0 {
		return
	}
	samples := tone.Synthesize(p, tone.SampleRate)
	n := int(scopePeriods * float64(tone.SampleRate) / p.Frequency)
	m.wave = samples[:min(n, len(samples))]
}

func (m *Model) setMode(mode scene.Mode) {
	prev := m.mode
	m.mode = mode
	switch {
	case !mode.PerCharacter():
		m.cascade.Clear()
		if m.text != "" {
			d, _ := shape.Synthesize(m.text, m.bounds)
			m.morph.SetTarget(d, m.now())
		}
	case !prev.PerCharacter():
		m.morph.Clear()
		m.cascade.SetMode(cascadeMode(mode))
		m.cascade.SetText(m.text, m.bounds)
	default:
		m.cascade.SetMode(cascadeMode(mode))
	}
}

// resize recomputes the surface for a viewport and snaps every shape to its
// final state.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.bounds = render.SurfaceSize(width, height-chromeRows)
	m.canvas = render.NewBrailleCanvas(m.bounds)
	m.canvas.SetProfile(m.profile)

	w := width - 4
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	m.bar.Width = w
	m.input.Width = w - 2

	if m.text == "" {
		return
	}
	if m.mode.PerCharacter() {
		m.cascade.Rebuild(m.text, m.bounds)
		return
	}
	d, _ := shape.Synthesize(m.text, m.bounds)
	m.morph.Snap(d)
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTime = m.now()
}

func (m *Model) expireStatus() {
	if m.statusMsg != "" && !m.saving && m.now().Sub(m.statusTime) >= statusTTL {
		m.statusMsg = ""
	}
}

func expireAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return statusExpiredMsg{} })
}

// shapes resolves what the surface shows right now.
func (m Model) shapes() []render.Resolved {
	if m.mode.PerCharacter() {
		return scene.Instances(m.cascade.Instances())
	}
	return scene.Global(m.morph.Current(), m.bounds)
}

// animationProgress is the morph progress, or the mean spawn progress of the
// instances.
func (m Model) animationProgress() float64 {
	if !m.mode.PerCharacter() {
		if m.text == "" {
			return 0
		}
		return m.morph.Progress()
	}
	ins := m.cascade.Instances()
	if len(ins) == 0 {
		return 0
	}
	sum := 0.0
	for _, in := range ins {
		sum += in.Progress()
	}
	return sum / float64(len(ins))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	pal := m.chrome.palette()
	st := newStyles(pal)

	m.canvas.Clear()
	m.canvas.SetBackground(pal.BackgroundColor())
	scene.Paint(m.canvas, m.shapes())

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + st.header.Render("polytone") + st.page.Render("  ") + st.accent.Render(m.mode.Icon()+" "+m.mode.String()) + "\n")

	pad := spaces((m.width - m.canvas.Cols()) / 2)
	surface := m.canvas.View()
	if m.text == "" {
		surface = m.promptSurface()
	}
	for _, line := range strings.Split(surface, "\n") {
		b.WriteString(pad + st.page.Render(line) + "\n")
	}
	b.WriteString("\n")

	m.bar.FullColor = string(pal.Accent)
	m.bar.EmptyColor = string(pal.Muted)
	b.WriteString("  " + m.bar.ViewAs(m.animationProgress()) + "\n")

	scope := render.Scope(m.wave, m.bar.Width, scopeRows, pal.AccentColor(), m.profile)
	if scope == "" {
		scope = strings.Repeat("\n", scopeRows-1)
	}
	for _, line := range strings.Split(scope, "\n") {
		b.WriteString("  " + st.page.Render(line) + "\n")
	}

	status := renderTone(m.tone, m.toneOK) + "  " + m.scale.String()
	if m.player.Muted() {
		status += "  muted"
	}
	if m.saving {
		status = m.spinner.View() + " " + m.statusMsg
	} else if m.statusMsg != "" {
		status = m.statusMsg
	}
	b.WriteString("  " + st.status.Render(status) + "\n")

	m.input.PromptStyle = st.accent
	m.input.TextStyle = st.page
	m.input.PlaceholderStyle = st.prompt
	b.WriteString("  " + m.input.View() + "\n")
	b.WriteString("  " + st.help.Render(helpText()))

	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, b.String(),
		lipgloss.WithWhitespaceBackground(pal.Background))
}

// promptSurface is the blank surface with the idle prompt on its middle row.
func (m Model) promptSurface() string {
	cols, rows := m.canvas.Cols(), m.canvas.Rows()
	blank := spaces(cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = blank
	}
	msg := export.Prompt
	if r := []rune(msg); len(r) > cols {
		msg = string(r[:cols])
	}
	n := len([]rune(msg))
	lines[rows/2] = spaces((cols-n)/2) + msg + spaces(cols-n-(cols-n)/2)
	return strings.Join(lines, "\n")
}

// Text returns the current input value.
func (m Model) Text() string { return m.text }

// Mode returns the current animation mode.
func (m Model) Mode() scene.Mode { return m.mode }

func windowTitle(text string) string {
	if text == "" {
		return "polytone"
	}
	if r := []rune(text); len(r) > 24 {
		text = string(r[:24]) + "…"
	}
	return text + " · polytone"
}
