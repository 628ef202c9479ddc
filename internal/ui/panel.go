//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"simstation/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Actions describes what the user asked for during one panel update.
type Actions struct {
	Load        string
	TogglePause bool
	Reset       bool
	Rate        float64
	RateChanged bool
}

// Panel renders the host controls to the right of the simulation view and
// gives the active simulation a section to draw its own status into. It
// implements core.Panel for that section.
type Panel struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	pixel      *ebiten.Image

	simNames []string
	current  string
	rateMin  float64
	rateMax  float64

	paused   bool
	rate     float64
	dragging bool

	offsetX int
	mouseX  int
	mouseY  int
	clicked bool

	items   []panelItem
	cursorY int
	actions Actions
}

type itemKind int

const (
	itemHeading itemKind = iota
	itemLabel
	itemHighlight
	itemSeparator
	itemButton
)

type panelItem struct {
	kind itemKind
	text string
	rect image.Rectangle
	y    int
}

// NewPanel constructs the control panel listing the registered simulations.
func NewPanel(width int) *Panel {
	if width <= 0 {
		width = panelWidth
	}
	p := &Panel{
		width:    width,
		simNames: core.Names(),
		current:  core.NoSim{}.Name(),
		rateMin:  core.DefaultRateConfig().Min,
		rateMax:  core.DefaultRateConfig().Max,
	}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Width returns the panel width in pixels.
func (p *Panel) Width() int { return p.width }

// SetActive records the active simulation's name and slider bounds.
func (p *Panel) SetActive(name string, cfg core.RateConfig) {
	p.current = name
	p.rateMin = cfg.Min
	p.rateMax = cfg.Max
	if p.rateMin <= 0 {
		p.rateMin = core.DefaultRateConfig().Min
	}
	if p.rateMax < p.rateMin {
		p.rateMax = p.rateMin
	}
}

// Update processes pointer input against the host controls, then lets the
// active simulation populate its section. It returns the user's requests.
func (p *Panel) Update(offsetX int, sim core.Sim, paused bool, rate float64) Actions {
	p.offsetX = offsetX
	p.paused = paused
	p.rate = rate
	p.actions = Actions{}

	p.mouseX, p.mouseY = ebiten.CursorPosition()
	p.clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	inPanel := p.mouseX >= offsetX
	px := p.mouseX - offsetX
	py := p.mouseY

	if p.clicked && inPanel {
		for i, name := range p.selectorEntries() {
			if pointInRect(px, py, p.selectorRect(i)) {
				p.actions.Load = name
				break
			}
		}
		if pointInRect(px, py, p.pauseRect()) {
			p.actions.TogglePause = true
		}
		if pointInRect(px, py, p.resetRect()) {
			p.actions.Reset = true
		}
	}

	// Slider drag starts on the track and follows the pointer while held.
	track := p.sliderTrackRect()
	if p.clicked && inPanel && pointInRect(px, py, track.Inset(-4)) {
		p.dragging = true
	}
	if !held {
		p.dragging = false
	}
	if p.dragging {
		p.actions.Rate = p.rateFromPos(px)
		p.actions.RateChanged = true
		p.rate = p.actions.Rate
	}

	p.items = p.items[:0]
	p.cursorY = p.simSectionTop()
	if sim != nil {
		sim.UI(p)
	}
	return p.actions
}

// Draw paints the panel anchored at offsetX with the given height.
func (p *Panel) Draw(screen *ebiten.Image, offsetX, height int) {
	if p.width <= 0 || height <= 0 {
		return
	}
	if p.panel == nil || p.panel.Bounds().Dx() != p.width || p.lastHeight != height {
		p.panel = ebiten.NewImage(p.width, height)
		p.lastHeight = height
	}
	p.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(p.panel, "Simulation Station", face, panelPadding, panelPadding+headerBaseline, headingColor)

	text.Draw(p.panel, "Load Simulation:", face, panelPadding, selectorTop-6, dimColor)
	for i, name := range p.selectorEntries() {
		rect := p.selectorRect(i)
		col := textColor
		if name == p.current {
			p.fillRect(rect, color.RGBA{R: 40, G: 44, B: 56, A: 255})
			col = highlightColor
		}
		text.Draw(p.panel, name, face, rect.Min.X+6, rect.Min.Y+rowBaseline, col)
	}

	pauseLabel := "Pause"
	if p.paused {
		pauseLabel = "Resume"
	}
	p.drawButton(p.pauseRect(), pauseLabel)
	p.drawButton(p.resetRect(), "Reset")

	p.drawSlider()

	for _, item := range p.items {
		switch item.kind {
		case itemHeading:
			text.Draw(p.panel, item.text, face, panelPadding, item.y, headingColor)
		case itemLabel:
			text.Draw(p.panel, item.text, face, panelPadding, item.y, textColor)
		case itemHighlight:
			text.Draw(p.panel, item.text, face, panelPadding, item.y, highlightColor)
		case itemSeparator:
			p.fillRect(item.rect, separatorColor)
		case itemButton:
			p.drawButton(item.rect, item.text)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(p.panel, op)
}

// Heading draws a section title in the simulation's panel section.
func (p *Panel) Heading(s string) {
	p.cursorY += headingSpacing
	p.items = append(p.items, panelItem{kind: itemHeading, text: s, y: p.cursorY})
	p.cursorY += lineSpacing / 2
}

// Label draws a plain status line.
func (p *Panel) Label(s string) {
	p.cursorY += lineSpacing
	p.items = append(p.items, panelItem{kind: itemLabel, text: s, y: p.cursorY})
}

// Highlight draws an emphasized status line.
func (p *Panel) Highlight(s string) {
	p.cursorY += lineSpacing
	p.items = append(p.items, panelItem{kind: itemHighlight, text: s, y: p.cursorY})
}

// Separator draws a horizontal rule.
func (p *Panel) Separator() {
	p.cursorY += lineSpacing / 2
	rect := image.Rect(panelPadding, p.cursorY, p.width-panelPadding, p.cursorY+1)
	p.items = append(p.items, panelItem{kind: itemSeparator, rect: rect})
	p.cursorY += lineSpacing / 2
}

// Button draws a clickable button in the simulation section and reports
// whether it was clicked this frame.
func (p *Panel) Button(label string) bool {
	p.cursorY += lineSpacing
	rect := image.Rect(panelPadding, p.cursorY-buttonSize+10, panelPadding+simButtonWidth, p.cursorY+10)
	p.items = append(p.items, panelItem{kind: itemButton, text: label, rect: rect})
	p.cursorY += buttonSize - lineSpacing + 6
	if !p.clicked || p.mouseX < p.offsetX {
		return false
	}
	return pointInRect(p.mouseX-p.offsetX, p.mouseY, rect)
}

func (p *Panel) selectorEntries() []string {
	entries := make([]string, 0, len(p.simNames)+1)
	entries = append(entries, core.NoSim{}.Name())
	entries = append(entries, p.simNames...)
	return entries
}

func (p *Panel) selectorRect(i int) image.Rectangle {
	top := selectorTop + i*rowHeight
	return image.Rect(panelPadding, top, p.width-panelPadding, top+rowHeight)
}

func (p *Panel) buttonsTop() int {
	return selectorTop + (len(p.simNames)+1)*rowHeight + sectionGap
}

func (p *Panel) pauseRect() image.Rectangle {
	top := p.buttonsTop()
	return image.Rect(panelPadding, top, panelPadding+hostButtonWidth, top+buttonSize)
}

func (p *Panel) resetRect() image.Rectangle {
	top := p.buttonsTop()
	left := panelPadding + hostButtonWidth + buttonGap
	return image.Rect(left, top, left+hostButtonWidth, top+buttonSize)
}

func (p *Panel) sliderTrackRect() image.Rectangle {
	top := p.buttonsTop() + buttonSize + sectionGap + sliderLabelGap
	return image.Rect(panelPadding, top, p.width-panelPadding, top+sliderTrackHeight)
}

func (p *Panel) simSectionTop() int {
	return p.sliderTrackRect().Max.Y + sectionGap
}

// rateFromPos maps a panel-local x position on the slider track to a rate
// on a logarithmic scale between the advisory bounds.
func (p *Panel) rateFromPos(px int) float64 {
	track := p.sliderTrackRect()
	t := float64(px-track.Min.X) / float64(track.Dx())
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lo := math.Log(p.rateMin)
	hi := math.Log(p.rateMax)
	return math.Exp(lo + t*(hi-lo))
}

func (p *Panel) drawSlider() {
	face := basicfont.Face7x13
	track := p.sliderTrackRect()
	label := fmt.Sprintf("%.1f Hz (ops/sec)", p.rate)
	text.Draw(p.panel, label, face, panelPadding, track.Min.Y-6, textColor)
	p.fillRect(track, color.RGBA{R: 54, G: 56, B: 64, A: 255})

	lo := math.Log(p.rateMin)
	hi := math.Log(p.rateMax)
	t := 0.0
	if hi > lo && p.rate > 0 {
		t = (math.Log(p.rate) - lo) / (hi - lo)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	knobX := track.Min.X + int(t*float64(track.Dx()))
	knob := image.Rect(knobX-3, track.Min.Y-4, knobX+3, track.Max.Y+4)
	p.fillRect(knob, highlightColor)
}

func (p *Panel) drawButton(rect image.Rectangle, label string) {
	p.fillRect(rect, color.RGBA{R: 54, G: 56, B: 64, A: 255})
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(p.panel, label, face, x, y, buttonTextColor)
}

func (p *Panel) fillRect(rect image.Rectangle, col color.RGBA) {
	if p.pixel == nil || rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	p.panel.DrawImage(p.pixel, op)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

var (
	headingColor    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor       = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor        = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	highlightColor  = color.RGBA{R: 120, G: 220, B: 120, A: 255}
	separatorColor  = color.RGBA{R: 60, G: 62, B: 70, A: 255}
	buttonTextColor = color.RGBA{R: 230, G: 230, B: 240, A: 255}
)

const (
	panelWidth        = 220
	panelPadding      = 12
	headerBaseline    = 12
	selectorTop       = 48
	rowHeight         = 18
	rowBaseline       = 13
	sectionGap        = 18
	buttonSize        = 24
	buttonGap         = 6
	hostButtonWidth   = 64
	simButtonWidth    = 96
	sliderLabelGap    = 22
	sliderTrackHeight = 6
	lineSpacing       = 18
	headingSpacing    = 24
)
