package dash

import (
	"fmt"

	"github.com/vovakirdan/pixel-dash/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar      = '█'
	PlayerBlinkChar = '▒'
	PlayerSpinChar  = '▓'
	DashStreakChar  = '═'
	SpikeChar       = '▲'
	BlockChar       = '█'
	FlyerChar       = '◆'
	FloorChar       = '▀'
	UnderfloorChar  = '░'
	SparkChar       = '·'
	BigSparkChar    = '•'
)

// powerUpGlyph returns the character a power-up is drawn with.
func powerUpGlyph(k PowerUpKind) rune {
	switch k {
	case PowerSpeed:
		return '»'
	case PowerDash:
		return 'D'
	case PowerShield:
		return 'O'
	default:
		return '*'
	}
}

// projection maps playfield pixels onto screen cells below the HUD row.
type projection struct {
	sx, sy float64
	top    int
}

func newProjection(dst *core.Screen, width, height float64) projection {
	rows := dst.Height() - 1
	if rows < 1 {
		rows = 1
	}
	return projection{
		sx:  float64(dst.Width()) / width,
		sy:  float64(rows) / height,
		top: 1,
	}
}

func (p projection) point(x, y float64) (int, int) {
	return int(x * p.sx), p.top + int(y*p.sy)
}

// rect returns the cells covered by b, never smaller than one cell.
func (p projection) rect(b core.Box) core.Rect {
	x0, y0 := p.point(b.X, b.Y)
	x1, y1 := p.point(b.Right(), b.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	s := g.sim
	w := s.World()
	cfg := s.Config()
	proj := newProjection(dst, cfg.Field.Width, cfg.Field.Height)

	// Floor
	_, floorRow := proj.point(0, cfg.Field.FloorY())
	dst.DrawHLineColored(0, floorRow, dst.Width(), FloorChar, core.ColorBlue)
	for y := floorRow + 1; y < dst.Height(); y++ {
		dst.DrawHLineColored(0, y, dst.Width(), UnderfloorChar, core.ColorGray)
	}

	for _, o := range w.Obstacles {
		drawObstacle(dst, proj, o)
	}
	for _, pu := range w.PowerUps {
		dst.DrawRectColored(proj.rect(pu.Box), powerUpGlyph(pu.Kind), pu.Kind.Color())
	}
	for _, pt := range w.Particles {
		ch := SparkChar
		if pt.Size >= 4 {
			ch = BigSparkChar
		}
		x, y := proj.point(pt.X, pt.Y)
		if y < floorRow {
			dst.SetColored(x, y, ch, pt.Color)
		}
	}

	if s.Phase() != PhaseMenu {
		drawPlayer(dst, proj, w)
	}

	g.drawHUD(dst)

	switch {
	case s.Phase() == PhaseMenu:
		drawCenteredMessage(dst, "PIXEL DASH",
			"ENTER start  |  SPACE jump  |  TAB scores  |  Q quit", core.ColorBrightMagenta)
	case s.Phase() == PhaseEnded:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  R restart  |  ESC menu", s.Score()), core.ColorBrightRed)
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	}
}

// drawObstacle renders one obstacle in its shape's glyph and colour.
func drawObstacle(dst *core.Screen, proj projection, o Obstacle) {
	r := proj.rect(o.Box)
	switch o.Shape {
	case ShapeSpike:
		// Narrow tip row over a full-width base
		cx := r.X + r.W/2
		dst.SetColored(cx, r.Y, SpikeChar, o.Shape.Color())
		if base := core.NewRect(r.X, r.Y+1, r.W, r.H-1); !base.Empty() {
			dst.DrawRectColored(base, SpikeChar, o.Shape.Color())
		}
	case ShapeFlying:
		dst.DrawRectColored(r, FlyerChar, o.Shape.Color())
	default:
		dst.DrawRectColored(r, BlockChar, o.Shape.Color())
	}
}

// drawPlayer renders the runner with its active status effects.
func drawPlayer(dst *core.Screen, proj projection, w *World) {
	p := &w.Player
	r := proj.rect(p.Box)

	color := core.ColorMagenta
	if p.Shield {
		color = core.ColorBrightBlue
	}

	ch := PlayerChar
	if !p.Grounded && int(p.Angle/45)%2 != 0 {
		ch = PlayerSpinChar
	}
	if p.Invincible() && (w.Frame/4)%2 == 1 {
		ch = PlayerBlinkChar
	}

	if p.Dashing() {
		streak := min(r.X, 4)
		for y := r.Y; y < r.Bottom(); y++ {
			dst.DrawHLineColored(r.X-streak, y, streak, DashStreakChar, PowerDash.Color())
		}
	}
	dst.DrawRectColored(r, ch, color)
}

// drawHUD renders score, speed and active effects on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.sim
	p := &s.World().Player

	left := fmt.Sprintf(" SCORE %d  SPD %.1f  LV %d%% ", s.Score(), s.EffectiveSpeed(), int(s.Level()*100))
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	var effects []struct {
		text  string
		color core.Color
	}
	add := func(text string, c core.Color) {
		effects = append(effects, struct {
			text  string
			color core.Color
		}{text, c})
	}
	if p.Dashing() {
		add(fmt.Sprintf("DASH %d", p.DashTimer), PowerDash.Color())
	}
	if p.Invincible() {
		add(fmt.Sprintf("INV %d", p.InvincibleTimer), core.ColorBrightWhite)
	}
	if p.SpeedBoostTimer > 0 {
		add(fmt.Sprintf("BOOST %d", p.SpeedBoostTimer), PowerSpeed.Color())
	}
	if p.Shield {
		add("SHIELD", PowerShield.Color())
	}
	if p.Trail {
		add("TRAIL", PowerTrail.Color())
	}

	total := 0
	for _, e := range effects {
		total += len(e.text) + 1
	}
	x := dst.Width() - total - 1
	for _, e := range effects {
		dst.DrawTextColored(x, 0, e.text, e.color)
		x += len(e.text) + 1
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, accent core.Color) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))

	// Calculate box dimensions
	boxW := max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, accent)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}

// Describe returns a one-line plain-text summary of the world, used for
// screenshots and logs.
func Describe(s *Simulation) string {
	w := s.World()
	return fmt.Sprintf("phase=%s frame=%d score=%d speed=%.3f obstacles=%d powerups=%d",
		s.Phase(), w.Frame, s.Score(), w.Speed, len(w.Obstacles), len(w.PowerUps))
}
