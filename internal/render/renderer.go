package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"hivemind/internal/core/types"
	"hivemind/internal/domain"
	"hivemind/pkg/api"
)

// Source - то, что умеет показывать партия
type Source interface {
	ViewAt(x, y int) (types.Glyph, bool)
	Snapshot() api.Snapshot
}

// Renderer рисует кадр целиком на каждом вызове Draw
type Renderer struct {
	screen tcell.Screen
	title  string
}

func NewRenderer(screen tcell.Screen, title string) *Renderer {
	screen.SetStyle(defaultStyle)
	screen.HideCursor()
	return &Renderer{screen: screen, title: title}
}

// segment - кусок строки со своим стилем
type segment struct {
	text  string
	style tcell.Style
}

// Draw рисует кадр и показывает его
func (r *Renderer) Draw(src Source) {
	r.screen.Clear()
	defer r.screen.Show()

	w, h := r.screen.Size()
	if w < ScreenWidth || h < ScreenHeight {
		r.text(0, 0, fmt.Sprintf("%s requires at least %d rows and %d columns.", r.title, ScreenHeight, ScreenWidth), defaultStyle)
		return
	}

	ox := w/2 - ScreenWidth/2
	oy := h/2 - ScreenHeight/2
	snap := src.Snapshot()

	r.frame(ox, oy)
	r.world(ox, oy, src, snap)
	r.statusPanel(ox, oy, snap)
	r.stats(ox, oy, snap)
	r.messages(ox, oy, snap.Messages)

	if snap.GameOver {
		msg := " You died. Press q to quit. "
		r.text(ox+1+GameWidth/2-len(msg)/2, oy+1+GameHeight/2, msg, StyleFor(domain.ColorRed).Reverse(true))
	}
}

func (r *Renderer) frame(ox, oy int) {
	for y := 0; y < ScreenHeight; y++ {
		ch := '|'
		if y == 0 || y == ScreenHeight-1 {
			ch = '+'
		}
		r.screen.SetContent(ox, oy+y, ch, nil, defaultStyle)
		r.screen.SetContent(ox+ScreenWidth-1, oy+y, ch, nil, defaultStyle)
	}
	for x := 1; x < ScreenWidth-1; x++ {
		r.screen.SetContent(ox+x, oy, '-', nil, defaultStyle)
		r.screen.SetContent(ox+x, oy+ScreenHeight-1, '-', nil, defaultStyle)
		// Линия между картой и интерфейсом
		r.screen.SetContent(ox+x, oy+GameHeight+1, '-', nil, defaultStyle)
	}

	// Вертикаль между статами и сообщениями
	for y := GameHeight + 1; y < ScreenHeight; y++ {
		ch := '|'
		if y == GameHeight+1 || y == ScreenHeight-1 {
			ch = '+'
		}
		r.screen.SetContent(ox+ScreenWidth/2-1, oy+y, ch, nil, defaultStyle)
	}
	// Вертикаль между картой и панелью состояний
	for y := 0; y < GameHeight+2; y++ {
		ch := '|'
		if y == 0 || y == GameHeight+1 {
			ch = '+'
		}
		r.screen.SetContent(ox+GameWidth+1, oy+y, ch, nil, defaultStyle)
	}

	r.text(ox+2, oy, r.title, defaultStyle)
	r.text(ox+GameWidth+3, oy, "Status", defaultStyle)
	r.text(ox+2, oy+GameHeight+1, "Stats", defaultStyle)
	r.text(ox+ScreenWidth/2+1, oy+GameHeight+1, "Messages", defaultStyle)
}

func (r *Renderer) world(ox, oy int, src Source, snap api.Snapshot) {
	cam := Camera(domain.Position{X: snap.Player.X, Y: snap.Player.Y}, snap.Grid.Width, snap.Grid.Height)

	for y := 0; y < GameHeight; y++ {
		for x := 0; x < GameWidth; x++ {
			glyph, ok := src.ViewAt(cam.X+x, cam.Y+y)
			if !ok {
				continue
			}
			r.screen.SetContent(ox+1+x, oy+1+y, rune(glyph.Char()), nil, StyleFor(glyph.Color()))
		}
	}
}

func (r *Renderer) statusPanel(ox, oy int, snap api.Snapshot) {
	x := ox + GameWidth + 3
	y := oy + 2

	r.text(x, y, fmt.Sprintf("Turn %d", snap.Turn), defaultStyle)
	y++
	r.text(x, y, "Mode "+strings.ToLower(snap.Player.Mode), StyleFor(domain.ColorCyan))
	y += 2

	if len(snap.Player.Statuses) == 0 {
		r.text(x, y, "healthy", StyleFor(domain.ColorGreen))
		return
	}
	for _, s := range snap.Player.Statuses {
		r.text(x, y, s, StyleFor(domain.ColorRed))
		y++
	}
}

func (r *Renderer) stats(ox, oy int, snap api.Snapshot) {
	p := snap.Player
	x := ox + 3
	y := oy + GameHeight + 2

	stat := func(label string, color uint8, v api.StatView) []segment {
		return []segment{
			{label, StyleFor(color)},
			{": ", defaultStyle},
			{fmt.Sprintf("%02d", v.Current), fractionStyle(v.Fraction())},
			{"/", defaultStyle},
			{fmt.Sprintf("%d", v.Max), StyleFor(domain.ColorGreen)},
		}
	}
	sep := segment{" x ", defaultStyle}

	var line []segment
	line = append(line, stat("Hp", domain.ColorRed, p.Health)...)
	line = append(line, sep)
	line = append(line, stat("Fd", domain.ColorYellow, p.Food)...)
	line = append(line, sep)
	line = append(line, stat("Wt", domain.ColorBlue, p.Water)...)
	r.segments(x, y, line)

	r.segments(x, y+1, []segment{
		{"Vsn", StyleFor(domain.ColorCyan)},
		{": ", defaultStyle},
		{fmt.Sprintf("%d", p.SightRadius), fractionStyle(float64(p.SightRadius) / 10)},
		{"    x ", defaultStyle},
		{"Nse", StyleFor(domain.ColorMagenta)},
		{": ", defaultStyle},
		{fmt.Sprintf("%d", p.Noise), fractionStyle(float64(10-p.Noise) / 10)},
	})
}

func (r *Renderer) messages(ox, oy int, msgs []string) {
	// Показываем последние, если лог длиннее окна
	if len(msgs) > MessageRows {
		msgs = msgs[len(msgs)-MessageRows:]
	}
	width := ScreenWidth/2 - 2
	for i, m := range msgs {
		if len(m) > width {
			m = m[:width]
		}
		r.text(ox+ScreenWidth/2, oy+GameHeight+2+i, m, defaultStyle)
	}
}

func (r *Renderer) segments(x, y int, segs []segment) {
	for _, s := range segs {
		x = r.text(x, y, s.text, s.style)
	}
}

// text пишет строку и возвращает x после нее
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
