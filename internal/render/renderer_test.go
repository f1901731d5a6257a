package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hivemind/internal/core/types"
	"hivemind/internal/domain"
	"hivemind/pkg/api"
)

// fakeSource - крошечный мир: видна только клетка игрока и стена рядом
type fakeSource struct {
	snap  api.Snapshot
	cells map[domain.Position]types.Glyph
}

func (f *fakeSource) ViewAt(x, y int) (types.Glyph, bool) {
	g, ok := f.cells[domain.Position{X: x, Y: y}]
	return g, ok
}

func (f *fakeSource) Snapshot() api.Snapshot { return f.snap }

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestRenderer_Draw(t *testing.T) {
	s := newSimScreen(t, ScreenWidth, ScreenHeight)
	src := &fakeSource{
		snap: api.Snapshot{
			Grid: api.GridMeta{Width: 15, Height: 11},
			Player: api.PlayerView{
				X: 5, Y: 5,
				Health:   api.StatView{Current: 3, Max: 10},
				Food:     api.StatView{Current: 10, Max: 10},
				Water:    api.StatView{Current: 6, Max: 10},
				Mode:     "MOVE",
				Statuses: []string{"Bleeding"},
			},
			Messages: []string{": You open the door."},
		},
		cells: map[domain.Position]types.Glyph{
			{X: 5, Y: 5}: types.MakeGlyph(domain.ColorYellow, domain.CharPlayer),
			{X: 6, Y: 5}: types.MakeGlyph(domain.ColorRemembered, domain.CharWall),
		},
	}

	NewRenderer(s, "Hivemind").Draw(src)

	// Камера в (0,0): клетка (x,y) рисуется в (1+x, 1+y)
	ch, _, style, _ := s.GetContent(6, 6)
	assert.Equal(t, '@', ch)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.ColorYellow, fg)

	ch, _, style, _ = s.GetContent(7, 6)
	assert.Equal(t, '#', ch)
	fg, _, _ = style.Decompose()
	assert.Equal(t, tcell.ColorBlue, fg)

	// Невиданные клетки пустые
	ch, _, _, _ = s.GetContent(2, 2)
	assert.Equal(t, ' ', ch)

	// Заголовок и первое сообщение
	ch, _, _, _ = s.GetContent(2, 0)
	assert.Equal(t, 'H', ch)
	ch, _, _, _ = s.GetContent(ScreenWidth/2, GameHeight+2)
	assert.Equal(t, ':', ch)

	// Здоровье 3/10 - красным
	ch, _, style, _ = s.GetContent(3+len("Hp: "), GameHeight+2)
	assert.Equal(t, '0', ch)
	fg, _, _ = style.Decompose()
	assert.Equal(t, tcell.ColorRed, fg)
}

func TestRenderer_TooSmall(t *testing.T) {
	s := newSimScreen(t, 40, 10)
	NewRenderer(s, "Hivemind").Draw(&fakeSource{})

	ch, _, _, _ := s.GetContent(0, 0)
	assert.Equal(t, 'H', ch)
}

func TestFractionStyle(t *testing.T) {
	fg := func(s tcell.Style) tcell.Color {
		c, _, _ := s.Decompose()
		return c
	}
	assert.Equal(t, tcell.ColorRed, fg(fractionStyle(0.3)))
	assert.Equal(t, tcell.ColorYellow, fg(fractionStyle(0.5)))
	assert.Equal(t, tcell.ColorGreen, fg(fractionStyle(0.7)))
	assert.Equal(t, fg(defaultStyle), fg(StyleFor(200)))
}
