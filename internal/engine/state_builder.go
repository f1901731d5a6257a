package engine

import (
	"hivemind/internal/core/types"
	"hivemind/internal/domain"
	"hivemind/pkg/api"
)

// Snapshot собирает состояние для HUD и лога сообщений
func (g *Game) Snapshot() api.Snapshot {
	p := g.player
	pos := p.Pos()

	return api.Snapshot{
		Turn: g.turn,
		Grid: api.GridMeta{Width: g.grid.Width, Height: g.grid.Height},
		Player: api.PlayerView{
			X:           pos.X,
			Y:           pos.Y,
			Health:      toStatView(*p.Health()),
			Food:        toStatView(p.Food),
			Water:       toStatView(p.Water),
			SightRadius: p.SightRadius,
			Noise:       p.Noise,
			Mode:        p.Action.String(),
			Statuses:    p.Statuses.Names(),
			IsDead:      p.IsDead(),
		},
		Messages: g.log.Entries(),
		GameOver: g.gameOver,
	}
}

func toStatView(v domain.Vitals) api.StatView {
	return api.StatView{Current: v.Current, Max: v.Max}
}

// ViewAt возвращает, что рисовать в клетке, и false, если клетку не видели.
//   - не видели: пусто;
//   - видели, но сейчас не видно: запомненный цвет; сущности, которых
//     нельзя запомнить, заменяются тайлом под ними;
//   - видно сейчас: настоящий символ и цвет.
func (g *Game) ViewAt(x, y int) (types.Glyph, bool) {
	if !g.vis.IsSeen(x, y) {
		return 0, false
	}

	pos := domain.Position{X: x, Y: y}
	tile := g.grid.At(x, y).Glyph

	if !g.vis.IsActive(x, y) {
		if e := g.registry.At(pos); e != nil && e.Detectable() {
			return e.Glyph().WithColor(domain.ColorRemembered), true
		}
		return tile.WithColor(domain.ColorRemembered), true
	}

	if pos == g.player.Pos() {
		return g.player.Glyph(), true
	}
	if e := g.registry.At(pos); e != nil {
		return e.Glyph(), true
	}
	return tile, true
}
