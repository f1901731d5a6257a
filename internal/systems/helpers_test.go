package systems

import (
	"hivemind/internal/core/types"
	"hivemind/internal/core/types/enums"
	"hivemind/internal/domain"
	"hivemind/internal/testutil"
)

// blocker - твердая сущность-заглушка для проверок столкновений
type blocker struct {
	domain.Base
}

func newBlocker(pos domain.Position, seethrough bool) *blocker {
	b := &blocker{Base: domain.NewBase(enums.EntityKindWindow, "blocker", pos, types.MakeGlyph(domain.ColorWhite, domain.CharWindow), 5)}
	b.SetSeethrough(seethrough)
	return b
}

func occupants(es ...domain.Entity) func(domain.Position) domain.Entity {
	return func(p domain.Position) domain.Entity {
		for _, e := range es {
			if e.Pos() == p {
				return e
			}
		}
		return nil
	}
}

func newTestContext(g *domain.Grid, rng domain.Rand, es ...domain.Entity) *domain.Context {
	if rng == nil {
		rng = testutil.Always(0.99)
	}
	return &domain.Context{
		Grid:       g,
		Rng:        rng,
		Noise:      NewNoiseField(g.Width, g.Height),
		Turn:       1,
		OccupantAt: occupants(es...),
	}
}
