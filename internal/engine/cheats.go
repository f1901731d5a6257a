package engine

import (
	"hivemind/internal/infrastructure/storage"
	"hivemind/pkg/logger"
)

// CheatDrain отнимает 1..2 здоровья, еды и воды (клавиша отладки)
func (g *Game) CheatDrain() ([]string, error) {
	if !g.cfg.Debug {
		return nil, ErrCheatsDisabled
	}
	if g.gameOver {
		return nil, ErrGameOver
	}
	g.record(storage.KindDrain, 0, 0)

	ctx := g.context()
	p := g.player
	p.TakeDamage(ctx.Roll(1, 2))
	p.Food.Damage(ctx.Roll(1, 2))
	p.Water.Damage(ctx.Roll(1, 2))

	msgs := []string{"You feel drained."}
	g.checkDeath(func(m string) { msgs = append(msgs, m) })
	g.log.AddAll(msgs)

	logger.Log.WithFields(logFields("cheats", g.turn)).
		WithField("health", p.Health().Current).
		WithField("food", p.Food.Current).
		WithField("water", p.Water.Current).
		Warn("Drain cheat used.")

	return msgs, nil
}

// CheatReveal открывает всю карту
func (g *Game) CheatReveal() error {
	if !g.cfg.Debug {
		return ErrCheatsDisabled
	}
	g.record(storage.KindReveal, 0, 0)
	g.vis.RevealAll()
	logger.Log.WithFields(logFields("cheats", g.turn)).Warn("Reveal cheat used.")
	return nil
}
