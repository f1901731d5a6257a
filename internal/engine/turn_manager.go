package engine

import (
	"fmt"

	"hivemind/internal/domain"
	"hivemind/internal/systems"
	"hivemind/pkg/api"
	"hivemind/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SubmitIntent - шаг игрока (dx, dy) в режиме mode. См. Submit.
func (g *Game) SubmitIntent(dx, dy int, mode domain.ActionType) ([]string, error) {
	return g.Submit(api.Intent{Dx: dx, Dy: dy, Mode: mode.String()})
}

// Submit разрешает один полный ход:
// намерение -> попытка шага -> взаимодействие -> эффекты -> ответ сущностей -> видимость.
// Эффекты и ответ сущностей случаются только если игрок сменил клетку.
// Возвращает сообщения, добавленные в лог за этот ход.
func (g *Game) Submit(intent api.Intent) ([]string, error) {
	// 1. Намерение
	if err := intent.Validate(); err != nil {
		return nil, err
	}
	if g.gameOver || g.player.IsDead() {
		return nil, ErrGameOver
	}
	if intent.IsZero() {
		return nil, nil
	}

	mode, _ := domain.ParseAction(intent.Mode)
	g.player.Action = mode
	g.record(recordKind(mode), intent.Dx, intent.Dy)

	var msgs []string
	add := func(m string) {
		if m != "" {
			msgs = append(msgs, m)
		}
	}
	// Лог получает сообщения хода одной пачкой, в порядке появления
	defer func() { g.log.AddAll(msgs) }()

	// 2. Попытка шага
	from := g.player.Pos()
	move := systems.CalculateMove(g.grid, from, intent.Dx, intent.Dy, g.registry.At)
	if move.IsWall {
		// Стена или край карты: ход не тратится, мир не меняется
		return nil, nil
	}

	turnLogger := logger.Log.WithFields(logrus.Fields{
		"component": "turn_manager",
		"turn":      g.turn + 1,
		"from":      from,
		"to":        move.Target,
		"mode":      mode.String(),
	})

	// 3. Взаимодействие
	ctx := g.context()
	if !move.HasMoved {
		add(move.Occupant.OnBumpInteract(ctx, g.player))
		g.registry.Flush(g.turn)
		g.checkDeath(add)
		g.refreshVisibility()

		turnLogger.WithField("target", move.Occupant.Name()).Debug("Bumped into entity.")
		return msgs, nil
	}

	g.player.SetPos(move.Target)
	g.turn++
	ctx.Turn = g.turn

	if move.Occupant != nil {
		add(move.Occupant.OnPassOver(ctx, g.player))
		g.registry.Flush(g.turn)
	}
	g.registry.Reindex()

	// 4. Эффекты
	g.applyEffects(ctx, add)

	// 5. Ответ сущностей
	reacted := g.reactEntities(ctx, add)
	if n := g.registry.Pending(); n > 0 {
		g.violate(fmt.Errorf("%d spawns left unflushed after turn %d: %w", n, g.turn, ErrInvariant))
	}

	g.checkDeath(add)

	// 6. Видимость
	g.refreshVisibility()

	turnLogger.WithFields(logrus.Fields{
		"reacted":  reacted,
		"health":   g.player.Health().Current,
		"statuses": g.player.Statuses.String(),
	}).Debug("Turn resolved.")

	return msgs, nil
}

// applyEffects: кровь под ногами, голод и усталость, состояния, шум шага
func (g *Game) applyEffects(ctx *domain.Context, add func(string)) {
	p := g.player

	add(systems.RerollBloodInfection(ctx, p))
	for _, m := range systems.AdvanceSurvivalClock(p, g.turn) {
		add(m)
	}

	ticked, err := systems.TickStatuses(ctx, p)
	for _, m := range ticked {
		add(m)
	}
	if err != nil {
		g.violate(err)
	}

	pos := p.Pos()
	g.noise.DecayAll()
	g.noise.Propagate(pos.X, pos.Y, p.Noise, p.Noise)
}

// reactEntities дает сходить каждой сущности в обратном порядке регистрации.
// Exhausted игрок медлителен: каждая сущность ходит дважды.
// Рождения и смерти применяются сразу после шага сущности.
func (g *Game) reactEntities(ctx *domain.Context, add func(string)) int {
	doubleTurn := g.player.Statuses.Has(domain.StatusExhausted)
	reacted := 0

	for _, e := range g.registry.Reacting(g.turn) {
		if e.MarkedForDeath() {
			continue
		}

		add(e.OnMyTurn(ctx, g.player))
		g.registry.Flush(g.turn)
		reacted++

		if doubleTurn && !e.MarkedForDeath() {
			add(e.OnMyTurn(ctx, g.player))
			g.registry.Flush(g.turn)
		}
	}

	return reacted
}
