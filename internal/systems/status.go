package systems

import (
	"hivemind/internal/domain"
	"hivemind/pkg/logger"

	"github.com/sirupsen/logrus"
)

// RerollBloodInfection: шаг на кровь может занести инфекцию.
// Базовый шанс удваивается, если игрок истекает кровью.
func RerollBloodInfection(ctx *domain.Context, p *domain.Player) string {
	pos := p.Pos()
	if !ctx.Grid.At(pos.X, pos.Y).IsBlood() || p.Statuses.Has(domain.StatusInfected) {
		return ""
	}

	chance := domain.BloodInfectionChance
	if p.Statuses.Has(domain.StatusBleeding) {
		chance *= 2
	}
	if !ctx.Chance(chance) {
		return ""
	}

	p.Statuses.Add(domain.StatusInfected)
	return "Something in the blood gets into you. You feel infected."
}

// AdvanceSurvivalClock тратит еду и воду раз в HungerInterval шагов и
// включает Dehydrated, Starving и Exhausted, когда ресурсы кончаются.
func AdvanceSurvivalClock(p *domain.Player, turn int) []string {
	var msgs []string

	if turn > 0 && turn%domain.HungerInterval == 0 {
		p.Food.Damage(1)
		p.Water.Damage(1)
	}

	if p.Water.Depleted() && p.Statuses.Add(domain.StatusDehydrated) {
		msgs = append(msgs, "Your throat is parched. You are dehydrated.")
	}
	if p.Food.Depleted() && p.Statuses.Add(domain.StatusStarving) {
		msgs = append(msgs, "Your stomach cramps. You are starving.")
	}
	if turn-p.LastSleep >= domain.ExhaustionTurns && p.Statuses.Add(domain.StatusExhausted) {
		msgs = append(msgs, "You can barely keep your eyes open. You are exhausted.")
	}

	return msgs
}

// TickStatuses применяет эффекты активных состояний в порядке перечисления.
// Exhausted здесь ничего не делает: его потребляет планировщик (двойной ход).
func TickStatuses(ctx *domain.Context, p *domain.Player) ([]string, error) {
	statusLogger := logger.Log.WithFields(logrus.Fields{
		"component": "status_system",
		"turn":      ctx.Turn,
	})

	var msgs []string

	// Снимок: Bleeding может сняться посреди обхода
	for _, status := range p.Statuses.List() {
		switch status {
		case domain.StatusBleeding:
			p.TakeDamage(1)
			stained := stainSurroundings(ctx, p.Pos())
			statusLogger.WithField("stained", stained).Debug("Bleeding ticked.")

			if ctx.Chance(domain.BleedClearChance) {
				if err := p.Statuses.Remove(domain.StatusBleeding); err != nil {
					return msgs, err
				}
				msgs = append(msgs, "Your bleeding stops.")
			}

		case domain.StatusDehydrated:
			p.TakeDamage(1)

		case domain.StatusExhausted:

		case domain.StatusInfected:
			if ctx.Chance(domain.InfectionDamageChance) {
				p.TakeDamage(1)
				msgs = append(msgs, "The infection burns through you.")
			}

		case domain.StatusStarving:
			p.TakeDamage(1)
		}
	}

	statusLogger.WithFields(logrus.Fields{
		"statuses": p.Statuses.String(),
		"health":   p.Health().Current,
	}).Debug("Statuses ticked.")

	return msgs, nil
}

// stainSurroundings пачкает кровью соседние клетки с чистым полом
func stainSurroundings(ctx *domain.Context, pos domain.Position) int {
	stained := 0
	for _, d := range domain.Surrounding {
		x, y := pos.X+d.X, pos.Y+d.Y
		if !ctx.Grid.InBounds(x, y) || !ctx.Grid.At(x, y).IsPlainFloor() {
			continue
		}
		if ctx.Chance(domain.BleedStainChance) {
			ctx.Grid.Set(x, y, domain.BloodTile)
			stained++
		}
	}
	return stained
}
