package systems

import (
	"hivemind/internal/domain"
	"hivemind/pkg/logger"

	"github.com/sirupsen/logrus"
)

// RollAttackDamage - урон удара игрока
func RollAttackDamage(ctx *domain.Context) int {
	return ctx.Roll(domain.AttackMinDamage, domain.AttackMaxDamage)
}

// RollBiteDamage - урон укуса зомби
func RollBiteDamage(ctx *domain.Context) int {
	return ctx.Roll(domain.BiteMinDamage, domain.BiteMaxDamage)
}

// Strike наносит урон цели и сообщает, убил ли он ее.
// Повторный удар по уже мертвой цели не убивает ее второй раз.
func Strike(ctx *domain.Context, attacker string, target domain.Entity, damage int) bool {
	hp := target.Health()
	hpBefore := hp.Current
	died := hp.Damage(damage)

	logger.Log.WithFields(logrus.Fields{
		"component":   "combat_system",
		"turn":        ctx.Turn,
		"attacker":    attacker,
		"target_id":   target.ID(),
		"target_name": target.Name(),
		"damage":      damage,
		"hp_before":   hpBefore,
		"hp_after":    hp.Current,
		"target_died": died,
	}).Info("Attack resolved.")

	return died
}
