// Package entities реализует варианты сущностей мира: двери, окна, трупы и зомби.
//
// Каждый вариант встраивает domain.Base и переопределяет только те способности,
// которые ему нужны. Смерть сущности - это MarkForDeath плюс, при необходимости,
// новая сущность в очереди ctx.Enqueue; удаляет помеченных реестр.
package entities

import (
	"fmt"

	"hivemind/internal/domain"
	"hivemind/internal/systems"
)

// strike - удар игрока по сущности. Возвращает сообщение об уроне и флаг смерти.
func strike(ctx *domain.Context, p *domain.Player, target domain.Entity, noun string) (string, bool) {
	damage := systems.RollAttackDamage(ctx)
	killed := systems.Strike(ctx, p.Name(), target, damage)
	return fmt.Sprintf("You hit the %s for %d damage.", noun, damage), killed
}

// join склеивает два сообщения одной строкой
func join(first, second string) string {
	if first == "" {
		return second
	}
	if second == "" {
		return first
	}
	return first + " " + second
}
