package domain

import (
	"hivemind/internal/core/types"
	"hivemind/internal/core/types/enums"
)

// Player - персонаж игрока
type Player struct {
	Base

	Food  Vitals
	Water Vitals

	SightRadius int
	Noise       int
	Action      ActionType
	Statuses    StatusSet

	// LastSleep - номер хода последнего сна (сон пока не реализован)
	LastSleep int
}

// NewPlayer создает игрока с полными ресурсами
func NewPlayer(pos Position, color uint8) *Player {
	return &Player{
		Base:        NewBase(enums.EntityKindPlayer, "You", pos, types.MakeGlyph(color, CharPlayer), PlayerMaxHealth),
		Food:        NewVitals(PlayerMaxFood),
		Water:       NewVitals(PlayerMaxWater),
		SightRadius: PlayerSightRadius,
		Noise:       PlayerNoise,
		Action:      ActionMove,
	}
}

// TakeDamage наносит урон игроку. Возвращает true, если игрок только что погиб.
func (p *Player) TakeDamage(amount int) bool {
	return p.Health().Damage(amount)
}

// IsDead - здоровье исчерпано
func (p *Player) IsDead() bool {
	return p.Health().Depleted()
}
