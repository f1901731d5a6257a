package entities

import (
	"hivemind/internal/core/types"
	"hivemind/internal/core/types/enums"
	"hivemind/internal/domain"
)

// Door - дверь здания. Запертую можно только выбить.
type Door struct {
	domain.Base
	Open   bool
	Locked bool
}

// NewDoor создает закрытую дверь
func NewDoor(pos domain.Position, locked bool) *Door {
	return &Door{
		Base:   domain.NewBase(enums.EntityKindDoor, "door", pos, types.MakeGlyph(domain.ColorYellow, domain.CharDoorClosed), domain.DoorHealth),
		Locked: locked,
	}
}

// RollDoor создает дверь, запертую с вероятностью DoorLockChance
func RollDoor(pos domain.Position, rng domain.Rand) *Door {
	return NewDoor(pos, rng.Float64() < domain.DoorLockChance)
}

func (d *Door) OnBumpInteract(ctx *domain.Context, p *domain.Player) string {
	if p.Action == domain.ActionAttack {
		msg, killed := strike(ctx, p, d, d.Name())
		if killed {
			d.MarkForDeath()
			msg = join(msg, "You break down the door.")
		}
		return msg
	}

	if d.Locked {
		return "The door is locked."
	}
	d.open()
	return "You open the door."
}

func (d *Door) open() {
	d.Open = true
	d.SetSolid(false)
	d.SetSeethrough(true)
	d.SetGlyph(d.Glyph().WithChar(domain.CharDoorOpen))
}
