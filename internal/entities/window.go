package entities

import (
	"hivemind/internal/core/types"
	"hivemind/internal/core/types/enums"
	"hivemind/internal/domain"
)

// Window - окно. Всегда прозрачное; разбитое остается на месте и режет
// тех, кто через него лезет.
type Window struct {
	domain.Base
	Open   bool
	Broken bool
	Locked bool
}

// NewWindow создает целое закрытое окно
func NewWindow(pos domain.Position, locked bool) *Window {
	w := &Window{
		Base:   domain.NewBase(enums.EntityKindWindow, "window", pos, types.MakeGlyph(domain.ColorCyan, domain.CharWindow), domain.WindowHealth),
		Locked: locked,
	}
	w.SetSeethrough(true)
	return w
}

// RollWindow создает окно, запертое с вероятностью WindowLockChance
func RollWindow(pos domain.Position, rng domain.Rand) *Window {
	return NewWindow(pos, rng.Float64() < domain.WindowLockChance)
}

// NewBrokenWindow создает уже разбитое окно (генератор зданий)
func NewBrokenWindow(pos domain.Position) *Window {
	w := NewWindow(pos, false)
	w.Health().Current = 0
	w.shatter()
	return w
}

func (w *Window) OnBumpInteract(ctx *domain.Context, p *domain.Player) string {
	if p.Action == domain.ActionAttack {
		msg, killed := strike(ctx, p, w, w.Name())
		if killed {
			w.shatter()
			msg = join(msg, "The window shatters.")
		}
		return msg
	}

	if w.Locked {
		return "The window is latched shut."
	}
	w.Open = true
	w.SetSolid(false)
	w.SetGlyph(w.Glyph().WithChar(domain.CharWindowOpen))
	return "You open the window."
}

func (w *Window) OnPassOver(ctx *domain.Context, p *domain.Player) string {
	if !w.Broken {
		return "You climb through the window."
	}

	if ctx.Chance(domain.LacerationChance) {
		p.TakeDamage(domain.LacerationDamage)
		p.Statuses.Add(domain.StatusBleeding)
		return "You cut yourself on the broken glass."
	}
	return "You carefully climb through the broken window."
}

func (w *Window) shatter() {
	w.Broken = true
	w.SetSolid(false)
	w.SetGlyph(w.Glyph().WithChar(domain.CharWindowBroken))
}
