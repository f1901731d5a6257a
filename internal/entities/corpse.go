package entities

import (
	"hivemind/internal/core/types"
	"hivemind/internal/core/types/enums"
	"hivemind/internal/domain"
	"hivemind/pkg/logger"

	"github.com/sirupsen/logrus"
)

const corpseDescription = "A corpse. It twitches now and then."

// Corpse - труп, который через TimeToTurn ходов поднимается зомби
type Corpse struct {
	domain.Base
	TimeSinceBeginning int
	TimeToTurn         int
}

// NewCorpse создает труп, который восстанет через turnAfter ходов
func NewCorpse(pos domain.Position, turnAfter int) *Corpse {
	c := &Corpse{
		Base:       domain.NewBase(enums.EntityKindCorpse, "corpse", pos, types.MakeGlyph(domain.ColorRed, domain.CharCorpse), domain.CorpseHealth),
		TimeToTurn: turnAfter,
	}
	c.SetSeethrough(true)
	return c
}

// RollCorpse создает труп со случайным временем превращения
func RollCorpse(pos domain.Position, rng domain.Rand) *Corpse {
	return NewCorpse(pos, domain.CorpseMinTurns+rng.Intn(domain.CorpseMaxTurns-domain.CorpseMinTurns+1))
}

func (c *Corpse) OnBumpInteract(ctx *domain.Context, p *domain.Player) string {
	if p.Action != domain.ActionAttack {
		return corpseDescription
	}

	msg, killed := strike(ctx, p, c, c.Name())
	if killed {
		// Уничтоженный труп уже не восстанет
		c.MarkForDeath()
		msg = join(msg, "The corpse is torn apart.")
	}
	return msg
}

func (c *Corpse) OnMyTurn(ctx *domain.Context, p *domain.Player) string {
	if c.MarkedForDeath() {
		return ""
	}

	c.TimeSinceBeginning++
	if c.TimeSinceBeginning < c.TimeToTurn {
		return ""
	}

	c.MarkForDeath()
	bloater := ctx.Chance(domain.BloaterChance)
	ctx.Enqueue(NewZombie(c.Pos(), bloater))

	logger.Log.WithFields(logrus.Fields{
		"component": "corpse",
		"turn":      ctx.Turn,
		"corpse_id": c.ID(),
		"pos":       c.Pos(),
		"bloater":   bloater,
	}).Info("Corpse turned.")

	return "A corpse stirs and rises."
}
