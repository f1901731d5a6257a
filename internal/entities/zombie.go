package entities

import (
	"fmt"

	"hivemind/internal/core/types"
	"hivemind/internal/core/types/enums"
	"hivemind/internal/domain"
	"hivemind/internal/systems"
	"hivemind/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Zombie - враждебный мертвец. Bloater слабее, но при смерти лопается.
type Zombie struct {
	domain.Base
	Bloater bool
}

// NewZombie создает зомби или раздутого
func NewZombie(pos domain.Position, bloater bool) *Zombie {
	name, char, color, health := "zombie", byte(domain.CharZombie), domain.ColorGreen, domain.ZombieHealth
	if bloater {
		name, char, color, health = "bloater", domain.CharBloater, domain.ColorMagenta, domain.BloaterHealth
	}

	z := &Zombie{
		Base:    domain.NewBase(enums.EntityKindZombie, name, pos, types.MakeGlyph(color, char), health),
		Bloater: bloater,
	}
	z.SetSeethrough(true)
	// Зомби бродят: в памяти карты их не рисуем
	z.SetDetectable(false)
	return z
}

// OnBumpInteract: в режиме движения это толчок, который тоже ранит
func (z *Zombie) OnBumpInteract(ctx *domain.Context, p *domain.Player) string {
	msg, killed := strike(ctx, p, z, z.Name())
	if !killed {
		return msg
	}
	return join(msg, z.die(ctx, p))
}

func (z *Zombie) OnMyTurn(ctx *domain.Context, p *domain.Player) string {
	if z.MarkedForDeath() || p.IsDead() {
		return ""
	}

	decision := systems.ComputeZombieAction(ctx, z.Pos(), p.Pos())
	switch decision.Action {
	case systems.ZombieAttack:
		return z.bite(ctx, p)
	case systems.ZombieChase, systems.ZombieFollowNoise:
		z.SetPos(z.Pos().Add(decision.Step))
	}
	return ""
}

func (z *Zombie) bite(ctx *domain.Context, p *domain.Player) string {
	damage := systems.RollBiteDamage(ctx)
	p.TakeDamage(damage)
	msg := fmt.Sprintf("The %s bites you for %d damage.", z.Name(), damage)

	if ctx.Chance(domain.ZombieBiteInfectChance) && p.Statuses.Add(domain.StatusInfected) {
		msg = join(msg, "The wound burns. You are infected.")
	}
	return msg
}

// die помечает зомби и ставит в очередь то, что остается после него
func (z *Zombie) die(ctx *domain.Context, p *domain.Player) string {
	z.MarkForDeath()

	zombieLogger := logger.Log.WithFields(logrus.Fields{
		"component": "zombie",
		"turn":      ctx.Turn,
		"zombie_id": z.ID(),
		"pos":       z.Pos(),
		"bloater":   z.Bloater,
	})

	if !z.Bloater {
		ctx.Enqueue(RollCorpse(z.Pos(), ctx.Rng))
		zombieLogger.Info("Zombie killed, corpse left behind.")
		return "The zombie collapses."
	}

	pos := z.Pos()
	if ctx.Noise != nil {
		ctx.Noise.Propagate(pos.X, pos.Y, domain.BloaterBurstRadius, domain.BloaterBurstIntensity)
	}
	zombieLogger.Info("Bloater burst.")

	if pos.IsAdjacent(p.Pos()) {
		p.Statuses.Add(domain.StatusInfected)
		return "The bloater bursts, showering you with infected bile."
	}
	return "The bloater bursts with a wet pop."
}
