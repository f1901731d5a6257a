package systems

import (
	"hivemind/internal/domain"
	"hivemind/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ZombieAction - что зомби решил сделать в свой ход
type ZombieAction int

const (
	ZombieWait ZombieAction = iota
	ZombieAttack
	ZombieChase
	ZombieFollowNoise
)

func (a ZombieAction) String() string {
	switch a {
	case ZombieAttack:
		return "attack"
	case ZombieChase:
		return "chase"
	case ZombieFollowNoise:
		return "follow_noise"
	default:
		return "wait"
	}
}

// ZombieDecision - действие и шаг (для Chase и FollowNoise)
type ZombieDecision struct {
	Action ZombieAction
	Step   domain.Position
}

// ContextBlocking строит карту препятствий для взгляда из контекста хода
func ContextBlocking(ctx *domain.Context) BlocksSight {
	return func(x, y int) bool {
		if !ctx.Grid.InBounds(x, y) || ctx.Grid.IsSolid(x, y) {
			return true
		}
		occ := ctx.Occupant(domain.Position{X: x, Y: y})
		return occ != nil && !occ.Seethrough()
	}
}

// ComputeZombieAction решает, что делать зомби.
// Соседний игрок - атака; видимый в радиусе агрессии - погоня;
// иначе зомби идет на шум, если он его слышит.
func ComputeZombieAction(ctx *domain.Context, self, player domain.Position) ZombieDecision {
	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"turn":      ctx.Turn,
		"self":      self,
		"target":    player,
	})

	decision := decideZombie(ctx, self, player)
	aiLogger.WithFields(logrus.Fields{
		"action": decision.Action.String(),
		"step":   decision.Step,
	}).Debug("Zombie decided.")

	return decision
}

func decideZombie(ctx *domain.Context, self, player domain.Position) ZombieDecision {
	if self.IsAdjacent(player) {
		return ZombieDecision{Action: ZombieAttack}
	}

	aggro := domain.ZombieAggroRadius
	if self.DistanceSquaredTo(player) <= aggro*aggro && HasLineOfSight(ContextBlocking(ctx), self, player) {
		if step, ok := chaseStep(ctx, self, player); ok {
			return ZombieDecision{Action: ZombieChase, Step: step}
		}
		return ZombieDecision{Action: ZombieWait}
	}

	if ctx.Noise == nil {
		return ZombieDecision{Action: ZombieWait}
	}
	here := ctx.Noise.At(self.X, self.Y)
	if here <= 0 {
		return ZombieDecision{Action: ZombieWait}
	}

	// Вверх по градиенту шума; при равенстве побеждает первый в порядке N, E, S, W
	best, bestLevel := domain.Position{}, here
	for _, d := range domain.Orthogonal {
		next := self.Add(d)
		if next == player || !canStep(ctx, self, d) {
			continue
		}
		if level := ctx.Noise.At(next.X, next.Y); level > bestLevel {
			best, bestLevel = d, level
		}
	}
	if bestLevel == here {
		return ZombieDecision{Action: ZombieWait}
	}
	return ZombieDecision{Action: ZombieFollowNoise, Step: best}
}

// chaseStep: ортогональный шаг к цели, сначала по более длинной оси (Smart Sliding)
func chaseStep(ctx *domain.Context, self, target domain.Position) (domain.Position, bool) {
	dxRaw := target.X - self.X
	dyRaw := target.Y - self.Y

	stepX := domain.Position{X: sign(dxRaw)}
	stepY := domain.Position{Y: sign(dyRaw)}

	order := [2]domain.Position{stepY, stepX}
	if abs(dxRaw) > abs(dyRaw) {
		order = [2]domain.Position{stepX, stepY}
	}

	for _, step := range order {
		if step == (domain.Position{}) {
			continue
		}
		if self.Add(step) != target && canStep(ctx, self, step) {
			return step, true
		}
	}

	return domain.Position{}, false // Тупик
}

// canStep: зомби не заходит в занятые клетки, даже если они проходимы
func canStep(ctx *domain.Context, from, d domain.Position) bool {
	res := CalculateMove(ctx.Grid, from, d.X, d.Y, ctx.Occupant)
	return res.HasMoved && res.Occupant == nil
}
