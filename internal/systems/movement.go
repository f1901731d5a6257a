package systems

import (
	"hivemind/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	Target   domain.Position
	HasMoved bool
	Occupant domain.Entity // Сущность в целевой клетке (твердая - для взаимодействия, нет - для прохода)
	IsWall   bool          // Стена, дерево или край карты
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
func CalculateMove(grid *domain.Grid, from domain.Position, dx, dy int, occupantAt func(domain.Position) domain.Entity) MovementResult {
	target := from.Shift(dx, dy)
	res := MovementResult{Target: target}

	// 1. Границы: за краем карты - как в стену
	if !grid.InBounds(target.X, target.Y) {
		res.IsWall = true
		return res
	}

	// 2. Стены и деревья
	if grid.IsSolid(target.X, target.Y) {
		res.IsWall = true
		return res
	}

	// 3. Сущности
	if occupantAt != nil {
		res.Occupant = occupantAt(target)
	}
	if res.Occupant != nil && res.Occupant.Solid() {
		return res
	}

	res.HasMoved = true
	return res
}
