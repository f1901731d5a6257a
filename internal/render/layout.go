// Package render рисует партию в терминале через tcell: карта вокруг игрока,
// панель состояний, статы и последние сообщения.
package render

import "hivemind/internal/domain"

// Размеры экрана в клетках терминала
const (
	ScreenWidth  = 80
	ScreenHeight = 30

	GameWidth  = 58
	GameHeight = 22

	// Строк под сообщения: 30 - 22 - 3
	MessageRows = ScreenHeight - GameHeight - 3
)

// Camera возвращает левый верхний угол окна карты: игрок по центру,
// но окно не выходит за края карты.
func Camera(player domain.Position, mapWidth, mapHeight int) domain.Position {
	return domain.Position{
		X: clamp(player.X-GameWidth/2, 0, mapWidth-GameWidth),
		Y: clamp(player.Y-GameHeight/2, 0, mapHeight-GameHeight),
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
