package systems

import "math"

// NoiseField - затухающая карта шума. Значения неотрицательные.
type NoiseField struct {
	Width  int
	Height int
	values []int
}

func NewNoiseField(width, height int) *NoiseField {
	return &NoiseField{
		Width:  width,
		Height: height,
		values: make([]int, width*height),
	}
}

// At возвращает интенсивность шума в клетке. За границами - 0.
func (n *NoiseField) At(x, y int) int {
	if x < 0 || y < 0 || x >= n.Width || y >= n.Height {
		return 0
	}
	return n.values[y*n.Width+x]
}

// Propagate добавляет шум с линейным затуханием от источника:
// round((1 - dist/radius) * intensity) для каждой клетки в радиусе.
func (n *NoiseField) Propagate(x, y, radius, intensity int) {
	if radius <= 0 || intensity <= 0 {
		return
	}

	r := float64(radius)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			cx, cy := x+dx, y+dy
			if cx < 0 || cy < 0 || cx >= n.Width || cy >= n.Height {
				continue
			}
			dist := math.Sqrt(float64(dx*dx + dy*dy))
			if dist > r {
				continue
			}
			n.values[cy*n.Width+cx] += int(math.Round((1 - dist/r) * float64(intensity)))
		}
	}
}

// DecayAll уменьшает шум на 1 во всех клетках, не ниже нуля
func (n *NoiseField) DecayAll() {
	for i, v := range n.values {
		if v > 0 {
			n.values[i] = v - 1
		}
	}
}

// Total - сумма шума по карте (для логов и тестов)
func (n *NoiseField) Total() int {
	sum := 0
	for _, v := range n.values {
		sum += v
	}
	return sum
}
