package systems

import (
	"hivemind/internal/domain"
	"hivemind/pkg/logger"

	"github.com/sirupsen/logrus"
)

// BlocksSight сообщает, блокирует ли клетка взгляд
type BlocksSight func(x, y int) bool

// Visibility хранит маски видимости: Active - видно сейчас, Seen - видели когда-либо.
// Seen только растет и служит туманом войны.
type Visibility struct {
	Width  int
	Height int
	Active []bool
	Seen   []bool
}

func NewVisibility(width, height int) *Visibility {
	return &Visibility{
		Width:  width,
		Height: height,
		Active: make([]bool, width*height),
		Seen:   make([]bool, width*height),
	}
}

// IsActive - клетка видна в текущем кадре
func (v *Visibility) IsActive(x, y int) bool {
	if x < 0 || y < 0 || x >= v.Width || y >= v.Height {
		return false
	}
	return v.Active[y*v.Width+x]
}

// IsSeen - клетку видели хотя бы раз
func (v *Visibility) IsSeen(x, y int) bool {
	if x < 0 || y < 0 || x >= v.Width || y >= v.Height {
		return false
	}
	return v.Seen[y*v.Width+x]
}

// RevealAll помечает всю карту исследованной (отладка)
func (v *Visibility) RevealAll() {
	for i := range v.Seen {
		v.Seen[i] = true
	}
}

// BlockingMap строит функцию "блокирует взгляд": твердый тайл или непрозрачная
// сущность. Клетки за границами карты блокируют.
func BlockingMap(g *domain.Grid, opaque map[domain.Position]bool) BlocksSight {
	return func(x, y int) bool {
		if !g.InBounds(x, y) {
			return true
		}
		if g.IsSolid(x, y) {
			return true
		}
		return opaque[domain.Position{X: x, Y: y}]
	}
}

// Recompute пересчитывает Active с нуля и дописывает Seen.
// Симметричный shadowcasting по четырем квадрантам, наклоны - точные дроби,
// поэтому результат не зависит от порядка обхода и плавающей точки.
func (v *Visibility) Recompute(blocked BlocksSight, origin domain.Position, radius int) {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": origin,
		"radius":       radius,
	})

	for i := range v.Active {
		v.Active[i] = false
	}

	v.reveal(origin.X, origin.Y)

	// Соседние по стороне клетки видны всегда, даже сквозь стену
	for _, d := range domain.Orthogonal {
		v.reveal(origin.X+d.X, origin.Y+d.Y)
	}

	if radius <= 0 {
		fovLogger.Warn("FOV calculation skipped for blind observer (radius <= 0).")
		return
	}

	for _, q := range quadrants {
		v.scan(q, origin, row{depth: 1, start: slope{-1, 1}, end: slope{1, 1}}, radius, blocked)
	}

	fovLogger.Debug("FOV calculation complete.")
}

func (v *Visibility) reveal(x, y int) {
	if x < 0 || y < 0 || x >= v.Width || y >= v.Height {
		return
	}
	idx := y*v.Width + x
	v.Active[idx] = true
	v.Seen[idx] = true
}

// quadrant переводит (depth, col) в смещение относительно наблюдателя
type quadrant struct {
	dx, dy int // направление глубины
	cx, cy int // направление колонки
}

// N, E, S, W
var quadrants = [4]quadrant{
	{dx: 0, dy: -1, cx: 1, cy: 0},
	{dx: 1, dy: 0, cx: 0, cy: 1},
	{dx: 0, dy: 1, cx: 1, cy: 0},
	{dx: -1, dy: 0, cx: 0, cy: 1},
}

func (q quadrant) transform(origin domain.Position, depth, col int) (int, int) {
	return origin.X + q.dx*depth + q.cx*col, origin.Y + q.dy*depth + q.cy*col
}

// slope - дробь num/den, den > 0
type slope struct {
	num, den int
}

type row struct {
	depth      int
	start, end slope
}

// minCol = round_ties_up(depth * start)
func (r row) minCol() int {
	return floorDiv(2*r.depth*r.start.num+r.start.den, 2*r.start.den)
}

// maxCol = round_ties_down(depth * end)
func (r row) maxCol() int {
	return -floorDiv(-(2*r.depth*r.end.num - r.end.den), 2*r.end.den)
}

func (r row) next() row {
	return row{depth: r.depth + 1, start: r.start, end: r.end}
}

// isSymmetric: колонка лежит внутри [depth*start, depth*end]
func (r row) isSymmetric(col int) bool {
	return col*r.start.den >= r.depth*r.start.num &&
		col*r.end.den <= r.depth*r.end.num
}

// tileSlope - наклон левого края тайла
func tileSlope(depth, col int) slope {
	return slope{num: 2*col - 1, den: 2 * depth}
}

// withinRadius - диск с радиусом r, слегка скругленный (r² + r), чтобы края не были "щербатыми"
func withinRadius(depth, col, radius int) bool {
	return depth*depth+col*col <= radius*radius+radius
}

func (v *Visibility) scan(q quadrant, origin domain.Position, r row, radius int, blocked BlocksSight) {
	if r.depth > radius {
		return
	}

	hasPrev, prevWall := false, false

	for col := r.minCol(); col <= r.maxCol(); col++ {
		x, y := q.transform(origin, r.depth, col)
		wall := blocked(x, y)

		if (wall || r.isSymmetric(col)) && withinRadius(r.depth, col, radius) {
			v.reveal(x, y)
		}

		if hasPrev && prevWall && !wall {
			// Стена кончилась - сужаем начало
			r.start = tileSlope(r.depth, col)
		}
		if hasPrev && !prevWall && wall {
			// Наткнулись на стену - рекурсивно сканируем следующий ряд до нее
			next := r.next()
			next.end = tileSlope(r.depth, col)
			v.scan(q, origin, next, radius, blocked)
		}

		hasPrev, prevWall = true, wall
	}

	if hasPrev && !prevWall {
		v.scan(q, origin, r.next(), radius, blocked)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
