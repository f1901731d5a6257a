// Package worldgen строит стартовый уровень: кольцо леса по краям карты и
// сетку домов с дверями, окнами и трупами внутри.
package worldgen

import (
	"math"

	"hivemind/internal/domain"
	"hivemind/internal/entities"
	"hivemind/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Параметры генерации
const (
	DefaultWidth    = 200
	DefaultHeight   = 100
	BuildingDensity = 4 // домов по каждой оси

	treeLineStart  = 0.45
	treeLineGrowth = 20.0

	centerJitter    = 3
	minBuildingW    = 9
	maxBuildingW    = 15
	minBuildingH    = 5
	maxBuildingH    = 8
	doorsPerHouse   = 2
	windowChance    = 0.5
	brokenWinChance = 0.1
)

// Level - результат генерации
type Level struct {
	Grid      *domain.Grid
	Entities  []domain.Entity
	Start     domain.Position
	Buildings []Rect
}

// LevelBuilder предоставляет fluent API для создания уровня
type LevelBuilder struct {
	width     int
	height    int
	grid      *domain.Grid
	buildings []Rect
	entities  []domain.Entity
	occupied  map[domain.Position]bool
	rng       domain.Rand
}

// NewLevel создает новый builder для уровня
func NewLevel(rng domain.Rand) *LevelBuilder {
	return &LevelBuilder{
		width:    DefaultWidth,
		height:   DefaultHeight,
		entities: make([]domain.Entity, 0),
		occupied: make(map[domain.Position]bool),
		rng:      rng,
	}
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	b.grid = nil
	return b
}

func (b *LevelBuilder) ensureGrid() {
	if b.grid == nil {
		b.grid = domain.NewGrid(b.width, b.height)
	}
}

// WithTerrain сажает деревья тем гуще, чем ближе клетка к краю карты
func (b *LevelBuilder) WithTerrain() *LevelBuilder {
	b.ensureGrid()

	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			dx := float64(x)/float64(b.width) - 0.5
			dy := float64(y)/float64(b.height) - 0.5
			dist := math.Sqrt(dx*dx + dy*dy)

			if dist <= treeLineStart {
				continue
			}
			r := b.rng.Float64()
			if r*r < (dist-treeLineStart)*treeLineGrowth {
				b.grid.Set(x, y, domain.TreeTile)
			}
		}
	}
	return b
}

// WithBuildings расставляет density x density домов равномерной сеткой
func (b *LevelBuilder) WithBuildings(density int) *LevelBuilder {
	b.ensureGrid()

	for i := 0; i < density; i++ {
		for j := 0; j < density; j++ {
			cx := (i + 1) * (b.width / (density + 1))
			cy := (j + 1) * (b.height / (density + 1))
			b.addBuilding(cx, cy)
		}
	}
	return b
}

func (b *LevelBuilder) addBuilding(cx, cy int) {
	rect := Rect{
		X: b.randRange(cx-centerJitter, cx+centerJitter),
		Y: b.randRange(cy-centerJitter, cy+centerJitter),
		W: b.randRange(minBuildingW, maxBuildingW),
		H: b.randRange(minBuildingH, maxBuildingH),
	}

	// Проемы: по два на каждой стороне, в третях стены
	var openings []domain.Position

	for x := rect.X; x <= rect.X+rect.W; x++ {
		if x == rect.X+rect.W/3 || x == rect.X+rect.W*2/3 {
			openings = append(openings, domain.Position{X: x, Y: rect.Y}, domain.Position{X: x, Y: rect.Y + rect.H})
			continue
		}
		b.wall(x, rect.Y)
		b.wall(x, rect.Y+rect.H)
	}
	for y := rect.Y; y <= rect.Y+rect.H; y++ {
		if y == rect.Y+rect.H/3 || y == rect.Y+rect.H*2/3 {
			openings = append(openings, domain.Position{X: rect.X, Y: y}, domain.Position{X: rect.X + rect.W, Y: y})
			continue
		}
		b.wall(rect.X, y)
		b.wall(rect.X+rect.W, y)
	}

	b.shuffle(openings)
	for i, pos := range openings {
		if !b.grid.InBounds(pos.X, pos.Y) || b.occupied[pos] {
			continue
		}

		switch {
		case i < doorsPerHouse:
			b.grid.Set(pos.X, pos.Y, domain.FloorTile)
			b.place(entities.RollDoor(pos, b.rng))
		case b.rng.Float64() < windowChance:
			b.grid.Set(pos.X, pos.Y, domain.FloorTile)
			if b.rng.Float64() < brokenWinChance {
				b.place(entities.NewBrokenWindow(pos))
			} else {
				b.place(entities.RollWindow(pos, b.rng))
			}
		default:
			b.wall(pos.X, pos.Y)
		}
	}

	// Труп где-нибудь внутри
	rx := b.randRange(rect.X+1, rect.X+rect.W-2)
	ry := b.randRange(rect.Y+1, rect.Y+rect.H-2)
	corpsePos := domain.Position{X: rx, Y: ry}
	if b.grid.InBounds(rx, ry) && b.grid.At(rx, ry).IsPlainFloor() && !b.occupied[corpsePos] {
		b.place(entities.RollCorpse(corpsePos, b.rng))
	}

	b.buildings = append(b.buildings, rect)
}

// Build возвращает готовый уровень. Игрок стартует в ближайшей к центру
// свободной клетке.
func (b *LevelBuilder) Build() Level {
	b.ensureGrid()

	start := b.freeNear(domain.Position{X: b.width / 2, Y: b.height / 2})

	logger.Log.WithFields(logrus.Fields{
		"component": "worldgen",
		"width":     b.width,
		"height":    b.height,
		"buildings": len(b.buildings),
		"entities":  len(b.entities),
		"start":     start,
	}).Info("Level generated.")

	return Level{
		Grid:      b.grid,
		Entities:  b.entities,
		Start:     start,
		Buildings: b.buildings,
	}
}

// Generate строит уровень по умолчанию: лес и сетка домов
func Generate(width, height int, rng domain.Rand) Level {
	return NewLevel(rng).
		WithSize(width, height).
		WithTerrain().
		WithBuildings(BuildingDensity).
		Build()
}

// wall ставит стену, не замуровывая уже поставленные двери и окна соседнего дома
func (b *LevelBuilder) wall(x, y int) {
	if b.occupied[domain.Position{X: x, Y: y}] {
		return
	}
	b.grid.Set(x, y, domain.WallTile)
}

func (b *LevelBuilder) place(e domain.Entity) {
	b.entities = append(b.entities, e)
	b.occupied[e.Pos()] = true
}

// freeNear ищет ближайшую проходимую клетку без сущностей (обход квадратами)
func (b *LevelBuilder) freeNear(origin domain.Position) domain.Position {
	limit := max(b.width, b.height)
	for r := 0; r <= limit; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue
				}
				p := origin.Shift(dx, dy)
				if b.grid.InBounds(p.X, p.Y) && !b.grid.IsSolid(p.X, p.Y) && !b.occupied[p] {
					return p
				}
			}
		}
	}
	return origin
}

func (b *LevelBuilder) randRange(min, max int) int {
	return b.rng.Intn(max-min+1) + min
}

// shuffle - Фишер-Йетс на источнике уровня
func (b *LevelBuilder) shuffle(ps []domain.Position) {
	for i := len(ps) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		ps[i], ps[j] = ps[j], ps[i]
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
