package worldgen

import (
	"math/rand"
	"os"
	"testing"

	"hivemind/internal/core/types/enums"
	"hivemind/internal/domain"
	"hivemind/internal/testutil"
	"hivemind/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestGenerate(t *testing.T) {
	level := Generate(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(42)))

	// 1. Размеры
	require.NotNil(t, level.Grid)
	assert.Equal(t, DefaultWidth, level.Grid.Width)
	assert.Equal(t, DefaultHeight, level.Grid.Height)

	// 2. Старт не в стене и не занят
	assert.False(t, level.Grid.IsSolid(level.Start.X, level.Start.Y))
	for _, e := range level.Entities {
		assert.NotEqual(t, level.Start, e.Pos(), "player starts on %s", e.Name())
	}

	// 3. Дома: по две двери на каждый
	require.Len(t, level.Buildings, BuildingDensity*BuildingDensity)
	counts := map[enums.EntityKind]int{}
	for _, e := range level.Entities {
		counts[e.Kind()]++
		assert.False(t, level.Grid.IsSolid(e.Pos().X, e.Pos().Y), "%s sits inside a wall", e.Name())
	}
	assert.Equal(t, doorsPerHouse*len(level.Buildings), counts[enums.EntityKindDoor])
	assert.LessOrEqual(t, counts[enums.EntityKindCorpse], len(level.Buildings))
	assert.Zero(t, counts[enums.EntityKindZombie])
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(60, 40, rand.New(rand.NewSource(7)))
	b := Generate(60, 40, rand.New(rand.NewSource(7)))

	for y := 0; y < 40; y++ {
		for x := 0; x < 60; x++ {
			require.Equal(t, a.Grid.At(x, y), b.Grid.At(x, y), "tile (%d,%d)", x, y)
		}
	}
	require.Equal(t, len(a.Entities), len(b.Entities))
	for i := range a.Entities {
		assert.Equal(t, a.Entities[i].Pos(), b.Entities[i].Pos())
		assert.Equal(t, a.Entities[i].Kind(), b.Entities[i].Kind())
	}
	assert.Equal(t, a.Start, b.Start)
}

func TestWithTerrain_TreeRing(t *testing.T) {
	// Бросок 0 всегда меньше порога: деревья везде за линией леса
	level := NewLevel(testutil.Always(0)).WithSize(40, 20).WithTerrain().Build()

	assert.Equal(t, domain.TreeTile, level.Grid.At(0, 0))
	assert.Equal(t, domain.TreeTile, level.Grid.At(39, 19))
	assert.Equal(t, domain.FloorTile, level.Grid.At(20, 10))
	assert.Equal(t, domain.FloorTile, level.Grid.At(30, 10), "inside the tree line")

	// Бросок ~1 не проходит порог вблизи линии
	sparse := NewLevel(testutil.Always(0.99)).WithSize(40, 20).WithTerrain().Build()
	assert.Equal(t, domain.FloorTile, sparse.Grid.At(20, 1))
}

func TestBuild_StartAvoidsBlockedCenter(t *testing.T) {
	b := NewLevel(testutil.Always(0.5)).WithSize(9, 9)
	b.ensureGrid()
	b.grid.Set(4, 4, domain.WallTile)

	level := b.Build()
	assert.NotEqual(t, domain.Position{X: 4, Y: 4}, level.Start)
	assert.True(t, level.Start.IsAdjacent(domain.Position{X: 4, Y: 4}))
}

func TestRect(t *testing.T) {
	r := Rect{X: 2, Y: 2, W: 10, H: 6}
	cx, cy := r.Center()
	assert.Equal(t, 7, cx)
	assert.Equal(t, 5, cy)
	assert.True(t, r.Contains(12, 8))
	assert.False(t, r.Contains(13, 8))
	assert.True(t, r.Intersects(Rect{X: 12, Y: 8, W: 3, H: 3}))
	assert.False(t, r.Intersects(Rect{X: 13, Y: 0, W: 3, H: 3}))
}
