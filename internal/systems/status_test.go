package systems

import (
	"testing"

	"hivemind/internal/domain"
	"hivemind/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBleedingPlayer() *domain.Player {
	p := domain.NewPlayer(domain.Position{X: 2, Y: 2}, domain.ColorYellow)
	p.Statuses.Add(domain.StatusBleeding)
	return p
}

func TestTickStatuses_Bleeding(t *testing.T) {
	t.Run("Keeps bleeding without stains", func(t *testing.T) {
		g := createTestGrid(5, 5)
		p := newBleedingPlayer()
		ctx := newTestContext(g, testutil.Always(0.99))

		msgs, err := TickStatuses(ctx, p)
		require.NoError(t, err)
		assert.Empty(t, msgs)
		assert.Equal(t, domain.PlayerMaxHealth-1, p.Health().Current)
		assert.True(t, p.Statuses.Has(domain.StatusBleeding))
		for _, d := range domain.Surrounding {
			assert.True(t, g.At(2+d.X, 2+d.Y).IsPlainFloor())
		}
	})

	t.Run("Stains plain floor and stops", func(t *testing.T) {
		g := createTestGrid(5, 5)
		g.Set(1, 1, domain.WallTile)
		p := newBleedingPlayer()
		ctx := newTestContext(g, testutil.Always(0.0))

		msgs, err := TickStatuses(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, []string{"Your bleeding stops."}, msgs)
		assert.Equal(t, domain.PlayerMaxHealth-1, p.Health().Current)
		assert.False(t, p.Statuses.Has(domain.StatusBleeding))

		assert.Equal(t, domain.WallTile, g.At(1, 1), "walls are never stained")
		assert.True(t, g.At(2, 1).IsBlood())
		assert.True(t, g.At(3, 3).IsBlood())
		assert.True(t, g.At(2, 2).IsPlainFloor(), "player tile is not stained")
	})
}

func TestTickStatuses_DamageTable(t *testing.T) {
	tests := []struct {
		name     string
		statuses []domain.StatusEffect
		roll     float64
		want     int
	}{
		{"Dehydrated", []domain.StatusEffect{domain.StatusDehydrated}, 0.99, 1},
		{"Starving", []domain.StatusEffect{domain.StatusStarving}, 0.99, 1},
		{"Exhausted does nothing", []domain.StatusEffect{domain.StatusExhausted}, 0.0, 0},
		{"Infected lucky", []domain.StatusEffect{domain.StatusInfected}, 0.5, 0},
		{"Infected unlucky", []domain.StatusEffect{domain.StatusInfected}, 0.05, 1},
		{"Thirst and hunger", []domain.StatusEffect{domain.StatusStarving, domain.StatusDehydrated}, 0.99, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := createTestGrid(5, 5)
			p := domain.NewPlayer(domain.Position{X: 2, Y: 2}, domain.ColorCyan)
			for _, s := range tt.statuses {
				p.Statuses.Add(s)
			}

			_, err := TickStatuses(newTestContext(g, testutil.Always(tt.roll)), p)
			require.NoError(t, err)
			assert.Equal(t, domain.PlayerMaxHealth-tt.want, p.Health().Current)
		})
	}
}

func TestTickStatuses_DamageSaturates(t *testing.T) {
	g := createTestGrid(5, 5)
	p := domain.NewPlayer(domain.Position{X: 2, Y: 2}, domain.ColorCyan)
	p.Health().Current = 1
	p.Statuses.Add(domain.StatusDehydrated)
	p.Statuses.Add(domain.StatusStarving)

	_, err := TickStatuses(newTestContext(g, nil), p)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Health().Current)
	assert.True(t, p.IsDead())
}

func TestRerollBloodInfection(t *testing.T) {
	g := createTestGrid(5, 5)
	g.Set(2, 2, domain.BloodTile)

	p := domain.NewPlayer(domain.Position{X: 2, Y: 2}, domain.ColorCyan)
	assert.Empty(t, RerollBloodInfection(newTestContext(g, testutil.Always(0.15)), p))
	assert.False(t, p.Statuses.Has(domain.StatusInfected))

	p.Statuses.Add(domain.StatusBleeding)
	assert.NotEmpty(t, RerollBloodInfection(newTestContext(g, testutil.Always(0.15)), p))
	assert.True(t, p.Statuses.Has(domain.StatusInfected))

	// Повторно не добавляется и не тратит бросок
	rng := testutil.Always(0.0)
	assert.Empty(t, RerollBloodInfection(newTestContext(g, rng), p))
	assert.Zero(t, rng.FloatCalls)

	clean := domain.NewPlayer(domain.Position{X: 0, Y: 0}, domain.ColorCyan)
	assert.Empty(t, RerollBloodInfection(newTestContext(g, testutil.Always(0.0)), clean))
}

func TestAdvanceSurvivalClock(t *testing.T) {
	p := domain.NewPlayer(domain.Position{}, domain.ColorCyan)

	assert.Empty(t, AdvanceSurvivalClock(p, domain.HungerInterval-1))
	assert.Equal(t, domain.PlayerMaxFood, p.Food.Current)

	assert.Empty(t, AdvanceSurvivalClock(p, domain.HungerInterval))
	assert.Equal(t, domain.PlayerMaxFood-1, p.Food.Current)
	assert.Equal(t, domain.PlayerMaxWater-1, p.Water.Current)

	p.Water.Current = 1
	msgs := AdvanceSurvivalClock(p, 2*domain.HungerInterval)
	assert.Len(t, msgs, 1)
	assert.True(t, p.Statuses.Has(domain.StatusDehydrated))
	assert.False(t, p.Statuses.Has(domain.StatusStarving))

	// Уже добавленное состояние не дублируется
	assert.Empty(t, AdvanceSurvivalClock(p, 2*domain.HungerInterval+1))

	msgs = AdvanceSurvivalClock(p, domain.ExhaustionTurns+1)
	assert.Len(t, msgs, 1)
	assert.True(t, p.Statuses.Has(domain.StatusExhausted))
}
