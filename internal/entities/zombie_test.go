package entities

import (
	"testing"

	"hivemind/internal/domain"
	"hivemind/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZombie_KilledLeavesCorpse(t *testing.T) {
	h := newHarness(&testutil.ScriptedRand{Ints: []int{1, 1, 0}}, domain.Position{X: 5, Y: 5})
	z := NewZombie(domain.Position{X: 5, Y: 4}, false)

	// Толчок в режиме движения тоже ранит
	assert.Equal(t, "You hit the zombie for 3 damage.", z.OnBumpInteract(h.ctx, h.player))
	assert.Equal(t, "You hit the zombie for 3 damage. The zombie collapses.", z.OnBumpInteract(h.ctx, h.player))
	assert.True(t, z.MarkedForDeath())

	require.Len(t, h.spawns, 1)
	corpse, ok := h.spawns[0].(*Corpse)
	require.True(t, ok)
	assert.Equal(t, z.Pos(), corpse.Pos())
	assert.Equal(t, domain.CorpseMinTurns, corpse.TimeToTurn)
}

func TestZombie_BloaterBursts(t *testing.T) {
	h := newHarness(&testutil.ScriptedRand{Ints: []int{1, 1}}, domain.Position{X: 5, Y: 5})
	h.player.Action = domain.ActionAttack
	b := NewZombie(domain.Position{X: 6, Y: 5}, true)

	b.OnBumpInteract(h.ctx, h.player)
	msg := b.OnBumpInteract(h.ctx, h.player)

	assert.Contains(t, msg, "infected bile")
	assert.True(t, b.MarkedForDeath())
	assert.Empty(t, h.spawns, "bloaters leave no corpse")
	assert.True(t, h.player.Statuses.Has(domain.StatusInfected))
	assert.Equal(t, domain.BloaterBurstIntensity, h.noise.At(6, 5))
}

func TestZombie_Bite(t *testing.T) {
	h := newHarness(&testutil.ScriptedRand{Ints: []int{1}, Floats: []float64{0.1}}, domain.Position{X: 5, Y: 5})
	z := NewZombie(domain.Position{X: 4, Y: 4}, false)

	msg := z.OnMyTurn(h.ctx, h.player)
	assert.Equal(t, "The zombie bites you for 2 damage. The wound burns. You are infected.", msg)
	assert.Equal(t, domain.PlayerMaxHealth-2, h.player.Health().Current)
	assert.True(t, h.player.Statuses.Has(domain.StatusInfected))
	assert.Equal(t, domain.Position{X: 4, Y: 4}, z.Pos())
}

func TestZombie_ChasesVisiblePlayer(t *testing.T) {
	h := newHarness(testutil.Always(0.99), domain.Position{X: 10, Y: 5})
	z := NewZombie(domain.Position{X: 5, Y: 5}, false)
	h.others = append(h.others, z)

	assert.Empty(t, z.OnMyTurn(h.ctx, h.player))
	assert.Equal(t, domain.Position{X: 6, Y: 5}, z.Pos())
}

func TestZombie_IdleWhenPlayerDead(t *testing.T) {
	h := newHarness(testutil.Always(0.0), domain.Position{X: 5, Y: 5})
	h.player.Health().Current = 0
	z := NewZombie(domain.Position{X: 5, Y: 4}, false)

	assert.Empty(t, z.OnMyTurn(h.ctx, h.player))
	assert.Equal(t, 0, h.player.Health().Current)
}
