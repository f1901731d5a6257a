package engine

import (
	"testing"

	"hivemind/internal/core/types/enums"
	"hivemind/internal/domain"
	"hivemind/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type violations struct {
	errs []error
}

func (v *violations) record(err error) { v.errs = append(v.errs, err) }

func TestRegistry_SpawnAssignsPackedIDs(t *testing.T) {
	r := NewRegistry(nil)
	d1 := entities.NewDoor(domain.Position{X: 1, Y: 1}, false)
	d2 := entities.NewDoor(domain.Position{X: 2, Y: 1}, false)
	c := entities.NewCorpse(domain.Position{X: 3, Y: 1}, 20)

	r.Spawn(d1, 0)
	r.Spawn(d2, 0)
	r.Spawn(c, 0)

	assert.Equal(t, uint8(enums.EntityKindDoor), d1.ID().Kind())
	assert.Equal(t, uint32(1), d1.ID().Index())
	assert.Equal(t, uint32(2), d2.ID().Index())
	assert.Equal(t, uint8(enums.EntityKindCorpse), c.ID().Kind())
	assert.Equal(t, uint32(1), c.ID().Index())
	assert.Same(t, d2, r.At(domain.Position{X: 2, Y: 1}))
}

func TestRegistry_ReactingOrder(t *testing.T) {
	r := NewRegistry(nil)
	a := entities.NewCorpse(domain.Position{X: 1, Y: 1}, 20)
	b := entities.NewCorpse(domain.Position{X: 2, Y: 1}, 20)
	newborn := entities.NewCorpse(domain.Position{X: 3, Y: 1}, 20)
	dead := entities.NewCorpse(domain.Position{X: 4, Y: 1}, 20)

	r.Spawn(a, 0)
	r.Spawn(b, 0)
	r.Spawn(dead, 0)
	r.Spawn(newborn, 5)
	dead.MarkForDeath()

	got := r.Reacting(5)
	require.Len(t, got, 2)
	assert.Same(t, b, got[0])
	assert.Same(t, a, got[1])
}

func TestRegistry_Flush(t *testing.T) {
	pos := domain.Position{X: 4, Y: 4}

	tests := []struct {
		name     string
		dying    domain.Entity
		newcomer domain.Entity
	}{
		{"Corpse rises on its cell", entities.NewCorpse(pos, 1), entities.NewZombie(pos, false)},
		{"Zombie leaves a corpse on its cell", entities.NewZombie(pos, false), entities.NewCorpse(pos, 30)},
		{"Bloater replaced by a zombie", entities.NewZombie(pos, true), entities.NewZombie(pos, false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &violations{}
			r := NewRegistry(v.record)
			r.Spawn(tt.dying, 0)
			require.Same(t, tt.dying, r.At(pos))

			tt.dying.MarkForDeath()
			r.Enqueue(tt.newcomer)
			assert.Equal(t, 1, r.Pending())

			removed, spawned := r.Flush(3)
			assert.Equal(t, 1, removed)
			assert.Equal(t, 1, spawned)
			assert.Zero(t, r.Pending())
			assert.Equal(t, 1, r.Len())
			assert.Same(t, tt.newcomer, r.At(pos))
			assert.Equal(t, 3, tt.newcomer.BornTurn())
			assert.Empty(t, v.errs, "removal happens before the spawn")
		})
	}
}

func TestRegistry_Violations(t *testing.T) {
	v := &violations{}
	r := NewRegistry(v.record)
	pos := domain.Position{X: 1, Y: 1}

	assert.False(t, r.Remove(entities.NewDoor(pos, false)))
	require.Len(t, v.errs, 1)
	assert.ErrorIs(t, v.errs[0], ErrInvariant)

	r.Spawn(entities.NewZombie(pos, false), 0)
	r.Spawn(entities.NewZombie(pos, true), 0)
	require.Len(t, v.errs, 2)
	assert.ErrorIs(t, v.errs[1], ErrInvariant)
}

func TestRegistry_IndexPrefersSolid(t *testing.T) {
	v := &violations{}
	r := NewRegistry(v.record)
	pos := domain.Position{X: 1, Y: 1}

	broken := entities.NewBrokenWindow(pos)
	zombie := entities.NewZombie(pos, false)
	r.Spawn(zombie, 0)
	r.Spawn(broken, 0)
	r.Reindex()

	assert.Same(t, zombie, r.At(pos))
	assert.Empty(t, v.errs)

	assert.True(t, r.Remove(zombie))
	assert.Nil(t, r.At(pos))
	r.Reindex()
	assert.Same(t, broken, r.At(pos))
}
