package engine

import (
	"fmt"

	"hivemind/internal/core/types"
	"hivemind/internal/core/types/enums"
	"hivemind/internal/domain"
	"hivemind/pkg/logger"
)

// Registry хранит живые сущности мира (кроме игрока) в порядке регистрации
// и индекс позиций. Изменения во время шага сущности откладываются до Flush.
type Registry struct {
	entities []domain.Entity
	index    map[domain.Position]domain.Entity
	pending  []domain.Entity
	counters map[enums.EntityKind]uint32

	violate func(error)
}

// NewRegistry создает пустой реестр. violate получает нарушения инвариантов.
func NewRegistry(violate func(error)) *Registry {
	if violate == nil {
		violate = func(error) {}
	}
	return &Registry{
		index:    make(map[domain.Position]domain.Entity),
		counters: make(map[enums.EntityKind]uint32),
		violate:  violate,
	}
}

// Spawn регистрирует сущность сразу и выдает ей ID
func (r *Registry) Spawn(e domain.Entity, turn int) {
	kind := e.Kind()
	r.counters[kind]++
	e.SetID(types.PackEntityID(uint8(kind), r.counters[kind]))
	e.SetBornTurn(turn)

	r.entities = append(r.entities, e)
	r.place(e)

	logger.Log.WithFields(logFields("registry", turn)).
		WithField("entity_id", e.ID()).
		WithField("pos", e.Pos()).
		Debug("Entity spawned.")
}

// Enqueue откладывает появление сущности до ближайшего Flush
func (r *Registry) Enqueue(e domain.Entity) {
	r.pending = append(r.pending, e)
}

// Remove убирает сущность из реестра. Удаление неизвестной - нарушение инварианта.
func (r *Registry) Remove(e domain.Entity) bool {
	for i, other := range r.entities {
		if other == e {
			r.entities = append(r.entities[:i], r.entities[i+1:]...)
			if r.index[e.Pos()] == e {
				delete(r.index, e.Pos())
			}
			return true
		}
	}

	r.violate(fmt.Errorf("remove unknown entity %s: %w", e.ID(), ErrInvariant))
	return false
}

// Flush удаляет помеченных и регистрирует отложенные сущности.
// Порядок важен: труп-зомби сначала уходит, потом на его месте появляется новый.
func (r *Registry) Flush(turn int) (removed, spawned int) {
	kept := r.entities[:0]
	for _, e := range r.entities {
		if e.MarkedForDeath() {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	// Хвост среза обнуляем, чтобы не держать удаленные сущности
	for i := len(kept); i < len(r.entities); i++ {
		r.entities[i] = nil
	}
	r.entities = kept
	// Индекс без удаленных: новая сущность встает на освободившуюся клетку
	r.Reindex()

	pending := r.pending
	r.pending = nil
	for _, e := range pending {
		r.Spawn(e, turn)
		spawned++
	}

	r.Reindex()
	return removed, spawned
}

// Reindex перестраивает индекс позиций по текущим сущностям
func (r *Registry) Reindex() {
	clear(r.index)
	for _, e := range r.entities {
		r.place(e)
	}
}

func (r *Registry) place(e domain.Entity) {
	pos := e.Pos()
	other, taken := r.index[pos]
	if !taken {
		r.index[pos] = e
		return
	}

	if other.Solid() && e.Solid() {
		r.violate(fmt.Errorf("entities %s and %s share cell %v: %w", other.ID(), e.ID(), pos, ErrInvariant))
	}
	// Твердая сущность важнее для столкновений
	if e.Solid() && !other.Solid() {
		r.index[pos] = e
	}
}

// At возвращает сущность в клетке или nil
func (r *Registry) At(pos domain.Position) domain.Entity {
	return r.index[pos]
}

// Index - индекс позиций. Только для чтения.
func (r *Registry) Index() map[domain.Position]domain.Entity {
	return r.index
}

// Reacting - снимок сущностей, которые ходят в этот ход: в обратном порядке
// регистрации, без родившихся в этом ходу.
func (r *Registry) Reacting(turn int) []domain.Entity {
	out := make([]domain.Entity, 0, len(r.entities))
	for i := len(r.entities) - 1; i >= 0; i-- {
		e := r.entities[i]
		if e.BornTurn() == turn || e.MarkedForDeath() {
			continue
		}
		out = append(out, e)
	}
	return out
}

// All возвращает копию списка сущностей в порядке регистрации
func (r *Registry) All() []domain.Entity {
	out := make([]domain.Entity, len(r.entities))
	copy(out, r.entities)
	return out
}

func (r *Registry) Len() int     { return len(r.entities) }
func (r *Registry) Pending() int { return len(r.pending) }
