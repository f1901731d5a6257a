package types

import (
	"fmt"
)

// EntityID — 64-битный идентификатор сущности.
//
// Формат битов (от старших к младшим):
//
//	[ reserved (24) | Kind (8) | Index (32) ]
//
// Где:
//   - Kind — вид сущности (Player, Door, Window, Corpse, Zombie)
//   - Index — порядковый номер регистрации в реестре
//
// Index монотонно растет, поэтому сравнение индексов дает порядок регистрации.
type EntityID uint64

// NilEntityID — нулевой идентификатор. Реестр никогда не выдает Index 0.
const NilEntityID EntityID = 0

const (
	bitsIndex = 32
	bitsKind  = 8

	shiftKind = bitsIndex

	maskIndex = (1 << bitsIndex) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackEntityID собирает EntityID из вида сущности и индекса регистрации.
func PackEntityID(kind uint8, index uint32) EntityID {
	return EntityID(uint64(kind)<<shiftKind | uint64(index))
}

// Index возвращает порядковый номер регистрации.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Kind возвращает вид сущности.
func (id EntityID) Kind() uint8 {
	return uint8((id >> shiftKind) & maskKind)
}

// IsNil проверяет, является ли идентификатор нулевым.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String для логов: [Kind:Index]
func (id EntityID) String() string {
	return fmt.Sprintf("[%d:%d]", id.Kind(), id.Index())
}
