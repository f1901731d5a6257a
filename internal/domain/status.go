package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// StatusEffect - состояние игрока. Порядок констант задает порядок тиков и отображения.
type StatusEffect uint8

const (
	StatusBleeding StatusEffect = iota
	StatusDehydrated
	StatusExhausted
	StatusInfected
	StatusStarving
)

// AllStatuses в порядке перечисления
var AllStatuses = [...]StatusEffect{
	StatusBleeding,
	StatusDehydrated,
	StatusExhausted,
	StatusInfected,
	StatusStarving,
}

var statusToString = map[StatusEffect]string{
	StatusBleeding:   "Bleeding",
	StatusDehydrated: "Dehydrated",
	StatusExhausted:  "Exhausted",
	StatusInfected:   "Infected",
	StatusStarving:   "Starving",
}

// ErrStatusAbsent - попытка снять состояние, которого нет. Это ошибка вызывающего.
var ErrStatusAbsent = errors.New("status not present")

func (s StatusEffect) String() string {
	if val, ok := statusToString[s]; ok {
		return val
	}
	return "Unknown"
}

// StatusSet - отсортированное множество состояний без дубликатов
type StatusSet struct {
	items []StatusEffect
}

// Add добавляет состояние. Возвращает false, если оно уже было.
func (s *StatusSet) Add(status StatusEffect) bool {
	i := sort.Search(len(s.items), func(i int) bool { return s.items[i] >= status })
	if i < len(s.items) && s.items[i] == status {
		return false
	}
	s.items = append(s.items, 0)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = status
	return true
}

// Has проверяет наличие состояния
func (s *StatusSet) Has(status StatusEffect) bool {
	i := sort.Search(len(s.items), func(i int) bool { return s.items[i] >= status })
	return i < len(s.items) && s.items[i] == status
}

// Remove снимает состояние. Снимать отсутствующее нельзя.
func (s *StatusSet) Remove(status StatusEffect) error {
	i := sort.Search(len(s.items), func(i int) bool { return s.items[i] >= status })
	if i >= len(s.items) || s.items[i] != status {
		return fmt.Errorf("remove %s: %w", status, ErrStatusAbsent)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// List возвращает копию состояний в порядке перечисления
func (s *StatusSet) List() []StatusEffect {
	out := make([]StatusEffect, len(s.items))
	copy(out, s.items)
	return out
}

func (s *StatusSet) Len() int {
	return len(s.items)
}

// Names - имена состояний для HUD
func (s *StatusSet) Names() []string {
	names := make([]string, 0, len(s.items))
	for _, st := range s.items {
		names = append(names, st.String())
	}
	return names
}

func (s *StatusSet) String() string {
	return strings.Join(s.Names(), ", ")
}
