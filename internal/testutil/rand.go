// Package testutil содержит детерминированные подмены для тестов.
package testutil

// ScriptedRand - источник случайности, который отдает заранее заданные значения.
// Когда очередь пуста, отдает Fallback (для Float64) и 0 (для Intn).
type ScriptedRand struct {
	Floats   []float64
	Ints     []int
	Fallback float64

	FloatCalls int
	IntCalls   int
}

// Float64 отдает следующее значение из Floats
func (r *ScriptedRand) Float64() float64 {
	r.FloatCalls++
	if len(r.Floats) == 0 {
		return r.Fallback
	}
	v := r.Floats[0]
	r.Floats = r.Floats[1:]
	return v
}

// Intn отдает следующее значение из Ints, приведенное к [0, n)
func (r *ScriptedRand) Intn(n int) int {
	r.IntCalls++
	if len(r.Ints) == 0 || n <= 0 {
		return 0
	}
	v := r.Ints[0]
	r.Ints = r.Ints[1:]
	if v < 0 {
		v = 0
	}
	return v % n
}

// Always возвращает источник, у которого Float64 всегда равен v
func Always(v float64) *ScriptedRand {
	return &ScriptedRand{Fallback: v}
}
