package domain

// Rand - источник случайности. *math/rand.Rand подходит как есть,
// тесты подставляют скриптованный источник.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NoiseMap - поле шума, доступное сущностям
type NoiseMap interface {
	At(x, y int) int
	Propagate(x, y, radius, intensity int)
}

// Context передает способностям сущностей состояние мира на время одного хода.
// Сущности не хранят его после возврата.
type Context struct {
	Grid  *Grid
	Rng   Rand
	Noise NoiseMap
	Turn  int

	// OccupantAt ищет сущность (не игрока) в клетке по индексу позиций
	OccupantAt func(p Position) Entity
	// Spawn ставит новую сущность в очередь; она появится после шага текущей
	Spawn func(e Entity)
}

// Chance возвращает true с вероятностью p
func (c *Context) Chance(p float64) bool {
	return c.Rng.Float64() < p
}

// Roll возвращает случайное число в [min, max]
func (c *Context) Roll(min, max int) int {
	return min + c.Rng.Intn(max-min+1)
}

// Occupant - безопасная обертка над OccupantAt
func (c *Context) Occupant(p Position) Entity {
	if c.OccupantAt == nil {
		return nil
	}
	return c.OccupantAt(p)
}

// Enqueue - безопасная обертка над Spawn
func (c *Context) Enqueue(e Entity) {
	if c.Spawn != nil {
		c.Spawn(e)
	}
}
