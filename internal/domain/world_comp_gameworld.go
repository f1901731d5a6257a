package domain

// NewGrid создает карту, заполненную полом
func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}
	for i := range g.tiles {
		g.tiles[i] = FloorTile
	}
	return g
}

func (g *Grid) GetIndex(x, y int) int {
	return y*g.Width + x
}

// Len - количество тайлов
func (g *Grid) Len() int {
	return len(g.tiles)
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At возвращает тайл. За границами карты - пол (непроходимость решает вызывающий).
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return FloorTile
	}
	return g.tiles[g.GetIndex(x, y)]
}

// Set меняет тайл. За границами карты запись молча игнорируется.
func (g *Grid) Set(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[g.GetIndex(x, y)] = t
}

// IsSolid проверяет, блокирует ли тайл движение
func (g *Grid) IsSolid(x, y int) bool {
	return g.At(x, y).IsSolid()
}
