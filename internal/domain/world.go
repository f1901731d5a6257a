package domain

import "hivemind/internal/core/types"

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile - один тайл карты: символ + индекс цвета
type Tile struct {
	types.Glyph
}

// NewTile собирает тайл из символа и цвета
func NewTile(char byte, color uint8) Tile {
	return Tile{Glyph: types.MakeGlyph(color, char)}
}

var (
	FloorTile = NewTile(CharFloor, ColorWhite)
	WallTile  = NewTile(CharWall, ColorWhite)
	TreeTile  = NewTile(CharTree, ColorGreen)
	BloodTile = NewTile(CharBlood, ColorRed)
)

// solidChars - символы, которые блокируют движение и (по умолчанию) взгляд
var solidChars = map[byte]bool{
	CharWall: true,
	CharTree: true,
}

// IsSolid возвращает true для непроходимых тайлов
func (t Tile) IsSolid() bool {
	return solidChars[t.Char()]
}

// IsPlainFloor - чистый пол, на который можно наносить кровь
func (t Tile) IsPlainFloor() bool {
	return t == FloorTile
}

// IsBlood - тайл помечен кровью
func (t Tile) IsBlood() bool {
	return t.Char() == CharBlood
}

// Grid - статическая карта мира. Плоский массив, row-major.
type Grid struct {
	Width  int
	Height int
	tiles  []Tile
}
