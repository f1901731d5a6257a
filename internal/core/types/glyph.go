package types

import (
	"fmt"
)

// Glyph представляет упакованное представление цветного символа тайла или сущности.
// Использует младшие 16 бит uint32:
//
//	[0:8]  - символ (1 байт) - маска 0xFF
//	[8:16] - индекс цвета палитры терминала (1 байт) - маска 0xFF
//
// Старшие 16 бит не используются и всегда равны нулю.
type Glyph uint32

// Константы для битовых операций с Glyph
const (
	bitsChar  = 8
	bitsColor = 8

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1  // 0xFF
	maskColor = (1 << bitsColor) - 1 // 0xFF
)

// MakeGlyph создает новый Glyph из индекса цвета и символа.
//
// Пример:
//
//	// Зеленое дерево
//	glyph := MakeGlyph(2, 'T')
//	// Внутреннее представление: 0x0254
func MakeGlyph(color uint8, char byte) Glyph {
	return Glyph(uint32(color)&maskColor<<shiftColor | uint32(char)&maskChar)
}

// Color извлекает индекс цвета из Glyph.
func (g Glyph) Color() uint8 {
	return uint8(uint32(g>>shiftColor) & maskColor)
}

// Char извлекает символ из Glyph.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// WithColor возвращает тот же символ, перекрашенный в другой цвет.
// Используется для отрисовки "запомненных" тайлов.
func (g Glyph) WithColor(color uint8) Glyph {
	return MakeGlyph(color, g.Char())
}

// WithChar возвращает другой символ того же цвета (дверь открылась, окно разбито).
func (g Glyph) WithChar(char byte) Glyph {
	return MakeGlyph(g.Color(), char)
}

// String возвращает человеко-читаемое представление Glyph.
// Формат: "Glyph{char='T', color=2}"
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})

	// Для непечатаемых символов показываем hex
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}

	return fmt.Sprintf("Glyph{char='%s', color=%d}", charStr, g.Color())
}
