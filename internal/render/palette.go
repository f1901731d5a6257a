package render

import (
	"github.com/gdamore/tcell/v2"

	"hivemind/internal/domain"
)

var defaultStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// palette переводит индекс цвета глифа в стиль терминала
var palette = [...]tcell.Style{
	domain.ColorWhite:   defaultStyle,
	domain.ColorRed:     defaultStyle.Foreground(tcell.ColorRed),
	domain.ColorGreen:   defaultStyle.Foreground(tcell.ColorGreen),
	domain.ColorBlue:    defaultStyle.Foreground(tcell.ColorBlue),
	domain.ColorYellow:  defaultStyle.Foreground(tcell.ColorYellow),
	domain.ColorCyan:    defaultStyle.Foreground(tcell.ColorAqua),
	domain.ColorMagenta: defaultStyle.Foreground(tcell.ColorFuchsia),
	domain.ColorBright:  defaultStyle.Foreground(tcell.ColorWhite).Bold(true),
}

// StyleFor возвращает стиль для индекса цвета; неизвестные - как белый
func StyleFor(color uint8) tcell.Style {
	if int(color) < len(palette) {
		return palette[color]
	}
	return defaultStyle
}

// fractionStyle: красный ниже 40%, желтый ниже 70%, иначе зеленый
func fractionStyle(v float64) tcell.Style {
	switch {
	case v < 0.4:
		return StyleFor(domain.ColorRed)
	case v < 0.7:
		return StyleFor(domain.ColorYellow)
	default:
		return StyleFor(domain.ColorGreen)
	}
}
