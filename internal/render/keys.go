package render

import (
	"github.com/gdamore/tcell/v2"

	"hivemind/internal/domain"
)

// CommandKind - что игрок хочет сделать нажатием
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandStep
	CommandQuit
	CommandDrain
	CommandReveal
)

// Command - результат перевода клавиши
type Command struct {
	Kind   CommandKind
	Dx, Dy int
	Mode   domain.ActionType
}

var arrowSteps = map[tcell.Key][2]int{
	tcell.KeyUp:    {0, -1},
	tcell.KeyDown:  {0, 1},
	tcell.KeyLeft:  {-1, 0},
	tcell.KeyRight: {1, 0},
}

// hjkl - шаг, HJKL - удар (для терминалов без Shift+стрелок)
var viSteps = map[rune][2]int{
	'k': {0, -1},
	'j': {0, 1},
	'h': {-1, 0},
	'l': {1, 0},
}

var viAttacks = map[rune][2]int{
	'K': {0, -1},
	'J': {0, 1},
	'H': {-1, 0},
	'L': {1, 0},
}

// TranslateKey переводит нажатие в команду.
// Стрелки - шаг, Shift+стрелки - удар.
func TranslateKey(ev *tcell.EventKey) Command {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return Command{Kind: CommandQuit}
	}

	if step, ok := arrowSteps[ev.Key()]; ok {
		mode := domain.ActionMove
		if ev.Modifiers()&tcell.ModShift != 0 {
			mode = domain.ActionAttack
		}
		return Command{Kind: CommandStep, Dx: step[0], Dy: step[1], Mode: mode}
	}

	if ev.Key() != tcell.KeyRune {
		return Command{}
	}

	r := ev.Rune()
	if step, ok := viSteps[r]; ok {
		return Command{Kind: CommandStep, Dx: step[0], Dy: step[1], Mode: domain.ActionMove}
	}
	if step, ok := viAttacks[r]; ok {
		return Command{Kind: CommandStep, Dx: step[0], Dy: step[1], Mode: domain.ActionAttack}
	}

	switch r {
	case 'q':
		return Command{Kind: CommandQuit}
	case 'a':
		return Command{Kind: CommandDrain}
	case 'r':
		return Command{Kind: CommandReveal}
	}
	return Command{}
}
