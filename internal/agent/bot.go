// Package agent - автоигрок (headless agent).
//
// Бот видит мир так же, как человек за терминалом: через снимок состояния
// и видимые глифы. Никаких прямых ссылок на сущности у него нет.
//
// Жизненный цикл:
//  1. NewBot -> бот со своим генератором случайных чисел.
//  2. Run -> цикл "посмотреть, решить, отправить намерение" до смерти
//     игрока или исчерпания ходов.
//  3. Next -> мозг бота: одно намерение по текущей картине мира.
package agent

import (
	"hivemind/internal/core/types"
	"hivemind/internal/domain"
	"hivemind/pkg/api"
	"hivemind/pkg/logger"

	"github.com/sirupsen/logrus"
)

// View - то, что видит игрок
type View interface {
	Snapshot() api.Snapshot
	ViewAt(x, y int) (types.Glyph, bool)
}

// Game - партия, которой бот управляет
type Game interface {
	View
	Submit(intent api.Intent) ([]string, error)
}

// Result - итог прогона
type Result struct {
	Turns  int
	Steps  int
	Dead   bool
	Health int
}

var directions = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// keepDirection - шанс продолжить идти туда же
const keepDirection = 0.75

// Bot бродит по карте и бьет зомби, оказавшихся рядом
type Bot struct {
	rng  domain.Rand
	last int // индекс последнего направления, -1 - нет
}

func NewBot(rng domain.Rand) *Bot {
	return &Bot{rng: rng, last: -1}
}

// Next выбирает намерение.
// Зомби по соседству - удар. Иначе шаг по видимой проходимой клетке,
// чаще всего в прежнем направлении.
func (b *Bot) Next(v View) api.Intent {
	p := v.Snapshot().Player

	for _, d := range directions {
		if g, ok := v.ViewAt(p.X+d[0], p.Y+d[1]); ok && hostile(g) {
			return api.Intent{Dx: d[0], Dy: d[1], Mode: api.ModeAttack}
		}
	}

	if b.last >= 0 && b.rng.Float64() < keepDirection {
		d := directions[b.last]
		if passable(v, p.X+d[0], p.Y+d[1]) {
			return api.Intent{Dx: d[0], Dy: d[1], Mode: api.ModeMove}
		}
	}

	open := make([]int, 0, len(directions))
	for i, d := range directions {
		if passable(v, p.X+d[0], p.Y+d[1]) {
			open = append(open, i)
		}
	}
	if len(open) == 0 {
		// Замурован: бьем в случайную сторону, двери и окна ломаются
		d := directions[b.rng.Intn(len(directions))]
		return api.Intent{Dx: d[0], Dy: d[1], Mode: api.ModeAttack}
	}

	b.last = open[b.rng.Intn(len(open))]
	d := directions[b.last]
	return api.Intent{Dx: d[0], Dy: d[1], Mode: api.ModeMove}
}

// Run играет, пока игрок жив и не сделано turns ходов.
// Удары и толчки в двери не двигают ход, поэтому попыток не больше 4*turns.
func (b *Bot) Run(g Game, turns int) (Result, error) {
	log := logger.Log.WithFields(logrus.Fields{"component": "agent"})

	var res Result
	for res.Steps < 4*turns {
		snap := g.Snapshot()
		res.Turns = snap.Turn
		if snap.Turn >= turns || snap.GameOver {
			break
		}

		res.Steps++
		before := snap.Turn
		if _, err := g.Submit(b.Next(g)); err != nil {
			return res, err
		}
		if g.Snapshot().Turn == before {
			// Ход не засчитан: в следующий раз другое направление
			b.last = -1
		}
	}

	snap := g.Snapshot()
	res.Turns = snap.Turn
	res.Dead = snap.Player.IsDead
	res.Health = snap.Player.Health.Current

	log.WithFields(logrus.Fields{
		"turns":  res.Turns,
		"steps":  res.Steps,
		"dead":   res.Dead,
		"health": res.Health,
	}).Info("Autoplay finished.")

	return res, nil
}

func hostile(g types.Glyph) bool {
	return g.Char() == domain.CharZombie || g.Char() == domain.CharBloater
}

func passable(v View, x, y int) bool {
	g, ok := v.ViewAt(x, y)
	if !ok {
		return false
	}
	switch g.Char() {
	case domain.CharWall, domain.CharTree:
		return false
	}
	return true
}
