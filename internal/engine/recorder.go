package engine

import (
	"errors"
	"fmt"

	"hivemind/internal/domain"
	"hivemind/internal/infrastructure/storage"
	"hivemind/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrReplayDiverged - запись не совпадает с тем, что делает движок
var ErrReplayDiverged = errors.New("replay diverged")

func recordKind(mode domain.ActionType) storage.ActionKind {
	if mode == domain.ActionAttack {
		return storage.KindAttack
	}
	return storage.KindMove
}

func (g *Game) record(kind storage.ActionKind, dx, dy int) {
	g.journal = append(g.journal, storage.Action{
		Turn: int32(g.turn),
		Kind: kind,
		Dx:   int8(dx),
		Dy:   int8(dy),
	})
}

// Recording возвращает запись партии на текущий момент
func (g *Game) Recording() *storage.Recording {
	actions := make([]storage.Action, len(g.journal))
	copy(actions, g.journal)

	return &storage.Recording{
		Seed:        g.cfg.Seed,
		Timestamp:   g.createdAt,
		Width:       int32(g.grid.Width),
		Height:      int32(g.grid.Height),
		SightRadius: int32(g.cfg.SightRadius),
		Noise:       int32(g.cfg.Noise),
		Debug:       g.cfg.Debug,
		Actions:     actions,
	}
}

// Replay заново генерирует мир из записи и проигрывает команды.
// Номер хода каждой команды сверяется с движком.
func Replay(rec *storage.Recording, base Config) (*Game, error) {
	cfg := base
	cfg.Seed = rec.Seed
	cfg.Width = int(rec.Width)
	cfg.Height = int(rec.Height)
	cfg.SightRadius = int(rec.SightRadius)
	cfg.Noise = int(rec.Noise)
	cfg.Debug = rec.Debug

	g, err := NewGame(cfg)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	for i, a := range rec.Actions {
		if int(a.Turn) != g.turn {
			return g, fmt.Errorf("action %d: recorded turn %d, engine turn %d: %w", i, a.Turn, g.turn, ErrReplayDiverged)
		}
		if err := g.apply(a); err != nil {
			return g, fmt.Errorf("action %d (%s): %w", i, a.Kind, err)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "replay",
		"seed":      rec.Seed,
		"actions":   len(rec.Actions),
		"turn":      g.turn,
		"game_over": g.gameOver,
	}).Info("Replay finished.")

	return g, nil
}

func (g *Game) apply(a storage.Action) error {
	var err error
	switch a.Kind {
	case storage.KindMove:
		_, err = g.SubmitIntent(int(a.Dx), int(a.Dy), domain.ActionMove)
	case storage.KindAttack:
		_, err = g.SubmitIntent(int(a.Dx), int(a.Dy), domain.ActionAttack)
	case storage.KindDrain:
		_, err = g.CheatDrain()
	case storage.KindReveal:
		err = g.CheatReveal()
	default:
		err = fmt.Errorf("kind %d: %w", a.Kind, ErrReplayDiverged)
	}
	return err
}
