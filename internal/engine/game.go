package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"hivemind/internal/domain"
	"hivemind/internal/infrastructure/storage"
	"hivemind/internal/systems"
	"hivemind/pkg/logger"
	"hivemind/pkg/worldgen"

	"github.com/sirupsen/logrus"
)

var (
	// ErrGameOver - игрок мертв, ходы больше не принимаются
	ErrGameOver = errors.New("game over")
	// ErrInvariant - нарушение внутреннего инварианта мира
	ErrInvariant = errors.New("invariant violated")
	// ErrCheatsDisabled - читы доступны только в режиме отладки
	ErrCheatsDisabled = errors.New("cheats disabled")
)

// Game - одна партия: мир, игрок, сущности и планировщик ходов.
// Однопоточная; единственная мутирующая точка входа - SubmitIntent.
type Game struct {
	cfg Config
	rng domain.Rand

	grid     *domain.Grid
	player   *domain.Player
	registry *Registry
	noise    *systems.NoiseField
	vis      *systems.Visibility
	log      *MessageLog

	turn     int
	gameOver bool

	// journal - команды игрока для записи партии
	journal   []storage.Action
	createdAt int64
}

// NewGame генерирует мир из сида конфига и сажает в него игрока
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	level := worldgen.Generate(cfg.Width, cfg.Height, rng)
	player := domain.NewPlayer(level.Start, uint8(1+rng.Intn(6)))

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"seed":      cfg.Seed,
		"width":     cfg.Width,
		"height":    cfg.Height,
		"debug":     cfg.Debug,
	}).Info("New game created.")

	return NewGameWithWorld(cfg, rng, level.Grid, player, level.Entities), nil
}

// NewGameWithWorld собирает партию из готового мира (тесты, сценарии)
func NewGameWithWorld(cfg Config, rng domain.Rand, grid *domain.Grid, player *domain.Player, entities []domain.Entity) *Game {
	if cfg.MessageCapacity <= 0 {
		cfg.MessageCapacity = NewConfig().MessageCapacity
	}

	g := &Game{
		cfg:    cfg,
		rng:    rng,
		grid:   grid,
		player: player,
		noise:  systems.NewNoiseField(grid.Width, grid.Height),
		vis:    systems.NewVisibility(grid.Width, grid.Height),
		log:    NewMessageLog(cfg.MessageCapacity),

		createdAt: time.Now().Unix(),
	}
	g.registry = NewRegistry(g.violate)

	// Нулевые значения - конфиг без Validate (сценарии): остаются параметры игрока
	if cfg.SightRadius > 0 {
		player.SightRadius = cfg.SightRadius
	}
	if cfg.Noise > 0 {
		player.Noise = cfg.Noise
	}

	for _, e := range entities {
		g.registry.Spawn(e, 0)
	}
	g.registry.Reindex()

	// Стартовый шум громче обычного шага
	pos := player.Pos()
	g.noise.Propagate(pos.X, pos.Y, player.Noise+2, player.Noise+2)

	g.refreshVisibility()
	return g
}

// context собирает контекст для способностей сущностей на текущий ход
func (g *Game) context() *domain.Context {
	return &domain.Context{
		Grid:       g.grid,
		Rng:        g.rng,
		Noise:      g.noise,
		Turn:       g.turn,
		OccupantAt: g.registry.At,
		Spawn:      g.registry.Enqueue,
	}
}

// violate сообщает о нарушении инварианта; в режиме отладки - паника
func (g *Game) violate(err error) {
	logger.Log.WithFields(logFields("game", g.turn)).WithError(err).Error("Invariant violated.")
	if g.cfg.Debug {
		panic(err)
	}
}

// refreshVisibility перестраивает индекс и пересчитывает поле зрения игрока
func (g *Game) refreshVisibility() {
	g.registry.Reindex()

	opaque := make(map[domain.Position]bool)
	for pos, e := range g.registry.Index() {
		if !e.Seethrough() {
			opaque[pos] = true
		}
	}
	g.vis.Recompute(systems.BlockingMap(g.grid, opaque), g.player.Pos(), g.player.SightRadius)
}

// checkDeath переводит партию в game over ровно один раз
func (g *Game) checkDeath(add func(string)) {
	if g.gameOver || !g.player.IsDead() {
		return
	}
	g.gameOver = true
	add("You died.")

	logger.Log.WithFields(logFields("game", g.turn)).
		WithField("statuses", g.player.Statuses.String()).
		Warn("Player died.")
}

func (g *Game) Grid() *domain.Grid                       { return g.grid }
func (g *Game) Player() *domain.Player                   { return g.player }
func (g *Game) Visibility() *systems.Visibility          { return g.vis }
func (g *Game) Noise() *systems.NoiseField               { return g.noise }
func (g *Game) Entities() []domain.Entity                { return g.registry.All() }
func (g *Game) EntityAt(p domain.Position) domain.Entity { return g.registry.At(p) }
func (g *Game) Messages() []string                       { return g.log.Entries() }
func (g *Game) Turn() int                                { return g.turn }
func (g *Game) GameOver() bool                           { return g.gameOver }
func (g *Game) Config() Config                           { return g.cfg }

// logFields - общий набор полей для логов движка
func logFields(component string, turn int) logrus.Fields {
	return logrus.Fields{"component": component, "turn": turn}
}

// String - краткое описание партии для логов
func (g *Game) String() string {
	return fmt.Sprintf("Game{turn=%d, entities=%d, player=%v, dead=%t}", g.turn, g.registry.Len(), g.player.Pos(), g.gameOver)
}
