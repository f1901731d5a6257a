package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"hivemind/internal/agent"
	"hivemind/internal/engine"
	"hivemind/internal/infrastructure/storage"
	"hivemind/internal/render"
	"hivemind/internal/version"
	"hivemind/pkg/logger"
	"hivemind/pkg/utils"
)

func init() {
	logger.Init()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hivemind:", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Параметры запуска
	var seed int64
	var replayPath string
	var autoplay int
	// -seed переопределяет HIVEMIND_SEED. 0 - оставить как есть.
	flag.Int64Var(&seed, "seed", 0, "World seed (0 keeps HIVEMIND_SEED or a random one)")
	flag.StringVar(&replayPath, "replay", "", "Path to .hvrp recording to verify headless")
	flag.IntVar(&autoplay, "autoplay", 0, "Let the bot play N turns headless and exit")
	flag.Parse()

	cfg, err := engine.LoadConfig()
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	// 2. Лог в файл: stdout занят экраном
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	opts := logger.OptionsFromEnv()
	opts.Output = logFile
	logger.Configure(opts)

	logger.Log.Info("Starting Hivemind...")
	logger.Log.Info(version.String())

	// Режим реплея: проиграть запись и выйти
	if replayPath != "" {
		return replay(cfg, replayPath)
	}

	// 3. Партия
	logger.Log.Infof("Using master seed: %d", cfg.Seed)
	g, err := engine.NewGame(cfg)
	if err != nil {
		return err
	}
	defer saveRecording(g, cfg.RecordDir)

	if autoplay > 0 {
		res, err := agent.NewBot(rand.New(rand.NewSource(cfg.Seed))).Run(g, autoplay)
		if err != nil {
			return err
		}
		fmt.Printf("seed %d: %d turns, %d steps, dead %v, hp %d\n", cfg.Seed, res.Turns, res.Steps, res.Dead, res.Health)
		return nil
	}

	return play(g)
}

func replay(cfg engine.Config, path string) error {
	logger.Log.Info("Mode: replay simulation")
	rec, err := storage.Load(path)
	if err != nil {
		return fmt.Errorf("load replay: %w", err)
	}

	g, err := engine.Replay(rec, cfg)
	if err != nil {
		return err
	}
	snap := g.Snapshot()
	fmt.Printf("seed %d: replayed %d actions, turn %d, dead %v, hp %d\n",
		rec.Seed, len(rec.Actions), snap.Turn, snap.Player.IsDead, snap.Player.Health.Current)
	return nil
}

// play - цикл терминала: нарисовать, дождаться события, применить
func play(g *engine.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// SIGTERM: выходим из цикла штатно, чтобы сохранить запись
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)
	go func() {
		if _, ok := <-stop; ok {
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}()

	r := render.NewRenderer(screen, "Hivemind")
	for {
		r.Draw(g)

		switch ev := screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if quit := handleKey(g, render.TranslateKey(ev)); quit {
				return nil
			}
		}
	}
}

func handleKey(g *engine.Game, cmd render.Command) bool {
	var err error
	switch cmd.Kind {
	case render.CommandQuit:
		return true
	case render.CommandStep:
		_, err = g.SubmitIntent(cmd.Dx, cmd.Dy, cmd.Mode)
	case render.CommandDrain:
		_, err = g.CheatDrain()
	case render.CommandReveal:
		err = g.CheatReveal()
	}

	switch {
	case err == nil:
	case errors.Is(err, engine.ErrGameOver), errors.Is(err, engine.ErrCheatsDisabled):
		logger.Log.WithField("component", "input").Debug(err)
	default:
		logger.Log.WithField("component", "input").WithError(err).Warn("Command rejected.")
	}
	return false
}

func saveRecording(g *engine.Game, dir string) {
	if dir == "" {
		return
	}
	path, err := storage.NewStore(dir).Save(g.Recording(), utils.SessionID())
	if err != nil {
		logger.Log.WithError(err).Error("Failed to save recording.")
		return
	}
	logger.Log.WithFields(logrus.Fields{"path": path, "turn": g.Turn()}).Info("Recording saved.")
}
