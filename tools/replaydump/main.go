package main

import (
	"fmt"
	"os"
	"time"

	"hivemind/internal/engine"
	"hivemind/internal/infrastructure/storage"
	"hivemind/pkg/logger"
)

func main() {
	if len(os.Args) < 3 {
		printHelp()
		return
	}

	rec, err := storage.Load(os.Args[2])
	if err != nil {
		fmt.Printf("Cannot load recording: %v\n", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "info":
		printInfo(rec)
	case "actions":
		printInfo(rec)
		for i, a := range rec.Actions {
			fmt.Printf("%5d  turn %5d  %-6s %+d %+d\n", i, a.Turn, a.Kind, a.Dx, a.Dy)
		}
	case "verify":
		logger.Configure(logger.Options{Level: "warn"})
		g, err := engine.Replay(rec, engine.NewConfig())
		if err != nil {
			fmt.Printf("Replay failed: %v\n", err)
			os.Exit(1)
		}
		snap := g.Snapshot()
		fmt.Printf("OK: turn %d, hp %d/%d, dead %v\n",
			snap.Turn, snap.Player.Health.Current, snap.Player.Health.Max, snap.Player.IsDead)
	default:
		printHelp()
	}
}

func printInfo(rec *storage.Recording) {
	fmt.Printf("Seed:     %d\n", rec.Seed)
	fmt.Printf("Recorded: %s\n", time.Unix(rec.Timestamp, 0).Format(time.RFC3339))
	fmt.Printf("Map:      %dx%d\n", rec.Width, rec.Height)
	fmt.Printf("Player:   sight %d, noise %d\n", rec.SightRadius, rec.Noise)
	fmt.Printf("Debug:    %v\n", rec.Debug)
	fmt.Printf("Actions:  %d\n", len(rec.Actions))
}

func printHelp() {
	fmt.Println(`Replay dump - просмотр записей партий (.hvrp)
Commands:
  info <file>     - заголовок записи
  actions <file>  - заголовок и все команды
  verify <file>   - проиграть запись и показать итог`)
}
