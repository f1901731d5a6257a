// Package version описывает сборку. Значения подставляются через -ldflags:
//
//	go build -ldflags "-X hivemind/internal/version.BuildDate=2026-03-01 -X hivemind/internal/version.BuildCommit=abc123"
//
// Без них коммит берется из метаданных VCS, которые пишет go build.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// buildEpoch - день, от которого считается номер сборки
var buildEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// Info - метаданные сборки
type Info struct {
	BuildID    int
	BuildDate  string
	Commit     string
	Branch     string
	Dirty      bool
	Calculated bool
	Error      string
}

// CalculateBuildID - число дней от эпохи до BuildDate
func CalculateBuildID(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before epoch", date)
	}

	// Обе даты в UTC, часы без перехода на летнее время
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Get собирает Info из ldflags и метаданных VCS
func Get() Info {
	info := Info{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.modified":
				info.Dirty = s.Value == "true"
			}
		}
	}

	id, err := CalculateBuildID(info.BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	info.Calculated = true
	return info
}

// String - строка для лога при старте
func (i Info) String() string {
	commit := shortCommit(coalesce(i.Commit, "unknown"))
	if i.Dirty {
		commit += "+dirty"
	}

	if !i.Calculated {
		return fmt.Sprintf("Hivemind dev build commit[%s] (%s)", commit, i.Error)
	}
	return fmt.Sprintf("Hivemind build %d (%s) commit[%s] branch[%s]",
		i.BuildID, i.BuildDate, commit, coalesce(i.Branch, "unknown"))
}

// String - то же для текущей сборки
func String() string {
	return Get().String()
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}
	return c
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
