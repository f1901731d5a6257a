// Package storage пишет и читает записи партий: сид, размеры мира и
// последовательность команд игрока. Мир детерминирован от сида, поэтому
// этого хватает, чтобы проиграть партию заново.
package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	MagicHeader string = `HVRP` // 4 байта
	Version1    uint32 = 1

	// FileExt - расширение файлов записи
	FileExt = ".hvrp"
)

// ErrBadRecording - файл не является записью или поврежден
var ErrBadRecording = errors.New("bad recording")

// ActionKind - что сделал игрок
type ActionKind uint8

const (
	KindMove ActionKind = iota
	KindAttack
	KindDrain
	KindReveal
)

func (k ActionKind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindAttack:
		return "attack"
	case KindDrain:
		return "drain"
	case KindReveal:
		return "reveal"
	}
	return "unknown"
}

// Action - одна команда игрока. Turn - номер хода, на котором она подана.
type Action struct {
	Turn int32
	Kind ActionKind
	Dx   int8
	Dy   int8
}

// Recording - партия целиком
type Recording struct {
	Seed        int64
	Timestamp   int64
	Width       int32
	Height      int32
	SightRadius int32
	Noise       int32
	Debug       bool
	Actions     []Action
}

// fileHeader - точное представление заголовка в файле.
// binary.Write пишет его целиком: внутри только массивы и числа.
type fileHeader struct {
	Magic       [4]byte // 4
	Version     uint32  // 4
	Seed        int64   // 8
	Timestamp   int64   // 8
	Width       int32   // 4
	Height      int32   // 4
	SightRadius int32   // 4
	Noise       int32   // 4
	Flags       uint32  // 4
	ActionCount int32   // 4
}

const flagDebug uint32 = 1

// Store сохраняет записи в каталог
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Save пишет запись в файл hivemind_<seed>_<name>.hvrp и возвращает путь
func (s *Store) Save(rec *Recording, name string) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create dir %s: %w", s.Dir, err)
	}

	path := filepath.Join(s.Dir, fmt.Sprintf("hivemind_%d_%s%s", rec.Seed, name, FileExt))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := Write(f, rec); err != nil {
		return "", err
	}
	return path, nil
}

// Write кодирует запись в w (little endian)
func Write(w io.Writer, rec *Recording) error {
	header := fileHeader{
		Version:     Version1,
		Seed:        rec.Seed,
		Timestamp:   rec.Timestamp,
		Width:       rec.Width,
		Height:      rec.Height,
		SightRadius: rec.SightRadius,
		Noise:       rec.Noise,
		ActionCount: int32(len(rec.Actions)),
	}
	copy(header.Magic[:], MagicHeader)
	if rec.Debug {
		header.Flags |= flagDebug
	}

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	// Action - 7 байт без выравнивания, срез пишется одной командой
	if len(rec.Actions) > 0 {
		if err := binary.Write(w, binary.LittleEndian, rec.Actions); err != nil {
			return fmt.Errorf("write actions: %w", err)
		}
	}
	return nil
}
