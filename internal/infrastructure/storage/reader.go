package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// maxActions ограничивает размер записи, чтобы битый заголовок
// не заставил выделить гигабайты
const maxActions = 1 << 24

// Load читает запись из файла
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read декодирует запись из r
func Read(r io.Reader) (*Recording, error) {
	var header fileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic %q: %w", header.Magic[:], ErrBadRecording)
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version %d (expected %d): %w", header.Version, Version1, ErrBadRecording)
	}
	if header.ActionCount < 0 || header.ActionCount > maxActions {
		return nil, fmt.Errorf("action count %d: %w", header.ActionCount, ErrBadRecording)
	}

	rec := &Recording{
		Seed:        header.Seed,
		Timestamp:   header.Timestamp,
		Width:       header.Width,
		Height:      header.Height,
		SightRadius: header.SightRadius,
		Noise:       header.Noise,
		Debug:       header.Flags&flagDebug != 0,
		Actions:     make([]Action, header.ActionCount),
	}

	if len(rec.Actions) > 0 {
		if err := binary.Read(r, binary.LittleEndian, rec.Actions); err != nil {
			return nil, fmt.Errorf("read actions: %w", err)
		}
	}

	for i, a := range rec.Actions {
		if a.Kind > KindReveal {
			return nil, fmt.Errorf("action %d: kind %d: %w", i, a.Kind, ErrBadRecording)
		}
	}

	return rec, nil
}
