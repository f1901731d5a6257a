package api

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidIntent - намерение нельзя исполнить (диагональ, длинный шаг, неизвестный режим)
var ErrInvalidIntent = errors.New("invalid intent")

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

// IsZero - пустой вектор: ход не тратится
func (i Intent) IsZero() bool {
	return i.Dx == 0 && i.Dy == 0
}

// Validate допускает только единичный ортогональный шаг.
// Пустой вектор валиден: планировщик трактует его как no-op.
func (i Intent) Validate() error {
	if i.IsZero() {
		return nil
	}
	if i.Dx < -1 || i.Dx > 1 || i.Dy < -1 || i.Dy > 1 {
		return fmt.Errorf("step (%d,%d) too large: %w", i.Dx, i.Dy, ErrInvalidIntent)
	}
	if i.Dx != 0 && i.Dy != 0 {
		return fmt.Errorf("diagonal step (%d,%d): %w", i.Dx, i.Dy, ErrInvalidIntent)
	}

	switch strings.ToUpper(i.Mode) {
	case ModeMove, ModeAttack:
		return nil
	default:
		return fmt.Errorf("unknown mode %q: %w", i.Mode, ErrInvalidIntent)
	}
}
