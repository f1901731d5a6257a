package domain

import "strings"

// ActionType - режим, в котором игрок совершает шаг
type ActionType uint8

const (
	ActionMove ActionType = iota
	ActionAttack
)

// Маппинг для конвертации строки -> Domain
var actionStringToType = map[string]ActionType{
	"MOVE":   ActionMove,
	"ATTACK": ActionAttack,
}

// Маппинг для логов Domain -> String
var actionTypeToString = map[ActionType]string{
	ActionMove:   "MOVE",
	ActionAttack: "ATTACK",
}

// ParseAction конвертирует строку в ActionType. Второе значение false,
// если строка не распознана.
func ParseAction(s string) (ActionType, bool) {
	val, ok := actionStringToType[strings.ToUpper(s)]
	return val, ok
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionTypeToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
