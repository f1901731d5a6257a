package enums

import "strings"

// EntityKind различает варианты сущностей мира.
type EntityKind uint8

const (
	EntityKindUnknown EntityKind = iota
	EntityKindPlayer
	EntityKindDoor
	EntityKindWindow
	EntityKindCorpse
	EntityKindZombie
)

var entityKindToString = map[EntityKind]string{
	EntityKindPlayer: "PLAYER",
	EntityKindDoor:   "DOOR",
	EntityKindWindow: "WINDOW",
	EntityKindCorpse: "CORPSE",
	EntityKindZombie: "ZOMBIE",
}

var entityKindStringToKind = map[string]EntityKind{
	"PLAYER": EntityKindPlayer,
	"DOOR":   EntityKindDoor,
	"WINDOW": EntityKindWindow,
	"CORPSE": EntityKindCorpse,
	"ZOMBIE": EntityKindZombie,
}

// String возвращает строковое представление (для логов и дебага)
func (e EntityKind) String() string {
	if val, ok := entityKindToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityKind конвертирует строку в Enum (используется отладочным спавном)
func ParseEntityKind(s string) EntityKind {
	upper := strings.ToUpper(s)
	if val, ok := entityKindStringToKind[upper]; ok {
		return val
	}
	return EntityKindUnknown
}
