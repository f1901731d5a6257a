package engine

import (
	"hivemind/pkg/logger"
)

// MessagePrefix ставится перед каждым сообщением лога
const MessagePrefix = ": "

// MessageLog - ограниченный буфер сообщений для игрока. При переполнении
// вытесняется самое старое.
type MessageLog struct {
	buffer []string
}

// NewMessageLog создает лог на capacity сообщений
func NewMessageLog(capacity int) *MessageLog {
	if capacity < 1 {
		capacity = 1
	}
	return &MessageLog{buffer: make([]string, 0, capacity)}
}

// Add добавляет сообщение. Пустые строки игнорируются.
func (l *MessageLog) Add(msg string) {
	if msg == "" {
		return
	}

	logger.Log.WithField("component", "game_log").Info(msg)

	msg = MessagePrefix + msg
	if len(l.buffer) < cap(l.buffer) {
		l.buffer = append(l.buffer, msg)
		return
	}
	copy(l.buffer, l.buffer[1:])
	l.buffer[len(l.buffer)-1] = msg
}

// AddAll добавляет сообщения по порядку
func (l *MessageLog) AddAll(msgs []string) {
	for _, m := range msgs {
		l.Add(m)
	}
}

// Entries возвращает копию сообщений от старых к новым
func (l *MessageLog) Entries() []string {
	out := make([]string, len(l.buffer))
	copy(out, l.buffer)
	return out
}

func (l *MessageLog) Len() int      { return len(l.buffer) }
func (l *MessageLog) Capacity() int { return cap(l.buffer) }
