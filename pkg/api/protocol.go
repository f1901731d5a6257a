package api

// --- ВВОД -> ЯДРО ---

// Режимы намерения
const (
	ModeMove   = "MOVE"
	ModeAttack = "ATTACK"
)

// Intent - намерение игрока: единичный ортогональный шаг в заданном режиме.
// Фронтенд переводит в него нажатия клавиш.
type Intent struct {
	Dx   int    `json:"dx"`
	Dy   int    `json:"dy"`
	Mode string `json:"mode"` // MOVE, ATTACK
}

// --- ЯДРО -> ФРОНТЕНД ---

// Snapshot - снимок того, что нужно HUD и логу сообщений после хода.
// Карту и маски видимости фронтенд читает напрямую из игры.
type Snapshot struct {
	// Turn номер хода (растет только на совершенных шагах).
	Turn int `json:"turn"`

	// Grid метаданные о размере всей карты.
	Grid GridMeta `json:"grid"`

	Player PlayerView `json:"player"`

	// Messages последние сообщения, от старых к новым, уже с префиксом.
	Messages []string `json:"messages"`

	// GameOver true после смерти игрока; дальнейшие намерения отклоняются.
	GameOver bool `json:"gameOver"`
}

// GridMeta содержит общие размеры карты
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// PlayerView - состояние игрока для HUD
type PlayerView struct {
	X int `json:"x"`
	Y int `json:"y"`

	Health StatView `json:"health"`
	Food   StatView `json:"food"`
	Water  StatView `json:"water"`

	SightRadius int      `json:"sightRadius"`
	Noise       int      `json:"noise"`
	Mode        string   `json:"mode"`
	Statuses    []string `json:"statuses"`
	IsDead      bool     `json:"isDead"`
}

// StatView - ресурс с потолком
type StatView struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Fraction возвращает долю от максимума (для цвета полоски в HUD)
func (s StatView) Fraction() float64 {
	if s.Max <= 0 {
		return 0
	}
	return float64(s.Current) / float64(s.Max)
}
