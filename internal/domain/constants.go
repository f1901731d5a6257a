package domain

// Палитра терминала: индексы цветовых пар
const (
	ColorWhite uint8 = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorBright
)

// ColorRemembered - цвет тайлов, которые видели, но сейчас не видно
const ColorRemembered = ColorBlue

// Символы тайлов
const (
	CharFloor = '.'
	CharWall  = '#'
	CharTree  = 'T'
	CharBlood = ','
)

// Символы сущностей
const (
	CharPlayer       = '@'
	CharDoorClosed   = '+'
	CharDoorOpen     = '/'
	CharWindow       = '='
	CharWindowOpen   = '-'
	CharWindowBroken = 'X'
	CharCorpse       = '%'
	CharZombie       = 'Z'
	CharBloater      = 'B'
)

// Параметры игрока
const (
	PlayerMaxHealth   = 10
	PlayerMaxFood     = 10
	PlayerMaxWater    = 10
	PlayerSightRadius = 6
	PlayerNoise       = 3
)

// Прочность сущностей
const (
	DoorHealth    = 10
	WindowHealth  = 5
	CorpseHealth  = 5
	ZombieHealth  = 6
	BloaterHealth = 4
)

// Вероятности и пороги
const (
	DoorLockChance         = 0.8
	WindowLockChance       = 0.5
	LacerationChance       = 0.8
	LacerationDamage       = 2
	BleedClearChance       = 0.05
	BleedStainChance       = 0.5
	InfectionDamageChance  = 0.1
	BloodInfectionChance   = 0.1
	ZombieBiteInfectChance = 0.2

	AttackMinDamage = 2
	AttackMaxDamage = 3
	BiteMinDamage   = 1
	BiteMaxDamage   = 2

	CorpseMinTurns = 20
	CorpseMaxTurns = 60

	ZombieAggroRadius     = 8
	BloaterChance         = 0.2
	BloaterBurstRadius    = 6
	BloaterBurstIntensity = 6

	// Каждые HungerInterval шагов игрок теряет 1 еды и 1 воды
	HungerInterval = 15
	// Через столько шагов без сна наступает Exhausted
	ExhaustionTurns = 300
)
