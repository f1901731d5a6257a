package domain

import (
	"hivemind/internal/core/types"
	"hivemind/internal/core/types/enums"
)

// Entity - любая сущность мира. Поведение задается тремя способностями,
// которые планировщик вызывает явно. Пустая строка = нет сообщения.
type Entity interface {
	ID() types.EntityID
	SetID(id types.EntityID)
	Kind() enums.EntityKind
	Name() string

	Pos() Position
	SetPos(p Position)
	Glyph() types.Glyph
	Health() *Vitals

	Solid() bool
	Seethrough() bool
	Detectable() bool

	MarkedForDeath() bool
	MarkForDeath()
	BornTurn() int
	SetBornTurn(turn int)

	OnBumpInteract(ctx *Context, p *Player) string
	OnPassOver(ctx *Context, p *Player) string
	OnMyTurn(ctx *Context, p *Player) string
}

// Base - общие поля сущностей и способности по умолчанию (ничего не делают).
// Варианты встраивают Base и переопределяют нужное.
type Base struct {
	id   types.EntityID
	kind enums.EntityKind
	name string

	pos    Position
	glyph  types.Glyph
	health Vitals

	solid      bool
	seethrough bool
	detectable bool

	markedForDeath bool
	bornTurn       int
}

// NewBase создает основу сущности. По умолчанию сущность твердая,
// непрозрачная и видна в памяти (detectable).
func NewBase(kind enums.EntityKind, name string, pos Position, glyph types.Glyph, health int) Base {
	return Base{
		kind:       kind,
		name:       name,
		pos:        pos,
		glyph:      glyph,
		health:     NewVitals(health),
		solid:      true,
		detectable: true,
	}
}

func (b *Base) ID() types.EntityID      { return b.id }
func (b *Base) SetID(id types.EntityID) { b.id = id }
func (b *Base) Kind() enums.EntityKind  { return b.kind }
func (b *Base) Name() string            { return b.name }
func (b *Base) Pos() Position           { return b.pos }
func (b *Base) SetPos(p Position)       { b.pos = p }
func (b *Base) Glyph() types.Glyph      { return b.glyph }
func (b *Base) Health() *Vitals         { return &b.health }
func (b *Base) Solid() bool             { return b.solid }
func (b *Base) Seethrough() bool        { return b.seethrough }
func (b *Base) Detectable() bool        { return b.detectable }
func (b *Base) MarkedForDeath() bool    { return b.markedForDeath }
func (b *Base) MarkForDeath()           { b.markedForDeath = true }
func (b *Base) BornTurn() int           { return b.bornTurn }
func (b *Base) SetBornTurn(turn int)    { b.bornTurn = turn }

func (b *Base) SetGlyph(g types.Glyph) { b.glyph = g }
func (b *Base) SetSolid(v bool)        { b.solid = v }
func (b *Base) SetSeethrough(v bool)   { b.seethrough = v }
func (b *Base) SetDetectable(v bool)   { b.detectable = v }

func (b *Base) OnBumpInteract(_ *Context, _ *Player) string { return "" }
func (b *Base) OnPassOver(_ *Context, _ *Player) string     { return "" }
func (b *Base) OnMyTurn(_ *Context, _ *Player) string       { return "" }
