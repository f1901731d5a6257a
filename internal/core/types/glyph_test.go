package types

import (
	"testing"
)

func TestMakeGlyph(t *testing.T) {
	type args struct {
		color uint8
		char  byte
	}

	tests := []struct {
		name string
		args args
		want Glyph
	}{
		{
			name: "green tree",
			args: args{color: 2, char: 'T'},
			want: Glyph(0x0254),
		},
		{
			name: "white floor",
			args: args{color: 0, char: '.'},
			want: Glyph(0x002E),
		},
		{
			name: "red blood",
			args: args{color: 1, char: ','},
			want: Glyph(0x012C),
		},
		{
			name: "max color",
			args: args{color: 0xFF, char: '#'},
			want: Glyph(0xFF23),
		},
		{
			name: "zero char",
			args: args{color: 3, char: 0},
			want: Glyph(0x0300),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MakeGlyph(tt.args.color, tt.args.char); got != tt.want {
				t.Errorf("MakeGlyph() = 0x%04X, want 0x%04X", got, tt.want)
			}
		})
	}
}

func TestGlyph_CharAndColor(t *testing.T) {
	tests := []struct {
		name      string
		g         Glyph
		wantChar  byte
		wantColor uint8
	}{
		{"green tree", Glyph(0x0254), 'T', 2},
		{"blue wall", Glyph(0x0323), '#', 3},
		{"ignores high bits", Glyph(0xABCD0254), 'T', 2},
		{"zero", Glyph(0), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.Char(); got != tt.wantChar {
				t.Errorf("Char() = %q, want %q", got, tt.wantChar)
			}
			if got := tt.g.Color(); got != tt.wantColor {
				t.Errorf("Color() = %d, want %d", got, tt.wantColor)
			}
		})
	}
}

func TestGlyph_WithColor(t *testing.T) {
	g := MakeGlyph(2, 'T')
	recolored := g.WithColor(3)

	if recolored.Char() != 'T' {
		t.Errorf("WithColor changed char: got %q", recolored.Char())
	}
	if recolored.Color() != 3 {
		t.Errorf("WithColor() color = %d, want 3", recolored.Color())
	}
	if g.Color() != 2 {
		t.Error("WithColor must not mutate the receiver")
	}
}

func TestGlyph_String(t *testing.T) {
	tests := []struct {
		name string
		g    Glyph
		want string
	}{
		{"printable", MakeGlyph(2, 'T'), "Glyph{char='T', color=2}"},
		{"space", MakeGlyph(0, ' '), "Glyph{char=' ', color=0}"},
		{"newline escape", MakeGlyph(7, '\n'), "Glyph{char='\\x0A', color=7}"},
		{"del escape", MakeGlyph(1, 0x7F), "Glyph{char='\\x7F', color=1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGlyph_WithChar(t *testing.T) {
	g := MakeGlyph(4, '+')
	opened := g.WithChar('/')

	if opened.Char() != '/' {
		t.Errorf("WithChar() char = %q, want '/'", opened.Char())
	}
	if opened.Color() != 4 {
		t.Errorf("WithChar changed color: got %d", opened.Color())
	}
}
