package version

import (
	"strings"
	"testing"
)

func TestCalculateBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch date", date: "2026-01-01", expected: 0},
		{name: "next day after epoch", date: "2026-01-02", expected: 1},
		{name: "one year later", date: "2027-01-01", expected: 365},
		{name: "leap year included", date: "2029-01-01", expected: 1096},
		{name: "invalid format", date: "invalid", wantError: true},
		{name: "empty date", date: "", wantError: true},
		{name: "before epoch", date: "2025-12-31", wantError: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := CalculateBuildID(tt.date)

			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("CalculateBuildID() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "release",
			info: Info{BuildID: 10, BuildDate: "2026-01-11", Commit: "0123456789abcdef", Branch: "main", Calculated: true},
			want: "Hivemind build 10 (2026-01-11) commit[0123456789ab] branch[main]",
		},
		{
			name: "dev",
			info: Info{Dirty: true, Error: "build date is empty"},
			want: "Hivemind dev build commit[unknown+dirty] (build date is empty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGet_WithoutLdflags(t *testing.T) {
	info := Get()
	if info.Calculated {
		t.Fatalf("expected no build id without BuildDate, got %d", info.BuildID)
	}
	if !strings.HasPrefix(String(), "Hivemind dev build") {
		t.Errorf("String() = %q", String())
	}
}
