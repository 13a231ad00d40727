package fantasy

import (
	"errors"
	"testing"
)

func TestNormalizePosition(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "qb", want: "QB"},
		{in: " wr/te ", want: "WR/TE"},
		{in: "D1", want: "D1"},
		{in: "", wantErr: true},
		{in: "point guard", wantErr: true},
		{in: "ABCDEFGHIJ", wantErr: true},
	}

	for _, tt := range tests {
		got, err := NormalizePosition(tt.in, rules)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidPosition) {
				t.Fatalf("NormalizePosition(%q) expected ErrInvalidPosition, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("NormalizePosition(%q)=%q,%v want=%q", tt.in, got, err, tt.want)
		}
	}
}

func TestValidateAddition(t *testing.T) {
	roster := []Player{
		{Name: "Patrick Mahomes", Team: "KC", Position: "QB"},
		{Name: "Travis Kelce", Team: "KC", Position: "TE"},
		{Name: "Justin Jefferson", Team: "MIN", Position: "WR"},
	}

	tests := []struct {
		name      string
		rules     Rules
		candidate NewPlayer
		targetErr error
	}{
		{
			name:      "valid addition",
			rules:     DefaultRules(),
			candidate: NewPlayer{Name: "Bijan Robinson", Team: "ATL", Position: "RB"},
		},
		{
			name:      "duplicate ignores case",
			rules:     DefaultRules(),
			candidate: NewPlayer{Name: "travis kelce", Team: "kc", Position: "TE"},
			targetErr: ErrDuplicatePlayer,
		},
		{
			name:      "roster full",
			rules:     Rules{MaxRosterSize: 3},
			candidate: NewPlayer{Name: "Bijan Robinson", Team: "ATL", Position: "RB"},
			targetErr: ErrRosterFull,
		},
		{
			name:      "club limit",
			rules:     Rules{MaxRosterSize: 10, MaxPlayersPerClub: 2},
			candidate: NewPlayer{Name: "Isiah Pacheco", Team: "KC", Position: "RB"},
			targetErr: ErrExceededClubLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddition(roster, tt.candidate, tt.rules)
			if tt.targetErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.targetErr) {
				t.Fatalf("expected %v, got %v", tt.targetErr, err)
			}
		})
	}
}
