package fantasy

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRosterFull        = errors.New("roster is full")
	ErrDuplicatePlayer   = errors.New("player already on roster")
	ErrInvalidPosition   = errors.New("invalid player position")
	ErrExceededClubLimit = errors.New("max players from same club exceeded")
)

// Rules bounds roster composition when players are added.
type Rules struct {
	MaxRosterSize     int
	MaxPlayersPerClub int
	MaxPositionLen    int
}

func DefaultRules() Rules {
	return Rules{
		MaxRosterSize:     25,
		MaxPlayersPerClub: 0,
		MaxPositionLen:    8,
	}
}

// NormalizePosition upper-cases a position code such as "qb" or "wr/te".
func NormalizePosition(raw string, rules Rules) (string, error) {
	pos := strings.ToUpper(strings.TrimSpace(raw))
	if pos == "" {
		return "", fmt.Errorf("%w: position is required", ErrInvalidPosition)
	}
	if rules.MaxPositionLen > 0 && len(pos) > rules.MaxPositionLen {
		return "", fmt.Errorf("%w: %q exceeds %d characters", ErrInvalidPosition, raw, rules.MaxPositionLen)
	}
	for _, r := range pos {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '/' {
			return "", fmt.Errorf("%w: %q", ErrInvalidPosition, raw)
		}
	}
	return pos, nil
}

// ValidateAddition checks that candidate can join roster under rules.
func ValidateAddition(roster []Player, candidate NewPlayer, rules Rules) error {
	if rules.MaxRosterSize > 0 && len(roster) >= rules.MaxRosterSize {
		return fmt.Errorf("%w: max=%d", ErrRosterFull, rules.MaxRosterSize)
	}

	name := strings.ToLower(strings.TrimSpace(candidate.Name))
	club := strings.ToLower(strings.TrimSpace(candidate.Team))
	sameClub := 0
	for _, p := range roster {
		pClub := strings.ToLower(strings.TrimSpace(p.Team))
		if strings.ToLower(strings.TrimSpace(p.Name)) == name && pClub == club {
			return fmt.Errorf("%w: %s (%s)", ErrDuplicatePlayer, candidate.Name, candidate.Team)
		}
		if pClub == club {
			sameClub++
		}
	}
	if rules.MaxPlayersPerClub > 0 && sameClub >= rules.MaxPlayersPerClub {
		return fmt.Errorf("%w: club=%s max=%d", ErrExceededClubLimit, candidate.Team, rules.MaxPlayersPerClub)
	}

	return nil
}
