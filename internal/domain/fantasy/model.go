package fantasy

import (
	"time"

	"github.com/riskibarqy/betting-analytics/internal/platform/jsondoc"
)

// Team is a user's fantasy roster for one league and season.
type Team struct {
	ID            string
	UserID        string
	Name          string
	League        string
	ScoringFormat string
	Season        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type NewTeam struct {
	UserID        string
	Name          string
	League        string
	ScoringFormat string
	Season        string
}

type TeamPatch struct {
	Name          *string
	League        *string
	ScoringFormat *string
	Season        *string
}

// Player is a rostered player. Team is the player's real-world club.
type Player struct {
	ID          string
	TeamID      string
	Name        string
	Position    string
	Team        string
	Stats       jsondoc.Object
	Projections jsondoc.Object
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NewPlayer struct {
	TeamID      string
	Name        string
	Position    string
	Team        string
	Stats       jsondoc.Object
	Projections jsondoc.Object
}

type PlayerPatch struct {
	Name        *string
	Position    *string
	Team        *string
	Stats       *jsondoc.Object
	Projections *jsondoc.Object
}
