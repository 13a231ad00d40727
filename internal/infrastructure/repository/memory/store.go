package memory

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/betting-analytics/internal/domain/betslip"
	"github.com/riskibarqy/betting-analytics/internal/domain/chat"
	"github.com/riskibarqy/betting-analytics/internal/domain/fantasy"
	"github.com/riskibarqy/betting-analytics/internal/domain/user"
	"github.com/riskibarqy/betting-analytics/internal/platform/id"
)

var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrInvalidEnumValue    = errors.New("invalid input value for enum")
)

// Store keeps every table behind one lock so cascades stay atomic.
type Store struct {
	mu  sync.RWMutex
	ids id.Generator
	now func() time.Time

	seq   uint64
	order map[string]uint64

	users       map[string]user.User
	betSlips    map[string]betslip.BetSlip
	groups      map[string]chat.Group
	memberships map[string]chat.Membership
	messages    map[string]chat.Message
	teams       map[string]fantasy.Team
	players     map[string]fantasy.Player
}

func NewStore(ids id.Generator) *Store {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &Store{
		ids:         ids,
		now:         func() time.Time { return time.Now().UTC() },
		order:       make(map[string]uint64),
		users:       make(map[string]user.User),
		betSlips:    make(map[string]betslip.BetSlip),
		groups:      make(map[string]chat.Group),
		memberships: make(map[string]chat.Membership),
		messages:    make(map[string]chat.Message),
		teams:       make(map[string]fantasy.Team),
		players:     make(map[string]fantasy.Player),
	}
}

// SetClock replaces the timestamp source. A nil clock restores UTC wall time.
func (s *Store) SetClock(now func() time.Time) {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// nextID must be called with the write lock held.
func (s *Store) nextID() (string, error) {
	v, err := s.ids.NewID()
	if err != nil {
		return "", err
	}
	s.seq++
	s.order[v] = s.seq
	return v, nil
}

func (s *Store) forget(rowID string) {
	delete(s.order, rowID)
}

// sortByCreation orders ids oldest first.
func (s *Store) sortByCreation(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		return s.order[ids[i]] < s.order[ids[j]]
	})
}

// deleteUserCascade must be called with the write lock held.
func (s *Store) deleteUserCascade(userID string) {
	for slipID, slip := range s.betSlips {
		if slip.UserID == userID {
			delete(s.betSlips, slipID)
			s.forget(slipID)
		}
	}
	for membershipID, m := range s.memberships {
		if m.UserID == userID {
			delete(s.memberships, membershipID)
			s.forget(membershipID)
		}
	}
	for messageID, msg := range s.messages {
		if msg.UserID == userID {
			s.deleteMessage(messageID)
		}
	}
	for teamID, team := range s.teams {
		if team.UserID == userID {
			s.deleteTeamCascade(teamID)
		}
	}
	if u, ok := s.users[userID]; ok {
		s.forget(u.ID)
	}
	delete(s.users, userID)
}

func (s *Store) deleteGroupCascade(groupID string) {
	for membershipID, m := range s.memberships {
		if m.GroupID == groupID {
			delete(s.memberships, membershipID)
			s.forget(membershipID)
		}
	}
	for messageID, msg := range s.messages {
		if msg.GroupID == groupID {
			s.deleteMessage(messageID)
		}
	}
	delete(s.groups, groupID)
	s.forget(groupID)
}

// deleteMessage detaches replies instead of removing them.
func (s *Store) deleteMessage(messageID string) {
	if _, ok := s.messages[messageID]; !ok {
		return
	}
	delete(s.messages, messageID)
	s.forget(messageID)

	for replyID, reply := range s.messages {
		if reply.ParentMessageID == messageID {
			reply.ParentMessageID = ""
			s.messages[replyID] = reply
		}
	}
}

func (s *Store) deleteTeamCascade(teamID string) {
	for playerID, p := range s.players {
		if p.TeamID == teamID {
			delete(s.players, playerID)
			s.forget(playerID)
		}
	}
	delete(s.teams, teamID)
	s.forget(teamID)
}
