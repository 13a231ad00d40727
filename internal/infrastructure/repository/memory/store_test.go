package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/betting-analytics/internal/domain/betslip"
	"github.com/riskibarqy/betting-analytics/internal/domain/chat"
	"github.com/riskibarqy/betting-analytics/internal/domain/fantasy"
	"github.com/riskibarqy/betting-analytics/internal/domain/user"
	"github.com/riskibarqy/betting-analytics/internal/platform/jsondoc"
)

func seedUser(t *testing.T, store *Store, userID string) user.User {
	t.Helper()

	u, err := NewUserRepository(store).Create(context.Background(), user.NewUser{UserID: userID, Email: userID + "@b.com"})
	if err != nil {
		t.Fatalf("seed user %s: %v", userID, err)
	}
	return u
}

func TestUserRepository_UniqueUserID(t *testing.T) {
	store := NewStore(nil)
	repo := NewUserRepository(store)

	u := seedUser(t, store, "u1")
	if u.Membership != user.MembershipFree {
		t.Fatalf("expected default membership free, got %s", u.Membership)
	}

	_, err := repo.Create(context.Background(), user.NewUser{UserID: "u1", Email: "other@b.com"})
	if !errors.Is(err, ErrUniqueViolation) {
		t.Fatalf("expected unique violation, got %v", err)
	}
}

func TestUserRepository_UpdateNeverInserts(t *testing.T) {
	repo := NewUserRepository(NewStore(nil))
	email := "x@b.com"

	_, found, err := repo.UpdateByUserID(context.Background(), "ghost", user.Patch{Email: &email})
	if err != nil {
		t.Fatalf("update missing user: %v", err)
	}
	if found {
		t.Fatalf("expected update of missing user to report not found")
	}
	if _, found, _ := repo.GetByUserID(context.Background(), "ghost"); found {
		t.Fatalf("update must not create a row")
	}
}

func TestUserRepository_ReturnsCopiesOfJSONDocuments(t *testing.T) {
	store := NewStore(nil)
	repo := NewUserRepository(store)
	ctx := context.Background()

	_, err := repo.Create(ctx, user.NewUser{UserID: "u1", Email: "a@b.com", LayoutConfig: jsondoc.Object{"columns": float64(2)}})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	got, _, _ := repo.GetByUserID(ctx, "u1")
	got.LayoutConfig["columns"] = float64(9)

	again, _, _ := repo.GetByUserID(ctx, "u1")
	if again.LayoutConfig["columns"] != float64(2) {
		t.Fatalf("stored document was mutated: %+v", again.LayoutConfig)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	store := NewStore(nil)
	clock := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	store.SetClock(func() time.Time { return clock })
	ctx := context.Background()
	seedUser(t, store, "u1")
	seedUser(t, store, "u2")

	slips := NewBetSlipRepository(store)
	chats := NewChatRepository(store)
	teams := NewFantasyRepository(store)

	slip, err := slips.Create(ctx, betslip.NewBetSlip{UserID: "u1", Odds: "2.0"})
	if err != nil {
		t.Fatalf("create bet slip: %v", err)
	}
	group, _ := chats.CreateGroup(ctx, chat.NewGroup{Name: "NBA"})
	if _, err := chats.AddMember(ctx, group.ID, "u1"); err != nil {
		t.Fatalf("add member: %v", err)
	}
	parent, err := chats.CreateMessage(ctx, chat.NewMessage{GroupID: group.ID, UserID: "u1", Content: "lakers -3.5"})
	if err != nil {
		t.Fatalf("create message: %v", err)
	}
	reply, err := chats.CreateMessage(ctx, chat.NewMessage{GroupID: group.ID, UserID: "u2", Content: "fade", ParentMessageID: parent.ID})
	if err != nil {
		t.Fatalf("create reply: %v", err)
	}
	team, _ := teams.CreateTeam(ctx, fantasy.NewTeam{UserID: "u1", Name: "Sharps", League: "NFL", ScoringFormat: "PPR", Season: "2026"})
	player, err := teams.AddPlayer(ctx, fantasy.NewPlayer{TeamID: team.ID, Name: "Player One", Position: "QB", Team: "KC"})
	if err != nil {
		t.Fatalf("add player: %v", err)
	}

	clock = clock.Add(time.Hour)
	deleted, err := NewUserRepository(store).DeleteByUserID(ctx, "u1")
	if err != nil || !deleted {
		t.Fatalf("delete user: deleted=%v err=%v", deleted, err)
	}

	if _, found, _ := slips.GetByID(ctx, slip.ID); found {
		t.Fatalf("expected bet slip to be removed")
	}
	if _, found, _ := chats.GetMembership(ctx, group.ID, "u1"); found {
		t.Fatalf("expected membership to be removed")
	}
	if _, found, _ := chats.GetMessage(ctx, parent.ID); found {
		t.Fatalf("expected message to be removed")
	}
	if _, found, _ := teams.GetTeam(ctx, team.ID); found {
		t.Fatalf("expected team to be removed")
	}
	if _, found, _ := teams.GetPlayer(ctx, player.ID); found {
		t.Fatalf("expected player to be removed")
	}

	got, found, _ := chats.GetMessage(ctx, reply.ID)
	if !found {
		t.Fatalf("expected reply by another user to survive")
	}
	if got.ParentMessageID != "" {
		t.Fatalf("expected reply to be detached, got parent %q", got.ParentMessageID)
	}
	if !got.UpdatedAt.Equal(reply.UpdatedAt) {
		t.Fatalf("detaching a reply must not touch updated_at: was %v, now %v", reply.UpdatedAt, got.UpdatedAt)
	}

	deleted, err = NewUserRepository(store).DeleteByUserID(ctx, "u1")
	if err != nil {
		t.Fatalf("repeat delete should not fail: %v", err)
	}
	if deleted {
		t.Fatalf("expected repeat delete to report nothing removed")
	}
}

func TestForeignKeysAreEnforced(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	if _, err := NewBetSlipRepository(store).Create(ctx, betslip.NewBetSlip{UserID: "ghost"}); !errors.Is(err, ErrForeignKeyViolation) {
		t.Fatalf("expected foreign key violation for bet slip, got %v", err)
	}
	if _, err := NewFantasyRepository(store).CreateTeam(ctx, fantasy.NewTeam{UserID: "ghost", Name: "x"}); !errors.Is(err, ErrForeignKeyViolation) {
		t.Fatalf("expected foreign key violation for team, got %v", err)
	}

	seedUser(t, store, "u1")
	chats := NewChatRepository(store)
	group, _ := chats.CreateGroup(ctx, chat.NewGroup{Name: "NFL"})
	_, err := chats.CreateMessage(ctx, chat.NewMessage{GroupID: group.ID, UserID: "u1", Content: "hi", ParentMessageID: "missing"})
	if !errors.Is(err, ErrForeignKeyViolation) {
		t.Fatalf("expected foreign key violation for parent message, got %v", err)
	}
}

func TestChatRepository_MembershipLifecycle(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()
	seedUser(t, store, "u1")
	chats := NewChatRepository(store)

	g1, _ := chats.CreateGroup(ctx, chat.NewGroup{Name: "NBA"})
	g2, _ := chats.CreateGroup(ctx, chat.NewGroup{Name: "NFL"})

	first, err := chats.AddMember(ctx, g2.ID, "u1")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	second, err := chats.AddMember(ctx, g2.ID, "u1")
	if err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected rejoin to return the existing membership")
	}
	if _, err := chats.AddMember(ctx, g1.ID, "u1"); err != nil {
		t.Fatalf("join second group: %v", err)
	}

	groups, _ := chats.ListGroupsByUser(ctx, "u1")
	if len(groups) != 2 || groups[0].ID != g1.ID || groups[1].ID != g2.ID {
		t.Fatalf("expected groups in creation order, got %+v", groups)
	}

	muted, found, err := chats.SetMuted(ctx, g2.ID, "u1", true)
	if err != nil || !found || !muted.IsMuted {
		t.Fatalf("mute: %+v found=%v err=%v", muted, found, err)
	}

	if removed, _ := chats.RemoveMember(ctx, g2.ID, "u1"); !removed {
		t.Fatalf("expected membership to be removed")
	}
	if removed, _ := chats.RemoveMember(ctx, g2.ID, "u1"); removed {
		t.Fatalf("expected second removal to be a no-op")
	}
}

func TestChatRepository_ListMessagesNewestFirst(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()
	seedUser(t, store, "u1")
	chats := NewChatRepository(store)
	group, _ := chats.CreateGroup(ctx, chat.NewGroup{Name: "MLB"})

	for _, content := range []string{"one", "two", "three"} {
		if _, err := chats.CreateMessage(ctx, chat.NewMessage{GroupID: group.ID, UserID: "u1", Content: content}); err != nil {
			t.Fatalf("create message: %v", err)
		}
	}

	got, err := chats.ListMessages(ctx, group.ID, 2)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(got) != 2 || got[0].Content != "three" || got[1].Content != "two" {
		t.Fatalf("unexpected messages: %+v", got)
	}
}

func TestBetSlipRepository_ListAndSummarize(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()
	seedUser(t, store, "u1")
	slips := NewBetSlipRepository(store)

	for _, status := range []betslip.Status{betslip.StatusWon, betslip.StatusLost, betslip.StatusWon, ""} {
		if _, err := slips.Create(ctx, betslip.NewBetSlip{UserID: "u1", Status: status}); err != nil {
			t.Fatalf("create bet slip: %v", err)
		}
	}

	won := betslip.StatusWon
	list, err := slips.ListByUser(ctx, "u1", betslip.ListFilter{Status: &won})
	if err != nil {
		t.Fatalf("list bet slips: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected two won slips, got %d", len(list))
	}

	recent, _ := slips.ListByUser(ctx, "u1", betslip.ListFilter{Limit: 1})
	if len(recent) != 1 || recent[0].Status != betslip.StatusOpen {
		t.Fatalf("expected newest slip first, got %+v", recent)
	}

	summary, _ := slips.SummarizeByUser(ctx, "u1")
	if summary != (betslip.Summary{Total: 4, Open: 1, Won: 2, Lost: 1}) {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4}
	if got := page(items, 2, 1); len(got) != 2 || got[0] != 2 {
		t.Fatalf("unexpected page: %v", got)
	}
	if got := page(items, 0, 10); len(got) != 0 {
		t.Fatalf("expected empty page past the end, got %v", got)
	}
}

func TestUserRepository_UpdateRefreshesUpdatedAtOnly(t *testing.T) {
	store := NewStore(nil)
	created := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	clock := created
	store.SetClock(func() time.Time { return clock })
	ctx := context.Background()
	repo := NewUserRepository(store)

	u := seedUser(t, store, "u1")
	if !u.CreatedAt.Equal(created) || !u.UpdatedAt.Equal(created) {
		t.Fatalf("unexpected create timestamps: %+v", u)
	}

	clock = created.Add(5 * time.Minute)
	updated, found, err := repo.UpdateByUserID(ctx, "u1", user.Patch{})
	if err != nil || !found {
		t.Fatalf("update user: found=%v err=%v", found, err)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Fatalf("created_at changed: %v", updated.CreatedAt)
	}
	if !updated.UpdatedAt.Equal(clock) {
		t.Fatalf("expected updated_at %v, got %v", clock, updated.UpdatedAt)
	}
}

func TestUserRepository_RejectsUnknownMembership(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore(nil))

	_, err := repo.Create(ctx, user.NewUser{UserID: "u1", Email: "a@b.com", Membership: "PAID"})
	if !errors.Is(err, ErrInvalidEnumValue) {
		t.Fatalf("expected ErrInvalidEnumValue, got %v", err)
	}

	seedUser(t, repo.store, "u2")
	bad := user.Membership("gold")
	if _, _, err := repo.UpdateByUserID(ctx, "u2", user.Patch{Membership: &bad}); !errors.Is(err, ErrInvalidEnumValue) {
		t.Fatalf("expected ErrInvalidEnumValue on update, got %v", err)
	}
}
