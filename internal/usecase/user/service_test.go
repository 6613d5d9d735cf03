package user

import (
	"context"
	"strings"
	"testing"

	"campus-start/internal/domain/user"

	"github.com/google/uuid"
)

type fakeRepo struct {
	users map[uuid.UUID]user.User
}

func newFakeRepo(users ...user.User) *fakeRepo {
	m := make(map[uuid.UUID]user.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeRepo{users: m}
}

func (f *fakeRepo) CreateUser(_ context.Context, u user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(context.Background(), email)
	return err == nil, nil
}

func (f *fakeRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) UpdateUser(_ context.Context, u user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepo) GetUsersByIDs(_ context.Context, ids []uuid.UUID) ([]user.User, error) {
	out := make([]user.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindIDsByRoleOrSkills(context.Context, []string, []string) ([]uuid.UUID, error) {
	return nil, nil
}

func strptr(s string) *string { return &s }

func TestUpdateMe_RecomputesMatchText(t *testing.T) {
	u := user.User{ID: uuid.New(), Username: "alice", Role: user.RoleOther}
	repo := newFakeRepo(u)
	svc := NewService(repo)

	skills := []string{"Go", "Postgres"}
	got, err := svc.UpdateMe(context.Background(), u.ID, UpdateMeInput{
		Role:     strptr("Developer"),
		Skills:   &skills,
		Headline: strptr("backend tinkerer"),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := user.BuildMatchProfileText(skills, nil, user.RoleDeveloper, "backend tinkerer")
	if got.MatchProfileText != want {
		t.Fatalf("match text = %q, want %q", got.MatchProfileText, want)
	}
	for _, part := range []string{"Go", "Postgres", "Developer", "backend tinkerer"} {
		if !strings.Contains(got.MatchProfileText, part) {
			t.Fatalf("match text missing %q: %q", part, got.MatchProfileText)
		}
	}
}

func TestUpdateMe_NonMatchFieldsLeaveTextAlone(t *testing.T) {
	u := user.User{
		ID:               uuid.New(),
		Username:         "bob",
		Role:             user.RoleDesigner,
		Skills:           []string{"Figma"},
		MatchProfileText: user.BuildMatchProfileText([]string{"Figma"}, nil, user.RoleDesigner, ""),
	}
	repo := newFakeRepo(u)
	svc := NewService(repo)

	got, err := svc.UpdateMe(context.Background(), u.ID, UpdateMeInput{Bio: strptr("hello")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.MatchProfileText != u.MatchProfileText {
		t.Fatalf("match text changed on unrelated update: %q", got.MatchProfileText)
	}
	if got.Bio != "hello" {
		t.Fatalf("bio not updated: %q", got.Bio)
	}
}

func TestUpdateMe_UnknownRoleFallsBackToOther(t *testing.T) {
	u := user.User{ID: uuid.New(), Username: "carol"}
	repo := newFakeRepo(u)
	svc := NewService(repo)

	got, err := svc.UpdateMe(context.Background(), u.ID, UpdateMeInput{Role: strptr("Wizard")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Role != user.RoleOther {
		t.Fatalf("role = %q, want %q", got.Role, user.RoleOther)
	}
}

func TestUpdateMe_ShortPasswordRejected(t *testing.T) {
	u := user.User{ID: uuid.New(), Username: "dave"}
	repo := newFakeRepo(u)
	svc := NewService(repo)

	if _, err := svc.UpdateMe(context.Background(), u.ID, UpdateMeInput{Password: strptr("short")}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetMe_SanitizesPasswordHash(t *testing.T) {
	u := user.User{ID: uuid.New(), Username: "erin", PasswordHash: "secret"}
	repo := newFakeRepo(u)
	svc := NewService(repo)

	got, err := svc.GetMe(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}
}

func TestGetMe_MissingUser(t *testing.T) {
	svc := NewService(newFakeRepo())
	if _, err := svc.GetMe(context.Background(), uuid.New()); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
