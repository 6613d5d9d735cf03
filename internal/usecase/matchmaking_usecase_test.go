package usecase

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"strings"
	"testing"

	"campus-start/internal/domain/idea"
	"campus-start/internal/domain/matchmaking"
	"campus-start/internal/domain/user"
	"campus-start/internal/infrastructure/scorer"

	"github.com/google/uuid"
)

type fakeIdeaRepo struct {
	ideas map[uuid.UUID]idea.Idea
	err   error
}

func (f *fakeIdeaRepo) Create(context.Context, idea.Idea) error { return nil }
func (f *fakeIdeaRepo) GetByID(_ context.Context, id uuid.UUID) (idea.Idea, error) {
	if f.err != nil {
		return idea.Idea{}, f.err
	}
	i, ok := f.ideas[id]
	if !ok {
		return idea.Idea{}, idea.ErrNotFound
	}
	return i, nil
}
func (f *fakeIdeaRepo) ListByOwner(context.Context, uuid.UUID) ([]idea.Idea, error) {
	return nil, nil
}

// fakeUserStore behaves like the real store: role/skill filtering, lookups
// that silently omit missing ids.
type fakeUserStore struct {
	users map[uuid.UUID]user.User

	findCalls    int
	lookupErr    error
	findErr      error
	lastResolved []uuid.UUID
}

func newFakeUserStore(users ...user.User) *fakeUserStore {
	m := make(map[uuid.UUID]user.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserStore{users: m}
}

func (f *fakeUserStore) CreateUser(context.Context, user.User) error { return nil }
func (f *fakeUserStore) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}
func (f *fakeUserStore) GetUserByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (f *fakeUserStore) ExistsByEmail(context.Context, string) (bool, error)    { return false, nil }
func (f *fakeUserStore) ExistsByUsername(context.Context, string) (bool, error) { return false, nil }
func (f *fakeUserStore) UpdateUser(context.Context, user.User) error            { return nil }

func (f *fakeUserStore) GetUsersByIDs(_ context.Context, ids []uuid.UUID) ([]user.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	f.lastResolved = ids
	out := make([]user.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) FindIDsByRoleOrSkills(_ context.Context, roles []string, skills []string) ([]uuid.UUID, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}

	roleSet := make(map[string]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}
	skillSet := make(map[string]bool, len(skills))
	for _, s := range skills {
		skillSet[s] = true
	}

	out := make([]uuid.UUID, 0)
	for _, u := range f.users {
		if roleSet[string(u.Role)] {
			out = append(out, u.ID)
			continue
		}
		for _, s := range u.Skills {
			if skillSet[s] {
				out = append(out, u.ID)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out, nil
}

// fakeScorer ranks candidates deterministically: candidates whose text is
// longer score higher, mirroring an already-sorted external response.
type fakeScorer struct {
	calls   int
	err     error
	results []matchmaking.ScoredResult
}

func (f *fakeScorer) Rank(_ context.Context, ideaText string, candidates []matchmaking.Candidate) ([]matchmaking.ScoredResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.results != nil {
		return f.results, nil
	}

	out := make([]matchmaking.ScoredResult, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, matchmaking.ScoredResult{UserID: c.UserID, Score: float64(len(c.Text))})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

var _ scorer.Client = (*fakeScorer)(nil)

func mkUser(name string, role user.Role, skills ...string) user.User {
	return user.User{
		ID:               uuid.New(),
		Username:         name,
		Role:             role,
		Skills:           skills,
		MatchProfileText: user.BuildMatchProfileText(skills, nil, role, ""),
	}
}

func mkIdea(owner uuid.UUID, skills, roles []string) idea.Idea {
	return idea.Idea{
		ID:             uuid.New(),
		Title:          "Campus food delivery",
		Description:    "hyperlocal delivery for campus canteens",
		RequiredSkills: skills,
		RolesNeeded:    roles,
		TeamSize:       3,
		CreatedBy:      owner,
	}
}

func TestRankCandidates_IdeaNotFound(t *testing.T) {
	store := newFakeUserStore()
	sc := &fakeScorer{}
	uc := NewMatchmakingUsecase(&fakeIdeaRepo{ideas: map[uuid.UUID]idea.Idea{}}, store, sc, 10, nil)

	_, err := uc.RankCandidatesForIdea(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrIdeaNotFound) {
		t.Fatalf("expected ErrIdeaNotFound, got %v", err)
	}
	if store.findCalls != 0 {
		t.Fatalf("candidate selection ran for a missing idea")
	}
	if sc.calls != 0 {
		t.Fatalf("scorer called for a missing idea")
	}
}

func TestRankCandidates_NoRequirementsMatchesNobody(t *testing.T) {
	dev := mkUser("dev", user.RoleDeveloper, "Go")
	store := newFakeUserStore(dev)
	sc := &fakeScorer{}

	i := mkIdea(uuid.New(), nil, nil)
	uc := NewMatchmakingUsecase(&fakeIdeaRepo{ideas: map[uuid.UUID]idea.Idea{i.ID: i}}, store, sc, 10, nil)

	got, err := uc.RankCandidatesForIdea(context.Background(), i.ID, uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
	if store.findCalls != 0 {
		t.Fatalf("store queried despite empty requirements")
	}
	if sc.calls != 0 {
		t.Fatalf("scorer called despite empty requirements")
	}
}

func TestRankCandidates_EmptyCandidateSetSkipsScorer(t *testing.T) {
	marketer := mkUser("marketer", user.RoleMarketer, "SEO")
	store := newFakeUserStore(marketer)
	sc := &fakeScorer{}

	i := mkIdea(uuid.New(), []string{"Rust"}, []string{"Developer"})
	uc := NewMatchmakingUsecase(&fakeIdeaRepo{ideas: map[uuid.UUID]idea.Idea{i.ID: i}}, store, sc, 10, nil)

	got, err := uc.RankCandidatesForIdea(context.Background(), i.ID, uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
	if sc.calls != 0 {
		t.Fatalf("scorer called with no candidates")
	}
}

func TestRankCandidates_RoleOrSkillSelection(t *testing.T) {
	// one matches by skill despite a different role, one matches nothing
	designer := mkUser("designer", user.RoleDesigner, "React")
	marketer := mkUser("marketer", user.RoleMarketer)
	store := newFakeUserStore(designer, marketer)

	i := mkIdea(uuid.New(), []string{"React", "Node"}, []string{"Developer"})
	uc := NewMatchmakingUsecase(&fakeIdeaRepo{ideas: map[uuid.UUID]idea.Idea{i.ID: i}}, store, &fakeScorer{}, 10, nil)

	got, err := uc.RankCandidatesForIdea(context.Background(), i.ID, uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(got))
	}
	if got[0].Username != "designer" {
		t.Fatalf("expected designer, got %s", got[0].Username)
	}
}

func TestRankCandidates_DeletedUserDroppedFromMerge(t *testing.T) {
	u1 := mkUser("u1", user.RoleDeveloper, "Go")
	store := newFakeUserStore(u1)

	sc := &fakeScorer{results: []matchmaking.ScoredResult{
		{UserID: u1.ID.String(), Score: 0.9},
		{UserID: uuid.NewString(), Score: 0.7}, // deleted before merge
	}}

	i := mkIdea(uuid.New(), []string{"Go"}, nil)
	uc := NewMatchmakingUsecase(&fakeIdeaRepo{ideas: map[uuid.UUID]idea.Idea{i.ID: i}}, store, sc, 10, nil)

	got, err := uc.RankCandidatesForIdea(context.Background(), i.ID, uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Username != "u1" || got[0].MatchScore != 0.9 {
		t.Fatalf("unexpected result: %+v", got[0])
	}
}

func TestRankCandidates_ScorerDownIsServiceUnavailable(t *testing.T) {
	dev := mkUser("dev", user.RoleDeveloper, "Go")
	store := newFakeUserStore(dev)
	sc := &fakeScorer{err: scorer.ErrUnavailable}

	i := mkIdea(uuid.New(), []string{"Go"}, nil)
	uc := NewMatchmakingUsecase(&fakeIdeaRepo{ideas: map[uuid.UUID]idea.Idea{i.ID: i}}, store, sc, 10, nil)

	got, err := uc.RankCandidatesForIdea(context.Background(), i.ID, uuid.New())
	if !errors.Is(err, ErrScoringServiceUnavailable) {
		t.Fatalf("expected ErrScoringServiceUnavailable, got %v", err)
	}
	if got != nil {
		t.Fatalf("no partial results expected, got %d", len(got))
	}
}

func TestRankCandidates_TruncatesToTopN(t *testing.T) {
	users := make([]user.User, 0, 25)
	scored := make([]matchmaking.ScoredResult, 0, 25)
	for i := 0; i < 25; i++ {
		u := mkUser(uuid.NewString()[:8], user.RoleDeveloper, "Go")
		users = append(users, u)
		scored = append(scored, matchmaking.ScoredResult{UserID: u.ID.String(), Score: float64(25 - i)})
	}
	store := newFakeUserStore(users...)
	sc := &fakeScorer{results: scored}

	i := mkIdea(uuid.New(), []string{"Go"}, nil)
	uc := NewMatchmakingUsecase(&fakeIdeaRepo{ideas: map[uuid.UUID]idea.Idea{i.ID: i}}, store, sc, 10, nil)

	got, err := uc.RankCandidatesForIdea(context.Background(), i.ID, uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("expected 10 results, got %d", len(got))
	}
	for j := range got {
		if got[j].UserID != scored[j].UserID {
			t.Fatalf("result %d out of scorer order", j)
		}
	}
	if len(store.lastResolved) != 10 {
		t.Fatalf("expected exactly the top 10 to be resolved, got %d", len(store.lastResolved))
	}
}

func TestRankCandidates_Idempotent(t *testing.T) {
	a := mkUser("alice", user.RoleDeveloper, "Go", "React")
	b := mkUser("bob", user.RoleDesigner, "Figma")
	store := newFakeUserStore(a, b)

	i := mkIdea(uuid.New(), []string{"Go", "Figma"}, nil)
	uc := NewMatchmakingUsecase(&fakeIdeaRepo{ideas: map[uuid.UUID]idea.Idea{i.ID: i}}, store, &fakeScorer{}, 10, nil)

	first, err := uc.RankCandidatesForIdea(context.Background(), i.ID, uuid.New())
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := uc.RankCandidatesForIdea(context.Background(), i.ID, uuid.New())
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ across identical calls:\n%+v\n%+v", first, second)
	}
}

func TestRankCandidates_InternalFaultIsMatchmakingFailed(t *testing.T) {
	dev := mkUser("dev", user.RoleDeveloper, "Go")
	store := newFakeUserStore(dev)
	store.lookupErr = errors.New("connection reset")

	i := mkIdea(uuid.New(), []string{"Go"}, nil)
	uc := NewMatchmakingUsecase(&fakeIdeaRepo{ideas: map[uuid.UUID]idea.Idea{i.ID: i}}, store, &fakeScorer{}, 10, nil)

	_, err := uc.RankCandidatesForIdea(context.Background(), i.ID, uuid.New())
	if !errors.Is(err, ErrMatchmakingFailed) {
		t.Fatalf("expected ErrMatchmakingFailed, got %v", err)
	}
}

func TestRankCandidates_NilRequester(t *testing.T) {
	uc := NewMatchmakingUsecase(&fakeIdeaRepo{}, newFakeUserStore(), &fakeScorer{}, 10, nil)
	_, err := uc.RankCandidatesForIdea(context.Background(), uuid.New(), uuid.Nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestBuildIdeaText_IncludesRequirementFields(t *testing.T) {
	i := idea.Idea{
		Title:          "Campus food delivery",
		Description:    "hyperlocal",
		RequiredSkills: []string{"Go", "React"},
		DomainTags:     []string{"Food", "Logistics"},
	}
	text := buildIdeaText(i)
	for _, want := range []string{"Campus food delivery", "hyperlocal", "Go React", "Food Logistics"} {
		if !strings.Contains(text, want) {
			t.Fatalf("idea text missing %q: %q", want, text)
		}
	}
}
