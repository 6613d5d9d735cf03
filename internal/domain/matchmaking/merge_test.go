package matchmaking

import (
	"fmt"
	"testing"

	"campus-start/internal/domain/user"

	"github.com/google/uuid"
)

func TestTruncateTopN_ShorterThanN(t *testing.T) {
	scored := []ScoredResult{{UserID: "a", Score: 0.9}, {UserID: "b", Score: 0.5}}
	got := TruncateTopN(scored, 10)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
}

func TestTruncateTopN_KeepsScorerOrder(t *testing.T) {
	scored := make([]ScoredResult, 0, 25)
	for i := 0; i < 25; i++ {
		scored = append(scored, ScoredResult{UserID: fmt.Sprintf("u%d", i), Score: float64(25 - i)})
	}

	got := TruncateTopN(scored, 10)
	if len(got) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(got))
	}
	for i := range got {
		if got[i].UserID != fmt.Sprintf("u%d", i) {
			t.Fatalf("entry %d: expected u%d, got %s", i, i, got[i].UserID)
		}
	}
}

func TestTruncateTopN_ZeroN(t *testing.T) {
	if got := TruncateTopN([]ScoredResult{{UserID: "a"}}, 0); len(got) != 0 {
		t.Fatalf("expected empty result for n=0, got %d", len(got))
	}
}

func TestMerge_PreservesOrderWhenAllResolve(t *testing.T) {
	users := make([]user.User, 0, 5)
	scored := make([]ScoredResult, 0, 5)
	for i := 0; i < 5; i++ {
		u := user.User{ID: uuid.New(), Username: fmt.Sprintf("user%d", i)}
		users = append(users, u)
		scored = append(scored, ScoredResult{UserID: u.ID.String(), Score: 1.0 - float64(i)*0.1})
	}

	// lookup order is not the scored order; merge must reorder by score rank
	shuffled := []user.User{users[3], users[0], users[4], users[2], users[1]}

	got := Merge(scored, shuffled)
	if len(got) != 5 {
		t.Fatalf("expected 5 results, got %d", len(got))
	}
	for i := range got {
		if got[i].UserID != scored[i].UserID {
			t.Fatalf("entry %d: expected %s, got %s", i, scored[i].UserID, got[i].UserID)
		}
		if got[i].MatchScore != scored[i].Score {
			t.Fatalf("entry %d: score changed: expected %v, got %v", i, scored[i].Score, got[i].MatchScore)
		}
	}
}

func TestMerge_DropsUnresolvedKeepingRelativeOrder(t *testing.T) {
	u1 := user.User{ID: uuid.New(), Username: "alice"}
	u3 := user.User{ID: uuid.New(), Username: "carol"}

	scored := []ScoredResult{
		{UserID: u1.ID.String(), Score: 0.9},
		{UserID: uuid.NewString(), Score: 0.7}, // deleted between scoring and merge
		{UserID: u3.ID.String(), Score: 0.5},
	}

	got := Merge(scored, []user.User{u3, u1})
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Username != "alice" || got[1].Username != "carol" {
		t.Fatalf("unexpected order: %s, %s", got[0].Username, got[1].Username)
	}
	if got[0].MatchScore != 0.9 || got[1].MatchScore != 0.5 {
		t.Fatalf("scores not attached verbatim: %v, %v", got[0].MatchScore, got[1].MatchScore)
	}
}

func TestMerge_GarbageIDsProduceNoPlaceholders(t *testing.T) {
	scored := []ScoredResult{
		{UserID: "not-a-real-id", Score: 0.8},
		{UserID: "", Score: 0.4},
	}
	if got := Merge(scored, nil); len(got) != 0 {
		t.Fatalf("expected empty merge, got %d entries", len(got))
	}
}
