package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-start/internal/domain/post"

	"github.com/google/uuid"
)

type fakePostRepo struct {
	items     map[uuid.UUID]post.FeedItem
	listCalls int
	createErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{items: map[uuid.UUID]post.FeedItem{}}
}

func (f *fakePostRepo) Create(_ context.Context, p post.Post) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.items[p.ID] = post.FeedItem{Post: p, AuthorUsername: "author", LikeUserIDs: []string{}}
	return nil
}

func (f *fakePostRepo) GetFeedItem(_ context.Context, id uuid.UUID) (post.FeedItem, error) {
	it, ok := f.items[id]
	if !ok {
		return post.FeedItem{}, post.ErrNotFound
	}
	return it, nil
}

func (f *fakePostRepo) ListFeed(_ context.Context, _, _ int) ([]post.FeedItem, error) {
	f.listCalls++
	out := make([]post.FeedItem, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	return out, nil
}

func (f *fakePostRepo) ListByAuthor(_ context.Context, authorID uuid.UUID) ([]post.FeedItem, error) {
	out := make([]post.FeedItem, 0)
	for _, it := range f.items {
		if it.Post.AuthorID == authorID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakePostRepo) ToggleLike(_ context.Context, postID, userID uuid.UUID) (bool, error) {
	it, ok := f.items[postID]
	if !ok {
		return false, post.ErrNotFound
	}
	for i, id := range it.LikeUserIDs {
		if id == userID.String() {
			it.LikeUserIDs = append(it.LikeUserIDs[:i], it.LikeUserIDs[i+1:]...)
			f.items[postID] = it
			return false, nil
		}
	}
	it.LikeUserIDs = append(it.LikeUserIDs, userID.String())
	f.items[postID] = it
	return true, nil
}

func (f *fakePostRepo) AddComment(_ context.Context, c post.Comment) error {
	it, ok := f.items[c.PostID]
	if !ok {
		return post.ErrNotFound
	}
	it.Comments = append(it.Comments, post.FeedComment{Comment: c})
	f.items[c.PostID] = it
	return nil
}

type fakeFeedCache struct {
	data            map[string][]post.FeedItem
	invalidations   int
	setCalls        int
	failingBackends bool
}

func newFakeFeedCache() *fakeFeedCache {
	return &fakeFeedCache{data: map[string][]post.FeedItem{}}
}

func (f *fakeFeedCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if f.failingBackends {
		return false, errors.New("cache down")
	}
	items, ok := f.data[key]
	if !ok {
		return false, nil
	}
	*(out.(*[]post.FeedItem)) = items
	return true, nil
}

func (f *fakeFeedCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if f.failingBackends {
		return errors.New("cache down")
	}
	f.setCalls++
	f.data[key] = value.([]post.FeedItem)
	return nil
}

func (f *fakeFeedCache) InvalidateFeed(context.Context) error {
	f.invalidations++
	f.data = map[string][]post.FeedItem{}
	return nil
}

type fakeNotifier struct{ posts []string }

func (f *fakeNotifier) NotifyFeedUpdated(postID string) { f.posts = append(f.posts, postID) }

func TestCreatePost_NotifiesAndInvalidates(t *testing.T) {
	repo := newFakePostRepo()
	cache := newFakeFeedCache()
	notifier := &fakeNotifier{}
	uc := NewPostUsecase(repo, cache, notifier, time.Minute, nil)

	item, err := uc.Create(context.Background(), uuid.New(), CreatePostInput{Content: "shipping this week"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.Post.Content != "shipping this week" {
		t.Fatalf("unexpected content %q", item.Post.Content)
	}
	if cache.invalidations != 1 {
		t.Fatalf("expected 1 cache invalidation, got %d", cache.invalidations)
	}
	if len(notifier.posts) != 1 || notifier.posts[0] != item.Post.ID.String() {
		t.Fatalf("notifier not signalled with post id: %v", notifier.posts)
	}
}

func TestCreatePost_EmptyContentRejected(t *testing.T) {
	uc := NewPostUsecase(newFakePostRepo(), nil, nil, time.Minute, nil)
	if _, err := uc.Create(context.Background(), uuid.New(), CreatePostInput{Content: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListFeed_ServesFromCache(t *testing.T) {
	repo := newFakePostRepo()
	cache := newFakeFeedCache()
	uc := NewPostUsecase(repo, cache, nil, time.Minute, nil)

	author := uuid.New()
	if _, err := uc.Create(context.Background(), author, CreatePostInput{Content: "hello"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := uc.ListFeed(context.Background(), 20, 0); err != nil {
		t.Fatalf("first list: %v", err)
	}
	if _, err := uc.ListFeed(context.Background(), 20, 0); err != nil {
		t.Fatalf("second list: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 repo list call, got %d", repo.listCalls)
	}
}

func TestListFeed_CacheDownDegradesToRepo(t *testing.T) {
	repo := newFakePostRepo()
	cache := newFakeFeedCache()
	cache.failingBackends = true
	uc := NewPostUsecase(repo, cache, nil, time.Minute, nil)

	items, err := uc.ListFeed(context.Background(), 20, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if items == nil {
		t.Fatalf("expected non-nil slice")
	}
	if repo.listCalls != 1 {
		t.Fatalf("repo not consulted when cache is down")
	}
}

func TestToggleLike_FlipsState(t *testing.T) {
	repo := newFakePostRepo()
	uc := NewPostUsecase(repo, nil, nil, time.Minute, nil)

	author := uuid.New()
	item, err := uc.Create(context.Background(), author, CreatePostInput{Content: "like me"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	liker := uuid.New()
	liked, err := uc.ToggleLike(context.Background(), item.Post.ID, liker)
	if err != nil || !liked {
		t.Fatalf("first toggle: liked=%v err=%v", liked, err)
	}
	liked, err = uc.ToggleLike(context.Background(), item.Post.ID, liker)
	if err != nil || liked {
		t.Fatalf("second toggle: liked=%v err=%v", liked, err)
	}
}

func TestToggleLike_MissingPost(t *testing.T) {
	uc := NewPostUsecase(newFakePostRepo(), nil, nil, time.Minute, nil)
	if _, err := uc.ToggleLike(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestAddComment_MissingPost(t *testing.T) {
	uc := NewPostUsecase(newFakePostRepo(), nil, nil, time.Minute, nil)
	if _, err := uc.AddComment(context.Background(), uuid.New(), uuid.New(), "hi"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
