package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/repforge/repforge/internal/domain"
)

// In-memory fakes shared by the service tests. They implement just enough of
// the repository contracts for the service layer; persistence behavior is
// covered by the repository tests against real backends.

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*domain.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = fmt.Sprintf("u%d", len(f.users)+1)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByFirebaseUID(ctx context.Context, uid string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.FirebaseUID == uid {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, userID, name, goal string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == userID {
			u.Name = name
			u.Goal = goal
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

type fakeWorkoutRepo struct {
	mu      sync.Mutex
	records []*domain.WorkoutRecord
	nextID  int
}

func (f *fakeWorkoutRepo) Create(ctx context.Context, record *domain.WorkoutRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	record.ID = fmt.Sprintf("w%d", f.nextID)
	record.CreatedAt = time.Now()
	f.records = append(f.records, record)
	return nil
}

func (f *fakeWorkoutRepo) GetByID(ctx context.Context, id string) (*domain.WorkoutRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domain.ErrWorkoutNotFound
}

func (f *fakeWorkoutRepo) ListAll(ctx context.Context) ([]*domain.WorkoutRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.WorkoutRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeWorkoutRepo) ListByUser(ctx context.Context, userID string) ([]*domain.WorkoutRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.WorkoutRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeWorkoutRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrWorkoutNotFound
}

type fakeCache struct {
	mu          sync.Mutex
	leaderboard *domain.Leaderboard
	progress    map[string]*domain.ProgressSummary

	leaderboardInvalidations int
	progressInvalidations    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{progress: make(map[string]*domain.ProgressSummary)}
}

func (f *fakeCache) SetLeaderboard(ctx context.Context, board *domain.Leaderboard, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *board
	f.leaderboard = &copied
	return nil
}

func (f *fakeCache) GetLeaderboard(ctx context.Context) (*domain.Leaderboard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.leaderboard == nil {
		return nil, nil
	}
	copied := *f.leaderboard
	return &copied, nil
}

func (f *fakeCache) InvalidateLeaderboard(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leaderboard = nil
	f.leaderboardInvalidations++
	return nil
}

func (f *fakeCache) SetProgress(ctx context.Context, userID string, summary *domain.ProgressSummary, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progress[userID] = summary
	return nil
}

func (f *fakeCache) GetProgress(ctx context.Context, userID string) (*domain.ProgressSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.progress[userID], nil
}

func (f *fakeCache) InvalidateProgress(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.progress, userID)
	f.progressInvalidations++
	return nil
}

type fakeAuthClient struct {
	tokens map[string]*auth.Token
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{tokens: make(map[string]*auth.Token)}
}

func (f *fakeAuthClient) add(idToken, uid, email, name string) {
	f.tokens[idToken] = &auth.Token{
		UID: uid,
		Claims: map[string]interface{}{
			"email": email,
			"name":  name,
		},
	}
}

func (f *fakeAuthClient) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if t, ok := f.tokens[idToken]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("invalid mock token")
}
