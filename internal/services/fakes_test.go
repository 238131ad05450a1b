package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindmosaic/mindmosaic-backend/internal/models"
)

// fakeUserRepo is an in-memory UserRepository honoring the same contract as
// the Mongo-backed one: duplicate email -> models.ErrEmailTaken, absent
// lookups -> (nil, nil).
type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	byID    map[primitive.ObjectID]*models.User
	writes  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*models.User),
		byID:    make(map[primitive.ObjectID]*models.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, email, hashedPassword string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byEmail[email]; exists {
		return nil, models.ErrEmailTaken
	}
	user := &models.User{
		ID:             primitive.NewObjectID(),
		CreatedAt:      time.Now().UTC(),
		Email:          email,
		HashedPassword: hashedPassword,
	}
	f.byEmail[email] = user
	f.byID[user.ID] = user
	f.writes++
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id], nil
}

// fakeEntryRepo is an in-memory EntryRepository returning entries in
// creation-time ascending order.
type fakeEntryRepo struct {
	mu      sync.Mutex
	entries []models.JournalEntry
}

func (f *fakeEntryRepo) Insert(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry.ID = primitive.NewObjectID()
	f.entries = append(f.entries, *entry)
	return entry, nil
}

func (f *fakeEntryRepo) ListByUser(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]models.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.JournalEntry, 0)
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	if skip > 0 {
		if skip >= int64(len(out)) {
			return []models.JournalEntry{}, nil
		}
		out = out[skip:]
	}
	if limit > 0 && limit < int64(len(out)) {
		out = out[:limit]
	}
	return out, nil
}

// fakeSessionStore is an in-memory SessionStore.
type fakeSessionStore struct {
	mu      sync.Mutex
	byToken map[string]string
	byUser  map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		byToken: make(map[string]string),
		byUser:  make(map[string]string),
	}
}

func (f *fakeSessionStore) Save(ctx context.Context, token, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byToken[token] = userID
	f.byUser[userID] = token
	return nil
}

func (f *fakeSessionStore) Resolve(ctx context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	userID, ok := f.byToken[token]
	if !ok {
		return "", models.ErrSessionNotFound
	}
	return userID, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if userID, ok := f.byToken[token]; ok {
		delete(f.byUser, userID)
	}
	delete(f.byToken, token)
	return nil
}

func (f *fakeSessionStore) DeleteByUser(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if token, ok := f.byUser[userID]; ok {
		delete(f.byToken, token)
	}
	delete(f.byUser, userID)
	return nil
}
