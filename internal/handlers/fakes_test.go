package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindmosaic/mindmosaic-backend/internal/handlers"
	"github.com/mindmosaic/mindmosaic-backend/internal/models"
	"github.com/mindmosaic/mindmosaic-backend/internal/routes"
	"github.com/mindmosaic/mindmosaic-backend/internal/services"
)

// The handler tests run the real services over in-memory stores, so the full
// request path (routing, envelope mapping, session resolution) is exercised
// without MongoDB or Redis.

type memUserRepo struct {
	byEmail map[string]*models.User
	byID    map[primitive.ObjectID]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byEmail: make(map[string]*models.User),
		byID:    make(map[primitive.ObjectID]*models.User),
	}
}

func (m *memUserRepo) Create(ctx context.Context, email, hashedPassword string) (*models.User, error) {
	if _, exists := m.byEmail[email]; exists {
		return nil, models.ErrEmailTaken
	}
	user := &models.User{
		ID:             primitive.NewObjectID(),
		CreatedAt:      time.Now().UTC(),
		Email:          email,
		HashedPassword: hashedPassword,
	}
	m.byEmail[email] = user
	m.byID[user.ID] = user
	return user, nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.byEmail[email], nil
}

func (m *memUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return m.byID[id], nil
}

type memEntryRepo struct {
	entries []models.JournalEntry
}

func (m *memEntryRepo) Insert(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	entry.ID = primitive.NewObjectID()
	m.entries = append(m.entries, *entry)
	return entry, nil
}

func (m *memEntryRepo) ListByUser(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]models.JournalEntry, error) {
	out := make([]models.JournalEntry, 0)
	for _, e := range m.entries {
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

type memSessionStore struct {
	byToken map[string]string
	byUser  map[string]string
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{byToken: make(map[string]string), byUser: make(map[string]string)}
}

func (m *memSessionStore) Save(ctx context.Context, token, userID string) error {
	m.byToken[token] = userID
	m.byUser[userID] = token
	return nil
}

func (m *memSessionStore) Resolve(ctx context.Context, token string) (string, error) {
	userID, ok := m.byToken[token]
	if !ok {
		return "", models.ErrSessionNotFound
	}
	return userID, nil
}

func (m *memSessionStore) Delete(ctx context.Context, token string) error {
	if userID, ok := m.byToken[token]; ok {
		delete(m.byUser, userID)
	}
	delete(m.byToken, token)
	return nil
}

func (m *memSessionStore) DeleteByUser(ctx context.Context, userID string) error {
	if token, ok := m.byUser[userID]; ok {
		delete(m.byToken, token)
	}
	delete(m.byUser, userID)
	return nil
}

func newTestRouter() *chi.Mux {
	users := newMemUserRepo()
	identity := services.NewIdentity(users)
	journal := services.NewJournal(&memEntryRepo{}, users, services.EntryLimits{
		MoodScoreMin:  -10,
		MoodScoreMax:  10,
		MaxTextLength: 10000,
	})
	sessions := services.NewSessions(newMemSessionStore())

	h := handlers.New(identity, journal, sessions)

	r := chi.NewRouter()
	r.Get("/health", handlers.Health)
	routes.SetupRoutes(r, h)
	return r
}

func doRequest(router http.Handler, method, path, bearer, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
