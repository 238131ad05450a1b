package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindmosaic/mindmosaic-backend/internal/models"
)

// EntryRepository is the persistence contract for journal entries.
type EntryRepository interface {
	Insert(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]models.JournalEntry, error)
}

// EntryLimits holds the configuration-driven validation bounds for entries.
type EntryLimits struct {
	MoodScoreMin  int
	MoodScoreMax  int
	MaxTextLength int
}

// Journal creates and lists entries scoped to their owning account.
type Journal struct {
	entries EntryRepository
	users   UserRepository
	limits  EntryLimits
}

func NewJournal(entries EntryRepository, users UserRepository, limits EntryLimits) *Journal {
	return &Journal{entries: entries, users: users, limits: limits}
}

// CreateEntry validates and persists a new entry for userID. The timestamp is
// server-assigned; sentiment and emotions stay unset until the enrichment
// pipeline fills them in. The owning account must still exist at creation time.
func (s *Journal) CreateEntry(ctx context.Context, userID primitive.ObjectID, text string, moodScore *int) (*models.JournalEntry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &models.ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if len(text) > s.limits.MaxTextLength {
		return nil, &models.ValidationError{
			Field:  "text",
			Reason: fmt.Sprintf("must not exceed %d characters", s.limits.MaxTextLength),
		}
	}
	if moodScore != nil && (*moodScore < s.limits.MoodScoreMin || *moodScore > s.limits.MoodScoreMax) {
		return nil, &models.ValidationError{
			Field:  "mood_score",
			Reason: fmt.Sprintf("must be between %d and %d", s.limits.MoodScoreMin, s.limits.MoodScoreMax),
		}
	}

	owner, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, models.ErrAccountNotFound
	}

	entry := &models.JournalEntry{
		UserID:    userID,
		Text:      text,
		Timestamp: time.Now().UTC(),
		MoodScore: moodScore,
	}
	return s.entries.Insert(ctx, entry)
}

// ListEntries returns the user's entries in creation-time ascending order.
// limit <= 0 returns everything. A user with no entries gets an empty slice,
// never an error.
func (s *Journal) ListEntries(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]models.JournalEntry, error) {
	return s.entries.ListByUser(ctx, userID, limit, skip)
}
