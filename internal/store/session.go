// Package store owns the Session entity and its questions: creation,
// ownership-checked retrieval, wholesale question replacement on
// update, append-only growth, pin/review toggles and the lightweight
// last-accessed touch.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Karoll-e/career-boost/internal/ai"
	"github.com/Karoll-e/career-boost/internal/models"
	"github.com/Karoll-e/career-boost/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionParams are the free-text generation parameters of a session.
type SessionParams struct {
	Role          string
	Experience    string
	TopicsToFocus string
	Description   string
}

// SessionStore persists sessions and enforces that every session
// belongs to exactly one user.
type SessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

func toQuestions(sessionID string, batch []ai.QuestionAnswer) []models.Question {
	qs := make([]models.Question, 0, len(batch))
	for _, qa := range batch {
		qs = append(qs, models.Question{
			SessionID: sessionID,
			Question:  qa.Question,
			Answer:    qa.Answer,
		})
	}
	return qs
}

// Create stores a new session with its initial question batch. The
// batch is inserted in order; question ids follow insertion order.
func (s *SessionStore) Create(ctx context.Context, userID uint, params SessionParams, batch []ai.QuestionAnswer) (*models.Session, error) {
	if err := util.ValidateSessionParams(params.Role, params.Experience, params.TopicsToFocus); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: question batch is empty", ErrValidation)
	}

	session := &models.Session{
		ID:             uuid.NewString(),
		UserID:         userID,
		Role:           params.Role,
		Experience:     params.Experience,
		TopicsToFocus:  params.TopicsToFocus,
		Description:    params.Description,
		LastAccessedAt: time.Now(),
	}
	session.Questions = toQuestions(session.ID, batch)

	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// Get returns the session only if caller owns it; otherwise ErrNotFound.
// Questions are loaded in insertion order.
func (s *SessionStore) Get(ctx context.Context, id string, callerID uint) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("id = ? AND user_id = ?", id, callerID).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}

// ListMine returns all sessions owned by caller. Ordering by recency
// is a presentation concern; the store sorts by last_accessed_at as a
// convenience for the dashboard.
func (s *SessionStore) ListMine(ctx context.Context, callerID uint) ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("user_id = ?", callerID).
		Order("last_accessed_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// Update replaces the session parameters and, distinctively, the whole
// question list with a freshly generated batch. Old question rows are
// deleted, so old ids are never reused. Pin state does not survive an
// update; editing the parameters invalidates the prior questions.
func (s *SessionStore) Update(ctx context.Context, id string, callerID uint, params SessionParams, batch []ai.QuestionAnswer) (*models.Session, error) {
	if err := util.ValidateSessionParams(params.Role, params.Experience, params.TopicsToFocus); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: question batch is empty", ErrValidation)
	}

	var session models.Session
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, callerID).First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get session: %w", err)
		}

		session.Role = params.Role
		session.Experience = params.Experience
		session.TopicsToFocus = params.TopicsToFocus
		session.Description = params.Description
		if err := tx.Save(&session).Error; err != nil {
			return fmt.Errorf("save session: %w", err)
		}

		if err := tx.Where("session_id = ?", id).Delete(&models.Question{}).Error; err != nil {
			return fmt.Errorf("delete old questions: %w", err)
		}

		questions := toQuestions(id, batch)
		if err := tx.Create(&questions).Error; err != nil {
			return fmt.Errorf("insert new questions: %w", err)
		}
		session.Questions = questions
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// AppendQuestions adds a batch to the end of the question list. It
// never touches existing rows or their pin state.
func (s *SessionStore) AppendQuestions(ctx context.Context, id string, callerID uint, batch []ai.QuestionAnswer) ([]models.Question, error) {
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: question batch is empty", ErrValidation)
	}

	if _, err := s.ownedSession(ctx, id, callerID); err != nil {
		return nil, err
	}

	questions := toQuestions(id, batch)
	if err := s.db.WithContext(ctx).Create(&questions).Error; err != nil {
		return nil, fmt.Errorf("append questions: %w", err)
	}
	return questions, nil
}

// Delete removes the session and all its questions.
func (s *SessionStore) Delete(ctx context.Context, id string, callerID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, callerID).First(&models.Session{}).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get session: %w", err)
		}
		if err := tx.Where("session_id = ?", id).Delete(&models.Question{}).Error; err != nil {
			return fmt.Errorf("delete questions: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		return nil
	})
}

// Touch sets last_accessed_at to now with a single-column write,
// skipping hooks and full-record validation. Best-effort: callers
// ignore the returned error.
func (s *SessionStore) Touch(id string) error {
	return s.db.Model(&models.Session{}).
		Where("id = ?", id).
		UpdateColumn("last_accessed_at", time.Now()).Error
}

// ownedSession loads a session without its questions, collapsing
// missing and foreign records into ErrNotFound.
func (s *SessionStore) ownedSession(ctx context.Context, id string, callerID uint) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, callerID).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}
