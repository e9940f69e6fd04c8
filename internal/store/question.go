package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Karoll-e/career-boost/internal/models"

	"gorm.io/gorm"
)

// ownedQuestion loads a question and verifies the caller owns its
// session. Ownership failures collapse into ErrNotFound like sessions.
func (s *SessionStore) ownedQuestion(ctx context.Context, questionID uint, callerID uint) (*models.Question, error) {
	var question models.Question
	err := s.db.WithContext(ctx).
		Joins("JOIN sessions ON sessions.id = questions.session_id").
		Where("questions.id = ? AND sessions.user_id = ?", questionID, callerID).
		First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return &question, nil
}

// TogglePin flips the pin flag and returns the question in its new
// state. Unpinned and Pinned are the only states; a toggle is a total
// function of the current one.
func (s *SessionStore) TogglePin(ctx context.Context, questionID uint, callerID uint) (*models.Question, error) {
	question, err := s.ownedQuestion(ctx, questionID, callerID)
	if err != nil {
		return nil, err
	}

	question.IsPinned = !question.IsPinned
	if err := s.db.WithContext(ctx).Model(question).
		UpdateColumn("is_pinned", question.IsPinned).Error; err != nil {
		return nil, fmt.Errorf("toggle pin: %w", err)
	}
	return question, nil
}

// ToggleReview flips the reviewed flag, same semantics as TogglePin.
func (s *SessionStore) ToggleReview(ctx context.Context, questionID uint, callerID uint) (*models.Question, error) {
	question, err := s.ownedQuestion(ctx, questionID, callerID)
	if err != nil {
		return nil, err
	}

	question.IsReviewed = !question.IsReviewed
	if err := s.db.WithContext(ctx).Model(question).
		UpdateColumn("is_reviewed", question.IsReviewed).Error; err != nil {
		return nil, fmt.Errorf("toggle review: %w", err)
	}
	return question, nil
}

// UpdateNote replaces the user note on a question. An empty note
// clears it.
func (s *SessionStore) UpdateNote(ctx context.Context, questionID uint, callerID uint, note string) (*models.Question, error) {
	question, err := s.ownedQuestion(ctx, questionID, callerID)
	if err != nil {
		return nil, err
	}

	question.Note = note
	if err := s.db.WithContext(ctx).Model(question).
		UpdateColumn("note", note).Error; err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return question, nil
}
