package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Karoll-e/career-boost/internal/ai"
	"github.com/Karoll-e/career-boost/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Session{}, &models.Question{}))
	return db
}

func testUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test", Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func batch(pairs ...string) []ai.QuestionAnswer {
	var qs []ai.QuestionAnswer
	for i := 0; i+1 < len(pairs); i += 2 {
		qs = append(qs, ai.QuestionAnswer{Question: pairs[i], Answer: pairs[i+1]})
	}
	return qs
}

func TestCreate(t *testing.T) {
	db := testDB(t)
	s := NewSessionStore(db)
	owner := testUser(t, db, "owner@example.com")

	session, err := s.Create(context.Background(), owner.ID, SessionParams{
		Role:          "Backend Developer",
		Experience:    "3 years",
		TopicsToFocus: "Node, SQL",
	}, batch("q1", "a1", "q2", "a2", "q3", "a3"))
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, owner.ID, session.UserID)
	require.Len(t, session.Questions, 3)
	for _, q := range session.Questions {
		assert.False(t, q.IsPinned)
	}
	assert.False(t, session.LastAccessedAt.IsZero())
}

func TestCreate_Validation(t *testing.T) {
	db := testDB(t)
	s := NewSessionStore(db)
	owner := testUser(t, db, "owner@example.com")

	_, err := s.Create(context.Background(), owner.ID, SessionParams{
		Role: "Backend Developer",
	}, batch("q1", "a1"))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.Create(context.Background(), owner.ID, SessionParams{
		Role: "Backend Developer", Experience: "3 years", TopicsToFocus: "SQL",
	}, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAppendQuestions_OrderAndPinPreserved(t *testing.T) {
	db := testDB(t)
	s := NewSessionStore(db)
	owner := testUser(t, db, "owner@example.com")
	ctx := context.Background()

	session, err := s.Create(ctx, owner.ID, SessionParams{
		Role: "Backend Developer", Experience: "3 years", TopicsToFocus: "Node, SQL",
	}, batch("q1", "a1", "q2", "a2", "q3", "a3"))
	require.NoError(t, err)

	// pin the second question before appending
	pinned, err := s.TogglePin(ctx, session.Questions[1].ID, owner.ID)
	require.NoError(t, err)
	require.True(t, pinned.IsPinned)

	_, err = s.AppendQuestions(ctx, session.ID, owner.ID, batch("q4", "a4", "q5", "a5"))
	require.NoError(t, err)

	got, err := s.Get(ctx, session.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 5)

	// order equals concatenation of the batches in call order
	wantOrder := []string{"q1", "q2", "q3", "q4", "q5"}
	for i, q := range got.Questions {
		assert.Equal(t, wantOrder[i], q.Question)
	}

	// first three unchanged including pin state
	assert.Equal(t, session.Questions[0].ID, got.Questions[0].ID)
	assert.True(t, got.Questions[1].IsPinned)
	assert.False(t, got.Questions[4].IsPinned)
}

func TestOwnershipCollapsedToNotFound(t *testing.T) {
	db := testDB(t)
	s := NewSessionStore(db)
	owner := testUser(t, db, "owner@example.com")
	other := testUser(t, db, "other@example.com")
	ctx := context.Background()

	session, err := s.Create(ctx, owner.ID, SessionParams{
		Role: "r", Experience: "e", TopicsToFocus: "t",
	}, batch("q1", "a1"))
	require.NoError(t, err)

	// every owner-scoped operation looks identical to "does not exist"
	_, err = s.Get(ctx, session.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Update(ctx, session.ID, other.ID, SessionParams{
		Role: "r2", Experience: "e2", TopicsToFocus: "t2",
	}, batch("x", "y"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.AppendQuestions(ctx, session.ID, other.ID, batch("x", "y"))
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, session.ID, other.ID), ErrNotFound)

	_, err = s.TogglePin(ctx, session.Questions[0].ID, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// identical category for a genuinely absent id
	_, err = s.Get(ctx, "no-such-id", owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTogglePin_Idempotence(t *testing.T) {
	db := testDB(t)
	s := NewSessionStore(db)
	owner := testUser(t, db, "owner@example.com")
	ctx := context.Background()

	session, err := s.Create(ctx, owner.ID, SessionParams{
		Role: "r", Experience: "e", TopicsToFocus: "t",
	}, batch("q1", "a1"))
	require.NoError(t, err)
	qid := session.Questions[0].ID

	q, err := s.TogglePin(ctx, qid, owner.ID)
	require.NoError(t, err)
	assert.True(t, q.IsPinned)

	q, err = s.TogglePin(ctx, qid, owner.ID)
	require.NoError(t, err)
	assert.False(t, q.IsPinned, "two toggles return to the original state")

	// odd number of toggles flips exactly once relative to start
	for i := 0; i < 3; i++ {
		q, err = s.TogglePin(ctx, qid, owner.ID)
		require.NoError(t, err)
	}
	assert.True(t, q.IsPinned)
}

func TestUpdate_ReplacesQuestionsWholesale(t *testing.T) {
	db := testDB(t)
	s := NewSessionStore(db)
	owner := testUser(t, db, "owner@example.com")
	ctx := context.Background()

	session, err := s.Create(ctx, owner.ID, SessionParams{
		Role: "Backend Developer", Experience: "3 years", TopicsToFocus: "Node, SQL",
	}, batch("q1", "a1", "q2", "a2", "q3", "a3"))
	require.NoError(t, err)

	oldIDs := map[uint]bool{}
	for _, q := range session.Questions {
		oldIDs[q.ID] = true
	}

	updated, err := s.Update(ctx, session.ID, owner.ID, SessionParams{
		Role: "Data Engineer", Experience: "5 years", TopicsToFocus: "Spark",
	}, batch("n1", "b1", "n2", "b2"))
	require.NoError(t, err)

	assert.Equal(t, "Data Engineer", updated.Role)
	require.Len(t, updated.Questions, 2)
	for _, q := range updated.Questions {
		assert.False(t, oldIDs[q.ID], "old question ids must not be reused")
	}

	// old rows are gone from the store
	var count int64
	require.NoError(t, db.Model(&models.Question{}).Where("session_id = ?", session.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestDelete(t *testing.T) {
	db := testDB(t)
	s := NewSessionStore(db)
	owner := testUser(t, db, "owner@example.com")
	ctx := context.Background()

	session, err := s.Create(ctx, owner.ID, SessionParams{
		Role: "r", Experience: "e", TopicsToFocus: "t",
	}, batch("q1", "a1", "q2", "a2"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, session.ID, owner.ID))

	_, err = s.Get(ctx, session.ID, owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Question{}).Where("session_id = ?", session.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListMine(t *testing.T) {
	db := testDB(t)
	s := NewSessionStore(db)
	owner := testUser(t, db, "owner@example.com")
	other := testUser(t, db, "other@example.com")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := s.Create(ctx, owner.ID, SessionParams{
			Role: "r", Experience: "e", TopicsToFocus: "t",
		}, batch("q", "a"))
		require.NoError(t, err)
	}
	_, err := s.Create(ctx, other.ID, SessionParams{
		Role: "r", Experience: "e", TopicsToFocus: "t",
	}, batch("q", "a"))
	require.NoError(t, err)

	mine, err := s.ListMine(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestTouch(t *testing.T) {
	db := testDB(t)
	s := NewSessionStore(db)
	owner := testUser(t, db, "owner@example.com")
	ctx := context.Background()

	session, err := s.Create(ctx, owner.ID, SessionParams{
		Role: "r", Experience: "e", TopicsToFocus: "t",
	}, batch("q", "a"))
	require.NoError(t, err)

	before := session.LastAccessedAt
	updatedAtBefore := session.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, s.Touch(session.ID))

	got, err := s.Get(ctx, session.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, got.LastAccessedAt.After(before), "last accessed must move forward")
	// touch bypasses the full update path
	assert.WithinDuration(t, updatedAtBefore, got.UpdatedAt, time.Second)

	// touching an unknown id is a no-op, not an error
	assert.NoError(t, s.Touch("no-such-id"))
}

func TestUpdateNoteAndReview(t *testing.T) {
	db := testDB(t)
	s := NewSessionStore(db)
	owner := testUser(t, db, "owner@example.com")
	ctx := context.Background()

	session, err := s.Create(ctx, owner.ID, SessionParams{
		Role: "r", Experience: "e", TopicsToFocus: "t",
	}, batch("q", "a"))
	require.NoError(t, err)
	qid := session.Questions[0].ID

	q, err := s.UpdateNote(ctx, qid, owner.ID, "revisit before interview")
	require.NoError(t, err)
	assert.Equal(t, "revisit before interview", q.Note)

	q, err = s.UpdateNote(ctx, qid, owner.ID, "")
	require.NoError(t, err)
	assert.Empty(t, q.Note)

	q, err = s.ToggleReview(ctx, qid, owner.ID)
	require.NoError(t, err)
	assert.True(t, q.IsReviewed)

	q, err = s.ToggleReview(ctx, qid, owner.ID)
	require.NoError(t, err)
	assert.False(t, q.IsReviewed)
}
