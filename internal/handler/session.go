package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Karoll-e/career-boost/internal/ai"
	"github.com/Karoll-e/career-boost/internal/expcache"
	"github.com/Karoll-e/career-boost/internal/models"
	"github.com/Karoll-e/career-boost/internal/store"
	"github.com/Karoll-e/career-boost/internal/util"

	"github.com/gin-gonic/gin"
)

// SessionHandler serves interview session CRUD. Create and update
// orchestrate generation before anything is persisted, so a failed
// generation call never leaves a half-built session behind.
type SessionHandler struct {
	Store         *store.SessionStore
	Gen           ai.Generator
	Cache         *expcache.Manager
	QuestionCount int
}

func NewSessionHandler(st *store.SessionStore, gen ai.Generator, cache *expcache.Manager, questionCount int) *SessionHandler {
	if questionCount <= 0 {
		questionCount = 10
	}
	return &SessionHandler{
		Store:         st,
		Gen:           gen,
		Cache:         cache,
		QuestionCount: questionCount,
	}
}

// ---------- request/response shapes ----------

type questionPayload struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

type createSessionReq struct {
	Role              string            `json:"role" binding:"required"`
	Experience        string            `json:"experience" binding:"required"`
	TopicsToFocus     string            `json:"topicsToFocus" binding:"required"`
	Description       string            `json:"description"`
	NumberOfQuestions int               `json:"numberOfQuestions"`
	Questions         []questionPayload `json:"questions"`
}

type updateSessionReq struct {
	Role              string `json:"role" binding:"required"`
	Experience        string `json:"experience" binding:"required"`
	TopicsToFocus     string `json:"topicsToFocus" binding:"required"`
	Description       string `json:"description"`
	NumberOfQuestions int    `json:"numberOfQuestions"`
}

type questionResp struct {
	ID         uint      `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	IsPinned   bool      `json:"isPinned"`
	IsReviewed bool      `json:"isReviewed"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"createdAt"`
}

type sessionResp struct {
	ID             string         `json:"id"`
	Role           string         `json:"role"`
	Experience     string         `json:"experience"`
	TopicsToFocus  string         `json:"topicsToFocus"`
	Description    string         `json:"description"`
	Questions      []questionResp `json:"questions"`
	LastAccessedAt time.Time      `json:"lastAccessedAt"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func toQuestionResp(q *models.Question) questionResp {
	return questionResp{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		IsPinned:   q.IsPinned,
		IsReviewed: q.IsReviewed,
		Note:       q.Note,
		CreatedAt:  q.CreatedAt,
	}
}

func toSessionResp(s *models.Session) sessionResp {
	questions := make([]questionResp, 0, len(s.Questions))
	for i := range s.Questions {
		questions = append(questions, toQuestionResp(&s.Questions[i]))
	}
	return sessionResp{
		ID:             s.ID,
		Role:           s.Role,
		Experience:     s.Experience,
		TopicsToFocus:  s.TopicsToFocus,
		Description:    s.Description,
		Questions:      questions,
		LastAccessedAt: s.LastAccessedAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toBatch(payload []questionPayload) []ai.QuestionAnswer {
	batch := make([]ai.QuestionAnswer, 0, len(payload))
	for _, q := range payload {
		batch = append(batch, ai.QuestionAnswer{Question: q.Question, Answer: q.Answer})
	}
	return batch
}

// storeError maps store failures onto the response envelope.
func storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrValidation):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
	case errors.Is(err, store.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "session not found")
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "operation failed, please retry")
	}
}

// ---------- handlers ----------

// CreateSession builds a session from an initial question batch. The
// client may send a pre-generated batch; otherwise the batch is
// generated here and a generation failure aborts the whole create.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req createSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	batch := toBatch(req.Questions)
	if len(batch) == 0 {
		count := req.NumberOfQuestions
		if count <= 0 {
			count = h.QuestionCount
		}
		if err := util.ValidateQuestionCount(count); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		generated, err := h.Gen.GenerateBatch(c.Request.Context(), req.Role, req.Experience, req.TopicsToFocus, count)
		if err != nil {
			util.Error(c, http.StatusBadGateway, util.CodeUpstream, "failed to generate questions, please try again")
			return
		}
		batch = generated
	}

	session, err := h.Store.Create(c.Request.Context(), user.ID, store.SessionParams{
		Role:          req.Role,
		Experience:    req.Experience,
		TopicsToFocus: req.TopicsToFocus,
		Description:   req.Description,
	}, batch)
	if err != nil {
		storeError(c, err)
		return
	}

	util.Success(c, util.Response{
		"session": toSessionResp(session),
	})
}

// GetSession returns one owned session and touches its last-accessed
// timestamp. The touch is best-effort and never fails the request.
func (h *SessionHandler) GetSession(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	id := c.Param("id")
	session, err := h.Store.Get(c.Request.Context(), id, user.ID)
	if err != nil {
		storeError(c, err)
		return
	}

	_ = h.Store.Touch(id)

	util.Success(c, util.Response{
		"session": toSessionResp(session),
	})
}

// GetMySessions lists all sessions of the caller, most recently
// accessed first.
func (h *SessionHandler) GetMySessions(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	sessions, err := h.Store.ListMine(c.Request.Context(), user.ID)
	if err != nil {
		storeError(c, err)
		return
	}

	items := make([]sessionResp, 0, len(sessions))
	for i := range sessions {
		items = append(items, toSessionResp(&sessions[i]))
	}

	util.Success(c, util.Response{
		"sessions": items,
	})
}

// UpdateSession replaces the session parameters and regenerates the
// whole question list. Old questions (and their pins) are gone after
// a successful update; on generation failure nothing changes.
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	id := c.Param("id")

	var req updateSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	count := req.NumberOfQuestions
	if count <= 0 {
		count = h.QuestionCount
	}
	if err := util.ValidateQuestionCount(count); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	batch, err := h.Gen.GenerateBatch(c.Request.Context(), req.Role, req.Experience, req.TopicsToFocus, count)
	if err != nil {
		util.Error(c, http.StatusBadGateway, util.CodeUpstream, "failed to generate questions, please try again")
		return
	}

	session, err := h.Store.Update(c.Request.Context(), id, user.ID, store.SessionParams{
		Role:          req.Role,
		Experience:    req.Experience,
		TopicsToFocus: req.TopicsToFocus,
		Description:   req.Description,
	}, batch)
	if err != nil {
		storeError(c, err)
		return
	}

	util.Success(c, util.Response{
		"session": toSessionResp(session),
	})
}

// DeleteSession removes the session, its questions and its cached
// explanation partition.
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	id := c.Param("id")
	if err := h.Store.Delete(c.Request.Context(), id, user.ID); err != nil {
		storeError(c, err)
		return
	}

	h.Cache.Drop(id)

	util.Success(c, util.Response{
		"message": "session deleted",
	})
}
