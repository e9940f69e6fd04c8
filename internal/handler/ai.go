package handler

import (
	"errors"
	"net/http"

	"github.com/Karoll-e/career-boost/internal/ai"
	"github.com/Karoll-e/career-boost/internal/expcache"
	"github.com/Karoll-e/career-boost/internal/store"
	"github.com/Karoll-e/career-boost/internal/util"

	"github.com/gin-gonic/gin"
)

// AIHandler serves the raw generation endpoints. Explanations are
// routed through the per-session cache; question batches are stateless
// passthroughs to the generator.
type AIHandler struct {
	Gen   ai.Generator
	Cache *expcache.Manager
	Store *store.SessionStore
}

func NewAIHandler(gen ai.Generator, cache *expcache.Manager, st *store.SessionStore) *AIHandler {
	return &AIHandler{Gen: gen, Cache: cache, Store: st}
}

type generateQuestionsReq struct {
	Role              string `json:"role" binding:"required"`
	Experience        string `json:"experience" binding:"required"`
	TopicsToFocus     string `json:"topicsToFocus" binding:"required"`
	NumberOfQuestions int    `json:"numberOfQuestions" binding:"required"`
}

// GenerateQuestions produces a question/answer batch without touching
// any session. One generation request is one upstream call; the batch
// is never fanned out into per-question calls.
func (h *AIHandler) GenerateQuestions(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req generateQuestionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateQuestionCount(req.NumberOfQuestions); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	batch, err := h.Gen.GenerateBatch(c.Request.Context(), req.Role, req.Experience, req.TopicsToFocus, req.NumberOfQuestions)
	if err != nil {
		util.Error(c, http.StatusBadGateway, util.CodeUpstream, "failed to generate questions, please try again")
		return
	}

	util.Success(c, util.Response{
		"questions": batch,
	})
}

type generateExplanationReq struct {
	SessionID       string `json:"sessionId"`
	QuestionID      uint   `json:"questionId"`
	Question        string `json:"question" binding:"required"`
	ForceRegenerate bool   `json:"forceRegenerate"`
}

// GenerateExplanation returns a concept explanation for one question.
// When the request names a session and question, the result comes from
// (and goes into) that session's explanation cache; a bare question is
// explained without caching. A cache hit never calls upstream unless
// forceRegenerate is set.
func (h *AIHandler) GenerateExplanation(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req generateExplanationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	if req.SessionID == "" || req.QuestionID == 0 {
		exp, err := h.Gen.Explain(c.Request.Context(), req.Question)
		if err != nil {
			util.Error(c, http.StatusBadGateway, util.CodeUpstream, "failed to generate explanation, please try again")
			return
		}
		util.Success(c, util.Response{"explanation": exp})
		return
	}

	// ownership gate before the cache partition is opened
	if _, err := h.Store.Get(c.Request.Context(), req.SessionID, user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "session not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "operation failed, please retry")
		}
		return
	}

	cache := h.Cache.For(req.SessionID)
	exp, err := cache.GetOrGenerate(c.Request.Context(), req.QuestionID, req.Question, req.ForceRegenerate)
	if err != nil {
		util.Error(c, http.StatusBadGateway, util.CodeUpstream, "failed to generate explanation, please try again")
		return
	}

	util.Success(c, util.Response{
		"explanation": exp,
	})
}
