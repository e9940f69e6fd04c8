package handler

import (
	"net/http"
	"strconv"

	"github.com/Karoll-e/career-boost/internal/ai"
	"github.com/Karoll-e/career-boost/internal/store"
	"github.com/Karoll-e/career-boost/internal/util"

	"github.com/gin-gonic/gin"
)

// QuestionHandler serves the append ("load more") and per-question
// flag operations.
type QuestionHandler struct {
	Store         *store.SessionStore
	Gen           ai.Generator
	QuestionCount int
}

func NewQuestionHandler(st *store.SessionStore, gen ai.Generator, questionCount int) *QuestionHandler {
	if questionCount <= 0 {
		questionCount = 10
	}
	return &QuestionHandler{
		Store:         st,
		Gen:           gen,
		QuestionCount: questionCount,
	}
}

type addQuestionsReq struct {
	SessionID         string            `json:"sessionId" binding:"required"`
	NumberOfQuestions int               `json:"numberOfQuestions"`
	Questions         []questionPayload `json:"questions"`
}

// AddQuestions appends a batch to an existing session. The batch is
// either supplied by the client or generated from the session's own
// parameters. Existing questions and their pin state are untouched.
func (h *QuestionHandler) AddQuestions(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req addQuestionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	batch := toBatch(req.Questions)
	if len(batch) == 0 {
		session, err := h.Store.Get(c.Request.Context(), req.SessionID, user.ID)
		if err != nil {
			storeError(c, err)
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

		batch, err = h.Gen.GenerateBatch(c.Request.Context(), session.Role, session.Experience, session.TopicsToFocus, count)
		if err != nil {
			util.Error(c, http.StatusBadGateway, util.CodeUpstream, "failed to generate questions, please try again")
			return
		}
	}

	questions, err := h.Store.AppendQuestions(c.Request.Context(), req.SessionID, user.ID, batch)
	if err != nil {
		storeError(c, err)
		return
	}

	items := make([]questionResp, 0, len(questions))
	for i := range questions {
		items = append(items, toQuestionResp(&questions[i]))
	}

	util.Success(c, util.Response{
		"questions": items,
	})
}

func questionID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid question id")
		return 0, false
	}
	return uint(id), true
}

// TogglePin flips the pin flag and returns the new state.
func (h *QuestionHandler) TogglePin(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	id, ok := questionID(c)
	if !ok {
		return
	}

	question, err := h.Store.TogglePin(c.Request.Context(), id, user.ID)
	if err != nil {
		storeError(c, err)
		return
	}

	util.Success(c, util.Response{
		"question": toQuestionResp(question),
	})
}

// ToggleReview flips the reviewed flag and returns the new state.
func (h *QuestionHandler) ToggleReview(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	id, ok := questionID(c)
	if !ok {
		return
	}

	question, err := h.Store.ToggleReview(c.Request.Context(), id, user.ID)
	if err != nil {
		storeError(c, err)
		return
	}

	util.Success(c, util.Response{
		"question": toQuestionResp(question),
	})
}

type updateNoteReq struct {
	Note string `json:"note" binding:"max=2000"`
}

// UpdateNote sets or clears the free-text note on a question.
func (h *QuestionHandler) UpdateNote(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	id, ok := questionID(c)
	if !ok {
		return
	}

	var req updateNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	question, err := h.Store.UpdateNote(c.Request.Context(), id, user.ID, req.Note)
	if err != nil {
		storeError(c, err)
		return
	}

	util.Success(c, util.Response{
		"question": toQuestionResp(question),
	})
}
