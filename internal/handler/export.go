package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/Karoll-e/career-boost/internal/store"
	"github.com/Karoll-e/career-boost/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler streams a session's Q&A list as CSV or XLSX.
type ExportHandler struct {
	Store *store.SessionStore
}

func NewExportHandler(st *store.SessionStore) *ExportHandler {
	return &ExportHandler{Store: st}
}

func boolText(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// ExportCSV exports one owned session as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	session, err := h.Store.Get(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		storeError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"session_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"#", "Question", "Answer", "Pinned", "Reviewed", "Note"})
	for i := range session.Questions {
		q := &session.Questions[i]
		writer.Write([]string{
			fmt.Sprintf("%d", i+1),
			q.Question,
			q.Answer,
			boolText(q.IsPinned),
			boolText(q.IsReviewed),
			q.Note,
		})
	}
}

// ExportXLSX exports one owned session as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	session, err := h.Store.Get(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		storeError(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Questions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	headers := []string{"#", "Question", "Answer", "Pinned", "Reviewed", "Note"}
	for i, hd := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, hd)
	}

	for idx := range session.Questions {
		q := &session.Questions[idx]
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), idx+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), q.Question)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), q.Answer)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), boolText(q.IsPinned))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), boolText(q.IsReviewed))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), q.Note)
	}

	f.SetColWidth(sheetName, "A", "A", 5)
	f.SetColWidth(sheetName, "B", "C", 60)
	f.SetColWidth(sheetName, "D", "E", 10)
	f.SetColWidth(sheetName, "F", "F", 30)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"session_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}
