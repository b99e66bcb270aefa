package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// ExportQuestions exports the authoring view of a quiz (questions with their
// options and correctness flags) as CSV or XLSX
// GET /api/quizzes/:quiz_id/export?format=csv|xlsx
func (h *QuizHandler) ExportQuestions(c *gin.Context) {
	quizID := c.MustGet("quizID").(uuid.UUID)

	quiz, _, err := h.quizService.GetQuiz(quizID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	questions, err := h.questionService.ListQuizQuestions(quizID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	filename := fmt.Sprintf("quiz-%s", quiz.ID)
	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		h.exportXLSX(c, questions, filename)
	case "csv":
		h.exportCSV(c, questions, filename)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
	}
}

var exportHeader = []string{"Question", "Type", "Order", "Marks", "Option", "Correct"}

// exportRows flattens questions into one row per option; text questions get a
// single row with empty option columns.
func exportRows(questions []entity.Question) [][]string {
	var rows [][]string
	for _, q := range questions {
		order := ""
		if q.Order != nil {
			order = strconv.Itoa(*q.Order)
		}
		base := []string{sanitizeForExcel(q.Text), q.Type, order, strconv.Itoa(q.Marks)}

		if len(q.Options) == 0 {
			rows = append(rows, append(base, "", ""))
			continue
		}
		for _, opt := range q.Options {
			correct := "No"
			if opt.IsCorrect {
				correct = "Yes"
			}
			rows = append(rows, append(append([]string{}, base...), sanitizeForExcel(opt.Text), correct))
		}
	}
	return rows
}

// exportCSV streams the rows as UTF-8 CSV
func (h *QuizHandler) exportCSV(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM so Excel detects UTF-8
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeader)
	for _, row := range exportRows(questions) {
		writer.Write(row)
	}
}

// exportXLSX streams the rows via the excelize StreamWriter
func (h *QuizHandler) exportXLSX(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuizHandler] Failed to create StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	header := make([]interface{}, len(exportHeader))
	for i, col := range exportHeader {
		header[i] = col
	}
	if err := sw.SetRow("A1", header); err != nil {
		log.Printf("[QuizHandler] Failed to write header row: %v", err)
	}

	for i, row := range exportRows(questions) {
		cells := make([]interface{}, len(row))
		for j, val := range row {
			cells[j] = val
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := sw.SetRow(cell, cells); err != nil {
			log.Printf("[QuizHandler] Failed to write row %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuizHandler] StreamWriter flush failed: %v", err)
	}
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuizHandler] Failed to write Excel response: %v", err)
	}
}

// sanitizeForExcel guards exported cells against formula injection
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Characters that start a formula in Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
