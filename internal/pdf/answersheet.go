// Package pdf renders the printable exam answer sheet. Layout mirrors
// the console's print view: a student header followed by a two-column
// bubble grid, one row per question position.
package pdf

import (
	"fmt"
	"strings"

	"github.com/bilimtest/quizadmin-backend/internal/grading"
	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/signintech/gopdf"
)

const (
	pageMargin   = 40.0
	headerHeight = 110.0
	rowHeight    = 13.5
	bubbleSize   = 9.0
	bubbleGap    = 16.0
	columnGap    = 40.0
	fontName     = "sheet"
)

// AnswerSheetRenderer draws a result's answer grid into an A4 PDF.
// examSize is the grid length for results that carry no totalQuestions
// of their own. Renderers are cheap; construct one per request.
type AnswerSheetRenderer struct {
	fontPath string
	examSize int
}

func NewAnswerSheetRenderer(fontPath string, examSize int) *AnswerSheetRenderer {
	if examSize <= 0 {
		examSize = grading.DefaultExamSize
	}
	return &AnswerSheetRenderer{fontPath: fontPath, examSize: examSize}
}

// gridTotal resolves the number of grid rows for a result: its own
// recorded total when present, the configured exam size otherwise.
func gridTotal(totalQuestions, examSize int) int {
	if totalQuestions > 0 {
		return totalQuestions
	}
	return examSize
}

// Filename builds the download name for a result's answer sheet.
// Whitespace collapses to underscores and filesystem-hostile characters
// are dropped so the name survives Content-Disposition verbatim.
func Filename(name, surname string) string {
	return fmt.Sprintf("%s_%s_answersheet.pdf", sanitize(name), sanitize(surname))
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == ' ' || r == '\t':
			b.WriteByte('_')
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' ||
			r == '"' || r == '<' || r == '>' || r == '|':
			// skip
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "student"
	}
	return b.String()
}

// Render produces the answer-sheet PDF for one result. The grid always
// has the result's full expected length; positions past the recorded
// answers print as empty rows.
func (r *AnswerSheetRenderer) Render(res *model.Result) ([]byte, error) {
	doc := &gopdf.GoPdf{}
	doc.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	if err := doc.AddTTFFont(fontName, r.fontPath); err != nil {
		return nil, fmt.Errorf("load answer sheet font %q: %w", r.fontPath, err)
	}

	rows := grading.BuildSheet(res.Answers, gridTotal(res.TotalQuestions, r.examSize), grading.DefaultOptionLetters)

	doc.AddPage()
	if err := r.drawHeader(doc, res); err != nil {
		return nil, err
	}
	if err := r.drawGrid(doc, rows); err != nil {
		return nil, err
	}

	return doc.GetBytesPdf(), nil
}

func (r *AnswerSheetRenderer) drawHeader(doc *gopdf.GoPdf, res *model.Result) error {
	if err := doc.SetFont(fontName, "", 16); err != nil {
		return err
	}
	doc.SetTextColor(0, 0, 0)
	doc.SetXY(pageMargin, pageMargin)
	if err := doc.Cell(nil, "Answer Sheet"); err != nil {
		return err
	}

	if err := doc.SetFont(fontName, "", 10); err != nil {
		return err
	}
	lines := []string{
		fmt.Sprintf("Student: %s %s", res.Name, res.Surname),
		fmt.Sprintf("Group: %s", res.Group),
		fmt.Sprintf("Date: %s", res.Date.Format("2006-01-02 15:04")),
		fmt.Sprintf("Score: %d / %d    Grade: %d", res.CorrectCount, res.TotalQuestions, res.Grade),
	}
	y := pageMargin + 26
	for _, line := range lines {
		doc.SetXY(pageMargin, y)
		if err := doc.Cell(nil, line); err != nil {
			return err
		}
		y += 14
	}

	doc.SetStrokeColor(0, 0, 0)
	doc.SetLineWidth(0.5)
	doc.Line(pageMargin, pageMargin+headerHeight-14, gopdf.PageSizeA4.W-pageMargin, pageMargin+headerHeight-14)
	return nil
}

func (r *AnswerSheetRenderer) drawGrid(doc *gopdf.GoPdf, rows []grading.SheetRow) error {
	if err := doc.SetFont(fontName, "", 9); err != nil {
		return err
	}

	gridTop := pageMargin + headerHeight
	usable := gopdf.PageSizeA4.H - gridTop - pageMargin
	rowsPerColumn := int(usable / rowHeight)
	if rowsPerColumn < 1 {
		rowsPerColumn = 1
	}
	columnWidth := (gopdf.PageSizeA4.W-2*pageMargin-columnGap)/2 - 1
	rowsPerPage := rowsPerColumn * 2

	for i, row := range rows {
		slot := i % rowsPerPage
		if i > 0 && slot == 0 {
			doc.AddPage()
			if err := doc.SetFont(fontName, "", 9); err != nil {
				return err
			}
		}

		x := pageMargin
		if slot >= rowsPerColumn {
			x += columnWidth + columnGap
		}
		y := gridTop + float64(slot%rowsPerColumn)*rowHeight
		if i >= rowsPerPage {
			// continuation pages have no header, start at the top margin
			y = pageMargin + float64(slot%rowsPerColumn)*rowHeight
		}

		if err := r.drawRow(doc, row, x, y); err != nil {
			return err
		}
	}
	return nil
}

func (r *AnswerSheetRenderer) drawRow(doc *gopdf.GoPdf, row grading.SheetRow, x, y float64) error {
	doc.SetTextColor(0, 0, 0)
	doc.SetXY(x, y)
	if err := doc.Cell(nil, fmt.Sprintf("%3d.", row.Number)); err != nil {
		return err
	}

	bx := x + 28
	for _, b := range row.Bubbles {
		top := y - 1
		switch b.Style {
		case grading.BubbleSelectedCorrect:
			doc.SetFillColor(34, 139, 34)
			doc.SetStrokeColor(34, 139, 34)
			doc.RectFromUpperLeftWithStyle(bx, top, bubbleSize, bubbleSize, "FD")
		case grading.BubbleSelectedWrong:
			doc.SetFillColor(200, 30, 30)
			doc.SetStrokeColor(200, 30, 30)
			doc.RectFromUpperLeftWithStyle(bx, top, bubbleSize, bubbleSize, "FD")
		default:
			doc.SetStrokeColor(120, 120, 120)
			doc.RectFromUpperLeftWithStyle(bx, top, bubbleSize, bubbleSize, "D")
		}

		doc.SetXY(bx+bubbleSize+2, y)
		if err := doc.Cell(nil, b.Letter); err != nil {
			return err
		}
		bx += bubbleSize + bubbleGap
	}
	return nil
}
