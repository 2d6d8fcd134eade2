package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// Форматы выгрузки
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// SheetName - имя листа с вопросами в Excel-файле
const SheetName = "Questions"

// utf8BOM нужен для корректного отображения UTF-8 в Excel
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Header - заголовок выгрузки; импорт читает колонки в том же порядке, начиная с question
var Header = []string{"id", "question", "answer", "category", "difficulty"}

// WriteCSV пишет вопросы в CSV
func WriteCSV(w io.Writer, questions []entity.Question) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	// encoding/csv экранирует запятые и кавычки
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, q := range questions {
		record := []string{
			strconv.FormatUint(uint64(q.ID), 10),
			sanitizeForExcel(q.Question),
			sanitizeForExcel(q.Answer),
			strconv.FormatUint(uint64(q.CategoryID), 10),
			strconv.Itoa(q.Difficulty),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write question %d: %w", q.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXLSX пишет вопросы в Excel через StreamWriter
func WriteXLSX(w io.Writer, questions []entity.Question) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	headers := make([]interface{}, len(Header))
	for i, h := range Header {
		headers[i] = h
	}
	if err := sw.SetRow("A1", headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, q := range questions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{q.ID, sanitizeForExcel(q.Question), sanitizeForExcel(q.Answer), q.CategoryID, q.Difficulty}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write question %d: %w", q.ID, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	return f.Write(w)
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
