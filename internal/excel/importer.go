package excel

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/service"
)

// QuestionCreator создает вопрос со всеми проверками сервиса
type QuestionCreator interface {
	Create(ctx context.Context, in service.CreateQuestionInput, page int) (*service.CreateResult, error)
}

// ImportResult - итог импорта
type ImportResult struct {
	Processed int
	Created   int
	Skipped   int
	Errors    []string
}

// Importer загружает вопросы из CSV или Excel.
// Ожидаемые колонки: question, answer, category, difficulty; первая строка - заголовок.
// Колонка id из выгрузки допускается и игнорируется.
type Importer struct {
	creator    QuestionCreator
	categories map[string]uint
	log        *logrus.Entry
}

// NewImporter создает импортер. categories нужны, чтобы принимать категорию по названию.
func NewImporter(creator QuestionCreator, categories []entity.Category, log *logrus.Logger) *Importer {
	byName := make(map[string]uint, len(categories))
	for _, c := range categories {
		byName[strings.ToLower(c.Type)] = c.ID
	}
	return &Importer{
		creator:    creator,
		categories: byName,
		log:        log.WithField("component", "importer"),
	}
}

// ImportFile выбирает формат по расширению файла
func (im *Importer) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if strings.ToLower(filepath.Ext(path)) == "."+FormatCSV {
		return im.ImportCSV(ctx, file)
	}
	return im.ImportXLSX(ctx, file)
}

// ImportCSV загружает вопросы из CSV
func (im *Importer) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	return im.importRows(ctx, rows)
}

// ImportXLSX загружает вопросы с первого листа Excel-файла
func (im *Importer) ImportXLSX(ctx context.Context, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return im.importRows(ctx, rows)
}

func (im *Importer) importRows(ctx context.Context, rows [][]string) (*ImportResult, error) {
	result := &ImportResult{Errors: make([]string, 0)}
	if len(rows) == 0 {
		return result, nil
	}

	columns := detectColumns(rows[0])

	for i, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		rowNum := i + 2
		if isBlank(row) {
			continue
		}
		result.Processed++

		input, err := im.parseRow(row, columns)
		if err == nil {
			// Страница 0 вне диапазона: сервис не выбирает список вопросов
			_, err = im.creator.Create(ctx, input, 0)
		}
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		result.Created++
	}

	im.log.WithFields(logrus.Fields{
		"processed": result.Processed,
		"created":   result.Created,
		"skipped":   result.Skipped,
	}).Info("Импорт завершен")

	return result, nil
}

// columnIndex - позиции колонок question, answer, category, difficulty
type columnIndex [4]int

// detectColumns учитывает необязательную колонку id в начале (формат выгрузки)
func detectColumns(header []string) columnIndex {
	if len(header) > 0 && strings.EqualFold(cleanCell(header[0]), "id") {
		return columnIndex{1, 2, 3, 4}
	}
	return columnIndex{0, 1, 2, 3}
}

func (im *Importer) parseRow(row []string, columns columnIndex) (service.CreateQuestionInput, error) {
	cell := func(idx int) string {
		if idx < len(row) {
			return cleanCell(row[idx])
		}
		return ""
	}

	categoryID, err := im.resolveCategory(cell(columns[2]))
	if err != nil {
		return service.CreateQuestionInput{}, err
	}

	difficulty := 0
	if raw := cell(columns[3]); raw != "" {
		difficulty, err = strconv.Atoi(raw)
		if err != nil {
			return service.CreateQuestionInput{}, fmt.Errorf("invalid difficulty %q", raw)
		}
	}

	return service.CreateQuestionInput{
		Question:   unsanitize(cell(columns[0])),
		Answer:     unsanitize(cell(columns[1])),
		CategoryID: categoryID,
		Difficulty: difficulty,
	}, nil
}

// resolveCategory принимает id категории или её название
func (im *Importer) resolveCategory(raw string) (uint, error) {
	if raw == "" {
		return 0, nil
	}
	if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
		return uint(id), nil
	}
	if id, ok := im.categories[strings.ToLower(raw)]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("unknown category %q", raw)
}

func cleanCell(s string) string {
	return strings.TrimSpace(string(bytes.TrimPrefix([]byte(s), utf8BOM)))
}

// unsanitize снимает экранирование, добавленное при выгрузке
func unsanitize(s string) string {
	if len(s) > 1 && s[0] == '\'' && sanitizeForExcel(s[1:]) == s {
		return s[1:]
	}
	return s
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
