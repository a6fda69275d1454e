package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/coursecast/grade-service/internal/matcher"
	"github.com/coursecast/grade-service/internal/models"
)

// GradeImportService parses gradebook exports (CSV or Excel) into the
// grades-by-category snapshot the engine consumes. When a grading policy is
// supplied, category labels from the file are resolved against the policy's
// category names; rows that match nothing land in "Uncategorized".
type GradeImportService interface {
	ImportFromFile(ctx context.Context, file multipart.File, filename string, policy *models.GradingPolicy) (*GradeImportResult, error)
	ImportFromCSV(ctx context.Context, reader io.Reader, policy *models.GradingPolicy) (*GradeImportResult, error)
	ImportFromExcel(ctx context.Context, reader io.Reader, policy *models.GradingPolicy) (*GradeImportResult, error)
}

type gradeImportService struct {
	logger *slog.Logger
}

func NewGradeImportService(logger *slog.Logger) GradeImportService {
	return &gradeImportService{logger: logger}
}

// ===== IMPORT RESULT =====

type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type GradeImportResult struct {
	TotalRows        int                     `json:"total_rows"`
	SuccessCount     int                     `json:"success_count"`
	ErrorCount       int                     `json:"error_count"`
	Errors           []ImportRowError        `json:"errors,omitempty"`
	GradesByCategory models.GradesByCategory `json:"grades_by_category"`
}

// Column aliases accepted in the header row, all compared lowercase.
var importColumnAliases = map[string][]string{
	"assignment": {"assignment", "assignment_name", "name", "item"},
	"category":   {"category", "category_name", "group"},
	"score":      {"score", "score_earned", "earned", "points"},
	"max":        {"max", "max_score", "out_of", "possible", "points_possible"},
	"status":     {"status"},
}

func (s *gradeImportService) ImportFromFile(ctx context.Context, file multipart.File, filename string, policy *models.GradingPolicy) (*GradeImportResult, error) {
	s.logger.Info("Starting grade import", "filename", filename)

	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".csv":
		return s.ImportFromCSV(ctx, file, policy)
	case ".xlsx", ".xls":
		return s.ImportFromExcel(ctx, file, policy)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func (s *gradeImportService) ImportFromCSV(ctx context.Context, reader io.Reader, policy *models.GradingPolicy) (*GradeImportResult, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, ErrEmptyImport
	}

	return s.buildResult(records[0], records[1:], policy, "CSV")
}

func (s *gradeImportService) ImportFromExcel(ctx context.Context, reader io.Reader, policy *models.GradingPolicy) (*GradeImportResult, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyImport
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel rows: %w", err)
	}

	if len(rows) < 2 {
		return nil, ErrEmptyImport
	}

	return s.buildResult(rows[0], rows[1:], policy, "Excel")
}

func (s *gradeImportService) buildResult(header []string, rows [][]string, policy *models.GradingPolicy, format string) (*GradeImportResult, error) {
	headerMap, err := resolveHeader(header)
	if err != nil {
		return nil, err
	}

	result := &GradeImportResult{TotalRows: len(rows)}

	var items []models.GradeItem
	for rowIndex, row := range rows {
		item, rowErrors := parseGradeRow(row, headerMap, rowIndex+2)
		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
			result.ErrorCount++
			continue
		}
		if item != nil {
			items = append(items, *item)
			result.SuccessCount++
		}
	}

	if policy != nil {
		result.GradesByCategory = matcher.MapToCategories(items, policy)
	} else {
		result.GradesByCategory = groupByLabel(items)
	}

	s.logger.Info("Grade import completed",
		"format", format,
		"total_rows", result.TotalRows,
		"success_count", result.SuccessCount,
		"error_count", result.ErrorCount)

	return result, nil
}

// resolveHeader maps each known logical column to its index in the header
// row. Only the assignment column is mandatory.
func resolveHeader(header []string) (map[string]int, error) {
	byName := make(map[string]int)
	for i, cell := range header {
		byName[strings.ToLower(strings.TrimSpace(cell))] = i
	}

	headerMap := make(map[string]int)
	for column, aliases := range importColumnAliases {
		for _, alias := range aliases {
			if idx, ok := byName[alias]; ok {
				headerMap[column] = idx
				break
			}
		}
	}

	if _, ok := headerMap["assignment"]; !ok {
		return nil, NewValidationError("headers", "missing required assignment column", header)
	}
	return headerMap, nil
}

func parseGradeRow(row []string, headerMap map[string]int, rowNum int) (*models.GradeItem, []ImportRowError) {
	cell := func(column string) string {
		idx, ok := headerMap[column]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	name := cell("assignment")
	if name == "" {
		// Trailing blank rows are common in spreadsheet exports.
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			return nil, nil
		}
		return nil, []ImportRowError{{Row: rowNum, Field: "assignment", Message: "assignment name is required"}}
	}

	var rowErrors []ImportRowError

	score, err := parseOptionalFloat(cell("score"))
	if err != nil {
		rowErrors = append(rowErrors, ImportRowError{Row: rowNum, Field: "score", Message: err.Error()})
	}
	maxScore, err := parseOptionalFloat(cell("max"))
	if err != nil {
		rowErrors = append(rowErrors, ImportRowError{Row: rowNum, Field: "max", Message: err.Error()})
	}
	if maxScore != nil && *maxScore <= 0 {
		rowErrors = append(rowErrors, ImportRowError{Row: rowNum, Field: "max", Message: "max score must be positive"})
	}

	status, err := parseStatus(cell("status"), score)
	if err != nil {
		rowErrors = append(rowErrors, ImportRowError{Row: rowNum, Field: "status", Message: err.Error()})
	}

	if len(rowErrors) > 0 {
		return nil, rowErrors
	}

	return &models.GradeItem{
		AssignmentName: name,
		Category:       cell("category"),
		ScoreEarned:    score,
		MaxScore:       maxScore,
		Status:         status,
	}, nil
}

func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" || raw == "-" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", raw)
	}
	return &value, nil
}

// parseStatus normalizes the status cell, inferring graded/ungraded from the
// score when the cell is blank.
func parseStatus(raw string, score *float64) (models.GradeStatus, error) {
	switch strings.ToLower(raw) {
	case "":
		if score != nil {
			return models.StatusGraded, nil
		}
		return models.StatusUngraded, nil
	case string(models.StatusGraded):
		return models.StatusGraded, nil
	case string(models.StatusMissing):
		return models.StatusMissing, nil
	case string(models.StatusExcused):
		return models.StatusExcused, nil
	case string(models.StatusUngraded), "pending", "not graded":
		return models.StatusUngraded, nil
	default:
		return "", fmt.Errorf("unknown status: %q", raw)
	}
}

func groupByLabel(items []models.GradeItem) models.GradesByCategory {
	grouped := make(models.GradesByCategory)
	for _, item := range items {
		label := item.Category
		if label == "" {
			label = models.UncategorizedName
		}
		item.Category = label
		grouped[label] = append(grouped[label], item)
	}
	return grouped
}
