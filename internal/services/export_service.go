package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aplicatto/showcase-service/internal/repositories"
)

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ProjectsWorkbook renders every project into an xlsx workbook.
func (s *exportService) ProjectsWorkbook(ctx context.Context) ([]byte, error) {
	projects, err := s.repo.Projects().List(ctx, repositories.ProjectFilters{})
	if err != nil {
		return nil, fmt.Errorf("listing projects for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Proyectos"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("creating export sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Título", "Descripción", "Línea", "Líder", "Año", "Estado", "Tags"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("building header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	for row, p := range projects {
		values := []interface{}{
			p.ID, p.Title, p.Description, p.LineID, p.LeaderID,
			p.Year, string(p.State), strings.Join(p.Tags, ", "),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("building data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("writing project row: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}

	s.logger.Info("projects exported", "count", len(projects))
	return buf.Bytes(), nil
}
