package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"isavralabel.com/sikus/internal/dto"
	"isavralabel.com/sikus/internal/repository"
	"isavralabel.com/sikus/pkg/apperror"
)

const exportSheet = "Laporan PTPS"

type ExportService interface {
	ExportReports(ctx context.Context, query dto.ExportQuery) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo repository.ReportRepository
}

func NewExportService(repo repository.ReportRepository) ExportService {
	return &exportService{repo: repo}
}

func (s *exportService) ExportReports(ctx context.Context, query dto.ExportQuery) (*bytes.Buffer, string, error) {
	from, to, err := parseDateRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, "", err
	}

	reports, err := s.repo.FindByCreatedRange(ctx, from, to)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", err
	}

	headers := []interface{}{
		"ID", "Nama PTPS", "Nomor PTPS", "Kelurahan", "Kecamatan",
		"Uraian Kejadian", "Tindak Lanjut PTPS", "Tindak Lanjut KPPS",
		"Status", "Tanggal Dibuat",
	}
	if err := f.SetSheetRow(exportSheet, "A1", &headers); err != nil {
		return nil, "", err
	}

	widths := []float64{10, 25, 15, 20, 20, 40, 30, 30, 15, 20}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(exportSheet, col, col, w); err != nil {
			return nil, "", err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
	})
	if err != nil {
		return nil, "", err
	}
	if err := f.SetCellStyle(exportSheet, "A1", "J1", headerStyle); err != nil {
		return nil, "", err
	}

	for i, r := range reports {
		row := []interface{}{
			r.ID.String(),
			r.User.Nama,
			r.User.NomorPTPS,
			r.User.Kelurahan,
			r.User.Kecamatan,
			stripTags(r.UraianKejadian),
			derefOr(r.TindakLanjutPTPS, ""),
			derefOr(r.TindakLanjutKPPS, ""),
			string(r.Status),
			r.CreatedAt.Format("02/01/2006 15.04.05"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	fileName := "laporan-ptps.xlsx"
	if query.StartDate != "" && query.EndDate != "" {
		fileName = fmt.Sprintf("laporan-ptps-%s-%s.xlsx", query.StartDate, query.EndDate)
	}

	return buf, fileName, nil
}

// parseDateRange reads inclusive yyyy-mm-dd bounds; the end bound covers the
// whole day.
func parseDateRange(start, end string) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if start != "" {
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			return nil, nil, apperror.Validation("Tanggal awal tidak valid")
		}
		from = &t
	}

	if end != "" {
		t, err := time.Parse("2006-01-02", end)
		if err != nil {
			return nil, nil, apperror.Validation("Tanggal akhir tidak valid")
		}
		next := t.AddDate(0, 0, 1)
		to = &next
	}

	return from, to, nil
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
