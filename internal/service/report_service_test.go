package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"isavralabel.com/sikus/internal/dto"
	"isavralabel.com/sikus/internal/model"
	"isavralabel.com/sikus/internal/repository"
	"isavralabel.com/sikus/pkg/apperror"
	"isavralabel.com/sikus/pkg/response"
)

func TestSubmitCreatesTerkirim(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(repository.NewReportRepository(db))
	ctx := context.Background()

	owner := createUser(t, db, "a@x.com", "P1", model.RoleUser, model.StatusApproved)

	followUp := "Dilaporkan ke pengawas"
	id, err := svc.Submit(ctx, owner.ID, dto.SubmitReportInput{
		UraianKejadian:   "<p>Kotak suara rusak di TPS 04</p>",
		TindakLanjutPTPS: &followUp,
	})
	require.NoError(t, err)

	var report model.Report
	require.NoError(t, db.First(&report, "id = ?", id).Error)
	assert.Equal(t, model.ReportTerkirim, report.Status)
	assert.Equal(t, owner.ID, report.UserID)
	require.NotNil(t, report.TindakLanjutPTPS)
	assert.Equal(t, followUp, *report.TindakLanjutPTPS)
	assert.Nil(t, report.TindakLanjutKPPS)
}

func TestSubmitRejectsBlankNarrative(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(repository.NewReportRepository(db))
	ctx := context.Background()

	owner := createUser(t, db, "a@x.com", "P1", model.RoleUser, model.StatusApproved)

	for _, narrative := range []string{"", "   ", "<p>   </p>", "<br><br>"} {
		_, err := svc.Submit(ctx, owner.ID, dto.SubmitReportInput{UraianKejadian: narrative})
		assert.ErrorIs(t, err, apperror.ErrInvalidInput, "narrative %q", narrative)
	}
}

func TestSubmitSanitizesNarrative(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(repository.NewReportRepository(db))
	ctx := context.Background()

	owner := createUser(t, db, "a@x.com", "P1", model.RoleUser, model.StatusApproved)

	id, err := svc.Submit(ctx, owner.ID, dto.SubmitReportInput{
		UraianKejadian: `<p>Saksi mencurigakan</p><script>alert("x")</script>`,
	})
	require.NoError(t, err)

	var report model.Report
	require.NoError(t, db.First(&report, "id = ?", id).Error)
	assert.NotContains(t, report.UraianKejadian, "<script>")
	assert.Contains(t, report.UraianKejadian, "Saksi mencurigakan")
}

func TestListScopedByRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(repository.NewReportRepository(db))
	ctx := context.Background()

	alice := createUser(t, db, "alice@x.com", "P1", model.RoleUser, model.StatusApproved)
	bob := createUser(t, db, "bob@x.com", "P2", model.RoleUser, model.StatusApproved)
	admin := createUser(t, db, "admin@x.com", "A1", model.RoleAdmin, model.StatusApproved)

	for i := 0; i < 3; i++ {
		_, err := svc.Submit(ctx, alice.ID, dto.SubmitReportInput{UraianKejadian: fmt.Sprintf("laporan alice %d", i)})
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := svc.Submit(ctx, bob.ID, dto.SubmitReportInput{UraianKejadian: fmt.Sprintf("laporan bob %d", i)})
		require.NoError(t, err)
	}

	items, total, err := svc.List(ctx, alice.ID, model.RoleUser, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for _, item := range items {
		assert.Equal(t, alice.ID, item.UserID)
	}

	_, total, err = svc.List(ctx, admin.ID, model.RoleAdmin, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func TestListPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(repository.NewReportRepository(db))
	ctx := context.Background()

	admin := createUser(t, db, "admin@x.com", "A1", model.RoleAdmin, model.StatusApproved)
	for i := 0; i < 25; i++ {
		_, err := svc.Submit(ctx, admin.ID, dto.SubmitReportInput{UraianKejadian: fmt.Sprintf("laporan %d", i)})
		require.NoError(t, err)
	}

	items, total, err := svc.List(ctx, admin.ID, model.RoleAdmin, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, items, 5)
	assert.Equal(t, 3, response.NewPagination(3, 10, total).TotalPages)

	// Past the last page: empty, not an error.
	items, total, err = svc.List(ctx, admin.ID, model.RoleAdmin, 4, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Empty(t, items)
}

func TestUpdateStatusRequiresAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(repository.NewReportRepository(db))
	ctx := context.Background()

	owner := createUser(t, db, "a@x.com", "P1", model.RoleUser, model.StatusApproved)
	id, err := svc.Submit(ctx, owner.ID, dto.SubmitReportInput{UraianKejadian: "laporan"})
	require.NoError(t, err)

	err = svc.UpdateStatus(ctx, model.RoleUser, id, model.ReportSelesai)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	var report model.Report
	require.NoError(t, db.First(&report, "id = ?", id).Error)
	assert.Equal(t, model.ReportTerkirim, report.Status, "status unchanged after forbidden update")
}

func TestUpdateStatusEnforcesEnum(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(repository.NewReportRepository(db))
	ctx := context.Background()

	owner := createUser(t, db, "a@x.com", "P1", model.RoleUser, model.StatusApproved)
	id, err := svc.Submit(ctx, owner.ID, dto.SubmitReportInput{UraianKejadian: "laporan"})
	require.NoError(t, err)

	err = svc.UpdateStatus(ctx, model.RoleAdmin, id, model.ReportStatus("Hilang"))
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	// Any enumerated value is reachable from any other.
	for _, status := range []model.ReportStatus{
		model.ReportSelesai, model.ReportDiterima, model.ReportDiproses, model.ReportTerkirim,
	} {
		require.NoError(t, svc.UpdateStatus(ctx, model.RoleAdmin, id, status))

		var report model.Report
		require.NoError(t, db.First(&report, "id = ?", id).Error)
		assert.Equal(t, status, report.Status)
	}
}

func TestUpdateStatusUnknownReport(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(repository.NewReportRepository(db))
	ctx := context.Background()

	createUser(t, db, "admin@x.com", "A1", model.RoleAdmin, model.StatusApproved)

	err := svc.UpdateStatus(ctx, model.RoleAdmin, uuid.New(), model.ReportSelesai)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
