package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"isavralabel.com/sikus/internal/dto"
	"isavralabel.com/sikus/internal/service"
	"isavralabel.com/sikus/pkg/apperror"
	"isavralabel.com/sikus/pkg/response"
	"isavralabel.com/sikus/pkg/validator"
)

type ReportHandler struct {
	reportService service.ReportService
	exportService service.ExportService
}

func NewReportHandler(reportService service.ReportService, exportService service.ExportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		exportService: exportService,
	}
}

func (h *ReportHandler) Submit(c *gin.Context) {
	var input dto.SubmitReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if _, err := h.reportService.Submit(c.Request.Context(), userID, input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Laporan berhasil dikirim"})
}

func (h *ReportHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	role, err := response.GetRole(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	reports, total, err := h.reportService.List(c.Request.Context(), userID, role, query.Page, query.Limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reports":    reports,
		"pagination": response.NewPagination(query.Page, query.Limit, total),
	})
}

func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ResponseError(c, apperror.Validation("ID laporan tidak valid"))
		return
	}

	var input dto.UpdateReportStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	role, err := response.GetRole(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.reportService.UpdateStatus(c.Request.Context(), role, reportID, input.Status); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status laporan berhasil diperbarui"})
}

func (h *ReportHandler) Export(c *gin.Context) {
	var query dto.ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	buf, fileName, err := h.exportService.ExportReports(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
