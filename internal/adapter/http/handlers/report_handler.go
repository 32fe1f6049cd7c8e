package handlers

import (
	"fmt"
	"net/http"

	"github.com/paveiq/bidmaster/internal/infrastructure/reports"
	"github.com/paveiq/bidmaster/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReportHandler renders persisted projects as downloadable PDF/CSV reports.

type ReportHandler struct {
	usecase usecase.IProjectUseCase
}

func NewReportHandler(uc usecase.IProjectUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) DownloadPDF(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	pdf, err := reports.RenderPDF(p)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=project_%s_report.pdf", p.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *ReportHandler) DownloadCSV(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data, err := reports.WriteCSV(p)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=project_%s_report.csv", p.ID))
	c.Data(http.StatusOK, "text/csv", data)
}
