package handlers

import (
	"errors"
	"io"
	"net/http"

	request "github.com/paveiq/bidmaster/internal/adapter/http/dto/request"
	response "github.com/paveiq/bidmaster/internal/adapter/http/dto/response"
	"github.com/paveiq/bidmaster/internal/usecase"
	"github.com/paveiq/bidmaster/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errNoFileUploaded         = pkg.NewDomainErrorSimple("NO_FILE", "No file part in the request", http.StatusBadRequest)
)

// EstimateHandler handles estimate calculation requests: the manual JSON
// payload and the RFP document upload pipeline.

type EstimateHandler struct {
	estimates usecase.IEstimateUseCase
	intake    usecase.IIntakeUseCase
}

func NewEstimateHandler(estimates usecase.IEstimateUseCase, intake usecase.IIntakeUseCase) *EstimateHandler {
	return &EstimateHandler{estimates: estimates, intake: intake}
}

// CalculateEstimate accepts the loose field dictionary and runs the full
// estimation pipeline. Bad numeric strings never fail here; only an
// unresolvable area rejects the request.
func (h *EstimateHandler) CalculateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	result, err := h.estimates.Estimate(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateResult(result))
}

// UploadRFP accepts a multipart PDF/DOCX upload and runs extraction plus the
// estimation pipeline.
func (h *EstimateHandler) UploadRFP(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errNoFileUploaded.HTTPStatus, errNoFileUploaded.ToHTTPError())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError("UPLOAD_READ_FAILED", "Could not read uploaded file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		appErr := pkg.NewDomainError("UPLOAD_READ_FAILED", "Could not read uploaded file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.intake.EstimateFromDocument(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateResult(result))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateInput):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentParse):
		return pkg.NewDomainErrorSimple("DOCUMENT_PARSE_FAILED", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNothingExtracted):
		return pkg.NewDomainErrorSimple("NOTHING_EXTRACTED", "Could not extract usable project fields from the document", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPersistProject):
		return pkg.NewDomainError("PERSISTENCE_FAILED", "Could not save the project estimate", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
