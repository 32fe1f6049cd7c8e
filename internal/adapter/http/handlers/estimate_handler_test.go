package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paveiq/bidmaster/internal/adapter/http/handlers/mocks"
	"github.com/paveiq/bidmaster/internal/domain/entities"
	"github.com/paveiq/bidmaster/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleResult() usecase.EstimateResult {
	return usecase.EstimateResult{
		ProjectSummary: usecase.ProjectSummary{
			ProjectName:  "Route 7 Resurfacing",
			ProjectType:  "Road",
			Location:     "Fairfax, VA",
			MaterialType: "Asphalt",
			AreaSqft:     20000,
		},
		MaterialEstimates:  entities.MaterialEstimate{"asphalt_tons": 478.5, "aggregate_tons": 574.2},
		LaborEstimates:     entities.LaborEstimate{TotalHours: 100},
		SuccessProbability: "80%",
		ProjectID:          "p-1",
	}
}

func TestEstimateHandler_CalculateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/estimates", h.CalculateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid input from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc, nil)

		uc.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(usecase.EstimateResult{}, usecase.ErrInvalidEstimateInput)

		r := gin.New()
		r.POST("/v1/estimates", h.CalculateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"project_name":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("persistence failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc, nil)

		uc.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(usecase.EstimateResult{}, fmt.Errorf("%w: db", usecase.ErrPersistProject))

		r := gin.New()
		r.POST("/v1/estimates", h.CalculateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"project_area":20000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc, nil)

		uc.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(sampleResult(), nil)

		r := gin.New()
		r.POST("/v1/estimates", h.CalculateEstimate)

		body := `{"project_name":"Route 7 Resurfacing","project_area":"20,000 sq ft","material_type":"asphalt"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["project_id"] != "p-1" {
			t.Fatalf("expected project_id p-1, got %v", resp["project_id"])
		}
		if resp["success_probability"] != "80%" {
			t.Fatalf("expected success_probability, got %v", resp["success_probability"])
		}
		materials, ok := resp["material_estimates"].(map[string]any)
		if !ok || materials["asphalt_tons"] != 478.5 {
			t.Fatalf("unexpected material_estimates: %v", resp["material_estimates"])
		}
	})
}

func TestEstimateHandler_UploadRFP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newUpload := func(t *testing.T, field, filename string) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("dummy document bytes")); err != nil {
			t.Fatalf("write form file: %v", err)
		}
		mw.Close()
		return &buf, mw.FormDataContentType()
	}

	t.Run("missing file part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewEstimateHandler(nil, intake)

		r := gin.New()
		r.POST("/v1/estimates/upload", h.UploadRFP)

		buf, contentType := newUpload(t, "document", "rfp.pdf")
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/upload", buf)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("parse failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewEstimateHandler(nil, intake)

		intake.EXPECT().EstimateFromDocument(gomock.Any(), "rfp.pdf", gomock.Any()).
			Return(usecase.EstimateResult{}, fmt.Errorf("%w: bad xref", usecase.ErrDocumentParse))

		r := gin.New()
		r.POST("/v1/estimates/upload", h.UploadRFP)

		buf, contentType := newUpload(t, "file", "rfp.pdf")
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/upload", buf)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("nothing extracted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewEstimateHandler(nil, intake)

		intake.EXPECT().EstimateFromDocument(gomock.Any(), "rfp.pdf", gomock.Any()).
			Return(usecase.EstimateResult{}, usecase.ErrNothingExtracted)

		r := gin.New()
		r.POST("/v1/estimates/upload", h.UploadRFP)

		buf, contentType := newUpload(t, "file", "rfp.pdf")
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/upload", buf)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewEstimateHandler(nil, intake)

		intake.EXPECT().EstimateFromDocument(gomock.Any(), "rfp.pdf", []byte("dummy document bytes")).
			Return(sampleResult(), nil)

		r := gin.New()
		r.POST("/v1/estimates/upload", h.UploadRFP)

		buf, contentType := newUpload(t, "file", "rfp.pdf")
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/upload", buf)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["project_id"] != "p-1" {
			t.Fatalf("expected project_id p-1, got %v", resp["project_id"])
		}
	})

	t.Run("error mapping for unexpected errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewEstimateHandler(nil, intake)

		intake.EXPECT().EstimateFromDocument(gomock.Any(), "rfp.pdf", gomock.Any()).
			Return(usecase.EstimateResult{}, errors.New("boom"))

		r := gin.New()
		r.POST("/v1/estimates/upload", h.UploadRFP)

		buf, contentType := newUpload(t, "file", "rfp.pdf")
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/upload", buf)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
