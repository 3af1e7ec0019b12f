package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderdesk/internal/adapter/http/handlers/mocks"
	"orderdesk/internal/domain/entities"
	"orderdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuotationHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing owner id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		submitter := mocks.NewMockJobSubmitter(ctrl)
		h := NewQuotationHandler(uc, submitter)

		r := gin.New()
		r.POST("/v1/quotations", h.Create)

		body := `{"order_id":"o-1","price":7000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		submitter := mocks.NewMockJobSubmitter(ctrl)
		h := NewQuotationHandler(uc, submitter)

		submitter.EXPECT().Submit(TaskCreateQuotation, map[string]interface{}{
			"order_id": "o-1",
			"price":    7000,
			"details":  "custom build",
			"owner_id": "e-1",
		}).Return("job-1", nil)

		r := gin.New()
		r.POST("/v1/quotations", h.Create)

		body := `{"order_id":"o-1","price":7000,"details":"custom build","owner_id":"e-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_Accept(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuotationUseCase(ctrl)
	submitter := mocks.NewMockJobSubmitter(ctrl)
	h := NewQuotationHandler(uc, submitter)

	submitter.EXPECT().Submit(TaskAcceptQuotation, map[string]interface{}{
		"quotation_id": "q-1",
		"author_id":    "c-1",
	}).Return("job-3", nil)

	r := gin.New()
	r.PATCH("/v1/quotations/:id/accept", h.Accept)

	body := `{"author_id":"c-1"}`
	req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/accept", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", w.Code)
	}
}

func TestQuotationHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		submitter := mocks.NewMockJobSubmitter(ctrl)
		h := NewQuotationHandler(uc, submitter)

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{
			ID:      "q-1",
			OrderID: "o-1",
			Price:   5000,
			Status:  entities.QuotationStatusUnderReview,
		}, nil)

		r := gin.New()
		r.GET("/v1/quotations/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		submitter := mocks.NewMockJobSubmitter(ctrl)
		h := NewQuotationHandler(uc, submitter)

		uc.EXPECT().GetByID(gomock.Any(), "q-404").
			Return(entities.Quotation{}, fmt.Errorf("%w: quotation q-404", usecase.ErrNotFound))

		r := gin.New()
		r.GET("/v1/quotations/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/q-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
