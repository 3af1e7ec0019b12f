package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderdesk/internal/adapter/http/handlers/mocks"
	"orderdesk/internal/domain/entities"
	"orderdesk/internal/infrastructure/dispatch"
	"orderdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		submitter := mocks.NewMockJobSubmitter(ctrl)
		h := NewOrderHandler(uc, submitter)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("accepted with job id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		submitter := mocks.NewMockJobSubmitter(ctrl)
		h := NewOrderHandler(uc, submitter)

		submitter.EXPECT().Submit(TaskCreateOrder, map[string]interface{}{
			"customer_id": "c-1",
			"service":     "web_site",
			"description": "company site",
		}).Return("job-1", nil)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		body := `{"customer_id":"c-1","service":"web_site","description":"company site"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		var res map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if res["job_id"] != "job-1" || res["status"] != "accepted" {
			t.Fatalf("unexpected body: %v", res)
		}
	})

	t.Run("queue full maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		submitter := mocks.NewMockJobSubmitter(ctrl)
		h := NewOrderHandler(uc, submitter)

		submitter.EXPECT().Submit(TaskCreateOrder, gomock.Any()).
			Return("", dispatch.ErrQueueFull)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		body := `{"customer_id":"c-1","service":"web_site"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		submitter := mocks.NewMockJobSubmitter(ctrl)
		h := NewOrderHandler(uc, submitter)

		uc.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{
			ID:         "o-1",
			CustomerID: "c-1",
			Service:    entities.ServiceWebSite,
			Status:     entities.OrderStatusUnderReview,
		}, nil)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/o-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		submitter := mocks.NewMockJobSubmitter(ctrl)
		h := NewOrderHandler(uc, submitter)

		uc.EXPECT().GetByID(gomock.Any(), "o-404").
			Return(entities.Order{}, fmt.Errorf("%w: order o-404", usecase.ErrNotFound))

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/o-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Cancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing author id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		submitter := mocks.NewMockJobSubmitter(ctrl)
		h := NewOrderHandler(uc, submitter)

		r := gin.New()
		r.PATCH("/v1/orders/:id/cancel", h.Cancel)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/cancel", bytes.NewBufferString(`{}`))
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
		uc := mocks.NewMockIOrderUseCase(ctrl)
		submitter := mocks.NewMockJobSubmitter(ctrl)
		h := NewOrderHandler(uc, submitter)

		submitter.EXPECT().Submit(TaskCancelOrder, map[string]interface{}{
			"order_id":  "o-1",
			"author_id": "c-1",
			"comment":   "changed my mind",
		}).Return("job-2", nil)

		r := gin.New()
		r.PATCH("/v1/orders/:id/cancel", h.Cancel)

		body := `{"author_id":"c-1","comment":"changed my mind"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/cancel", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})
}
