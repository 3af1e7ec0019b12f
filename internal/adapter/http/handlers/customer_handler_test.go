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
	"orderdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCustomerHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"first_name":"Ada"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().Register(gomock.Any(), "Ada", "Lovelace", "ada@example.com").
			Return(entities.Customer{ID: "c-1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}, nil)

		r := gin.New()
		r.POST("/v1/customers", h.Register)

		body := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if res["id"] != "c-1" {
			t.Fatalf("unexpected body: %v", res)
		}
	})
}

func TestCustomerHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICustomerUseCase(ctrl)
	h := NewCustomerHandler(uc)

	uc.EXPECT().GetByID(gomock.Any(), "c-404").
		Return(entities.Customer{}, fmt.Errorf("%w: customer c-404", usecase.ErrNotFound))

	r := gin.New()
	r.GET("/v1/customers/:id", h.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/v1/customers/c-404", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
