package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orderdesk/internal/adapter/http/handlers/mocks"
	"orderdesk/internal/infrastructure/dispatch"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJobHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockJobStore(ctrl)
		h := NewJobHandler(store)

		store.EXPECT().Job("job-404").Return(dispatch.Job{}, false)

		r := gin.New()
		r.GET("/v1/jobs/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("finished job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockJobStore(ctrl)
		h := NewJobHandler(store)

		now := time.Now().UTC()
		store.EXPECT().Job("job-1").Return(dispatch.Job{
			ID:        "job-1",
			Task:      TaskCreateOrder,
			Status:    dispatch.JobStatusSucceeded,
			Submitted: now,
			Finished:  now,
		}, true)

		r := gin.New()
		r.GET("/v1/jobs/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if res["id"] != "job-1" || res["status"] != "succeeded" {
			t.Fatalf("unexpected body: %v", res)
		}
		if _, ok := res["finished"]; !ok {
			t.Fatalf("expected finished timestamp in %v", res)
		}
	})
}
