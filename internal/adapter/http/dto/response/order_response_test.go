package response

import (
	"testing"
	"time"

	"orderdesk/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:          "o-1",
		CustomerID:  "c-1",
		Service:     entities.ServiceMobileApp,
		Description: "storefront app",
		Status:      entities.OrderStatusAccepted,
		UpdateHistory: []entities.StatusUpdate{
			{NewStatus: string(entities.OrderStatusAccepted), When: now, By: "e-1", Comment: ""},
		},
		Created: now,
	}

	res := FromOrder(o)
	if res.ID != "o-1" || res.CustomerID != "c-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Service != "mobile_app" || res.Status != "orderAccepted" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.UpdateHistory) != 1 || res.UpdateHistory[0].By != "e-1" {
		t.Fatalf("unexpected history: %+v", res.UpdateHistory)
	}
	if !res.Created.Equal(now) {
		t.Fatalf("unexpected created: %+v", res)
	}
}
