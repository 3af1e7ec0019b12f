package usecase

import (
	"errors"
	"testing"

	"orderdesk/internal/domain/entities"
)

func TestRandomAssignment_Pick(t *testing.T) {
	strategy := NewRandomAssignment()

	t.Run("no employees", func(t *testing.T) {
		_, err := strategy.Pick(nil)
		if !errors.Is(err, ErrNoEmployeesAvailable) {
			t.Fatalf("expected ErrNoEmployeesAvailable, got %v", err)
		}
	})

	t.Run("single employee", func(t *testing.T) {
		id, err := strategy.Pick([]entities.Employee{{ID: "e-1"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "e-1" {
			t.Fatalf("expected e-1, got %s", id)
		}
	})

	t.Run("pick is always a member", func(t *testing.T) {
		pool := []entities.Employee{{ID: "e-1"}, {ID: "e-2"}, {ID: "e-3"}}
		members := map[string]bool{"e-1": true, "e-2": true, "e-3": true}
		for i := 0; i < 50; i++ {
			id, err := strategy.Pick(pool)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !members[id] {
				t.Fatalf("picked unknown employee %s", id)
			}
		}
	})
}
