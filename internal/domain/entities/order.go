package entities

import "time"

// OrderStatus represents the lifecycle of an order.
//
// underReview -> orderAccepted/orderRejected/orderCancelled
// orderAccepted -> orderCancelled | realisationScheduled
// realisationScheduled -> realisationStarted -> realisationCompleted
type OrderStatus string

const (
	OrderStatusUnderReview          OrderStatus = "underReview"
	OrderStatusAccepted             OrderStatus = "orderAccepted"
	OrderStatusRejected             OrderStatus = "orderRejected"
	OrderStatusCancelled            OrderStatus = "orderCancelled"
	OrderStatusRealisationScheduled OrderStatus = "realisationScheduled"
	OrderStatusRealisationStarted   OrderStatus = "realisationStarted"
	OrderStatusRealisationCompleted OrderStatus = "realisationCompleted"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusUnderReview:          {OrderStatusAccepted, OrderStatusRejected, OrderStatusCancelled},
	OrderStatusAccepted:             {OrderStatusCancelled, OrderStatusRealisationScheduled},
	OrderStatusRealisationScheduled: {OrderStatusRealisationStarted},
	OrderStatusRealisationStarted:   {OrderStatusRealisationCompleted},
	OrderStatusRejected:             nil,
	OrderStatusCancelled:            nil,
	OrderStatusRealisationCompleted: nil,
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is an order placed by a customer for one of the service tiers.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Orders are never physically deleted; status transitions mutate in place and
// are recorded in UpdateHistory.
type Order struct {
	ID            string         `json:"id"`
	CustomerID    string         `json:"customer_id"`
	Service       Service        `json:"service"`
	Description   string         `json:"description"`
	Status        OrderStatus    `json:"status"`
	UpdateHistory []StatusUpdate `json:"update_history"`
	Created       time.Time      `json:"created"`
}
