package entities

import "time"

// QuotationStatus represents the lifecycle of a quotation.
//
// quotationUnderReview -> quotationValidated/quotationCancelled
// quotationValidated -> quotationAccepted/quotationRejected
type QuotationStatus string

const (
	QuotationStatusUnderReview QuotationStatus = "quotationUnderReview"
	QuotationStatusValidated   QuotationStatus = "quotationValidated"
	QuotationStatusCancelled   QuotationStatus = "quotationCancelled"
	QuotationStatusRejected    QuotationStatus = "quotationRejected"
	QuotationStatusAccepted    QuotationStatus = "quotationAccepted"
)

var quotationTransitions = map[QuotationStatus][]QuotationStatus{
	QuotationStatusUnderReview: {QuotationStatusValidated, QuotationStatusCancelled},
	QuotationStatusValidated:   {QuotationStatusAccepted, QuotationStatusRejected},
	QuotationStatusCancelled:   nil,
	QuotationStatusRejected:    nil,
	QuotationStatusAccepted:    nil,
}

func (s QuotationStatus) IsValid() bool {
	_, ok := quotationTransitions[s]
	return ok
}

func (s QuotationStatus) CanTransitionTo(next QuotationStatus) bool {
	for _, allowed := range quotationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Quotation is a price offer generated for an accepted order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (order_id-index): order_id
//
// OwnerID is the employee who created the quotation manually; it is empty for
// system-generated quotations. At most one non-cancelled quotation may exist
// per order at any time.
type Quotation struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"order_id"`
	Price         int             `json:"price"`
	Details       string          `json:"details"`
	OwnerID       string          `json:"owner_id,omitempty"`
	Status        QuotationStatus `json:"status"`
	UpdateHistory []StatusUpdate  `json:"update_history"`
	Created       time.Time       `json:"created"`
}

// IsLive reports whether the quotation counts against the one-live-quotation
// per order constraint.
func (q Quotation) IsLive() bool {
	return q.Status != QuotationStatusCancelled
}
