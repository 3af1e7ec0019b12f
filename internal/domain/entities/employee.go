package entities

// Employee is a member of staff who validates orders and quotations and
// executes realisations. Immutable after registration.
type Employee struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
