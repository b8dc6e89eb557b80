package negotiation

// Terminal states expose no mutating operations: there is no legal way out of
// SOLD, RENTED or CANCELLED. They still participate in the factory so every
// status resolves to exactly one state.

// SoldState is the terminal state of a completed sale.
type SoldState struct {
	base
}

func newSoldState(env Context) (State, error) {
	return &SoldState{base{status: StatusSold, env: env}}, nil
}

// RentedState is the terminal state of a completed rental.
type RentedState struct {
	base
}

func newRentedState(env Context) (State, error) {
	return &RentedState{base{status: StatusRented, env: env}}, nil
}

// CancelledState is the terminal state of a cancelled negotiation. The
// negotiation row survives; only the property was released.
type CancelledState struct {
	base
}

func newCancelledState(env Context) (State, error) {
	return &CancelledState{base{status: StatusCancelled, env: env}}, nil
}
