package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound is returned when a referenced product id is absent.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductExists is returned when creating a product with a
	// duplicate id. The existing collection is left untouched.
	ErrProductExists = errors.New("product id already exists")
)

// ValidationError reports an invariant violation at product
// construction time.
type ValidationError struct {
	ProductID string
	Field     string
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.ProductID == "" {
		return fmt.Sprintf("invalid product: %s %s", e.Field, e.Reason)
	}

	return fmt.Sprintf("invalid product %s: %s %s", e.ProductID, e.Field, e.Reason)
}
