package shipment

import "fmt"

// MalformedFieldError reports a required field that failed to parse. The
// pipeline aborts generation for the shipment when any of these are present;
// no partial document set is produced.
type MalformedFieldError struct {
	// Field is the record path of the offending field, e.g.
	// "product_categories[1].products[0].quantity".
	Field string

	// Value is the raw value that failed to parse.
	Value string

	// Reason is a human-readable description of the failure.
	Reason string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed field %s: %q (%s)", e.Field, e.Value, e.Reason)
}
