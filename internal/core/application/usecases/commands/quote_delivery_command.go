package commands

import (
	"errors"

	"pizzaria/internal/pkg/guard"
)

// ErrQuoteDeliveryCommandIsNotConstructed is returned when a zero-value
// command reaches a handler.
var ErrQuoteDeliveryCommandIsNotConstructed = errors.New(
	"QuoteDeliveryCommand must be created via NewQuoteDeliveryCommand constructor",
)

// QuoteDeliveryCommand carries the raw address fields a customer typed in.
// Field-level validation (which parts are missing) happens in the address
// value object, so incompleteness surfaces as a typed domain error rather
// than a constructor failure here.
type QuoteDeliveryCommand struct {
	zip          string
	street       string
	number       string
	neighborhood string
	city         string

	guard guard.ConstructorGuard
}

// NewQuoteDeliveryCommand creates the quoting command.
func NewQuoteDeliveryCommand(zip, street, number, neighborhood, city string) QuoteDeliveryCommand {
	return QuoteDeliveryCommand{
		zip:          zip,
		street:       street,
		number:       number,
		neighborhood: neighborhood,
		city:         city,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c QuoteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrQuoteDeliveryCommandIsNotConstructed)
}

// Zip returns the postal code as typed.
func (c QuoteDeliveryCommand) Zip() string { return c.zip }

// Street returns the street name as typed.
func (c QuoteDeliveryCommand) Street() string { return c.street }

// Number returns the street number as typed.
func (c QuoteDeliveryCommand) Number() string { return c.number }

// Neighborhood returns the neighborhood as typed.
func (c QuoteDeliveryCommand) Neighborhood() string { return c.neighborhood }

// City returns the city as typed.
func (c QuoteDeliveryCommand) City() string { return c.city }
