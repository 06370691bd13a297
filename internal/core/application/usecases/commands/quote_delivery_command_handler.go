package commands

import (
	"context"

	"pizzaria/internal/core/domain/model/quote"
	"pizzaria/internal/core/domain/services"
)

// QuoteDeliveryCommandHandler validates the customer address and delegates
// pricing to the DeliveryQuoter domain service.
type QuoteDeliveryCommandHandler struct {
	quoter services.DeliveryQuoter
}

// NewQuoteDeliveryCommandHandler creates a handler around the quoting service.
func NewQuoteDeliveryCommandHandler(quoter services.DeliveryQuoter) QuoteDeliveryCommandHandler {
	return QuoteDeliveryCommandHandler{quoter: quoter}
}

// Handle prices a delivery to the command's address. Incomplete addresses
// surface as quote.ErrIncompleteAddress with the missing field names.
func (h *QuoteDeliveryCommandHandler) Handle(ctx context.Context, cmd QuoteDeliveryCommand) (quote.Quote, error) {
	if err := cmd.Validate(); err != nil {
		return quote.Quote{}, err
	}

	address, err := quote.NewAddress(cmd.Zip(), cmd.Street(), cmd.Number(), cmd.Neighborhood(), cmd.City())
	if err != nil {
		return quote.Quote{}, err
	}

	return h.quoter.Quote(ctx, address)
}
