package queries

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrQuotePriceQueryIsNotConstructed = errors.New(
	"QuotePriceQuery must be created via NewQuotePriceQuery constructor",
)

// QuotePriceQuery prices a shipment without creating an order. Unlike order
// creation, both cities must be given: there are no addresses to resolve
// them from.
//
// Example:
//
//	query, err := NewQuotePriceQuery(pricing.Params{
//	    DeliveryType:    pricing.BetweenCities,
//	    OriginCity:      "Addis Ababa",
//	    DestinationCity: "Adama",
//	    ActualWeight:    4,
//	})
//	if err != nil {
//	    return err
//	}
//
//	quote, err := handler.Handle(ctx, query)
//	fmt.Println(quote.TotalCost) // 100.00
type QuotePriceQuery struct {
	params pricing.Params

	guard guard.ConstructorGuard
}

func NewQuotePriceQuery(params pricing.Params) (QuotePriceQuery, error) {
	params.OriginCity = strings.TrimSpace(params.OriginCity)
	params.DestinationCity = strings.TrimSpace(params.DestinationCity)

	var problems []error
	if params.OriginCity == "" {
		problems = append(problems, errs.NewValueIsRequiredError("origin city"))
	}
	if params.DestinationCity == "" {
		problems = append(problems, errs.NewValueIsRequiredError("destination city"))
	}
	problems = append(problems, params.Validate())
	if err := errors.Join(problems...); err != nil {
		return QuotePriceQuery{}, err
	}

	return QuotePriceQuery{params: params, guard: guard.NewConstructorGuard()}, nil
}

func (q QuotePriceQuery) Validate() error {
	return q.guard.Validate(ErrQuotePriceQueryIsNotConstructed)
}

func (q QuotePriceQuery) Params() pricing.Params {
	return q.params
}

// QuotePriceQueryResponse carries the full breakdown and the formatted total.
// RouteAvailable is false when the price fell back to the default rates.
type QuotePriceQueryResponse struct {
	OriginCity      string
	DestinationCity string
	Breakdown       pricing.Breakdown
	TotalCost       string
	RouteAvailable  bool
}
