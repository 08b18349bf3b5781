// Package pricing models the inputs and outputs of shipping-price calculation:
// the immutable rate snapshot (Config), the per-order request (Params) and the
// resulting PriceBreakdown (Breakdown).
//
// The calculation itself lives in the domain services package; this package
// only owns the lookup policy (missing multipliers are 1, missing packaging
// and additional fees are 0) and the validation of raw input.
package pricing
