// Package order contains the Order aggregate and its Milestone entities.
//
// An order is created with its price breakdown already computed and a
// milestone list built from the chosen warehouse route. After creation the
// only mutation is completing milestones, strictly in execution order; the
// order status follows from which milestones are complete:
//
//	Created ──> InProgress ──> Delivered
package order
