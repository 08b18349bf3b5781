package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads orders with plain SQL.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order and its milestones in execution order, or
// errs.ErrObjectNotFound.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	id := query.OrderID()
	resp := GetOrderQueryResponse{ID: id}

	var (
		status    int
		totalCost float64
		waypoints pq.StringArray
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			pickup_address,
			dropoff_address,
			origin_city,
			destination_city,
			delivery_type,
			status,
			price_total_cost,
			waypoints,
			created_at
		FROM orders
		WHERE id = ?
	`, id.Bytes()).Row().Scan(
		&resp.PickupAddress,
		&resp.DropoffAddress,
		&resp.OriginCity,
		&resp.DestinationCity,
		&resp.DeliveryType,
		&status,
		&totalCost,
		&waypoints,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", id.String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Status = order.Status(status).String()
	resp.TotalCost = pricing.FormatPrice(totalCost)
	resp.Waypoints = []string(waypoints)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			description,
			coordinates,
			is_completed,
			execution_order,
			is_last
		FROM order_milestones
		WHERE order_id = ?
		ORDER BY execution_order
	`, id.Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	resp.Milestones = make([]MilestoneView, 0)
	for rows.Next() {
		var (
			view        MilestoneView
			coordinates sql.NullString
		)
		if err = rows.Scan(
			&view.Description,
			&coordinates,
			&view.IsCompleted,
			&view.ExecutionOrder,
			&view.IsLast,
		); err != nil {
			return GetOrderQueryResponse{}, err
		}
		view.Coordinates = coordinates.String
		resp.Milestones = append(resp.Milestones, view)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
