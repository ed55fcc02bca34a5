package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves all non-terminal orders from the
// database for the operations dashboard. The regional hub is pulled out of
// the tracking document in SQL so the handler never parses the full
// document.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all in-flight orders.
// Results are sorted by creation time for a stable feed.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status,
			assigned_to,
			COALESCE(tracking->>'regionalHub', '')
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at
	`, order.Delivered, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			userID     uuid.UUID
			status     int
			assignedTo sql.Null[uuid.UUID]
			resp       GetActiveOrdersQueryResponse
		)

		err = rows.Scan(&id, &userID, &status, &assignedTo, &resp.RegionalHub)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.UserID, err = kernel.UUIDFromBytes(userID[:])
		if err != nil {
			return nil, err
		}
		resp.Status = order.Status(status).String()

		if assignedTo.Valid {
			riderID, riderErr := kernel.UUIDFromBytes(assignedTo.V[:])
			if riderErr != nil {
				return nil, riderErr
			}
			resp.AssignedTo = &riderID
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
