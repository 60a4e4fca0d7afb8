package queries

import (
	"context"
	"database/sql"
	"time"

	"fieldroutes/internal/core/domain/model/workorder"
	"fieldroutes/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetRoutesQueryResponse is one line of a technician's route list.
type GetRoutesQueryResponse struct {
	ReportID     int64
	CustomerName string
	ContractID   string
	Address      string
	Problem      string
	Status       string
	StartedAt    *time.Time
	EndedAt      *time.Time
}

const (
	routesByTechnicianSQL = routesSelectSQL + `WHERE w.technician_id = ?` + routesOrderSQL
	routesByContractSQL   = routesSelectSQL + `WHERE w.contract_id = ?` + routesOrderSQL

	routesSelectSQL = `
		SELECT
			w.report_id,
			w.contract_id,
			c.name,
			c.address,
			COALESCE(r.problem, ''),
			w.status,
			w.started_at,
			w.ended_at
		FROM work_orders w
		JOIN customers c ON c.contract_id = w.contract_id
		LEFT JOIN problem_reports r ON r.report_id = w.report_id
		`

	// Orders currently en route first, then completed ones, newest report first within each group.
	routesOrderSQL = `
		ORDER BY (w.status = ?) DESC, (w.status = ?) DESC, w.report_id DESC`
)

// GetRoutesQueryHandler reads route lists straight from the database.
type GetRoutesQueryHandler struct {
	db         *gorm.DB
	normalizer services.AddressNormalizer
}

func NewGetRoutesQueryHandler(db *gorm.DB) GetRoutesQueryHandler {
	return GetRoutesQueryHandler{db: db, normalizer: services.NewAddressNormalizer()}
}

// Handle returns the routes matching the query with display-ready addresses.
// An empty list is not an error.
func (h GetRoutesQueryHandler) Handle(ctx context.Context, query GetRoutesQuery) ([]GetRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statement, filter := routesByContractSQL, any(query.ContractID())
	if id := query.TechnicianID(); id != nil {
		statement, filter = routesByTechnicianSQL, id.Int64()
	}

	rows, err := h.db.WithContext(ctx).Raw(statement, filter, workorder.EnRouteText, workorder.CompletedText).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]GetRoutesQueryResponse, 0)
	for rows.Next() {
		var route GetRoutesQueryResponse
		var startedAt, endedAt sql.NullTime

		if err := rows.Scan(
			&route.ReportID,
			&route.ContractID,
			&route.CustomerName,
			&route.Address,
			&route.Problem,
			&route.Status,
			&startedAt,
			&endedAt,
		); err != nil {
			return nil, err
		}

		route.Address = h.normalizer.Normalize(route.Address)
		route.StartedAt = nullableTime(startedAt)
		route.EndedAt = nullableTime(endedAt)
		routes = append(routes, route)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
