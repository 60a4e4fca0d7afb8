package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fieldroutes/internal/core/application/usecases/commands"
	"fieldroutes/internal/core/application/usecases/queries"
	"fieldroutes/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Wire layout of route timestamps, as the mobile client parses them.
const routeTimeLayout = "2006-01-02 15:04:05"

type (
	TransitionHandler interface {
		Handle(ctx context.Context, command commands.ApplyTransitionCommand) (commands.TransitionResult, error)
	}
	LoginHandler interface {
		Handle(ctx context.Context, command commands.LoginTechnicianCommand) (commands.LoginTechnicianResult, error)
	}
	RoutesHandler interface {
		Handle(ctx context.Context, query queries.GetRoutesQuery) ([]queries.GetRoutesQueryResponse, error)
	}
	TechnicianHandler interface {
		Handle(ctx context.Context, query queries.GetTechnicianQuery) (queries.GetTechnicianQueryResponse, error)
	}
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the generated ServerInterface on top of the use case handlers.
type Server struct {
	transitionHandler TransitionHandler
	loginHandler      LoginHandler
	routesHandler     RoutesHandler
	technicianHandler TechnicianHandler

	times  timeParser
	logger *slog.Logger
}

func NewServer(
	transitionHandler TransitionHandler,
	loginHandler LoginHandler,
	routesHandler RoutesHandler,
	technicianHandler TechnicianHandler,
	location *time.Location,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		transitionHandler: transitionHandler,
		loginHandler:      loginHandler,
		routesHandler:     routesHandler,
		technicianHandler: technicianHandler,
		times:             newTimeParser(location),
		logger:            logger.With("component", "http"),
	}
}

// UpdateStatus handles POST /api/v1/work-orders/status.
func (s *Server) UpdateStatus(ctx echo.Context) error {
	var body servers.UpdateStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return fail(ctx, http.StatusBadRequest, msgMissingTransitionParams, err.Error())
	}
	if blankFormValue(ctx, "rate") {
		body.Rate = nil
	}
	if err := ctx.Validate(&body); err != nil {
		return fail(ctx, http.StatusBadRequest, msgMissingTransitionParams, err.Error())
	}

	startedAt, err := s.times.parseOptional(body.FechaInicio)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "fechaInicio inválida", err.Error())
	}
	endedAt, err := s.times.parseOptional(body.FechaFin)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "fechaFin inválida", err.Error())
	}

	cmd, err := commands.NewApplyTransitionCommand(
		body.IdReporte,
		body.Status,
		startedAt,
		endedAt,
		deref(body.Comentario),
		body.Rate,
	)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, msgMissingTransitionParams, err.Error())
	}

	result, err := s.transitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.failTransition(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUpdateStatusResponse(result))
}

// GetRoutes handles GET /api/v1/routes.
func (s *Server) GetRoutes(ctx echo.Context, params servers.GetRoutesParams) error {
	query, err := queries.NewGetRoutesQuery(params.IdTec, deref(params.IdContrato))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "Falta idTec o idContrato", err.Error())
	}

	routes, err := s.routesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.Error("list routes", "error", err)
		return fail(ctx, http.StatusInternalServerError, msgDatabase, "")
	}

	response := make([]servers.Route, len(routes))
	for i, route := range routes {
		response[i] = servers.Route{
			IDReporte:   route.ReportID,
			Cliente:     route.CustomerName,
			Contrato:    route.ContractID,
			Direccion:   route.Address,
			Orden:       route.Problem,
			Status:      route.Status,
			FechaInicio: s.times.format(route.StartedAt),
			FechaFin:    s.times.format(route.EndedAt),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var body servers.LoginRequest
	if err := ctx.Bind(&body); err != nil {
		return fail(ctx, http.StatusBadRequest, msgMissingCredentials, err.Error())
	}
	if err := ctx.Validate(&body); err != nil {
		return fail(ctx, http.StatusBadRequest, msgMissingCredentials, err.Error())
	}

	cmd, err := commands.NewLoginTechnicianCommand(body.IdTec, body.Password, deref(body.DeviceToken))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, msgMissingCredentials, err.Error())
	}

	result, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.failLogin(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.LoginResponse{
		Ok: true,
		Tec: servers.TechnicianSummary{
			IdTec:  result.ID.Int64(),
			Nombre: result.Name,
			NumTec: result.Number,
			Planta: result.Plant,
		},
	})
}

// GetTechnician handles GET /api/v1/technicians/{id}.
func (s *Server) GetTechnician(ctx echo.Context, id int64) error {
	query, err := queries.NewGetTechnicianQuery(id)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "ID inválido", err.Error())
	}

	technician, err := s.technicianHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.failTechnician(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Technician{
		IdTec:     technician.ID,
		NombreTec: technician.Name,
		NumTec:    technician.Number,
		Planta:    technician.Plant,
	})
}

func toUpdateStatusResponse(result commands.TransitionResult) servers.UpdateStatusResponse {
	if result.Skipped != "" {
		skipped := servers.UpdateStatusResponseSkipped(result.Skipped)
		return servers.UpdateStatusResponse{Ok: true, Skipped: &skipped}
	}

	rows := result.RowsUpdated
	if result.Cancellation == nil {
		return servers.UpdateStatusResponse{Ok: result.Success, Rows: &rows}
	}

	return servers.UpdateStatusResponse{
		Ok:          result.Success,
		RowsUpdated: &rows,
		Cancelados: &servers.CancellationSummary{
			Attempted: result.Cancellation.Attempted,
			Inserted:  result.Cancellation.Inserted,
			Rows:      result.Cancellation.Rows,
			IdProd:    result.Cancellation.ProdID.Int64(),
		},
	}
}

// blankFormValue reports a form field that was sent empty. echo binds "rate="
// as zero, which would otherwise overwrite the stored rating.
func blankFormValue(ctx echo.Context, name string) bool {
	form, err := ctx.FormParams()
	if err != nil {
		return false
	}
	values, ok := form[name]
	return ok && (len(values) == 0 || strings.TrimSpace(values[0]) == "")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
