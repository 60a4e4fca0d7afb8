package http

import (
	"errors"
	"net/http"

	"fieldroutes/internal/core/domain/model/technician"
	"fieldroutes/internal/generated/servers"
	"fieldroutes/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	msgMissingTransitionParams = "Faltan parámetros: idReporte y status son requeridos"
	msgMissingCredentials      = "Faltan credenciales"
	msgDatabase                = "Error de base de datos"
)

func fail(ctx echo.Context, code int, message, detail string) error {
	response := servers.ErrorResponse{Ok: false, Error: message}
	if detail != "" {
		response.Detail = &detail
	}
	return ctx.JSON(code, response)
}

func (s *Server) failTransition(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return fail(ctx, http.StatusBadRequest, msgMissingTransitionParams, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return fail(ctx, http.StatusNotFound, "Reporte no encontrado", err.Error())
	case errors.Is(err, errs.ErrConsistency):
		s.logger.Error("transition left inconsistent", "error", err)
		return fail(ctx, http.StatusInternalServerError, "No se pudo registrar la cancelación", err.Error())
	default:
		// Storage causes are logged, never echoed to the client.
		s.logger.Error("apply transition", "error", err)
		return fail(ctx, http.StatusInternalServerError, msgDatabase, "")
	}
}

func (s *Server) failLogin(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return fail(ctx, http.StatusBadRequest, msgMissingCredentials, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return fail(ctx, http.StatusUnauthorized, "IDTec no encontrado", "")
	case errors.Is(err, technician.ErrInvalidCredentials):
		return fail(ctx, http.StatusUnauthorized, "Contraseña inválida", "")
	default:
		s.logger.Error("login", "error", err)
		return fail(ctx, http.StatusInternalServerError, msgDatabase, "")
	}
}

func (s *Server) failTechnician(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fail(ctx, http.StatusNotFound, "No encontrado", "")
	}
	s.logger.Error("get technician", "error", err)
	return fail(ctx, http.StatusInternalServerError, msgDatabase, "")
}
