package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/solarscope/internal/pkg/constants"
	"github.com/ougirez/solarscope/internal/pkg/logger"
)

// SessionMiddleware resolves the caller's session id from the X-Session-ID header, generating one
// when it is missing, and echoes it back. Request and session ids are carried on the request context.
func (svc *APIService) SessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		req := ctx.Request()

		sid := req.Header.Get(constants.HeaderSessionID)
		if sid == "" {
			sid = uuid.NewString()
		}
		rid := req.Header.Get(constants.HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}

		ctx.Response().Header().Set(constants.HeaderSessionID, sid)
		ctx.Response().Header().Set(constants.HeaderRequestID, rid)

		reqCtx := logger.WithSessionID(logger.WithRequestID(req.Context(), rid), sid)
		ctx.SetRequest(req.WithContext(reqCtx))

		return next(ctx)
	}
}
