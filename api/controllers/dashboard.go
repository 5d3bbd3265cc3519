package controllers

import (
	"net/http"

	"github.com/angelmondragon/vegmart-backend/api/responses"
	"github.com/angelmondragon/vegmart-backend/internal/dashboard"
	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
	"github.com/angelmondragon/vegmart-backend/pkg/logger"
)

func Dashboard(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}
		ov, err := svc.Overview(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, ov)
	}
}
