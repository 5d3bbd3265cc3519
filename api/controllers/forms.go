package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/vegmart-backend/api/responses"
	"github.com/angelmondragon/vegmart-backend/api/validators"
	"github.com/angelmondragon/vegmart-backend/internal/forms"
	"github.com/angelmondragon/vegmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
	"github.com/angelmondragon/vegmart-backend/pkg/logger"
)

type openFormRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=vegetable seller invoice"`
	Mode     string `json:"mode" validate:"required,oneof=create edit"`
	TargetID string `json:"target_id" validate:"required_if=Mode edit"`
}

// OpenForm starts a create or edit dialog and returns its session.
func OpenForm(reg *forms.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if reg == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "form registry unavailable"))
			return
		}
		var body openFormRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		kind, err := enums.ParseEntityKind(body.Kind)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid kind"))
			return
		}
		mode, err := enums.ParseFormMode(body.Mode)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid mode"))
			return
		}
		if mode == enums.FormModeCreate {
			body.TargetID = ""
		}

		view, err := reg.Open(r.Context(), forms.OpenParams{Kind: kind, Mode: mode, TargetID: body.TargetID})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

func GetForm(reg *forms.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if reg == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "form registry unavailable"))
			return
		}
		view, err := reg.Get(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// UpdateForm writes the given fields into the open draft.
func UpdateForm(reg *forms.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if reg == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "form registry unavailable"))
			return
		}
		draft, err := validators.DecodeDraft(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, err := reg.Update(chi.URLParam(r, "id"), draft)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// SubmitForm validates the draft. A rejected submit answers 400 with one message per field
// and leaves the session open for correction.
func SubmitForm(reg *forms.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if reg == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "form registry unavailable"))
			return
		}
		res, err := reg.Submit(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, res)
	}
}

func CancelForm(reg *forms.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if reg == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "form registry unavailable"))
			return
		}
		id := chi.URLParam(r, "id")
		if err := reg.Cancel(id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"id": id, "state": forms.StateClosed})
	}
}
