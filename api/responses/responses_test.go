package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
	"github.com/angelmondragon/vegmart-backend/pkg/logger"
	"github.com/angelmondragon/vegmart-backend/pkg/types"
)

func TestWriteSuccessWrapsData(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteSuccessStatus(resp, http.StatusCreated, map[string]string{"id": "7"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":"7"}}`, resp.Body.String())
}

func TestWriteError(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		status      int
		code        pkgerrors.Code
		message     string
		wantDetails bool
	}{
		{
			name:        "validation keeps details",
			err:         pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(map[string]string{"name": "Name is required"}),
			status:      http.StatusBadRequest,
			code:        pkgerrors.CodeValidation,
			message:     "validation failed",
			wantDetails: true,
		},
		{
			name:    "not found hides details",
			err:     pkgerrors.New(pkgerrors.CodeNotFound, "vegetable not found").WithDetails(map[string]string{"id": "9"}),
			status:  http.StatusNotFound,
			code:    pkgerrors.CodeNotFound,
			message: "vegetable not found",
		},
		{
			name:        "confirmation carries prompt",
			err:         pkgerrors.New(pkgerrors.CodeConfirmationRequired, "confirm delete").WithDetails(map[string]string{"prompt": "Are you sure?"}),
			status:      http.StatusPreconditionRequired,
			code:        pkgerrors.CodeConfirmationRequired,
			message:     "confirm delete",
			wantDetails: true,
		},
		{
			name:    "untyped error is internal",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			code:    pkgerrors.CodeInternal,
			message: "internal server error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			WriteError(context.Background(), logger.Nop(), resp, tc.err)

			require.Equal(t, tc.status, resp.Code)
			var envelope types.ErrorEnvelope
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
			assert.Equal(t, string(tc.code), envelope.Error.Code)
			assert.Equal(t, tc.message, envelope.Error.Message)
			if tc.wantDetails {
				assert.NotNil(t, envelope.Error.Details)
			} else {
				assert.Nil(t, envelope.Error.Details)
			}
		})
	}
}

func TestWriteErrorNilError(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteError(context.Background(), nil, resp, nil)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
