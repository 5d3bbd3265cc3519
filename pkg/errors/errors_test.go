package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		detailsOK bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "validation failed", detailsOK: true},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "resource not found"},
		{code: CodeConflict, status: http.StatusConflict, publicMsg: "conflict detected"},
		{code: CodeStateConflict, status: http.StatusUnprocessableEntity, publicMsg: "state transition disallowed", detailsOK: true},
		{code: CodeConfirmationRequired, status: http.StatusPreconditionRequired, publicMsg: "confirmation required", detailsOK: true},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "internal server error"},
		{code: CodeDependency, status: http.StatusServiceUnavailable, publicMsg: "dependency unavailable", detailsOK: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing name")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing name" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	base.WithDetails(map[string]string{"name": "Name is required"})
	if base.Details() == nil {
		t.Fatalf("details should be preserved")
	}

	cause := stdErrors.New("boom")
	wrapped := Wrap(CodeConflict, cause, "ctx")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("Wrap did not preserve cause")
	}
	if wrapped.Code() != CodeConflict {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
}

func TestAsReturnsTypedError(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeNotFound, "vegetable not found"))
	if got := As(err); got == nil || got.Code() != CodeNotFound {
		t.Fatalf("As failed to return typed error")
	}
	if !Is(err, CodeNotFound) {
		t.Fatalf("Is should match wrapped code")
	}
	if As(nil) != nil {
		t.Fatalf("As(nil) should return nil")
	}
}

func TestFieldErrors(t *testing.T) {
	err := New(CodeValidation, "validation failed").WithDetails(map[string]string{"contact": "Contact is required"})
	fields := FieldErrors(err)
	if fields["contact"] != "Contact is required" {
		t.Fatalf("unexpected field errors %v", fields)
	}
	if FieldErrors(New(CodeNotFound, "missing")) != nil {
		t.Fatalf("non-validation errors carry no field errors")
	}
}

func TestValidationCopiesFields(t *testing.T) {
	fields := map[string]string{"name": "Name is required"}
	err := Validation("validation failed", fields)
	fields["name"] = "changed"
	if FieldErrors(err)["name"] != "Name is required" {
		t.Fatalf("validation error should own its field map")
	}
	if Validation("validation failed", nil).Details() != nil {
		t.Fatalf("no fields means no details")
	}
}

func TestDumpWalksChain(t *testing.T) {
	err := Wrap(CodeInternal, stdErrors.New("root"), "outer")
	dump := Dump(err)
	if dump.Code != CodeInternal || dump.Status != http.StatusInternalServerError {
		t.Fatalf("unexpected code %s status %d", dump.Code, dump.Status)
	}
	if len(dump.Chain) != 2 {
		t.Fatalf("expected two chain entries, got %v", dump.Chain)
	}
}

func TestDumpListsRejectedFields(t *testing.T) {
	dump := Dump(Validation("validation failed", map[string]string{"stock": "x", "name": "y"}))
	if len(dump.Fields) != 2 || dump.Fields[0] != "name" || dump.Fields[1] != "stock" {
		t.Fatalf("unexpected fields %v", dump.Fields)
	}
	if Dump(stdErrors.New("plain")).Code != CodeInternal {
		t.Fatalf("untyped errors dump as internal")
	}
}
