package errors

import (
	"errors"
	"fmt"
	"sort"
)

const maxChainDepth = 8

// ErrorDump is the log-friendly view of an error: its code, the HTTP status it maps to, the
// names of any rejected form fields and the unwrapped chain.
type ErrorDump struct {
	TopMessage string   `json:"top_message"`
	Code       Code     `json:"code,omitempty"`
	Status     int      `json:"status,omitempty"`
	Fields     []string `json:"fields,omitempty"`
	Chain      []string `json:"chain,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{TopMessage: err.Error(), Code: CodeInternal}
	if te := As(err); te != nil {
		d.Code = te.Code()
	}
	d.Status = MetadataFor(d.Code).HTTPStatus

	if fields := FieldErrors(err); len(fields) > 0 {
		for name := range fields {
			d.Fields = append(d.Fields, name)
		}
		sort.Strings(d.Fields)
	}

	for e := err; e != nil && len(d.Chain) < maxChainDepth; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}
	return d
}
