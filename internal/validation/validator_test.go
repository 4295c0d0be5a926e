// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package validation

import (
	"math"
	"strings"
	"testing"
)

type sample struct {
	Query  string   `json:"search_query" validate:"max=10"`
	Price  *float64 `json:"max_price" validate:"omitempty,finite,gte=0"`
	TopN   *int     `json:"top_n" validate:"omitempty,lte=100"`
	Mode   string   `json:"mode,omitempty" validate:"omitempty,oneof=csv live"`
	Secret string   `json:"-" validate:"max=3"`
	Plain  int      `validate:"gte=0"`
}

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     sample
		wantField string
		wantMsg   string
	}{
		{"valid", sample{Query: "cafes", Price: fp(500), TopN: ip(5)}, "", ""},
		{"nil pointers skipped", sample{}, "", ""},
		{"query too long", sample{Query: strings.Repeat("a", 11)}, "search_query", "search_query must be at most 10 characters"},
		{"negative price", sample{Price: fp(-1)}, "max_price", "max_price must be greater than or equal to 0"},
		{"infinite price", sample{Price: fp(math.Inf(1))}, "max_price", "max_price must be a finite number"},
		{"top_n too large", sample{TopN: ip(101)}, "top_n", "top_n must be less than or equal to 100"},
		{"oneof", sample{Mode: "x"}, "mode", "mode must be one of: csv live"},
		{"no json tag uses field name", sample{Plain: -1}, "Plain", "Plain must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("expected validation error")
			}
			errs := verr.Errors()
			if len(errs) != 1 || errs[0].Field != tt.wantField || errs[0].Message != tt.wantMsg {
				t.Errorf("errors = %+v", errs)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	single := ValidateStruct(&sample{TopN: ip(500)}).ToAPIError()
	if single.Code != ErrorCode || single.Details["field"] != "top_n" {
		t.Errorf("single = %+v", single)
	}

	multi := ValidateStruct(&sample{TopN: ip(500), Price: fp(-3)}).ToAPIError()
	if multi.Code != ErrorCode {
		t.Errorf("code = %s", multi.Code)
	}
	if !strings.Contains(multi.Message, "top_n") || !strings.Contains(multi.Message, "max_price") {
		t.Errorf("message = %q", multi.Message)
	}
	if fields, ok := multi.Details["fields"].([]FieldError); !ok || len(fields) != 2 {
		t.Errorf("details = %+v", multi.Details)
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" {
		t.Errorf("empty = %+v", empty)
	}
}
