// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package validation

import (
	"strings"
	"testing"
)

type sampleForm struct {
	Titulo   string `validate:"required,max=10"`
	Duracion int    `validate:"required,min=1"`
}

func TestValidateStructPasses(t *testing.T) {
	form := sampleForm{Titulo: "Dune", Duracion: 155}
	if verr := ValidateStruct(&form); verr != nil {
		t.Fatalf("ValidateStruct failed on a valid struct: %v", verr)
	}
}

func TestValidateStructCollectsFieldErrors(t *testing.T) {
	form := sampleForm{}
	verr := ValidateStruct(&form)
	if verr == nil {
		t.Fatal("ValidateStruct passed an invalid struct")
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("Collected %d errors, want 2", len(verr.Errors()))
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details == nil {
		t.Error("Multi-field error should carry details")
	}
}

func TestToAPIErrorSingleField(t *testing.T) {
	form := sampleForm{Titulo: "Dune"}
	verr := ValidateStruct(&form)
	if verr == nil {
		t.Fatal("ValidateStruct passed an invalid struct")
	}

	apiErr := verr.ToAPIError()
	if !strings.Contains(apiErr.Message, "Duracion") {
		t.Errorf("Message = %q, want it to name the failing field", apiErr.Message)
	}
	if apiErr.Details["field"] != "Duracion" {
		t.Errorf("Details field = %v, want Duracion", apiErr.Details["field"])
	}
}

func TestTranslateParamMessages(t *testing.T) {
	form := sampleForm{Titulo: "a title far too long", Duracion: 1}
	verr := ValidateStruct(&form)
	if verr == nil {
		t.Fatal("ValidateStruct passed an over-long title")
	}
	if !strings.Contains(verr.Error(), "at most 10") {
		t.Errorf("Error = %q, want the max param in the message", verr.Error())
	}
}
