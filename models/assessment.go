package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AnalysisRequest carries the form input for a single analysis run.
// All fields are free text; empty values are allowed and simply produce
// a less specific prompt.
type AnalysisRequest struct {
	CustomerName string `json:"customerName"`
	Industry     string `json:"industry"`
	Description  string `json:"description,omitempty"`
}

// RiskAssessment is the structured reply the model must produce: a bounded
// score, a short summary, and exactly three risk factors. It is created once
// per run from the raw model reply and never mutated.
type RiskAssessment struct {
	RiskScore   float64  `json:"risk_score" validate:"gte=0,lte=10"`
	RiskSummary string   `json:"risk_summary" validate:"required"`
	RiskFactors []string `json:"risk_factors" validate:"len=3,dive,required"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}
