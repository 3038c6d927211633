package types

import "github.com/go-playground/validator/v10"

// ScanMode selects which matching engine handles a request.
type ScanMode string

const (
	ModeLexical  ScanMode = "lexical"
	ModeSemantic ScanMode = "semantic"
)

// ScanRequest is the API-facing request body for a scan.
type ScanRequest struct {
	ResumeText     string   `json:"resume_text" validate:"required,min=1"`
	JobDescription string   `json:"job_description" validate:"required,min=1"`
	Mode           ScanMode `json:"mode,omitempty" validate:"omitempty,oneof=lexical semantic"`
}

var validate = validator.New()

// Validate checks the request against its field constraints.
func (r *ScanRequest) Validate() error {
	return validate.Struct(r)
}
