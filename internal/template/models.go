// Package template provides the RFP template library: four seeded demo
// templates plus user-saved ones, kept for the process lifetime.
package template

import (
	"strings"
	"time"

	dErrors "rfpforge/pkg/domain-errors"
)

// Template is a reusable RFP intake preset.
type Template struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Title           string    `json:"title"`
	Objective       string    `json:"objective"`
	AcquisitionType string    `json:"acquisition_type"`
	SecurityLevel   string    `json:"security_level"`
	ContractValue   string    `json:"contract_value"`
	Compliance      []string  `json:"compliance"`
	CreatedBy       string    `json:"created_by,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitzero"`
}

// SaveRequest is the intake for saving a new template.
type SaveRequest struct {
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	Objective       string   `json:"objective"`
	AcquisitionType string   `json:"acquisition_type"`
	SecurityLevel   string   `json:"security_level"`
	ContractValue   string   `json:"contract_value"`
	Compliance      []string `json:"compliance"`
}

// Validate enforces the required template fields.
func (r *SaveRequest) Validate() error {
	var missing []string
	for _, field := range []struct{ name, value string }{
		{"name", r.Name},
		{"title", r.Title},
		{"objective", r.Objective},
		{"acquisition_type", r.AcquisitionType},
		{"security_level", r.SecurityLevel},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return dErrors.New(dErrors.CodeValidation, "Missing required fields: "+strings.Join(missing, ", "))
	}
	return nil
}
