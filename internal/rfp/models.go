// Package rfp holds the RFP intake and document model, the document
// registry ports, and the content builder.
package rfp

import (
	"strings"
	"time"

	dErrors "rfpforge/pkg/domain-errors"
)

// Status is the document lifecycle state. Documents are created as draft;
// no transition is implemented.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusApproved Status = "approved"
)

// DefaultContractValue applies when the intake omits contract_value.
const DefaultContractValue = "simplified"

// Intake is the user-submitted description of a desired RFP. It is not
// persisted as such; a Document is derived from it.
type Intake struct {
	Title                  string   `json:"project_title"`
	Objective              string   `json:"mission_objective"`
	AcquisitionType        string   `json:"acquisition_type"`
	SecurityLevel          string   `json:"security_level"`
	ContractValue          string   `json:"contract_value"`
	ComplianceRequirements []string `json:"compliance_requirements"`
}

// Normalize fills defaults. Call before Validate.
func (i *Intake) Normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Objective = strings.TrimSpace(i.Objective)
	i.AcquisitionType = strings.TrimSpace(i.AcquisitionType)
	i.SecurityLevel = strings.TrimSpace(i.SecurityLevel)
	if i.ContractValue == "" {
		i.ContractValue = DefaultContractValue
	}
}

// Validate enforces the required fields. Absence is a validation failure,
// not a default; enum codes are deliberately not checked here because the
// builder renders unknown codes generically instead of rejecting them.
func (i *Intake) Validate() error {
	var missing []string
	if i.Title == "" {
		missing = append(missing, "project_title")
	}
	if i.Objective == "" {
		missing = append(missing, "mission_objective")
	}
	if i.AcquisitionType == "" {
		missing = append(missing, "acquisition_type")
	}
	if i.SecurityLevel == "" {
		missing = append(missing, "security_level")
	}
	if len(missing) > 0 {
		return dErrors.New(dErrors.CodeValidation, "Missing required fields: "+strings.Join(missing, ", "))
	}
	return nil
}

// Document is a generated RFP owned exclusively by its creator.
type Document struct {
	ID                     string   `json:"id"`
	Number                 string   `json:"number"`
	Title                  string   `json:"title"`
	Objective              string   `json:"objective"`
	AcquisitionType        string   `json:"acquisition_type"`
	SecurityLevel          string   `json:"security_level"`
	ContractValue          string   `json:"contract_value"`
	ComplianceRequirements []string `json:"compliance_requirements"`
	Status                 Status   `json:"status"`
	CreatedBy              string   `json:"created_by"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
	Content                string   `json:"content"`
}
