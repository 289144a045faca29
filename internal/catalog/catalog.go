// Package catalog holds the static reference tables used when rendering RFP
// documents: acquisition authorities, security classifications, and
// compliance standards. Lookups never fail; unknown codes degrade to a
// generic label so document generation is never blocked by a stale code.
package catalog

var securityLevels = map[string]string{
	"cui":          "CUI (Controlled Unclassified Information)",
	"confidential": "Confidential",
	"secret":       "Secret",
	"topsecret":    "Top Secret",
}

var acquisitionTypes = map[string]string{
	"far":  "FAR-Based Contract",
	"ota":  "Other Transaction Authority",
	"cso":  "Commercial Solutions Opening",
	"sbir": "Small Business Innovation Research",
}

var complianceStandards = map[string]string{
	"nist800171": "NIST 800-171 (CUI Protection)",
	"cmmc":       "CMMC (Cybersecurity Maturity Model)",
	"fisma":      "FISMA (Federal Information Security)",
	"dfars":      "DFARS (Defense Federal Acquisition)",
}

// AcquisitionTypeLabel resolves an acquisition type code to its display
// label, falling back to a generic contract label for unknown codes.
func AcquisitionTypeLabel(code string) string {
	if label, ok := acquisitionTypes[code]; ok {
		return label
	}
	return "Standard Contract"
}

// SecurityLevelLabel resolves a security level code to its display label,
// falling back to "Standard" for unknown codes.
func SecurityLevelLabel(code string) string {
	if label, ok := securityLevels[code]; ok {
		return label
	}
	return "Standard"
}

// ComplianceLabel resolves a compliance standard code to its display label.
// Unknown codes render as the raw code string.
func ComplianceLabel(code string) string {
	if label, ok := complianceStandards[code]; ok {
		return label
	}
	return code
}

// ComplianceLabels resolves each code independently, preserving order.
func ComplianceLabels(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	labels := make([]string, 0, len(codes))
	for _, code := range codes {
		labels = append(labels, ComplianceLabel(code))
	}
	return labels
}
