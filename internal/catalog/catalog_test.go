package catalog

import "testing"

func TestAcquisitionTypeLabel(t *testing.T) {
	if got := AcquisitionTypeLabel("far"); got != "FAR-Based Contract" {
		t.Fatalf("far label = %q", got)
	}
	if got := AcquisitionTypeLabel("bogus"); got != "Standard Contract" {
		t.Fatalf("expected generic fallback for unknown code, got %q", got)
	}
}

func TestSecurityLevelLabel(t *testing.T) {
	if got := SecurityLevelLabel("topsecret"); got != "Top Secret" {
		t.Fatalf("topsecret label = %q", got)
	}
	if got := SecurityLevelLabel(""); got != "Standard" {
		t.Fatalf("expected generic fallback for empty code, got %q", got)
	}
}

func TestComplianceLabels(t *testing.T) {
	labels := ComplianceLabels([]string{"nist800171", "iso27001"})
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	if labels[0] != "NIST 800-171 (CUI Protection)" {
		t.Fatalf("nist800171 label = %q", labels[0])
	}
	// Unresolved codes render as their raw code string.
	if labels[1] != "iso27001" {
		t.Fatalf("unknown code should render raw, got %q", labels[1])
	}
	if got := ComplianceLabels(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}
