package rfp

import (
	"fmt"
	"strings"

	"rfpforge/internal/generation"
)

// fallbackContent renders the deterministic section template. It uses the
// same h3/p/ul/li vocabulary the remote generator is instructed to produce,
// so downstream rendering cannot tell the two apart structurally.
func fallbackContent(intake Intake, req generation.Request) string {
	var b strings.Builder

	b.WriteString("<p><em>Note: Automated content generation was unavailable. This document was produced from the standard RFP template.</em></p>\n")

	fmt.Fprintf(&b, "<h3>1. Introduction</h3>\n")
	fmt.Fprintf(&b, "<p>The Department of Defense is issuing this Request for Proposal (RFP) for %s. This acquisition will be conducted under %s. Security classification for this effort: %s.</p>\n",
		intake.Title, req.AuthorityLabel, req.ClassificationLabel)

	fmt.Fprintf(&b, "<h3>2. Scope of Work</h3>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", intake.Objective)
	b.WriteString("<p>The contractor shall furnish all personnel, equipment, tools, materials, supervision, and other items necessary to accomplish the objectives stated above.</p>\n")

	fmt.Fprintf(&b, "<h3>3. Technical Requirements</h3>\n")
	b.WriteString("<ul>\n")
	b.WriteString("<li>Deliverables shall conform to applicable military and federal standards.</li>\n")
	b.WriteString("<li>The contractor shall provide a detailed technical approach addressing all stated objectives.</li>\n")
	b.WriteString("<li>All work products are subject to government review and acceptance testing.</li>\n")
	b.WriteString("</ul>\n")

	fmt.Fprintf(&b, "<h3>4. Security Requirements</h3>\n")
	fmt.Fprintf(&b, "<p>All work shall be performed in accordance with the %s classification level.</p>\n", req.ClassificationLabel)
	if len(req.ComplianceLabels) > 0 {
		b.WriteString("<p>The following compliance standards apply:</p>\n<ul>\n")
		for _, label := range req.ComplianceLabels {
			fmt.Fprintf(&b, "<li>%s</li>\n", label)
		}
		b.WriteString("</ul>\n")
	}

	fmt.Fprintf(&b, "<h3>5. Evaluation Criteria</h3>\n")
	b.WriteString("<p>Proposals will be evaluated using the following weighted factors:</p>\n")
	b.WriteString("<ul>\n")
	b.WriteString("<li>Technical Approach (40%)</li>\n")
	b.WriteString("<li>Management Approach (25%)</li>\n")
	b.WriteString("<li>Past Performance (20%)</li>\n")
	b.WriteString("<li>Cost/Price (15%)</li>\n")
	b.WriteString("</ul>\n")

	fmt.Fprintf(&b, "<h3>6. Submission Requirements</h3>\n")
	b.WriteString("<p>Proposals shall be submitted electronically in the format prescribed by the contracting office. Offerors are responsible for ensuring complete and timely submission.</p>\n")

	fmt.Fprintf(&b, "<h3>7. Contract Information</h3>\n")
	fmt.Fprintf(&b, "<p>Contract value category: %s. Contract type, period of performance, and key terms will be finalized at award.</p>\n", intake.ContractValue)

	return b.String()
}
