package generation

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a professional DoD contracting officer assistant that generates comprehensive RFP documents."

// buildPrompt renders the single instruction prompt. The section outline,
// evaluation weighting, length target, and markup vocabulary are a formatting
// contract: downstream rendering assumes only h3/p/ul/li output.
func buildPrompt(req Request) string {
	compliance := "None specified."
	if len(req.ComplianceLabels) > 0 {
		items := make([]string, 0, len(req.ComplianceLabels))
		for _, label := range req.ComplianceLabels {
			items = append(items, "- "+label)
		}
		compliance = strings.Join(items, "\n")
	}

	var b strings.Builder
	b.WriteString("Act as a professional Department of Defense (DoD) contracting officer. Your task is to generate a comprehensive, detailed Request for Proposal (RFP) document.\n")
	b.WriteString("The document must be formal, well-structured, and use appropriate language for government contracting.\n\n")
	b.WriteString("Project Information:\n")
	fmt.Fprintf(&b, "- Project Title: %s\n", req.Title)
	fmt.Fprintf(&b, "- Acquisition Authority: %s\n", req.AuthorityLabel)
	fmt.Fprintf(&b, "- Security Classification: %s\n", req.ClassificationLabel)
	fmt.Fprintf(&b, "- Statement of Work: %s\n", req.Objective)
	fmt.Fprintf(&b, "- Compliance Requirements: %s\n\n", compliance)
	b.WriteString(`Generate a complete RFP with these sections:

1. INTRODUCTION - Include background, purpose, and acquisition authority
2. SCOPE OF WORK - Detailed requirements, deliverables, and performance standards
3. TECHNICAL REQUIREMENTS - Specific technical specifications, standards, and testing requirements
4. SECURITY REQUIREMENTS - Security clearances, compliance standards, and protection requirements
5. EVALUATION CRITERIA - Detailed scoring methodology with weights (Technical 40%, Past Performance 25%, Management 20%, Cost 15%)
6. SUBMISSION REQUIREMENTS - Proposal format, page limits, and submission instructions
7. CONTRACT INFORMATION - Contract type, period of performance, and key terms
8. INSTRUCTIONS TO OFFERORS - Detailed submission process and requirements

Make each section comprehensive with specific details. Use professional government contracting language.
Format output as HTML using <h3>, <p>, <ul>, and <li> tags. Make it detailed and substantial - at least 1500 words total.
`)
	return b.String()
}
