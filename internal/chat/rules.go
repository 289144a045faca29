// Package chat implements the keyword-matched assistant: an ordered list of
// (pattern, response) pairs evaluated first-match-wins against the lowercased
// message, with a fixed default fallback. There is no model behind it.
package chat

import "strings"

type rule struct {
	keyword  string
	response string
}

// Order matters: the first matching keyword wins.
var rules = []rule{
	{"far", "The Federal Acquisition Regulation (FAR) governs most federal procurement. Key requirements include competitive bidding, evaluation criteria, and specific contract clauses. Would you like me to explain any specific FAR part?"},
	{"ota", "Other Transaction Authority allows for more flexible contracting outside traditional FAR requirements. OTAs are great for research and development or prototype projects. They can include IP arrangements not possible under FAR."},
	{"cmmc", "CMMC (Cybersecurity Maturity Model Certification) is mandatory for DoD contractors handling CUI. There are five maturity levels, with most contracts requiring Level 3. Implementation includes 130+ security controls."},
	{"nist", "NIST 800-171 provides security requirements for protecting Controlled Unclassified Information (CUI) in non-federal systems. It includes 14 control families with 110 security requirements."},
	{"security", "Security requirements depend on classification level. CUI requires NIST 800-171, while classified contracts need additional controls. Always include appropriate security clauses in your RFP."},
	{"evaluation", "Evaluation criteria should be clearly defined and weighted. Common factors include technical approach, management approach, past performance, and cost. Make sure criteria align with your actual needs."},
	{"dfars", "DFARS (Defense Federal Acquisition Regulation Supplement) contains DoD-specific procurement requirements. Key areas include cybersecurity, supply chain security, and contractor business systems."},
	{"fisma", "FISMA requires federal agencies to develop, document, and implement information security programs. For contractors, this means implementing appropriate security controls and conducting regular assessments."},
}

const defaultResponse = "I can help with FAR regulations, security requirements, evaluation criteria, contract types, and more. What specific aspect of RFP development would you like to discuss?"

// Respond returns the canned answer for a message.
func Respond(message string) string {
	lower := strings.ToLower(message)
	for _, r := range rules {
		if strings.Contains(lower, r.keyword) {
			return r.response
		}
	}
	return defaultResponse
}
