package audit

import "time"

// Action enumerates the state-changing operations that produce audit events.
type Action string

const (
	ActionSessionCreated  Action = "SESSION_CREATED"
	ActionCACAuth         Action = "CAC_AUTH"
	ActionEmailAuth       Action = "EMAIL_AUTH"
	ActionDemoAuth        Action = "DEMO_AUTH"
	ActionLogout          Action = "LOGOUT"
	ActionRFPGenerated    Action = "RFP_GENERATED"
	ActionTemplateSaved   Action = "TEMPLATE_SAVED"
	ActionTemplateAccess  Action = "TEMPLATE_ACCESSED"
	ActionChatMessage     Action = "CHAT_MESSAGE"
	ActionComplianceCheck Action = "COMPLIANCE_CHECK"
)

// Event is an append-only record of one state-changing action. Events are
// never mutated or deleted after creation.
type Event struct {
	Timestamp     time.Time `json:"timestamp"`
	ActorID       string    `json:"user_id"`
	Action        Action    `json:"action"`
	Details       string    `json:"details"`
	OriginAddress string    `json:"ip_address,omitempty"`
}
