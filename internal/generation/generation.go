// Package generation wraps the remote text-generation provider behind a
// small adapter. The adapter owns the instruction prompt, decoding
// parameters, a per-process concurrency cap, and error translation; callers
// see only ErrUnavailable and ErrFailed and are expected to fall back to
// deterministic templating.
package generation

import "errors"

var (
	// ErrUnavailable means no provider credential is configured.
	ErrUnavailable = errors.New("generation provider not configured")

	// ErrFailed means the remote call errored or timed out. The call is
	// single-shot; retrying is the caller's decision (and in practice the
	// caller substitutes the deterministic fallback instead).
	ErrFailed = errors.New("generation call failed")
)

// Request carries the resolved fields the prompt embeds. Labels arrive
// already resolved so this package stays independent of the catalog.
type Request struct {
	Title               string
	Objective           string
	AuthorityLabel      string
	ClassificationLabel string
	ComplianceLabels    []string
}
