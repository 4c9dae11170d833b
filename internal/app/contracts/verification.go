package contracts

import "context"

// TokenVerifier validates the opaque bot-challenge token server-side.
// Only search and create carry a token; the simple update and cancel calls
// are exempt because the client was already verified during the search step
// of the same session. That exemption is a product decision and is encoded
// per endpoint, never inferred from call order.
type TokenVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}
