package survey

import "github.com/neolab/neodiag/internal/session"

// finalizedMsg is emitted when the session record has been assembled
// and the best-effort save has completed.
type finalizedMsg struct {
	Record  *session.Record
	SaveErr error
}
