package rfp

import "context"

// Store is the document registry port. Create assigns the document number:
// sequence allocation and insertion must be atomic so numbering stays
// gapless under concurrent creation.
type Store interface {
	Create(ctx context.Context, doc *Document) error
	FindByID(ctx context.Context, id string) (*Document, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Document, error)
}
