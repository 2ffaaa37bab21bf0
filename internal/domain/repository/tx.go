package repository

import "context"

// TxManager runs a function inside a storage transaction. The transaction
// handle travels in the context so repositories pick it up transparently;
// an error from fn rolls everything back.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
