package domain

import "context"

// TxManager runs fn inside one atomic scope against the catalog store.
// Repository calls made with the ctx passed to fn join that scope; any
// returned error rolls the whole scope back.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
