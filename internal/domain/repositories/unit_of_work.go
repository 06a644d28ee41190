package repositories

import (
	"context"
)

// UnitOfWork runs a function inside one transaction scope. Order creation and
// callback settlement both depend on this being atomic.
type UnitOfWork interface {
	// Do executes fn within a transaction; a nested Do joins the outer one.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
