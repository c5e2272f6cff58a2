package repositories

import (
	"context"

	"github.com/SscSPs/banking_ledger/internal/core/domain"
)

// ClientChecker answers whether a client exists.
type ClientChecker interface {
	ClientExists(ctx context.Context, clientID string) (bool, error)
}

// ClientRepositoryFacade is the slice of client management the ledger uses.
type ClientRepositoryFacade interface {
	ClientChecker

	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error
}
