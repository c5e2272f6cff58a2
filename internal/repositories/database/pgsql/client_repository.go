package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/banking_ledger/internal/apperrors"
	"github.com/SscSPs/banking_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/banking_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) *PgxClientRepository {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func clientExists(ctx context.Context, q querier, clientID string) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clients WHERE client_id = $1);`, clientID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check client %s: %w", clientID, err)
	}
	return exists, nil
}

// ClientExists reports whether the client is known.
func (r *PgxClientRepository) ClientExists(ctx context.Context, clientID string) (bool, error) {
	return clientExists(ctx, r.Pool, clientID)
}

// SaveClient inserts a new client.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (client_id, identification_type, identification_number, first_name, last_name, email, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID,
		m.IdentificationType,
		m.IdentificationNumber,
		m.FirstName,
		m.LastName,
		m.Email,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: client %s", apperrors.ErrDuplicate, m.ClientID)
		}
		return fmt.Errorf("failed to save client %s: %w", m.ClientID, err)
	}
	return nil
}
