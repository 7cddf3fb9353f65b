package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/database"
)

// Repository handles client persistence
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

// Create registers a new active client
func (r *Repository) Create(ctx context.Context, name string, signingKey []byte) (*Client, error) {
	dbClient := &database.OAuthClient{
		Name:       name,
		SigningKey: signingKey,
		Active:     true,
	}

	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(dbClient).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return mapDBClientToModel(dbClient), nil
}

// GetByID retrieves a client by ID, active or not
func (r *Repository) GetByID(ctx context.Context, id int64) (*Client, error) {
	dbClient := new(database.OAuthClient)
	err := database.Conn(ctx, r.db).NewSelect().
		Model(dbClient).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("client")
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return mapDBClientToModel(dbClient), nil
}

// List returns all clients ordered by id
func (r *Repository) List(ctx context.Context) ([]*Client, error) {
	var dbClients []database.OAuthClient
	err := database.Conn(ctx, r.db).NewSelect().
		Model(&dbClients).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*Client, 0, len(dbClients))
	for i := range dbClients {
		clients = append(clients, mapDBClientToModel(&dbClients[i]))
	}
	return clients, nil
}

// SetActive enables or disables a client
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	res, err := database.Conn(ctx, r.db).NewUpdate().
		Model((*database.OAuthClient)(nil)).
		Set("active = ?", active).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.NotFound("client")
	}

	return nil
}

// SigningKey returns the key of an active client
func (r *Repository) SigningKey(ctx context.Context, id int64) ([]byte, error) {
	var key []byte
	err := database.Conn(ctx, r.db).NewSelect().
		Model((*database.OAuthClient)(nil)).
		Column("signing_key").
		Where("id = ?", id).
		Where("active = ?", true).
		Scan(ctx, &key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("client")
		}
		return nil, fmt.Errorf("failed to get signing key: %w", err)
	}

	return key, nil
}

func mapDBClientToModel(c *database.OAuthClient) *Client {
	return &Client{
		ID:         c.ID,
		Name:       c.Name,
		SigningKey: c.SigningKey,
		Active:     c.Active,
		CreatedAt:  c.CreatedAt,
	}
}
