package repository

import (
	"context"
	"fmt"
	"github.com/MdAkhlaq657/shophub/internal/port"
	"github.com/jackc/pgx/v5/pgxpool"
	"strings"
)

type searchTermRepository struct {
	pool *pgxpool.Pool
}

func NewSearchTerms(pool *pgxpool.Pool) port.SearchTermRepository {
	return &searchTermRepository{pool: pool}
}

// SaveTerm upserts a term, refreshing its timestamp so a repeated search
// moves to the front of the recent list.
func (r *searchTermRepository) SaveTerm(ctx context.Context, ownerID, term string) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return fmt.Errorf("term is empty")
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO search_terms (owner_id, term, searched_at)
		VALUES ($1, $2, now())
		ON CONFLICT (owner_id, term) DO UPDATE SET searched_at = now()`,
		ownerID, term)
	if err != nil {
		return fmt.Errorf("upsert term: %w", err)
	}

	return nil
}

func (r *searchTermRepository) RecentTerms(ctx context.Context, ownerID string, limit int) ([]string, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}
	if limit < 1 {
		return nil, fmt.Errorf("limit[%d] is not positive", limit)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT term FROM search_terms
		WHERE owner_id = $1
		ORDER BY searched_at DESC
		LIMIT $2`, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("query terms: %w", err)
	}
	defer rows.Close()

	var terms []string
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}
		terms = append(terms, term)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return terms, nil
}

func (r *searchTermRepository) DeleteTerms(ctx context.Context, ownerID string) (int64, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("ownerID is empty")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM search_terms WHERE owner_id = $1`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("delete terms: %w", err)
	}

	return tag.RowsAffected(), nil
}
