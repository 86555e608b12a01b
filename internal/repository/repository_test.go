package repository_test

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const postgresImage = "postgres:17.6-alpine3.22"

// schema scripts applied on container boot, in order
var initScripts = []string{
	"../../migrations/01_orders.up.sql",
	"../../migrations/02_search_terms.up.sql",
}

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	container, err := postgres.Run(ctx, postgresImage,
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(initScripts...),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("container.ConnectionString: %w", err)
	}

	return container, connStr, nil
}
