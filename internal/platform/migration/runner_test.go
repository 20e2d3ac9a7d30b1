// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPgx5URL(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres_scheme", "postgres://turath:s3cret@db:5432/turath", "pgx5://turath:s3cret@db:5432/turath"},
		{"postgresql_scheme", "postgresql://db/turath", "pgx5://db/turath"},
		{"already_pgx5", "pgx5://db/turath", "pgx5://db/turath"},
		{"unknown_scheme_untouched", "mysql://db/turath", "mysql://db/turath"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pgx5URL(tt.dsn))
		})
	}
}
