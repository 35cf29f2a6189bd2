// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_insertPackageQuery_ConflictModes(t *testing.T) {
	tests := []struct {
		mode string
		want string
	}{
		{mode: "OR REPLACE", want: "INSERT OR REPLACE INTO packages"},
		{mode: "OR IGNORE", want: "INSERT OR IGNORE INTO packages"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			query, args, err := insertPackageQuery(tt.mode, "AbCdEf1234", "Mars", "Earth", "warp")
			require.NoError(t, err)

			require.True(t, strings.HasPrefix(query, tt.want), "query: %s", query)
			require.Equal(t, []any{"AbCdEf1234", "Mars", "Earth", "warp"}, args)

			// sqlite uses ? placeholders
			require.Equal(t, 4, strings.Count(query, "?"))
		})
	}
}

func Test_selectPackageByIDQuery(t *testing.T) {
	query, args, err := selectPackageByIDQuery("AbCdEf1234")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from packages")
	require.Contains(t, q, "where package_id = ?")
	for _, col := range packageColumns {
		require.Contains(t, q, col)
	}
	require.Equal(t, []any{"AbCdEf1234"}, args)
}

func Test_selectPackagesWhereQuery_FiltersByColumn(t *testing.T) {
	for _, column := range []string{columnDestination, columnSpeed} {
		t.Run(column, func(t *testing.T) {
			query, args, err := selectPackagesWhereQuery(column, "value")
			require.NoError(t, err)

			require.Contains(t, query, "WHERE "+column+" = ?")
			require.NotContains(t, strings.ToLower(query), "order by")
			require.Equal(t, []any{"value"}, args)
		})
	}
}

func Test_countPackagesQuery(t *testing.T) {
	query, args, err := countPackagesQuery()
	require.NoError(t, err)

	require.Equal(t, "SELECT COUNT(*) FROM packages", query)
	require.Empty(t, args)
}
