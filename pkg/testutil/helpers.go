// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/real-return/pkg/returns"
)

// FindRow finds a projection row by year in the rows slice.
// Returns a pointer to the row if found, nil otherwise.
func FindRow(rows []returns.ProjectionRow, years int) *returns.ProjectionRow {
	for i := range rows {
		if rows[i].Years == years {
			return &rows[i]
		}
	}
	return nil
}
