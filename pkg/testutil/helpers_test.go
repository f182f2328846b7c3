package testutil

import (
	"testing"

	"github.com/iwvelando/real-return/pkg/returns"
)

func TestFindRow(t *testing.T) {
	rows := []returns.ProjectionRow{
		{Years: 1, NominalValue: 10800},
		{Years: 10, NominalValue: 21589.25},
	}

	if row := FindRow(rows, 10); row == nil || row.NominalValue != 21589.25 {
		t.Errorf("FindRow(10) = %+v, expected year 10 row", row)
	}
	if row := FindRow(rows, 5); row != nil {
		t.Errorf("FindRow(5) = %+v, expected nil", row)
	}
	if row := FindRow(nil, 1); row != nil {
		t.Errorf("FindRow on nil slice = %+v, expected nil", row)
	}
}
