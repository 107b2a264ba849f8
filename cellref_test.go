package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColToName(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{0, "A"}, {25, "Z"}, {26, "AA"}, {51, "AZ"}, {701, "ZZ"}, {702, "AAA"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColToName(tt.col))
		got, err := NameToCol(tt.want)
		require.NoError(t, err)
		assert.Equal(t, tt.col, got)
	}
	_, err := NameToCol("A1")
	assert.Error(t, err)
	_, err = NameToCol("")
	assert.Error(t, err)
}

func TestParseCellRef(t *testing.T) {
	ref, err := ParseCellRef("$C$12")
	require.NoError(t, err)
	assert.Equal(t, NewCellRef(11, 2), ref)
	assert.Equal(t, "C12", ref.String())

	for _, bad := range []string{"", "12", "C", "C0", "C1x"} {
		_, err := ParseCellRef(bad)
		assert.Error(t, err, bad)
	}
}

func TestSafeSheetName(t *testing.T) {
	assert.Equal(t, DefaultSheetName, SafeSheetName(""))
	assert.Equal(t, "a_b_c", SafeSheetName("a/b?c"))
	assert.Equal(t, "quoted", SafeSheetName("'quoted'"))
	assert.Equal(t, strings.Repeat("x", 31), SafeSheetName(strings.Repeat("x", 40)))
}
