package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEOLDateRoundTrip(t *testing.T) {
	eol, err := ParseEOLDate("2020-01-01")
	require.NoError(t, err)
	sl := ServiceLevel{Name: "rawhide", EOL: &eol}
	require.Equal(t, "2020-01-01", sl.EOLString())
}

func TestParseEOLDateRejectsOutOfRange(t *testing.T) {
	_, err := ParseEOLDate("2020-13-40")
	require.Error(t, err)
}

func TestServiceLevelEqualAndCopy(t *testing.T) {
	eol, err := ParseEOLDate("2020-01-01")
	require.NoError(t, err)
	sl := ServiceLevel{Name: "rawhide", EOL: &eol}
	cp := sl.Copy()
	require.True(t, sl.Equal(cp))

	*cp.EOL = cp.EOL.AddDate(1, 0, 0)
	require.False(t, sl.Equal(cp))

	unset := NewServiceLevel("rawhide")
	require.Equal(t, "", unset.EOLString())
	require.False(t, sl.Equal(unset))
}
