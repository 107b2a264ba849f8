package tabular

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCulture_NewCultureSeparators(t *testing.T) {
	de := NewCulture(language.German)
	assert.Equal(t, ",", de.DecimalSeparator)
	assert.Equal(t, ".", de.GroupSeparator)

	en := NewCulture(language.AmericanEnglish)
	assert.Equal(t, ".", en.DecimalSeparator)
	assert.Equal(t, ",", en.GroupSeparator)
}

func TestCulture_ParseCulture(t *testing.T) {
	c, err := ParseCulture("nl-NL")
	require.NoError(t, err)
	assert.Equal(t, ",", c.DecimalSeparator)
	assert.Equal(t, "nl-NL", c.String())

	_, err = ParseCulture("not a tag!")
	assert.Error(t, err)
}

func TestCulture_Numbers(t *testing.T) {
	de := NewCulture(language.German)
	assert.Equal(t, "1234,5", de.FormatFloat(1234.5, 64))
	assert.Equal(t, "1234.5", InvariantCulture.FormatFloat(1234.5, 64))

	f, err := de.ParseFloat("1.234,5", 64)
	require.NoError(t, err)
	assert.InDelta(t, 1234.5, f, 1e-9)

	n, err := InvariantCulture.ParseInt(" 42 ", 64)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	_, err = InvariantCulture.ParseInt("", 64)
	assert.ErrorIs(t, err, ErrMissingValue)

	_, err = InvariantCulture.ParseInt("4x2", 64)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = InvariantCulture.ParseUint("-1", 64)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestCulture_Bool(t *testing.T) {
	c := InvariantCulture
	assert.Equal(t, "True", c.FormatBool(true))
	assert.Equal(t, "False", c.FormatBool(false))

	for _, s := range []string{"True", "true", "yes", "Y", "1"} {
		b, err := c.ParseBool(s)
		require.NoError(t, err, s)
		assert.True(t, b, s)
	}
	for _, s := range []string{"False", "no", "0", "f"} {
		b, err := c.ParseBool(s)
		require.NoError(t, err, s)
		assert.False(t, b, s)
	}

	nl := c
	nl.TrueText, nl.FalseText = "Waar", "Onwaar"
	b, err := nl.ParseBool("waar")
	require.NoError(t, err)
	assert.True(t, b)

	_, err = c.ParseBool("maybe")
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = c.ParseBool(" ")
	assert.ErrorIs(t, err, ErrMissingValue)
}

func TestCulture_DateTime(t *testing.T) {
	c := InvariantCulture
	ts := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-15T10:30:00Z", c.FormatDateTime(ts))

	got, err := c.ParseDateTime("2024-03-15T10:30:00")
	require.NoError(t, err)
	assert.True(t, ts.Equal(got))

	zoned := time.Date(2024, 3, 15, 10, 30, 0, 0, time.FixedZone("", 5*3600))
	assert.Equal(t, "2024-03-15T10:30:00+05:00", c.FormatDateTime(zoned))
	got, err = c.ParseDateTime(c.FormatDateTime(zoned))
	require.NoError(t, err)
	assert.True(t, zoned.Equal(got))

	got, err = c.ParseDateTime("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 15, got.Day())

	// Excel serial 45366.4375 is 2024-03-15 10:30.
	got, err = c.ParseDateTime("45366.4375")
	require.NoError(t, err)
	assert.WithinDuration(t, ts, got, time.Second)

	_, err = c.ParseDateTime("yesterday")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestCulture_Duration(t *testing.T) {
	c := InvariantCulture
	d := 26*time.Hour + 3*time.Minute + 4*time.Second + 500*time.Millisecond
	s := c.FormatDuration(d)
	assert.Equal(t, "1.02:03:04.5", s)

	got, err := c.ParseDuration(s)
	require.NoError(t, err)
	assert.Equal(t, d, got)

	got, err = c.ParseDuration("-00:00:30")
	require.NoError(t, err)
	assert.Equal(t, -30*time.Second, got)

	got, err = c.ParseDuration("1h30m")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, got)

	got, err = c.ParseDuration("0.5")
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, got)

	_, err = c.ParseDuration("10:75:00")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
