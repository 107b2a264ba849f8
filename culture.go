package tabular

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Culture holds the locale-dependent rules used to format and parse cell values.
type Culture struct {
	Tag              language.Tag
	DecimalSeparator string
	GroupSeparator   string
	DateTimeLayout   string
	TrueText         string
	FalseText        string
}

// InvariantCulture formats numbers with a '.' decimal separator and dates in
// ISO 8601 with their zone offset.
var InvariantCulture = Culture{
	Tag:              language.Und,
	DecimalSeparator: ".",
	GroupSeparator:   ",",
	DateTimeLayout:   time.RFC3339Nano,
	TrueText:         "True",
	FalseText:        "False",
}

// NewCulture derives the number separators of tag from the CLDR data in
// golang.org/x/text. Dates and booleans use the invariant rules.
func NewCulture(tag language.Tag) Culture {
	c := InvariantCulture
	c.Tag = tag

	// 1234.5 renders as "1<group>234<decimal>5" in every Latin-digit locale.
	sample := message.NewPrinter(tag).Sprint(number.Decimal(1234.5, number.MaxFractionDigits(1)))
	one := strings.Index(sample, "1")
	two := strings.Index(sample, "2")
	four := strings.LastIndex(sample, "4")
	five := strings.LastIndex(sample, "5")
	if one < 0 || two <= one || four < 0 || five <= four+1 {
		return c
	}
	c.GroupSeparator = sample[one+1 : two]
	c.DecimalSeparator = sample[four+1 : five]
	return c
}

// ParseCulture parses a BCP 47 tag such as "nl-NL" and derives its culture.
func ParseCulture(name string) (Culture, error) {
	tag, err := language.Parse(name)
	if err != nil {
		return Culture{}, fmt.Errorf("parse culture %q: %w", name, err)
	}
	return NewCulture(tag), nil
}

// String returns the BCP 47 tag of the culture.
func (c Culture) String() string {
	return c.Tag.String()
}

func (c Culture) decimalSeparator() string {
	if c.DecimalSeparator == "" {
		return "."
	}
	return c.DecimalSeparator
}

// FormatInt formats an integer without group separators.
func (c Culture) FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatUint formats an unsigned integer without group separators.
func (c Culture) FormatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// FormatFloat formats f with the shortest representation that round-trips.
func (c Culture) FormatFloat(f float64, bitSize int) string {
	return c.localizeNumber(strconv.FormatFloat(f, 'f', -1, bitSize))
}

// localizeNumber replaces the '.' of an invariant number with the culture's separator.
func (c Culture) localizeNumber(s string) string {
	if sep := c.decimalSeparator(); sep != "." {
		return strings.Replace(s, ".", sep, 1)
	}
	return s
}

// NormalizeNumber turns a culture formatted number into its invariant form:
// group separators are removed and the decimal separator becomes '.'.
func (c Culture) NormalizeNumber(s string) string {
	s = strings.TrimSpace(s)
	dec := c.decimalSeparator()
	if g := c.GroupSeparator; g != "" && g != dec {
		s = strings.ReplaceAll(s, g, "")
		if strings.TrimSpace(g) == "" {
			// Locales grouping with (narrow) no-break spaces accept plain spaces too.
			s = strings.ReplaceAll(s, " ", "")
		}
	}
	if dec != "." {
		s = strings.Replace(s, dec, ".", 1)
	}
	return s
}

// ParseInt parses a culture formatted integer.
func (c Culture) ParseInt(s string, bitSize int) (int64, error) {
	n := c.NormalizeNumber(s)
	if n == "" {
		return 0, ErrMissingValue
	}
	v, err := strconv.ParseInt(n, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidFormat, s)
	}
	return v, nil
}

// ParseUint parses a culture formatted unsigned integer.
func (c Culture) ParseUint(s string, bitSize int) (uint64, error) {
	n := c.NormalizeNumber(s)
	if n == "" {
		return 0, ErrMissingValue
	}
	v, err := strconv.ParseUint(n, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrInvalidFormat, s)
	}
	return v, nil
}

// ParseFloat parses a culture formatted floating point number.
func (c Culture) ParseFloat(s string, bitSize int) (float64, error) {
	n := c.NormalizeNumber(s)
	if n == "" {
		return 0, ErrMissingValue
	}
	v, err := strconv.ParseFloat(n, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidFormat, s)
	}
	return v, nil
}

// FormatBool renders TrueText or FalseText.
func (c Culture) FormatBool(b bool) string {
	if b {
		return orDefault(c.TrueText, "True")
	}
	return orDefault(c.FalseText, "False")
}

// ParseBool accepts the culture's own tokens plus true/false, yes/no, t/f, y/n and 1/0.
func (c Culture) ParseBool(s string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "":
		return false, ErrMissingValue
	case strings.ToLower(c.TrueText), "true", "t", "yes", "y", "1":
		return true, nil
	case strings.ToLower(c.FalseText), "false", "f", "no", "n", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidFormat, s)
}

// FormatDateTime formats t with the culture layout.
func (c Culture) FormatDateTime(t time.Time) string {
	return t.Format(orDefault(c.DateTimeLayout, InvariantCulture.DateTimeLayout))
}

// ParseDateTime parses the culture layout, RFC 3339 and the date-only ISO form.
// A plain number is read as an Excel serial date, which is how spreadsheet
// sources report raw date cells.
func (c Culture) ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissingValue
	}
	for _, layout := range []string{orDefault(c.DateTimeLayout, InvariantCulture.DateTimeLayout), time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(c.NormalizeNumber(s), 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a date", ErrInvalidFormat, s)
}

// FormatDuration renders d as [-][d.]hh:mm:ss[.fffffff].
func (c Culture) FormatDuration(d time.Duration) string {
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	sec := d / time.Second
	d -= sec * time.Second
	if days > 0 {
		fmt.Fprintf(&b, "%d.", days)
	}
	fmt.Fprintf(&b, "%02d:%02d:%02d", h, m, sec)
	if d > 0 {
		frac := strings.TrimRight(fmt.Sprintf("%09d", int64(d)), "0")
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// ParseDuration parses the FormatDuration form and Go duration strings.
// A plain number is read as a fraction of days (spreadsheet time cells).
func (c Culture) ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMissingValue
	}
	if strings.Contains(s, ":") {
		if d, ok := parseClockDuration(s); ok {
			return d, nil
		}
		return 0, fmt.Errorf("%w: %q is not a time span", ErrInvalidFormat, s)
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	if days, err := strconv.ParseFloat(c.NormalizeNumber(s), 64); err == nil {
		return time.Duration(math.Round(days * float64(24*time.Hour))), nil
	}
	return 0, fmt.Errorf("%w: %q is not a time span", ErrInvalidFormat, s)
}

func parseClockDuration(s string) (time.Duration, bool) {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var days int64
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, false
	}
	if i := strings.Index(parts[0], "."); i >= 0 {
		n, err := strconv.ParseInt(parts[0][:i], 10, 64)
		if err != nil {
			return 0, false
		}
		days = n
		parts[0] = parts[0][i+1:]
	}
	h, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, false
	}
	m, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || m > 59 {
		return 0, false
	}
	sec, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || sec >= 60 {
		return 0, false
	}
	d := time.Duration(days)*24*time.Hour +
		time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(math.Round(sec*float64(time.Second)))
	if neg {
		d = -d
	}
	return d, true
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
