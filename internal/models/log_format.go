package models

import "fmt"

type LogFormat string

const (
	// FormatSimple is a whitespace-separated "year month day hour minute"
	// line per access.
	FormatSimple LogFormat = "simple"
	// FormatCombined is the NCSA combined log format.
	FormatCombined LogFormat = "combined"
)

func NewLogFormatFromString(s string) (LogFormat, error) {
	switch LogFormat(s) {
	case FormatSimple:
		return FormatSimple, nil
	case FormatCombined:
		return FormatCombined, nil
	default:
		return "", fmt.Errorf("invalid log format: %q", s)
	}
}
