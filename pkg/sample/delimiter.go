package sample

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
	"github.com/samber/lo"
)

// common delimiters, preferred in this order when several are plausible
var preferredDelimiters = []string{",", "\t", ";", "|"}

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	for _, delimiter := range preferredDelimiters {
		if lo.Contains(delimiters, delimiter) {
			return []rune(delimiter)[0]
		}
	}
	if len(delimiters) > 0 {
		return []rune(delimiters[0])[0]
	}

	return ','
}
