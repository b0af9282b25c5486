package config

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ParseHex разбирает hex-строку калибровки: "0x", запятые, пробелы и переводы строк игнорируются.
func ParseHex(s string) ([]byte, error) {
	var b strings.Builder
	for _, f := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\n' || r == '\r' || r == '\t'
	}) {
		f = strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
		if len(f)%2 == 1 {
			f = "0" + f
		}
		b.WriteString(f)
	}
	out, err := hex.DecodeString(b.String())
	if err != nil {
		return nil, fmt.Errorf("parse hex: %w", err)
	}
	return out, nil
}
