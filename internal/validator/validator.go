package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"svw.info/advent/internal/domain"
)

const bom = "\uFEFF"

// Normalizer cleans up pasted or uploaded puzzle input before it reaches a
// solver: it drops a leading byte order mark, converts CRLF and lone CR line
// endings to LF and rejects inputs that are blank or larger than MaxBytes.
type Normalizer struct {
	MaxBytes int
}

func New(maxBytes int) *Normalizer { return &Normalizer{MaxBytes: maxBytes} }

func (v *Normalizer) Normalize(ctx context.Context, input string) (string, error) {
	if v.MaxBytes > 0 && len(input) > v.MaxBytes {
		return "", fmt.Errorf("%w: %s exceeds %s", domain.ErrInputTooLarge,
			humanize.Bytes(uint64(len(input))), humanize.Bytes(uint64(v.MaxBytes)))
	}
	input = strings.TrimPrefix(input, bom)
	if strings.Contains(input, "\r") {
		input = strings.ReplaceAll(input, "\r\n", "\n")
		input = strings.ReplaceAll(input, "\r", "\n")
	}
	if strings.TrimSpace(input) == "" {
		return "", domain.ErrEmptyInput
	}
	return input, nil
}
