package playback

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/sortviz/internal/step"
)

// ParseInput parses a comma-separated integer list, ignoring whitespace.
// Empty input returns an empty slice and no error (the caller falls back
// to the last array or randomizes). A non-integer token or a list longer
// than maxN is ErrInvalidInput.
func ParseInput(text string, maxN int) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	var arr []int
	for _, part := range strings.Split(strings.ReplaceAll(text, " ", ""), ",") {
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: bad token %q", step.ErrInvalidInput, part)
		}
		arr = append(arr, v)
	}
	if len(arr) > maxN {
		return nil, fmt.Errorf("%w: max length %d, got %d", step.ErrInvalidInput, maxN, len(arr))
	}
	return arr, nil
}
