package problemgen

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput reports an answer that is not a finite number.
var ErrInvalidInput = errors.New("invalid input")

// ParseAnswer parses the learner's raw input as a float.
//
// Whitespace is trimmed. Empty input, anything strconv.ParseFloat rejects,
// NaN and infinities all return an error wrapping ErrInvalidInput.
func ParseAnswer(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty answer", ErrInvalidInput)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
	return v, nil
}

// CheckAnswer reports whether value equals the question's answer exactly.
// There is no tolerance; generated answers are always integral.
func CheckAnswer(value float64, q *Question) bool {
	if q == nil {
		return false
	}
	return value == q.Answer
}

// FormatNumber renders a number the way it is shown to the learner:
// integers without a decimal point, other values in shortest form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
