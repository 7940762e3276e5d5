package problemgen

import "strings"

// Difficulty selects the operand range for generated questions.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// AllDifficulties lists the difficulties in menu order.
var AllDifficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Range is an inclusive operand range.
type Range struct {
	Min int
	Max int
}

// Range returns the operand range for the difficulty.
// Unknown values use the Medium range.
func (d Difficulty) Range() Range {
	switch d {
	case DifficultyEasy:
		return Range{Min: 1, Max: 10}
	case DifficultyHard:
		return Range{Min: 1, Max: 100}
	default:
		return Range{Min: 1, Max: 50}
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "medium"
	}
}

// Label returns the display name, e.g. "Easy".
func (d Difficulty) Label() string {
	s := d.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Next returns the following difficulty, wrapping from Hard to Easy.
func (d Difficulty) Next() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

// ParseDifficulty maps "easy", "medium" and "hard" (any case) to a
// Difficulty. Anything else falls back to Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Operator is one of the four arithmetic operations.
type Operator int

const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// operators is the draw order used by the generator.
var operators = [...]Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}

// Symbol returns the operator as shown in prompts.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return "?"
	}
}

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "unknown"
	}
}

// Question represents a generated arithmetic question ready for display.
type Question struct {
	// OperandA is the left operand. For Divide it is the dividend.
	OperandA int

	// OperandB is the right operand. For Divide it is the divisor.
	OperandB int

	Operator Operator

	// Answer is the exact correct answer. Always integral.
	Answer float64

	// Text is the prompt, e.g. "12 × 7 = ?".
	Text string
}
