package problemgen

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// MaxDivisor is the largest divisor drawn for Divide questions.
const MaxDivisor = 10

// Generator produces questions for a difficulty.
type Generator interface {
	Generate(d Difficulty) *Question
}

// Source is the random source used by RandomGenerator.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// RandomGenerator draws operands and operators uniformly at random.
type RandomGenerator struct {
	src Source
}

var _ Generator = (*RandomGenerator)(nil)

// NewRandomGenerator creates a generator over src. A nil src uses a
// time-seeded PCG source.
func NewRandomGenerator(src Source) *RandomGenerator {
	if src == nil {
		src = NewSeededSource(uint64(time.Now().UnixNano()))
	}
	return &RandomGenerator{src: src}
}

// NewSeededSource returns a deterministic source for the given seed.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate draws a new question. Both operands are always drawn before the
// operator so the number of draws per question is stable; for Divide the
// second operand is discarded and a fresh divisor in [1, MaxDivisor] makes
// the dividend an exact multiple.
func (g *RandomGenerator) Generate(d Difficulty) *Question {
	r := d.Range()
	a := g.between(r.Min, r.Max)
	b := g.between(r.Min, r.Max)
	op := operators[g.src.IntN(len(operators))]

	if op == OpDivide {
		divisor := g.between(1, MaxDivisor)
		dividend := a * divisor
		return &Question{
			OperandA: dividend,
			OperandB: divisor,
			Operator: OpDivide,
			Answer:   float64(dividend / divisor),
			Text:     fmt.Sprintf("%d %s %d = ?", dividend, OpDivide.Symbol(), divisor),
		}
	}

	var answer int
	switch op {
	case OpAdd:
		answer = a + b
	case OpSubtract:
		answer = a - b
	case OpMultiply:
		answer = a * b
	}

	return &Question{
		OperandA: a,
		OperandB: b,
		Operator: op,
		Answer:   float64(answer),
		Text:     fmt.Sprintf("%d %s %d = ?", a, op.Symbol(), b),
	}
}

// between returns a uniform integer in [lo, hi].
func (g *RandomGenerator) between(lo, hi int) int {
	return lo + g.src.IntN(hi-lo+1)
}
