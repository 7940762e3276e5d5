package problemgen

import (
	"math"
	"testing"
)

// scriptedSource replays fixed draws; each value must be below the n it is
// drawn against.
type scriptedSource struct {
	draws []int
	pos   int
}

func (s *scriptedSource) IntN(n int) int {
	v := s.draws[s.pos%len(s.draws)]
	s.pos++
	if v >= n {
		panic("scripted draw out of range")
	}
	return v
}

func TestGenerate_OperandsWithinRange(t *testing.T) {
	for _, d := range AllDifficulties {
		gen := NewRandomGenerator(NewSeededSource(42))
		r := d.Range()
		for i := 0; i < 2000; i++ {
			q := gen.Generate(d)
			if q.Operator == OpDivide {
				if q.OperandB < 1 || q.OperandB > MaxDivisor {
					t.Fatalf("%s: divisor %d outside [1,%d]", d, q.OperandB, MaxDivisor)
				}
				if q.OperandA%q.OperandB != 0 {
					t.Fatalf("%s: %d not divisible by %d", d, q.OperandA, q.OperandB)
				}
				base := q.OperandA / q.OperandB
				if base < r.Min || base > r.Max {
					t.Fatalf("%s: base %d outside [%d,%d]", d, base, r.Min, r.Max)
				}
			} else {
				if q.OperandA < r.Min || q.OperandA > r.Max {
					t.Fatalf("%s: operandA %d outside [%d,%d]", d, q.OperandA, r.Min, r.Max)
				}
				if q.OperandB < r.Min || q.OperandB > r.Max {
					t.Fatalf("%s: operandB %d outside [%d,%d]", d, q.OperandB, r.Min, r.Max)
				}
			}
			if q.Answer != math.Trunc(q.Answer) {
				t.Fatalf("%s: answer %v is not an integer", d, q.Answer)
			}
		}
	}
}

func TestGenerate_AllOperatorsDrawn(t *testing.T) {
	gen := NewRandomGenerator(NewSeededSource(7))
	seen := make(map[Operator]bool)
	for i := 0; i < 500; i++ {
		seen[gen.Generate(DifficultyMedium).Operator] = true
	}
	for _, op := range operators {
		if !seen[op] {
			t.Errorf("operator %s never drawn in 500 questions", op)
		}
	}
}

func TestGenerate_Scripted(t *testing.T) {
	tests := []struct {
		name     string
		draws    []int
		wantText string
		wantAns  float64
		wantOp   Operator
	}{
		{"add", []int{2, 4, 0}, "3 + 5 = ?", 8, OpAdd},
		{"subtract goes negative", []int{1, 8, 1}, "2 − 9 = ?", -7, OpSubtract},
		{"multiply", []int{5, 6, 2}, "6 × 7 = ?", 42, OpMultiply},
		{"divide discards second operand", []int{6, 9, 3, 3}, "28 ÷ 4 = ?", 7, OpDivide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewRandomGenerator(&scriptedSource{draws: tt.draws})
			q := gen.Generate(DifficultyEasy)
			if q.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", q.Text, tt.wantText)
			}
			if q.Answer != tt.wantAns {
				t.Errorf("Answer = %v, want %v", q.Answer, tt.wantAns)
			}
			if q.Operator != tt.wantOp {
				t.Errorf("Operator = %s, want %s", q.Operator, tt.wantOp)
			}
		})
	}
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := NewRandomGenerator(NewSeededSource(99))
	b := NewRandomGenerator(NewSeededSource(99))
	for i := 0; i < 20; i++ {
		qa, qb := a.Generate(DifficultyHard), b.Generate(DifficultyHard)
		if *qa != *qb {
			t.Fatalf("question %d differs: %+v vs %+v", i, qa, qb)
		}
	}
}

func TestDifficultyRange(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want Range
	}{
		{DifficultyEasy, Range{1, 10}},
		{DifficultyMedium, Range{1, 50}},
		{DifficultyHard, Range{1, 100}},
		{Difficulty(42), Range{1, 50}},
	}
	for _, tt := range tests {
		if got := tt.d.Range(); got != tt.want {
			t.Errorf("%d.Range() = %+v, want %+v", tt.d, got, tt.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input string
		want  Difficulty
	}{
		{"easy", DifficultyEasy},
		{"EASY", DifficultyEasy},
		{" hard ", DifficultyHard},
		{"medium", DifficultyMedium},
		{"", DifficultyMedium},
		{"nightmare", DifficultyMedium},
	}
	for _, tt := range tests {
		if got := ParseDifficulty(tt.input); got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestDifficultyNextAndLabel(t *testing.T) {
	if got := DifficultyEasy.Next(); got != DifficultyMedium {
		t.Errorf("Easy.Next() = %s, want medium", got)
	}
	if got := DifficultyHard.Next(); got != DifficultyEasy {
		t.Errorf("Hard.Next() = %s, want easy", got)
	}
	if got := DifficultyMedium.Label(); got != "Medium" {
		t.Errorf("Medium.Label() = %q, want %q", got, "Medium")
	}
}
