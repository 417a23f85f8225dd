package editdist

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a score cannot be computed, such as a
// non-empty guess against an empty reference.
var ErrInvalidInput = errors.New("editdist: invalid input")

// Score is a correctness percentage. It is not clamped; String clamps for
// display.
type Score float64

// Grade classifies how a Score renders.
type Grade int

const (
	Partial Grade = iota
	Perfect       // renders as 100.00
	Zero          // renders as 0.00
)

// Correctness converts an edit distance into a percentage of the reference
// length: 100 - 100*dist/refLen.
//
// An empty reference scores 100 when the distance is also 0. Any other
// distance against an empty reference has no defined score and returns
// ErrInvalidInput.
func Correctness(dist, refLen int) (Score, error) {
	if dist < 0 || refLen < 0 {
		return 0, fmt.Errorf("%w: negative distance %d or length %d", ErrInvalidInput, dist, refLen)
	}
	if refLen == 0 {
		if dist == 0 {
			return 100, nil
		}
		return 0, fmt.Errorf("%w: empty reference but distance is %d", ErrInvalidInput, dist)
	}
	return Score(100.0 - float64(100*dist)/float64(refLen)), nil
}

func (s Score) Grade() Grade {
	if s > 99.9 {
		return Perfect
	} else if s < 0.01 {
		return Zero
	}
	return Partial
}

func (s Score) String() string {
	switch s.Grade() {
	case Perfect:
		return fmt.Sprintf("%3.2f", 100.0)
	case Zero:
		return fmt.Sprintf("%3.2f", 0.0)
	default:
		return fmt.Sprintf("%3.2f", float64(s))
	}
}

// CER is the character error rate of a transcription whose distance to the
// truth is dist.
func CER(dist int, blen int) float64 {
	if dist == 0 {
		return 0.0 // Perfect match
	} else if blen == 0 {
		return 1.0 // 100% error if should be empty and not
	} else {
		return float64(dist) / float64(blen)
	}
}
