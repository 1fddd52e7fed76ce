// Package squares computes the square of the sum and the sum of the squares of the
// first n natural numbers, and the difference between them.
//
// The plain functions use a 64-bit accumulator and narrow the result to 32 bits,
// silently discarding high-order bits for bounds above MaxExactBound. The Checked
// variants compute the true value and report ErrOverflow instead.
package squares

import (
	"errors"
	"fmt"
	"math"

	"github.com/holiman/uint256"
)

// MaxExactBound is the largest n for which every result fits in 32 bits.
const MaxExactBound uint32 = 361

// ErrOverflow is returned by the checked variants when the true result does not fit
// in a uint32.
var ErrOverflow = errors.New("result overflows uint32")

// Result groups the three values computed for a single bound.
type Result struct {
	N            uint32
	SquareOfSum  uint32
	SumOfSquares uint32
	Difference   uint32
	Exact        bool
}

// SquareOfSum returns (n(n+1)/2)^2 narrowed to 32 bits.
func SquareOfSum(n uint32) uint32 {
	w := uint64(n)
	sum := w * (w + 1) / 2
	return uint32(sum * sum)
}

// SumOfSquares returns n(n+1)(2n+1)/6 narrowed to 32 bits.
func SumOfSquares(n uint32) uint32 {
	w := uint64(n)
	return uint32(w * (w + 1) * (2*w + 1) / 6)
}

// DifferenceOfSquares returns SquareOfSum(n) - SumOfSquares(n).
func DifferenceOfSquares(n uint32) uint32 {
	return SquareOfSum(n) - SumOfSquares(n)
}

// Exact reports whether the truncating functions return the true values for n.
func Exact(n uint32) bool {
	return n <= MaxExactBound
}

// Compute evaluates all three formulas for n.
func Compute(n uint32) Result {
	return Result{
		N:            n,
		SquareOfSum:  SquareOfSum(n),
		SumOfSquares: SumOfSquares(n),
		Difference:   DifferenceOfSquares(n),
		Exact:        Exact(n),
	}
}

// SquareOfSumChecked is SquareOfSum without truncation.
func SquareOfSumChecked(n uint32) (uint32, error) {
	return narrow(n, exactSquareOfSum(n))
}

// SumOfSquaresChecked is SumOfSquares without truncation.
func SumOfSquaresChecked(n uint32) (uint32, error) {
	return narrow(n, exactSumOfSquares(n))
}

// DifferenceOfSquaresChecked is DifferenceOfSquares without truncation.
func DifferenceOfSquaresChecked(n uint32) (uint32, error) {
	diff := new(uint256.Int).Sub(exactSquareOfSum(n), exactSumOfSquares(n))
	return narrow(n, diff)
}

// ComputeChecked evaluates all three formulas for n, failing on the first overflow.
func ComputeChecked(n uint32) (Result, error) {
	sq, err := SquareOfSumChecked(n)
	if err != nil {
		return Result{}, err
	}
	ss, err := SumOfSquaresChecked(n)
	if err != nil {
		return Result{}, err
	}
	diff, err := DifferenceOfSquaresChecked(n)
	if err != nil {
		return Result{}, err
	}
	return Result{N: n, SquareOfSum: sq, SumOfSquares: ss, Difference: diff, Exact: true}, nil
}

// exactSquareOfSum is (n(n+1)/2)^2 in 256 bits; n < 2^32 keeps it below 2^128.
func exactSquareOfSum(n uint32) *uint256.Int {
	w := uint256.NewInt(uint64(n))
	sum := new(uint256.Int).Mul(w, new(uint256.Int).AddUint64(w, 1))
	sum.Div(sum, uint256.NewInt(2))
	return sum.Mul(sum, sum)
}

func exactSumOfSquares(n uint32) *uint256.Int {
	w := uint256.NewInt(uint64(n))
	twoN1 := new(uint256.Int).Mul(w, uint256.NewInt(2))
	twoN1.AddUint64(twoN1, 1)

	v := new(uint256.Int).Mul(w, new(uint256.Int).AddUint64(w, 1))
	v.Mul(v, twoN1)
	return v.Div(v, uint256.NewInt(6))
}

func narrow(n uint32, v *uint256.Int) (uint32, error) {
	if !v.IsUint64() || v.Uint64() > math.MaxUint32 {
		return 0, fmt.Errorf("n=%d: %w", n, ErrOverflow)
	}
	return uint32(v.Uint64()), nil
}
