// Package grains counts the grains of wheat on a chessboard where each square holds
// twice as many grains as the one before it.
package grains

// Squares is the number of squares on the board.
const Squares = 64

// Square returns the number of grains on the given square (1-64).
// Squares outside the board hold zero grains.
func Square(index uint8) uint64 {
	if index < 1 || index > Squares {
		return 0
	}
	return uint64(1) << (index - 1)
}

// Total returns the number of grains on the whole board, 2^64 - 1.
func Total() uint64 {
	return ^uint64(0)
}

// TotalThrough returns the grains on squares 1 through index, 2^index - 1.
// An index of zero yields zero and anything past the board yields Total.
func TotalThrough(index uint8) uint64 {
	if index >= Squares {
		return Total()
	}
	return uint64(1)<<index - 1
}

// Board returns the grain count of every square; element 0 is square 1.
func Board() [Squares]uint64 {
	var board [Squares]uint64
	for i := range board {
		board[i] = Square(uint8(i + 1))
	}
	return board
}
