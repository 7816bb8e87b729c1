// Package scoring holds the session score and the one-shot win latch.
package scoring

// DefaultWinScore is the score that wins a session.
const DefaultWinScore = 100

// Points awarded and deducted during play.
const (
	RewardCorrect  = 10
	RewardWithHint = 1
	PenaltyCaught  = 5
)

// Board is the single score shared by the challenge controller and the
// predator scheduler. It is not safe for concurrent use; a session is
// driven from one goroutine.
type Board struct {
	score int
	won   bool
}

// Award adds points to the score.
func (b *Board) Award(points uint) {
	b.score += int(points)
}

// Penalize subtracts points, flooring the score at zero.
func (b *Board) Penalize(points uint) {
	b.score = max(0, b.score-int(points))
}

// CheckWin returns true the first time the score reaches threshold and
// false on every later call, whatever the score does afterwards.
func (b *Board) CheckWin(threshold int) bool {
	if b.won || b.score < threshold {
		return false
	}
	b.won = true
	return true
}

// Score returns the current score.
func (b *Board) Score() int {
	return b.score
}

// Won reports whether the win latch has been set.
func (b *Board) Won() bool {
	return b.won
}

// Reset clears the score and the win latch for a new session.
func (b *Board) Reset() {
	b.score = 0
	b.won = false
}
