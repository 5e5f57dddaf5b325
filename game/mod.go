package game

// ConnectLength is the number of aligned pieces that wins the game.
const ConnectLength = 4

const (
	DefaultWidth  = 10
	DefaultHeight = 10
)

type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove   Error = "invalid move"
	ErrNoLegalMove   Error = "no legal move"
	ErrFloatingPiece Error = "piece above an empty cell"
)
