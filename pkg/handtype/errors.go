package handtype

import (
	"errors"
	"fmt"
)

// HandSize is the only hand size that can be classified
const HandSize = 5

// ErrUnknownCategory is returned when a category symbol is not recognized
var ErrUnknownCategory = errors.New("unknown hand category")

// HandSizeError is returned when a hand does not hold exactly five cards
type HandSizeError int

func (h HandSizeError) Error() string {
	return fmt.Sprintf("expected %d cards, got %d", HandSize, int(h))
}
