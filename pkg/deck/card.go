package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidToken is returned when a card token is too short to hold a rank and suit
var ErrInvalidToken = errors.New("invalid card token")

// ErrInvalidRank is returned when the rank of a card token is not in the ordering
var ErrInvalidRank = errors.New("invalid rank")

// ErrInvalidSuit is returned when the trailing symbol of a card token is not a suit
var ErrInvalidSuit = errors.New("invalid suit")

// Suit represents a card suit. Suits are only compared for equality.
type Suit string

// suit constants
const (
	Clubs    Suit = "C"
	Diamonds Suit = "D"
	Hearts   Suit = "H"
	Spades   Suit = "S"
)

// Suits lists every suit
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// SuitFromSymbol returns the suit for a single character symbol (case-insensitive)
func SuitFromSymbol(symbol string) (Suit, error) {
	switch s := Suit(strings.ToUpper(symbol)); s {
	case Clubs, Diamonds, Hearts, Spades:
		return s, nil
	default:
		return "", fmt.Errorf("%w %q", ErrInvalidSuit, symbol)
	}
}

// Name returns the long name of the suit
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	default:
		return "unknown"
	}
}

// Card is an individual playing card.
// Rank is the index of the card's label within the ordering that parsed it.
type Card struct {
	Rank int
	Suit Suit

	label string
}

// NewCard returns a card of the given rank index and suit
func NewCard(o *Ordering, rank int, suit Suit) Card {
	return Card{
		Rank:  rank,
		Suit:  suit,
		label: o.Label(rank),
	}
}

// Label returns the rank label the card was parsed from
func (c Card) Label() string {
	return c.label
}

// String returns the token form of the card, i.e., TH
func (c Card) String() string {
	return c.label + string(c.Suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// ParseCard returns a Card from the token.
// The suit is the last character of the token and the rank label is everything
// before it, so a two character label such as "10" parses when the ordering
// defines it.
func ParseCard(o *Ordering, token string) (Card, error) {
	token = strings.TrimSpace(token)
	if len(token) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	label := strings.ToUpper(token[:len(token)-1])
	rank, ok := o.Index(label)
	if !ok {
		return Card{}, fmt.Errorf("%w %q in card %q", ErrInvalidRank, label, token)
	}

	suit, err := SuitFromSymbol(token[len(token)-1:])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", token, err)
	}

	return Card{
		Rank:  rank,
		Suit:  suit,
		label: o.Label(rank),
	}, nil
}

// MustParseCard is like ParseCard, but panics if the token cannot be parsed
func MustParseCard(o *Ordering, token string) Card {
	card, err := ParseCard(o, token)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return card
}
