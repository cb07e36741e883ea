package deck

import (
	"strings"
	"unicode"
)

// Hand represents a collection of cards in the order they were given
type Hand []Card

// ParseHand parses every token with the ordering.
// The first token that fails stops parsing and its error is returned.
func ParseHand(o *Ordering, tokens []string) (Hand, error) {
	hand := make(Hand, 0, len(tokens))
	for _, token := range tokens {
		card, err := ParseCard(o, token)
		if err != nil {
			return nil, err
		}

		hand = append(hand, card)
	}

	return hand, nil
}

// ParseHandString parses a hand written as a comma and/or whitespace separated list, i.e., "TH,QH JH"
func ParseHandString(o *Ordering, s string) (Hand, error) {
	return ParseHand(o, SplitTokens(s))
}

// SplitTokens splits a list of card tokens on commas and whitespace
func SplitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// MustParseHand is like ParseHandString, but panics if the hand cannot be parsed
func MustParseHand(o *Ordering, s string) Hand {
	hand, err := ParseHandString(o, s)
	if err != nil {
		panic(err)
	}

	return hand
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Tokens returns the token form of each card
func (h Hand) Tokens() []string {
	tokens := make([]string, len(h))
	for i, card := range h {
		tokens[i] = card.String()
	}

	return tokens
}

func (h Hand) String() string {
	return strings.Join(h.Tokens(), ",")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
