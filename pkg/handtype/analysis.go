package handtype

import (
	"fmt"
	"sort"

	"handtype-server/pkg/deck"
)

// royalRanks is how many of the highest ranks a royal flush is drawn from
const royalRanks = 5

// Analysis holds the facts derived from a five card hand.
// Facts are computed once by the constructor; every predicate is a read-only query.
type Analysis struct {
	ordering *deck.Ordering
	hand     deck.Hand

	ranks  []int
	suits  []deck.Suit
	groups map[int]int

	uniqueSuits int
	sequential  bool
	royalRanks  bool
}

// NewAnalysis derives the facts of a hand.
// The cards must have been parsed with the same ordering; a card whose rank
// is not in the ordering returns deck.ErrInvalidRank.
func NewAnalysis(o *deck.Ordering, hand deck.Hand) (*Analysis, error) {
	if len(hand) != HandSize {
		return nil, HandSizeError(len(hand))
	}

	for _, card := range hand {
		if err := checkRank(o, card); err != nil {
			return nil, err
		}
	}

	a := &Analysis{
		ordering: o,
		hand:     hand.Clone(),
		ranks:    make([]int, len(hand)),
		suits:    make([]deck.Suit, len(hand)),
		groups:   make(map[int]int, len(hand)),
	}

	a.analyzeHand()
	return a, nil
}

// checkRank returns an error if the card was not parsed with the ordering
func checkRank(o *deck.Ordering, card deck.Card) error {
	if card.Rank < 0 || card.Rank >= o.Len() {
		return fmt.Errorf("%w: rank %d of card %q is outside the ordering", deck.ErrInvalidRank, card.Rank, card.String())
	}

	if label := card.Label(); label != "" && label != o.Label(card.Rank) {
		return fmt.Errorf("%w %q in card %q", deck.ErrInvalidRank, label, card.String())
	}

	return nil
}

func (a *Analysis) analyzeHand() {
	seenSuits := make(map[deck.Suit]bool, len(deck.Suits))
	a.royalRanks = true

	for i, card := range a.hand {
		a.ranks[i] = card.Rank
		a.suits[i] = card.Suit
		a.groups[card.Rank]++
		seenSuits[card.Suit] = true

		if !a.ordering.IsTop(card.Rank, royalRanks) {
			a.royalRanks = false
		}
	}

	sort.Ints(a.ranks)
	a.uniqueSuits = len(seenSuits)

	// five distinct ranks spanning exactly five positions; no wrap-around
	n := len(a.ranks)
	a.sequential = len(a.groups) == n && a.ranks[n-1]-a.ranks[0] == n-1
}

// Hand returns a copy of the analyzed cards
func (a *Analysis) Hand() deck.Hand {
	return a.hand.Clone()
}

// NumericRanks returns the rank indexes sorted low to high, duplicates included
func (a *Analysis) NumericRanks() []int {
	ranks := make([]int, len(a.ranks))
	copy(ranks, a.ranks)
	return ranks
}

// Suits returns the suit of each card in hand order
func (a *Analysis) Suits() []deck.Suit {
	suits := make([]deck.Suit, len(a.suits))
	copy(suits, a.suits)
	return suits
}

// UniqueSuitCount returns the number of distinct suits
func (a *Analysis) UniqueSuitCount() int {
	return a.uniqueSuits
}

// RankGroups returns the number of cards held of each rank index
func (a *Analysis) RankGroups() map[int]int {
	groups := make(map[int]int, len(a.groups))
	for rank, count := range a.groups {
		groups[rank] = count
	}

	return groups
}

// IsSequential returns true if the ranks form a run of five consecutive positions
func (a *Analysis) IsSequential() bool {
	return a.sequential
}

// IsOneSuit returns true if every card shares a suit
func (a *Analysis) IsOneSuit() bool {
	return a.uniqueSuits == 1
}

// IsRoyalFlushRanks returns true if every card is one of the five highest ranks
func (a *Analysis) IsRoyalFlushRanks() bool {
	return a.royalRanks
}

// hasGroupOf returns true if any rank is held exactly n times
func (a *Analysis) hasGroupOf(n int) bool {
	return a.groupsOf(n) > 0
}

// groupsOf returns how many ranks are held exactly n times
func (a *Analysis) groupsOf(n int) int {
	count := 0
	for _, size := range a.groups {
		if size == n {
			count++
		}
	}

	return count
}

// IsRoyalFlush returns true if the hand is made of the top five ranks in one suit
func (a *Analysis) IsRoyalFlush() bool {
	return a.IsRoyalFlushRanks() && a.IsOneSuit()
}

// IsStraightFlush returns true for a one suit run that is not a royal flush
func (a *Analysis) IsStraightFlush() bool {
	return a.IsSequential() && a.IsOneSuit() && !a.IsRoyalFlushRanks()
}

// IsFourOfAKind returns true if four cards share a rank
func (a *Analysis) IsFourOfAKind() bool {
	return a.hasGroupOf(4)
}

// IsFullHouse returns true for three of one rank and two of another
func (a *Analysis) IsFullHouse() bool {
	return a.hasGroupOf(3) && a.hasGroupOf(2)
}

// IsFlush returns true for a one suit hand that is neither a straight flush nor a royal flush
func (a *Analysis) IsFlush() bool {
	if a.IsStraightFlush() || a.IsRoyalFlush() {
		return false
	}

	return a.IsOneSuit()
}

// IsStraight returns true for a run spread across more than one suit
func (a *Analysis) IsStraight() bool {
	return a.IsSequential() && !a.IsOneSuit()
}

// IsThreeOfAKind returns true for three of one rank with no pair alongside
func (a *Analysis) IsThreeOfAKind() bool {
	return a.hasGroupOf(3) && !a.hasGroupOf(2)
}

// IsTwoPair returns true if exactly two ranks are held twice
func (a *Analysis) IsTwoPair() bool {
	return a.groupsOf(2) == 2
}

// IsOnePair returns true if exactly one rank is held twice
func (a *Analysis) IsOnePair() bool {
	return a.groupsOf(2) == 1
}

// HighCard returns the label of the highest rank in the hand
func (a *Analysis) HighCard() string {
	return a.ordering.Label(a.ranks[len(a.ranks)-1])
}

// predicate pairs a category with the test that selects it
type predicate struct {
	category Category
	matches  func(a *Analysis) bool
}

// precedence lists the category tests strongest first; high card is the fallback
var precedence = []predicate{
	{RoyalFlush, (*Analysis).IsRoyalFlush},
	{StraightFlush, (*Analysis).IsStraightFlush},
	{FourOfAKind, (*Analysis).IsFourOfAKind},
	{FullHouse, (*Analysis).IsFullHouse},
	{Flush, (*Analysis).IsFlush},
	{Straight, (*Analysis).IsStraight},
	{ThreeOfAKind, (*Analysis).IsThreeOfAKind},
	{TwoPair, (*Analysis).IsTwoPair},
	{OnePair, (*Analysis).IsOnePair},
}

// Category returns the first category, in precedence order, the hand satisfies
func (a *Analysis) Category() Category {
	for _, p := range precedence {
		if p.matches(a) {
			return p.category
		}
	}

	return HighCard
}

// Matches returns every category whose test holds, strongest first.
// High card always holds, so the result is never empty.
func (a *Analysis) Matches() []Category {
	matches := make([]Category, 0, len(precedence)+1)
	for _, p := range precedence {
		if p.matches(a) {
			matches = append(matches, p.category)
		}
	}

	return append(matches, HighCard)
}
