package handtype

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"handtype-server/pkg/deck"
)

func hand(s string) []string {
	return strings.Fields(s)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		hand string
		want Category
	}{
		{"TH QH JH AH KH", RoyalFlush},
		{"1S 2S 3S 4S 5S", StraightFlush},
		{"1H 1S 1C 1D 2H", FourOfAKind},
		{"KH KS KC 2H 2D", FullHouse},
		{"7H 6H JH 1H AH", Flush},
		{"1H 2H 3H 4H 5D", Straight},
		{"3H 3D 3C 4D 5D", ThreeOfAKind},
		{"1H 1D 2H 2D 8C", TwoPair},
		{"1H 1D 2H 3H 4D", OnePair},
		{"AS KH 7D 1C 5H", HighCard},
	}

	for _, test := range tests {
		t.Run(test.want.Symbol(), func(t *testing.T) {
			got, err := Classify(hand(test.hand))
			assert.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestClassify_isIdempotent(t *testing.T) {
	tokens := hand("KH KS KC 2H 2D")
	first, err := Classify(tokens)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		got, err := Classify(tokens)
		assert.NoError(t, err)
		assert.Equal(t, first, got)
	}

	assert.Equal(t, hand("KH KS KC 2H 2D"), tokens)
}

func TestClassify_concurrent(t *testing.T) {
	c := NewClassifier(deck.AceOne)
	tokens := hand("7H 6H JH 1H AH")

	var wg sync.WaitGroup
	results := make([]Category, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.Classify(tokens)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, Flush, got)
	}
}

func TestClassify_errors(t *testing.T) {
	_, err := Classify(hand("TH QH JH AH"))
	var sizeErr HandSizeError
	assert.True(t, errors.As(err, &sizeErr))
	assert.Equal(t, HandSizeError(4), sizeErr)
	assert.EqualError(t, err, "expected 5 cards, got 4")

	_, err = Classify(hand("TH QH JH AH KH 2H"))
	assert.EqualError(t, err, "expected 5 cards, got 6")

	_, err = Classify(nil)
	assert.EqualError(t, err, "expected 5 cards, got 0")

	_, err = Classify(hand("TH QH JH AH XH"))
	assert.True(t, errors.Is(err, deck.ErrInvalidRank))

	_, err = Classify(hand("TH QH JH AH KX"))
	assert.True(t, errors.Is(err, deck.ErrInvalidSuit))
}

func TestClassifier_standardOrdering(t *testing.T) {
	c := NewClassifier(deck.Standard)
	assert.Same(t, deck.Standard, c.Ordering())

	got, err := c.Classify(hand("AH 2D 3C 4S 5H"))
	assert.NoError(t, err)
	assert.Equal(t, HighCard, got, "the ace does not wrap around to make a straight")

	got, err = c.Classify(hand("9C TC JC QC KC"))
	assert.NoError(t, err)
	assert.Equal(t, StraightFlush, got)

	got, err = c.Classify(hand("TC JC QC KC AC"))
	assert.NoError(t, err)
	assert.Equal(t, RoyalFlush, got)

	_, err = c.Classify(hand("1S 2S 3S 4S 5S"))
	assert.True(t, errors.Is(err, deck.ErrInvalidRank))
}

func TestClassifier_twoCharacterRanks(t *testing.T) {
	o := deck.MustOrdering("2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A")
	c := NewClassifier(o)

	got, err := c.Classify(hand("10S JS QS KS AS"))
	assert.NoError(t, err)
	assert.Equal(t, RoyalFlush, got)

	got, err = c.Classify(hand("6D 7H 8C 9S 10D"))
	assert.NoError(t, err)
	assert.Equal(t, Straight, got)
}

func TestClassifier_ClassifyHand(t *testing.T) {
	c := NewClassifier(deck.AceOne)

	got, err := c.ClassifyHand(deck.MustParseHand(deck.AceOne, "3H,3D,3C,4D,5D"))
	assert.NoError(t, err)
	assert.Equal(t, ThreeOfAKind, got)

	_, err = c.ClassifyHand(deck.MustParseHand(deck.AceOne, "3H,3D"))
	assert.EqualError(t, err, "expected 5 cards, got 2")
}

func TestClassifier_Evaluate(t *testing.T) {
	c := NewClassifier(deck.AceOne)

	res, err := c.Evaluate(hand("as kh 7d 1c 5h"))
	assert.NoError(t, err)
	assert.Equal(t, &Result{
		Hand:     []string{"AS", "KH", "7D", "1C", "5H"},
		Category: HighCard,
		Name:     "High card",
		HighCard: "A",
	}, res)

	res, err = c.Evaluate(hand("1H 1D 2H 3H"))
	assert.Nil(t, res)
	assert.Error(t, err)
}

// every multiset of five standard ranks, with suits spread so no card repeats
func TestClassifier_allRankMultisets(t *testing.T) {
	c := NewClassifier(deck.Standard)
	n := deck.Standard.Len()

	mixed := make(map[Category]int)
	flush := make(map[Category]int)

	for r0 := 0; r0 < n; r0++ {
		for r1 := r0; r1 < n; r1++ {
			for r2 := r1; r2 < n; r2++ {
				for r3 := r2; r3 < n; r3++ {
					for r4 := r3; r4 < n; r4++ {
						if r0 == r4 {
							continue
						}

						ranks := []int{r0, r1, r2, r3, r4}
						spread := make(deck.Hand, len(ranks))
						suited := make(deck.Hand, len(ranks))
						for i, rank := range ranks {
							spread[i] = deck.NewCard(deck.Standard, rank, deck.Suits[i%len(deck.Suits)])
							suited[i] = deck.NewCard(deck.Standard, rank, deck.Hearts)
						}

						mixed[assertExclusive(t, c, spread)]++
						if r0 < r1 && r1 < r2 && r2 < r3 && r3 < r4 {
							flush[assertExclusive(t, c, suited)]++
						}
					}
				}
			}
		}
	}

	assert.Equal(t, map[Category]int{
		HighCard:     1278,
		Straight:     9,
		OnePair:      2860,
		TwoPair:      858,
		ThreeOfAKind: 858,
		FullHouse:    156,
		FourOfAKind:  156,
	}, mixed)

	assert.Equal(t, map[Category]int{
		Flush:         1278,
		StraightFlush: 8,
		RoyalFlush:    1,
	}, flush)
}

// assertExclusive checks that the first matching test decides the category and that
// only a full house also satisfies a weaker test
func assertExclusive(t *testing.T, c *Classifier, h deck.Hand) Category {
	t.Helper()

	a, err := NewAnalysis(c.Ordering(), h)
	require.NoError(t, err)

	matches := a.Matches()
	category := a.Category()
	assert.Equal(t, matches[0], category, h.String())
	if category == FullHouse {
		assert.Equal(t, []Category{FullHouse, OnePair, HighCard}, matches, h.String())
	} else if category != HighCard {
		assert.Equal(t, []Category{category, HighCard}, matches, fmt.Sprintf("%s matched %v", h, matches))
	}
	assert.False(t, a.IsTwoPair() && a.IsOnePair(), h.String())
	assert.False(t, a.IsFullHouse() && a.IsThreeOfAKind(), h.String())

	return category
}
