package handtype

import (
	"handtype-server/pkg/deck"
)

// Classifier assigns a hand category to five card hands.
// It only holds an immutable ordering and is safe for concurrent use.
type Classifier struct {
	ordering *deck.Ordering
}

// Result is the outcome of classifying one hand
type Result struct {
	Hand     []string `json:"hand"`
	Category Category `json:"category"`
	Name     string   `json:"name"`
	HighCard string   `json:"highCard"`
}

var defaultClassifier = NewClassifier(deck.AceOne)

// NewClassifier returns a classifier that reads ranks with the ordering
func NewClassifier(o *deck.Ordering) *Classifier {
	return &Classifier{ordering: o}
}

// Ordering returns the rank ordering used by the classifier
func (c *Classifier) Ordering() *deck.Ordering {
	return c.ordering
}

// Analyze parses the tokens and derives the facts of the hand
func (c *Classifier) Analyze(tokens []string) (*Analysis, error) {
	if len(tokens) != HandSize {
		return nil, HandSizeError(len(tokens))
	}

	hand, err := deck.ParseHand(c.ordering, tokens)
	if err != nil {
		return nil, err
	}

	return NewAnalysis(c.ordering, hand)
}

// Classify returns the category of the hand written as card tokens
func (c *Classifier) Classify(tokens []string) (Category, error) {
	a, err := c.Analyze(tokens)
	if err != nil {
		return 0, err
	}

	return a.Category(), nil
}

// ClassifyHand returns the category of an already parsed hand
func (c *Classifier) ClassifyHand(hand deck.Hand) (Category, error) {
	a, err := NewAnalysis(c.ordering, hand)
	if err != nil {
		return 0, err
	}

	return a.Category(), nil
}

// Evaluate classifies the hand and reports the category along with its high card
func (c *Classifier) Evaluate(tokens []string) (*Result, error) {
	a, err := c.Analyze(tokens)
	if err != nil {
		return nil, err
	}

	return a.Result(), nil
}

// Result reports the category of the analyzed hand along with its high card
func (a *Analysis) Result() *Result {
	category := a.Category()
	return &Result{
		Hand:     a.hand.Tokens(),
		Category: category,
		Name:     category.String(),
		HighCard: a.HighCard(),
	}
}

// Analyze derives the facts of the hand using the ace-one ordering
func Analyze(tokens []string) (*Analysis, error) {
	return defaultClassifier.Analyze(tokens)
}

// Classify returns the category of the hand using the ace-one ordering
func Classify(tokens []string) (Category, error) {
	return defaultClassifier.Classify(tokens)
}
