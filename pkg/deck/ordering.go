package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyRank is returned when an ordering contains a blank label
var ErrEmptyRank = errors.New("rank label cannot be empty")

// ErrDuplicateRank is returned when an ordering lists the same label twice
var ErrDuplicateRank = errors.New("duplicate rank label")

// ErrTooFewRanks is returned when an ordering cannot hold a five card run
var ErrTooFewRanks = errors.New("an ordering needs at least five ranks")

// ErrUnknownOrdering is returned by OrderingByName for an unrecognized name
var ErrUnknownOrdering = errors.New("unknown rank ordering")

// MinRanks is the smallest ordering that can describe a royal flush
const MinRanks = 5

// Ordering is a fixed sequence of rank labels from lowest to highest.
// The index of a label is its strength. An Ordering is never modified after
// construction and is safe to share between goroutines.
type Ordering struct {
	labels []string
	index  map[string]int
}

// Standard is the 13 rank ordering used by a regular deck: 2 through ace
var Standard = MustOrdering("2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A")

// AceOne is the ordering the classic fixture hands are written in: a "1" below
// the deuce, and ten written as "T"
var AceOne = MustOrdering("1", "2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A")

// NewOrdering builds an ordering from labels listed low to high
func NewOrdering(labels ...string) (*Ordering, error) {
	if len(labels) < MinRanks {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewRanks, len(labels))
	}

	o := &Ordering{
		labels: make([]string, len(labels)),
		index:  make(map[string]int, len(labels)),
	}

	for i, label := range labels {
		label = strings.ToUpper(strings.TrimSpace(label))
		if label == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyRank, i)
		}

		if _, found := o.index[label]; found {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRank, label)
		}

		o.labels[i] = label
		o.index[label] = i
	}

	return o, nil
}

// MustOrdering is like NewOrdering, but panics on an invalid ordering
func MustOrdering(labels ...string) *Ordering {
	o, err := NewOrdering(labels...)
	if err != nil {
		panic(fmt.Sprintf("could not build ordering: %v", err))
	}

	return o
}

// OrderingByName resolves a configured ordering.
// The name can be "standard", "ace-one", or a comma separated list of labels.
func OrderingByName(name string) (*Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ace-one", "aceone":
		return AceOne, nil
	case "standard":
		return Standard, nil
	}

	if !strings.Contains(name, ",") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrdering, name)
	}

	return NewOrdering(strings.Split(name, ",")...)
}

// Index returns the strength of the label
func (o *Ordering) Index(label string) (int, bool) {
	i, ok := o.index[strings.ToUpper(label)]
	return i, ok
}

// Label returns the label at index i
func (o *Ordering) Label(i int) string {
	return o.labels[i]
}

// Len returns the number of ranks
func (o *Ordering) Len() int {
	return len(o.labels)
}

// Labels returns a copy of the labels, low to high
func (o *Ordering) Labels() []string {
	labels := make([]string, len(o.labels))
	copy(labels, o.labels)
	return labels
}

// IsTop returns true if index i is one of the n highest ranks
func (o *Ordering) IsTop(i, n int) bool {
	return i >= len(o.labels)-n && i < len(o.labels)
}

func (o *Ordering) String() string {
	return strings.Join(o.labels, ",")
}
