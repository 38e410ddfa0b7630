package engine

import (
	"math/rand/v2"
	"slices"
)

// Deck is the draw pile.
type Deck struct {
	cards []*Card
	rng   *rand.Rand
}

// NewDeck creates an unshuffled deck from the given cards.
func NewDeck(cards []*Card, rng *rand.Rand) *Deck {
	return &Deck{cards: slices.Clone(cards), rng: rng}
}

// Shuffle applies a uniform random permutation to the pile.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card, or nil if the deck is empty.
func (d *Deck) Draw() *Card {
	if len(d.cards) == 0 {
		return nil
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c
}

// Remove takes a specific card out of the pile; it reports whether it was there.
func (d *Deck) Remove(c *Card) bool {
	i := slices.Index(d.cards, c)
	if i < 0 {
		return false
	}
	d.cards = slices.Delete(d.cards, i, i+1)
	return true
}

// Replace swaps the whole pile for cards, e.g. after a catalog reload.
func (d *Deck) Replace(cards []*Card) {
	d.cards = slices.Clone(cards)
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the pile, top first.
func (d *Deck) Cards() []*Card {
	return slices.Clone(d.cards)
}

// StarterCards returns the starter cards still in the pile, in pile order.
func (d *Deck) StarterCards() []*Card {
	var out []*Card
	for _, c := range d.cards {
		if c.StarterCard {
			out = append(out, c)
		}
	}
	return out
}
