// Package jokes holds the fixed joke list and picks from it at random.
package jokes

import (
	"math/rand/v2"
)

var list = []string{
	"Why don't scientists trust atoms? Because they make up everything!",
	"Did you hear about the mathematician who was afraid of negative numbers? He'd stop at nothing to avoid them.",
	"Why did the scarecrow win an award? Because he was outstanding in his field!",
	"What do you call a fake noodle? An impasta.",
	"Why did the bicycle fall over? Because it was two-tired!",
	"How do you organize a space party? You planet!",
	"What's orange and sounds like a parrot? A carrot.",
	"I told my wife she was drawing her eyebrows too high. She looked surprised.",
	"What do you call a fish with no eyes? Fsh.",
	"Parallel lines have so much in common. It’s a shame they’ll never meet.",
	"My dog used to chase people on a bike. It got so bad, we had to take his bike away.",
	"What do you call a boomerang that won't come back? A stick.",
	"Why did the coffee file a police report? It got mugged.",
	"What do you call a sad strawberry? A blueberry.",
	"I'm reading a book about anti-gravity. It's impossible to put down!",
	"Why did the stadium get hot after the game? Because all the fans left.",
	"What do you call cheese that isn't yours? Nacho cheese.",
	"What's a vampire's favorite fruit? A neck-tarine.",
	"I only know 25 letters of the alphabet. I don't know Y.",
	"Did you hear about the restaurant on the moon? Great food, no atmosphere.",
}

// All returns a copy of the built-in jokes in their fixed order.
func All() []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Option configures a Picker.
type Option func(*Picker)

// WithIntN replaces the random source. fn must return a value in [0, n).
func WithIntN(fn func(n int) int) Option {
	return func(p *Picker) {
		if fn != nil {
			p.intn = fn
		}
	}
}

// Picker selects jokes uniformly at random. It is safe for concurrent use
// as long as its random source is; the default one is.
type Picker struct {
	jokes []string
	intn  func(n int) int
}

// NewPicker returns a Picker over a private copy of jokes.
func NewPicker(jokes []string, opts ...Option) *Picker {
	if len(jokes) == 0 {
		panic("jokes.NewPicker: empty joke list")
	}
	p := &Picker{
		jokes: append([]string(nil), jokes...),
		intn:  rand.IntN,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pick returns one joke.
func (p *Picker) Pick() string {
	return p.jokes[p.intn(len(p.jokes))]
}

// Len reports how many jokes the picker chooses from.
func (p *Picker) Len() int {
	return len(p.jokes)
}
