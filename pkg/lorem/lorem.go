// Package lorem generates random dummy text in the classic lorem-ipsum
// vocabulary.
package lorem

import (
	"math/rand"
	"strings"
	"time"
)

var words = []string{
	"a", "ac", "accumsan", "ad", "adipiscing", "aenean", "aliquam",
	"amet", "ante", "aptent", "arcu", "at", "auctor", "augue", "bibendum",
	"class", "commodo", "condimentum", "congue", "consectetur",
	"conubia", "convallis", "cras", "cubilia", "curabitur", "curae",
	"dapibus", "diam", "dictum", "dictumst", "dignissim", "dis", "dolor",
	"dui", "duis", "efficitur", "egestas", "eget", "eleifend",
	"elit", "enim", "erat", "eros", "est", "et", "etiam", "eu", "euismod",
	"facilisi", "facilisis", "fames", "faucibus", "felis", "fermentum",
	"finibus", "fringilla", "fusce", "gravida", "habitant", "habitasse",
	"hendrerit", "himenaeos", "iaculis", "id", "imperdiet", "in",
	"integer", "interdum", "ipsum", "justo", "lacinia", "lacus",
	"lectus", "leo", "libero", "ligula", "litora", "lobortis", "lorem",
	"maecenas", "magna", "magnis", "malesuada", "massa", "mattis",
	"maximus", "metus", "mi", "molestie", "mollis", "montes", "morbi",
	"nam", "nascetur", "natoque", "nec", "neque", "netus", "nibh", "nisi",
	"non", "nostra", "nulla", "nullam", "nunc", "odio", "orci", "ornare",
	"pellentesque", "penatibus", "per", "pharetra", "phasellus",
	"platea", "porta", "porttitor", "posuere", "potenti", "praesent",
	"primis", "proin", "pulvinar", "purus", "quam", "quis", "quisque",
	"ridiculus", "risus", "rutrum", "sagittis", "sapien", "scelerisque",
	"sem", "semper", "senectus", "sit", "sociosqu", "sodales",
	"suscipit", "suspendisse", "taciti", "tellus", "tempor", "tempus",
	"torquent", "tortor", "tristique", "turpis", "ullamcorper",
	"ultricies", "urna", "ut", "varius", "vehicula", "vel", "velit",
}

// Generator produces lorem-ipsum text from its own random source, so
// callers that need reproducible output can seed it.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded from the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a generator with a deterministic random source.
func NewSeeded(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Word returns a single random word.
func (g *Generator) Word() string {
	return words[g.rng.Intn(len(words))]
}

// Sentence returns a capitalized sentence of n words ending in a
// punctuation mark. When n <= 0 a random length of 8 to 20 words is used.
func (g *Generator) Sentence(n int) string {
	if n <= 0 {
		n = 8 + g.rng.Intn(13)
	}

	parts := make([]string, n)
	for i := range parts {
		parts[i] = g.Word()
	}

	// Sprinkle in punctuation so longer sentences read naturally.
	if n >= 3 {
		marks := []string{",", ",", ",", " -", ";", "'", "\""}
		for i := g.rng.Intn(n/5 + 1); i > 0; i-- {
			m := marks[g.rng.Intn(len(marks))]
			at := 1 + g.rng.Intn(n-2)
			if m == "'" || m == "\"" {
				parts[at] = m + parts[at] + m
			} else {
				parts[at] += m
			}
		}
	}

	parts[0] = strings.ToUpper(parts[0][:1]) + parts[0][1:]
	endings := []string{".", ".", ".", ".", ".", ".", ".", "?", "!"}
	parts[n-1] += endings[g.rng.Intn(len(endings))]

	return strings.Join(parts, " ")
}

// Paragraph returns 4 to 7 random sentences joined by spaces.
func (g *Generator) Paragraph() string {
	n := 4 + g.rng.Intn(4)
	sentences := make([]string, n)
	for i := range sentences {
		sentences[i] = g.Sentence(0)
	}
	return strings.Join(sentences, " ")
}

// Text returns 3 to 5 paragraphs separated by blank lines.
func (g *Generator) Text() string {
	n := 3 + g.rng.Intn(3)
	paragraphs := make([]string, n)
	for i := range paragraphs {
		paragraphs[i] = g.Paragraph()
	}
	return strings.Join(paragraphs, "\n\n")
}

// List returns n random words. When n <= 0 a random length of 10 to 20
// is used.
func (g *Generator) List(n int) []string {
	if n <= 0 {
		n = 10 + g.rng.Intn(11)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = g.Word()
	}
	return out
}
