// Package generator samples quiz dates.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/ddtrain/internal/model"
)

// Bounds of the sampled range, inclusive.
var (
	MinDate = model.CalendarDate{Year: 1900, Month: time.January, Day: 1}
	MaxDate = model.CalendarDate{Year: 2099, Month: time.December, Day: 31}
)

// Generator produces random calendar dates.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a deterministic sequence.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// NewWithRand wraps an existing random source.
func NewWithRand(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// SampleDate draws a day uniformly from the UTC timeline between MinDate and
// MaxDate. UTC days have equal length, so this is also uniform per date.
func (g *Generator) SampleDate() model.CalendarDate {
	span := MinDate.DaysUntil(MaxDate) + 1
	offset := g.rnd.Intn(span)
	return model.DateOf(MinDate.Time().AddDate(0, 0, offset))
}
