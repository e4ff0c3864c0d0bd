package quiz

import (
	"fmt"
	"math"
	"time"

	"github.com/verte-zerg/ddtrain/internal/doomsday"
	"github.com/verte-zerg/ddtrain/internal/model"
)

// DefaultRounds is the number of rounds in a session.
const DefaultRounds = 3

// Sampler provides the date asked in each round.
type Sampler interface {
	SampleDate() model.CalendarDate
}

// Quiz drives rounds over a console.
type Quiz struct {
	console Console
	sampler Sampler
	names   bool
	now     func() time.Time
}

// New constructs a Quiz. When names is set, feedback shows weekday names next
// to their index.
func New(console Console, sampler Sampler, names bool) *Quiz {
	return &Quiz{
		console: console,
		sampler: sampler,
		names:   names,
		now:     time.Now,
	}
}

// SetClock replaces the time source used to measure answers.
func (q *Quiz) SetClock(now func() time.Time) {
	q.now = now
}

// RunRound asks for the year's doomsday, then for the weekday of the sampled
// date. The second question is skipped after a wrong first answer.
func (q *Quiz) RunRound() (model.RoundResult, error) {
	d := q.sampler.SampleDate()

	doomsdayStart := q.now()
	answer, err := q.console.Ask(fmt.Sprintf("What was the doomsday in %d?\t", d.Year))
	if err != nil {
		return model.RoundResult{}, err
	}
	doomsdayDay := doomsday.DoomsdayWeekday(d.Year)
	if !matches(answer, doomsdayDay) {
		return model.RoundResult{}, q.console.Say("Sorry, the answer was " + model.FormatWeekday(doomsdayDay, q.names))
	}
	doomsdaySeconds := q.elapsed(doomsdayStart)
	if err := q.console.Say(fmt.Sprintf("Correct! %d seconds", doomsdaySeconds)); err != nil {
		return model.RoundResult{}, err
	}

	answerStart := q.now()
	answer, err = q.console.Ask(fmt.Sprintf("What day was %s?\t", d.Medium()))
	if err != nil {
		return model.RoundResult{}, err
	}
	answerSeconds := q.elapsed(answerStart)
	totalSeconds := q.elapsed(doomsdayStart)
	if !matches(answer, d.Weekday()) {
		if err := q.console.Say("Sorry, the answer was " + model.FormatWeekday(d.Weekday(), q.names)); err != nil {
			return model.RoundResult{}, err
		}
		nearest := doomsday.ClosestAnchor(d)
		anchor := model.CalendarDate{Year: d.Year, Month: nearest.Anchor.Month, Day: nearest.Anchor.Day}
		return model.RoundResult{}, q.console.Say(fmt.Sprintf("Closest doomsday date was %s, with %d offset", anchor.Long(), nearest.Offset))
	}
	if err := q.console.Say(fmt.Sprintf("Correct! %d seconds (%d seconds total)", answerSeconds, totalSeconds)); err != nil {
		return model.RoundResult{}, err
	}
	return model.RoundResult{
		Completed:       true,
		DoomsdaySeconds: doomsdaySeconds,
		TotalSeconds:    totalSeconds,
	}, nil
}

// RunSession plays rounds one after another, prints the summary line and
// closes the console. The console is closed on every return path.
func (q *Quiz) RunSession(rounds int) (summary model.SessionSummary, err error) {
	defer func() {
		if cerr := q.console.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close console: %w", cerr)
		}
	}()

	summary.Total = rounds
	for i := 0; i < rounds; i++ {
		result, err := q.RunRound()
		if err != nil {
			return summary, fmt.Errorf("round %d: %w", i+1, err)
		}
		if !result.Completed {
			continue
		}
		summary.Completed++
		summary.TotalSeconds += result.TotalSeconds
	}
	if err := q.console.Say(FormatSummary(summary)); err != nil {
		return summary, err
	}
	return summary, nil
}

// FormatSummary renders the final line of a session.
func FormatSummary(s model.SessionSummary) string {
	avg := "N/A"
	if v, ok := s.Average(); ok {
		avg = fmt.Sprintf("%d seconds", v)
	}
	return fmt.Sprintf("%d/%d correct in %d seconds (avg: %s)", s.Completed, s.Total, s.TotalSeconds, avg)
}

func (q *Quiz) elapsed(start time.Time) int {
	return int(math.Round(q.now().Sub(start).Seconds()))
}

func matches(answer string, want time.Weekday) bool {
	got, ok := model.ParseWeekday(answer)
	return ok && got == want
}
