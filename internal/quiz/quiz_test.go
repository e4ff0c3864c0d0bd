package quiz

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/ddtrain/internal/model"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

// fakeConsole answers prompts from a script, advancing the clock by the
// configured think time before each answer.
type fakeConsole struct {
	clock   *fakeClock
	answers []string
	delays  []time.Duration
	prompts []string
	lines   []string
	closes  int
}

func (c *fakeConsole) Ask(prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	if len(c.answers) == 0 {
		return "", io.ErrUnexpectedEOF
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	if len(c.delays) > 0 {
		c.clock.t = c.clock.t.Add(c.delays[0])
		c.delays = c.delays[1:]
	}
	return answer, nil
}

func (c *fakeConsole) Say(line string) error {
	c.lines = append(c.lines, line)
	return nil
}

func (c *fakeConsole) Close() error {
	c.closes++
	return nil
}

type fixedSampler struct {
	dates []model.CalendarDate
}

func (s *fixedSampler) SampleDate() model.CalendarDate {
	d := s.dates[0]
	s.dates = s.dates[1:]
	return d
}

func date(y int, m time.Month, d int) model.CalendarDate {
	return model.CalendarDate{Year: y, Month: m, Day: d}
}

func newTestQuiz(answers []string, delays []time.Duration, dates ...model.CalendarDate) (*Quiz, *fakeConsole) {
	clock := &fakeClock{t: time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)}
	console := &fakeConsole{clock: clock, answers: answers, delays: delays}
	q := New(console, &fixedSampler{dates: dates}, false)
	q.SetClock(clock.now)
	return q, console
}

func TestRunRoundBothCorrect(t *testing.T) {
	q, console := newTestQuiz(
		[]string{"2", "6"},
		[]time.Duration{4 * time.Second, 6 * time.Second},
		date(2000, time.January, 1),
	)
	result, err := q.RunRound()
	if err != nil {
		t.Fatalf("run round: %v", err)
	}
	if !result.Completed || result.DoomsdaySeconds != 4 || result.TotalSeconds != 10 {
		t.Fatalf("unexpected result: %+v", result)
	}
	wantPrompts := []string{"What was the doomsday in 2000?\t", "What day was Jan 1, 2000?\t"}
	if strings.Join(console.prompts, "|") != strings.Join(wantPrompts, "|") {
		t.Fatalf("unexpected prompts: %q", console.prompts)
	}
	wantLines := []string{"Correct! 4 seconds", "Correct! 6 seconds (10 seconds total)"}
	if strings.Join(console.lines, "|") != strings.Join(wantLines, "|") {
		t.Fatalf("unexpected lines: %q", console.lines)
	}
}

func TestRunRoundWrongDoomsdaySkipsSecondQuestion(t *testing.T) {
	q, console := newTestQuiz([]string{"3", "6"}, nil, date(2000, time.January, 1))
	result, err := q.RunRound()
	if err != nil {
		t.Fatalf("run round: %v", err)
	}
	if result.Completed {
		t.Fatalf("expected failed round")
	}
	if len(console.prompts) != 1 {
		t.Fatalf("expected a single prompt, got %q", console.prompts)
	}
	if len(console.lines) != 1 || console.lines[0] != "Sorry, the answer was 2" {
		t.Fatalf("unexpected lines: %q", console.lines)
	}
}

func TestRunRoundNonNumericIsWrong(t *testing.T) {
	q, console := newTestQuiz([]string{"tuesday"}, nil, date(2000, time.January, 1))
	result, err := q.RunRound()
	if err != nil {
		t.Fatalf("run round: %v", err)
	}
	if result.Completed || len(console.prompts) != 1 {
		t.Fatalf("expected failure after first prompt, got %+v %q", result, console.prompts)
	}
}

func TestRunRoundWrongWeekdayGivesHint(t *testing.T) {
	q, console := newTestQuiz([]string{"2", "1"}, nil, date(2023, time.July, 6))
	result, err := q.RunRound()
	if err != nil {
		t.Fatalf("run round: %v", err)
	}
	if result.Completed {
		t.Fatalf("expected failed round")
	}
	want := []string{
		"Correct! 0 seconds",
		"Sorry, the answer was 4",
		"Closest doomsday date was Tue Jul 04 2023, with 2 offset",
	}
	if strings.Join(console.lines, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected lines: %q", console.lines)
	}
}

func TestRunRoundNamedWeekdays(t *testing.T) {
	clock := &fakeClock{}
	console := &fakeConsole{clock: clock, answers: []string{"0"}}
	q := New(console, &fixedSampler{dates: []model.CalendarDate{date(2023, time.March, 1)}}, true)
	q.SetClock(clock.now)
	if _, err := q.RunRound(); err != nil {
		t.Fatalf("run round: %v", err)
	}
	if console.lines[0] != "Sorry, the answer was Tue (2)" {
		t.Fatalf("unexpected line: %q", console.lines[0])
	}
}

func TestRunRoundRoundsElapsedSeconds(t *testing.T) {
	q, console := newTestQuiz(
		[]string{"2", "6"},
		[]time.Duration{2500 * time.Millisecond, 1400 * time.Millisecond},
		date(2000, time.January, 1),
	)
	if _, err := q.RunRound(); err != nil {
		t.Fatalf("run round: %v", err)
	}
	want := []string{"Correct! 3 seconds", "Correct! 1 seconds (4 seconds total)"}
	if strings.Join(console.lines, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected lines: %q", console.lines)
	}
}

func TestRunSessionAllCorrect(t *testing.T) {
	q, console := newTestQuiz(
		[]string{"2", "6", "2", "2", "4", "4"},
		[]time.Duration{
			4 * time.Second, 6 * time.Second,
			2 * time.Second, 3 * time.Second,
			2 * time.Second, 5 * time.Second,
		},
		date(2000, time.January, 1),
		date(2023, time.July, 4),
		date(2024, time.February, 29),
	)
	summary, err := q.RunSession(DefaultRounds)
	if err != nil {
		t.Fatalf("run session: %v", err)
	}
	if summary.Completed != 3 || summary.Total != 3 || summary.TotalSeconds != 22 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	last := console.lines[len(console.lines)-1]
	if last != "3/3 correct in 22 seconds (avg: 7 seconds)" {
		t.Fatalf("unexpected summary line: %q", last)
	}
	if console.closes != 1 {
		t.Fatalf("expected console closed once, got %d", console.closes)
	}
}

func TestRunSessionMixedResults(t *testing.T) {
	q, console := newTestQuiz(
		[]string{"0", "2", "6", "2", "5"},
		[]time.Duration{time.Second, 3 * time.Second, 4 * time.Second, time.Second, time.Second},
		date(2000, time.January, 1),
		date(2000, time.January, 1),
		date(2023, time.July, 4),
	)
	summary, err := q.RunSession(3)
	if err != nil {
		t.Fatalf("run session: %v", err)
	}
	if summary.Completed != 1 || summary.TotalSeconds != 7 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if last := console.lines[len(console.lines)-1]; last != "1/3 correct in 7 seconds (avg: 7 seconds)" {
		t.Fatalf("unexpected summary line: %q", last)
	}
}

func TestRunSessionNoneCompleted(t *testing.T) {
	q, console := newTestQuiz(
		[]string{"0", "0", "0"},
		nil,
		date(2000, time.January, 1),
		date(2000, time.January, 1),
		date(2000, time.January, 1),
	)
	summary, err := q.RunSession(3)
	if err != nil {
		t.Fatalf("run session: %v", err)
	}
	if summary.Completed != 0 {
		t.Fatalf("expected no completed rounds, got %d", summary.Completed)
	}
	if last := console.lines[len(console.lines)-1]; last != "0/3 correct in 0 seconds (avg: N/A)" {
		t.Fatalf("unexpected summary line: %q", last)
	}
}

func TestRunSessionInputEndsEarly(t *testing.T) {
	q, console := newTestQuiz([]string{"2"}, nil, date(2000, time.January, 1))
	_, err := q.RunSession(3)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF, got %v", err)
	}
	if console.closes != 1 {
		t.Fatalf("expected console closed once, got %d", console.closes)
	}
	for _, line := range console.lines {
		if strings.Contains(line, "correct in") {
			t.Fatalf("summary printed after failure: %q", line)
		}
	}
}

func TestRunSessionOverLineConsole(t *testing.T) {
	var out bytes.Buffer
	console := NewLineConsole(strings.NewReader("2\n6\n"), &out)
	q := New(console, &fixedSampler{dates: []model.CalendarDate{date(2000, time.January, 1)}}, false)
	clock := &fakeClock{}
	q.SetClock(clock.now)
	summary, err := q.RunSession(1)
	if err != nil {
		t.Fatalf("run session: %v", err)
	}
	if summary.Completed != 1 {
		t.Fatalf("expected completed round, got %+v", summary)
	}
	want := "What was the doomsday in 2000?\tCorrect! 0 seconds\n" +
		"What day was Jan 1, 2000?\tCorrect! 0 seconds (0 seconds total)\n" +
		"1/1 correct in 0 seconds (avg: 0 seconds)\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", out.String(), want)
	}
	if err := console.Say("late"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected closed console, got %v", err)
	}
}

func TestFormatSummary(t *testing.T) {
	cases := []struct {
		summary model.SessionSummary
		want    string
	}{
		{model.SessionSummary{Completed: 2, Total: 3, TotalSeconds: 15}, "2/3 correct in 15 seconds (avg: 7 seconds)"},
		{model.SessionSummary{Completed: 0, Total: 3}, "0/3 correct in 0 seconds (avg: N/A)"},
	}
	for _, tc := range cases {
		if got := FormatSummary(tc.summary); got != tc.want {
			t.Fatalf("FormatSummary(%+v) = %q, want %q", tc.summary, got, tc.want)
		}
	}
}
