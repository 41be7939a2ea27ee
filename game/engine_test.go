package game_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/simon/game"
	"github.com/jetsetilly/simon/hardware/leds"
	"github.com/jetsetilly/simon/hardware/pads"
	"github.com/jetsetilly/simon/hardware/timer"
	"github.com/jetsetilly/simon/test"
)

var errScriptEnd = errors.New("end of script")

type light struct {
	pattern  leds.Pattern
	duration uint16
}

// scriptedBoard returns button presses from a script. when the script is
// exhausted Read() returns errScriptEnd
type scriptedBoard struct {
	presses []pads.Symbol
	reads   int
	echoes  int

	lights []light
	waits  []uint16

	ready bool
	goes  int
}

func (b *scriptedBoard) Read(echo bool) (pads.Symbol, error) {
	if b.reads >= len(b.presses) {
		return pads.None, errScriptEnd
	}
	s := b.presses[b.reads]
	b.reads++
	if echo {
		b.echoes++
	}
	return s, nil
}

func (b *scriptedBoard) Light(p leds.Pattern, duration uint16) error {
	b.lights = append(b.lights, light{pattern: p, duration: duration})
	return nil
}

func (b *scriptedBoard) Wait(duration uint16) {
	b.waits = append(b.waits, duration)
}

func (b *scriptedBoard) Ready(on bool) {
	b.ready = on
}

func (b *scriptedBoard) Go(on bool) {
	if on {
		b.goes++
	}
}

type presenter struct {
	starts   int
	gameOver []pads.Symbol
	wins     int
}

func (p *presenter) StartPattern() error {
	p.starts++
	return nil
}

func (p *presenter) GameOver(expected pads.Symbol) error {
	p.gameOver = append(p.gameOver, expected)
	return nil
}

func (p *presenter) Win() error {
	p.wins++
	return nil
}

// scriptedRandom returns each value in turn and then repeats the last value
type scriptedRandom struct {
	values []int
	idx    int
}

func (r *scriptedRandom) IntN(n int) int {
	v := r.values[r.idx]
	if r.idx < len(r.values)-1 {
		r.idx++
	}
	return v % n
}

// rounds returns the presses needed to repeat the sequence correctly for the
// given number of rounds, preceded by the press that starts the game
func rounds(seq []pads.Symbol, n int) []pads.Symbol {
	p := []pads.Symbol{pads.Green}
	for r := range n {
		p = append(p, seq[:r+1]...)
	}
	return p
}

func symbols(v ...int) []pads.Symbol {
	s := make([]pads.Symbol, len(v))
	for i := range v {
		s[i] = pads.Symbol(v[i])
	}
	return s
}

func TestGameStart(t *testing.T) {
	b := &scriptedBoard{presses: []pads.Symbol{pads.Orange}}
	p := &presenter{}
	e := game.NewEngine(b, p, &scriptedRandom{values: []int{0}})

	test.ExpectEquality(t, e.State(), game.AwaitingStart)
	test.ExpectSuccess(t, e.GameStart())

	test.ExpectEquality(t, e.State(), game.CPUTurn)
	test.ExpectEquality(t, b.reads, 1)
	test.ExpectEquality(t, b.echoes, 0)
	test.ExpectFailure(t, b.ready)
	test.ExpectEquality(t, b.goes, 1)
	test.ExpectEquality(t, p.starts, 1)
	test.DemandEquality(t, len(b.waits), 1)
	test.ExpectEquality(t, b.waits[0], timer.TenthSecond)
}

func TestGameStartIdempotence(t *testing.T) {
	b := &scriptedBoard{presses: []pads.Symbol{pads.Green, pads.Blue}}
	e := game.NewEngine(b, &presenter{}, nil)

	test.ExpectSuccess(t, e.GameStart())
	first := e.Snapshot()
	test.ExpectSuccess(t, e.GameStart())
	second := e.Snapshot()

	test.ExpectEquality(t, first, second)
	test.ExpectEquality(t, second.Score, 0)
	test.ExpectFailure(t, second.GameOver)
	test.ExpectEquality(t, len(e.Sequence()), 0)

	e.Reset()
	e.Reset()
	test.ExpectEquality(t, e.Snapshot(), second)
}

func TestCPUTurn(t *testing.T) {
	b := &scriptedBoard{presses: rounds(symbols(2, 0, 1), 2)}
	e := game.NewEngine(b, &presenter{}, &scriptedRandom{values: []int{2, 0, 1}})

	test.DemandSuccess(t, e.GameStart())
	b.waits = b.waits[:0]

	test.DemandSuccess(t, e.CPUTurn())
	test.ExpectEquality(t, e.State(), game.PlayerTurn)
	test.DemandEquality(t, len(b.lights), 1)
	test.ExpectEquality(t, b.lights[0], light{pattern: 2, duration: timer.HalfSecond})

	test.DemandSuccess(t, e.PlayerTurn())
	test.ExpectEquality(t, e.Score(), 1)
	b.lights = b.lights[:0]
	b.waits = b.waits[:0]

	// the whole sequence is replayed with a gap before each symbol
	test.DemandSuccess(t, e.CPUTurn())
	test.DemandEquality(t, len(b.lights), 2)
	test.ExpectEquality(t, b.lights[0], light{pattern: 2, duration: timer.HalfSecond})
	test.ExpectEquality(t, b.lights[1], light{pattern: 0, duration: timer.HalfSecond})
	test.DemandEquality(t, len(b.waits), 2)
	test.ExpectEquality(t, b.waits[0], timer.FifthSecond)
	test.ExpectEquality(t, b.waits[1], timer.FifthSecond)
}

func TestMonotonicGrowth(t *testing.T) {
	values := []int{3, 1, 1, 0, 2, 3, 0, 2, 1, 1, 3, 0}
	seq := symbols(values...)

	const n = 10

	b := &scriptedBoard{presses: rounds(seq, n)}
	e := game.NewEngine(b, &presenter{}, &scriptedRandom{values: values})
	test.DemandSuccess(t, e.GameStart())

	for r := range n {
		test.DemandSuccess(t, e.CPUTurn(), r)
		before := e.Sequence()
		test.DemandSuccess(t, e.PlayerTurn(), r)

		// the score grows by exactly one each round and the existing part
		// of the sequence is never changed
		test.ExpectEquality(t, e.Score(), r+1, r)
		after := e.Sequence()
		test.DemandEquality(t, len(after), len(before), r)
		for i := range before {
			test.ExpectEquality(t, after[i], before[i], r, i)
		}
	}

	test.ExpectEquality(t, e.Score(), n)
	s := e.Sequence()
	test.DemandEquality(t, len(s), n)
	for i := range s {
		test.ExpectEquality(t, s[i], seq[i], i)
	}
}

func TestMismatch(t *testing.T) {
	presses := rounds(symbols(2, 0, 1), 2)
	presses = append(presses, symbols(2, 0, 3)...)

	b := &scriptedBoard{presses: presses}
	p := &presenter{}
	e := game.NewEngine(b, p, &scriptedRandom{values: []int{2, 0, 1}})
	test.DemandSuccess(t, e.GameStart())

	for range 3 {
		test.DemandSuccess(t, e.CPUTurn())
		test.DemandSuccess(t, e.PlayerTurn())
	}

	snap := e.Snapshot()
	test.ExpectEquality(t, snap.State, game.GameOver)
	test.ExpectSuccess(t, snap.GameOver)
	test.ExpectEquality(t, snap.FailedAt, 2)
	test.ExpectEquality(t, snap.Expected, pads.Red)
	test.ExpectEquality(t, snap.Pressed, pads.Orange)
	test.ExpectEquality(t, snap.Score, 2)
	test.ExpectFailure(t, snap.Won)

	// a new CPU turn can not start until the next game
	test.ExpectSuccess(t, errors.Is(e.CPUTurn(), game.ErrGameOver))
	test.ExpectSuccess(t, errors.Is(e.PlayerTurn(), game.ErrGameOver))
	test.ExpectEquality(t, e.Score(), 2)

	test.DemandSuccess(t, e.GameOver())
	test.ExpectEquality(t, e.State(), game.AwaitingStart)
	test.ExpectEquality(t, e.HighScore(), 2)
	test.DemandEquality(t, len(p.gameOver), 1)
	test.ExpectEquality(t, p.gameOver[0], pads.Red)
}

func TestEarlyMismatch(t *testing.T) {
	// the comparison stops at the first wrong press. the remaining presses
	// in the script are not read
	presses := rounds(symbols(1, 2), 1)
	presses = append(presses, symbols(0, 2)...)

	b := &scriptedBoard{presses: presses}
	e := game.NewEngine(b, &presenter{}, &scriptedRandom{values: []int{1, 2}})
	test.DemandSuccess(t, e.GameStart())
	test.DemandSuccess(t, e.CPUTurn())
	test.DemandSuccess(t, e.PlayerTurn())
	test.DemandSuccess(t, e.CPUTurn())
	test.DemandSuccess(t, e.PlayerTurn())

	test.ExpectEquality(t, b.reads, len(presses)-1)
	test.ExpectEquality(t, e.Snapshot().FailedAt, 0)
	test.ExpectEquality(t, e.Snapshot().Expected, pads.Blue)
}

// play one game with the engine. the player repeats the sequence correctly
// for the number of rounds and then gets it wrong
func play(t *testing.T, e *game.Engine, b *scriptedBoard, correct int) {
	t.Helper()

	b.presses = rounds(symbols(0, 0, 0, 0, 0, 0, 0, 0, 0, 0), correct)
	b.presses = append(b.presses, pads.Orange)
	b.reads = 0

	for {
		test.DemandSuccess(t, e.Step())
		if e.State() == game.AwaitingStart {
			return
		}
	}
}

func TestHighScore(t *testing.T) {
	b := &scriptedBoard{}
	e := game.NewEngine(b, &presenter{}, &scriptedRandom{values: []int{0}})

	play(t, e, b, 3)
	test.ExpectEquality(t, e.HighScore(), 3)

	// a lower score does not change the high score
	play(t, e, b, 1)
	test.ExpectEquality(t, e.HighScore(), 3)

	// an equal score does not change the high score
	play(t, e, b, 3)
	test.ExpectEquality(t, e.HighScore(), 3)

	play(t, e, b, 5)
	test.ExpectEquality(t, e.HighScore(), 5)

	play(t, e, b, 0)
	test.ExpectEquality(t, e.HighScore(), 5)
}

func TestCapacityWin(t *testing.T) {
	presses := make([]pads.Symbol, 1, 1+game.Capacity*(game.Capacity+1)/2)
	for range game.Capacity * (game.Capacity + 1) / 2 {
		presses = append(presses, pads.Blue)
	}

	b := &scriptedBoard{presses: presses}
	p := &presenter{}
	e := game.NewEngine(b, p, &scriptedRandom{values: []int{1}})
	test.DemandSuccess(t, e.GameStart())

	for e.State() != game.GameOver {
		test.DemandSuccess(t, e.Step())
	}

	snap := e.Snapshot()
	test.ExpectSuccess(t, snap.Won)
	test.ExpectSuccess(t, snap.GameOver)
	test.ExpectEquality(t, snap.Score, game.Capacity)
	test.ExpectEquality(t, snap.Expected, pads.None)
	test.ExpectEquality(t, b.reads, len(presses))

	test.ExpectSuccess(t, errors.Is(e.CPUTurn(), game.ErrGameOver))
	test.ExpectEquality(t, len(e.Sequence()), game.Capacity)

	test.DemandSuccess(t, e.GameOver())
	test.ExpectEquality(t, p.wins, 1)
	test.ExpectEquality(t, len(p.gameOver), 0)
	test.ExpectEquality(t, e.HighScore(), game.Capacity)
}

func TestObservers(t *testing.T) {
	presses := rounds(symbols(3), 1)
	presses = append(presses, pads.Green)

	b := &scriptedBoard{presses: presses}
	e := game.NewEngine(b, &presenter{}, &scriptedRandom{values: []int{3}})

	var states []game.State
	var last game.Snapshot
	e.AddObserver(func(s game.Snapshot) {
		states = append(states, s.State)
		last = s
	})

	for range 6 {
		test.DemandSuccess(t, e.Step())
	}

	expected := []game.State{
		game.CPUTurn, game.PlayerTurn, game.CPUTurn, game.PlayerTurn, game.GameOver, game.AwaitingStart,
	}
	test.DemandEquality(t, len(states), len(expected))
	for i := range states {
		test.ExpectEquality(t, states[i], expected[i], i)
	}
	test.ExpectEquality(t, last.HighScore, 1)
	test.ExpectEquality(t, last.Score, 1)
}

func TestRun(t *testing.T) {
	// Run() returns nil if stopped before it starts
	stop := make(chan bool)
	close(stop)
	e := game.NewEngine(&scriptedBoard{}, &presenter{}, nil)
	test.ExpectSuccess(t, e.Run(stop))

	// errors from the board stop the engine
	b := &scriptedBoard{presses: rounds(symbols(1, 1, 1), 2)}
	e = game.NewEngine(b, &presenter{}, &scriptedRandom{values: []int{1}})
	err := e.Run(make(chan bool))
	test.ExpectSuccess(t, errors.Is(err, errScriptEnd))
	test.ExpectEquality(t, e.Score(), 2)
	test.ExpectEquality(t, e.State(), game.PlayerTurn)
}

func TestSeededRandom(t *testing.T) {
	a := game.NewRandom(1234)
	b := game.NewRandom(1234)
	for i := range 100 {
		v := a.IntN(pads.Count)
		test.DemandEquality(t, v, b.IntN(pads.Count), i)
		test.DemandSuccess(t, v >= 0 && v < pads.Count, i)
	}
}
