package firmware

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jetsetilly/simon/game"
)

// Console prints player messages as the game engine changes state. It is also
// the source of the caption shown by a front-end
type Console struct {
	out    io.Writer
	styles styles

	// the caption is read by the front-end goroutine
	crit      sync.Mutex
	caption   []string
	highScore int

	prev game.State
}

// NewConsole is the preferred method of initialisation for the Console type
func NewConsole(out io.Writer) *Console {
	return &Console{
		out:    out,
		styles: newStyles(),
		prev:   game.AwaitingStart,
	}
}

func (con *Console) print(style func(...string) string, lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(con.out, style(l))
	}

	con.crit.Lock()
	defer con.crit.Unlock()
	con.caption = lines
}

// Caption returns the most recent message
func (con *Console) Caption() string {
	con.crit.Lock()
	defer con.crit.Unlock()
	return strings.Join(con.caption, "\n")
}

// HighScore returns the high score in the most recent snapshot
func (con *Console) HighScore() int {
	con.crit.Lock()
	defer con.crit.Unlock()
	return con.highScore
}

// Ready prints the message shown before the first game
func (con *Console) Ready() {
	con.print(con.styles.prompt.Render, "Press any button to start")
}

// Observe implements the game.Observer type
func (con *Console) Observe(s game.Snapshot) {
	defer func() {
		con.prev = s.State
	}()

	con.crit.Lock()
	con.highScore = s.HighScore
	con.crit.Unlock()

	switch s.State {
	case game.GameOver:
		if s.Won {
			con.print(con.styles.win.Render,
				fmt.Sprintf("The sequence is complete after %d rounds", s.Score),
			)
			return
		}
		con.print(con.styles.wrong.Render,
			fmt.Sprintf("Player pressed: %s", s.Pressed),
			fmt.Sprintf("Correct answer: %s", s.Expected),
		)

	case game.AwaitingStart:
		if con.prev != game.GameOver {
			return
		}
		con.print(con.styles.score.Render,
			fmt.Sprintf("Your score is: %d", s.Score),
			fmt.Sprintf("The all-time high score is: %d", s.HighScore),
		)
	}
}

// Error prints an error
func (con *Console) Error(err error) {
	con.print(con.styles.err.Render, err.Error())
}
