// Package firmware is the program running on the board. It connects the board
// to either the game engine or, for diagnostics, the self-test monitor.
package firmware

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jetsetilly/simon/config"
	"github.com/jetsetilly/simon/diagnostics"
	"github.com/jetsetilly/simon/game"
	"github.com/jetsetilly/simon/gui"
	"github.com/jetsetilly/simon/hardware"
	"github.com/jetsetilly/simon/hardware/buzzer"
	"github.com/jetsetilly/simon/logger"
	"github.com/jetsetilly/simon/monitor"
	"github.com/jetsetilly/simon/presentation"
	"github.com/jetsetilly/simon/wavwriter"
)

// Launch the firmware. The function returns when the end channel receives a
// value, when the program is interrupted or when the board fails
func Launch(end chan bool, g *gui.GUI, cfg config.Config, output io.Writer) error {
	if !cfg.Audio {
		g.AudioSetup = nil
	}

	board := hardware.Create(g, cfg.Tick)

	if cfg.Wav != "" {
		aw, err := wavwriter.New(cfg.Wav, buzzer.SampleFreq)
		if err != nil {
			return fmt.Errorf("firmware: %w", err)
		}
		board.Buzzer.SetRecorder(aw)
		defer func() {
			err := aw.Close()
			if err != nil {
				logger.Log(logger.Allow, "firmware", err)
			}
		}()
	}

	var rnd game.Random
	if cfg.Seed != 0 {
		rnd = game.NewRandom(cfg.Seed)
	}

	show := presentation.NewPresenter(board)

	// the front-end waits for the first state change before using the GUI
	// callbacks, so they must be set before power on
	if cfg.Diag {
		board.PowerOn()
		defer board.PowerOff()
		return monitor.Launch(end, diagnostics.NewDiagnostics(board, show, rnd))
	}

	con := NewConsole(output)
	g.Caption = con.Caption

	eng := game.NewEngine(board, show, rnd)
	eng.AddObserver(con.Observe)

	board.PowerOn()
	defer board.PowerOff()

	return run(end, board, eng, con)
}

// the part of the board used by run()
type powerSwitch interface {
	PowerOff()
}

func run(end chan bool, board powerSwitch, eng *game.Engine, con *Console) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	stop := make(chan bool)
	result := make(chan error, 1)

	con.Ready()
	go func() {
		result <- eng.Run(stop)
	}()

	select {
	case err := <-result:
		if err != nil {
			con.Error(err)

			// the board is paused with the fault lamp frozen on until the
			// session is ended
			board.PowerOff()
			select {
			case <-end:
			case <-sig:
			}

			return fmt.Errorf("firmware: %w", err)
		}
	case <-end:
		close(stop)
	case <-sig:
		close(stop)
	}

	// the engine may still be running so the high score is taken from the
	// console's copy
	logger.Logf(logger.Allow, "firmware", "final high score %d", con.HighScore())

	return nil
}
