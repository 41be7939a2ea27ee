package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/jetsetilly/simon/config"
	"github.com/jetsetilly/simon/firmware"
	"github.com/jetsetilly/simon/gui"
	"github.com/jetsetilly/simon/gui/ebiten"
	"github.com/jetsetilly/simon/gui/terminal"
	"github.com/jetsetilly/simon/logger"
	"github.com/jetsetilly/simon/statsview"
)

const profileFile = "cpu.profile"

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Printf("*** %s\n", err)
		os.Exit(10)
	}

	if cfg.Log {
		logger.SetEcho(os.Stderr, true)
	}

	if cfg.Statsview {
		statsview.Launch(os.Stdout)
	}

	if cfg.Profile {
		f, err := os.Create(profileFile)
		if err != nil {
			fmt.Printf("*** %s\n", err)
			os.Exit(10)
		}
		defer f.Close()
		err = pprof.StartCPUProfile(f)
		if err != nil {
			fmt.Printf("*** %s\n", err)
			os.Exit(10)
		}
		defer pprof.StopCPUProfile()
	}

	var endGui chan bool
	var endFirmware chan bool
	var resultGui chan error
	var resultFirmware chan error

	// buffered channels. this means we don't have to worry about the gui closing
	// before the firmware and vice versa
	endGui = make(chan bool, 1)
	endFirmware = make(chan bool, 1)

	// similarly, the result channels are buffered because we don't know the
	// order in which the gui and firmware will end
	resultGui = make(chan error, 1)
	resultFirmware = make(chan error, 1)

	g := gui.NewGUI()

	// the terminal front-end shows console messages as a caption
	var output io.Writer = os.Stdout
	if cfg.Frontend == config.FrontendTerminal && !cfg.Diag {
		output = io.Discard
	}

	go func() {
		resultFirmware <- firmware.Launch(endFirmware, g, cfg, output)
		endGui <- true
	}()

	// the window must be run from the main goroutine. the diagnostics monitor
	// owns the terminal so there is no terminal front-end in that case
	switch {
	case cfg.Frontend == config.FrontendEbiten:
		resultGui <- ebiten.Launch(endGui, g)
	case cfg.Diag:
		logger.Log(logger.Allow, "gui", "terminal front-end not available with the diagnostics monitor")
		<-endGui
		resultGui <- nil
	default:
		resultGui <- terminal.Launch(endGui, g)
	}
	endFirmware <- true

	if err := <-resultGui; err != nil {
		fmt.Printf("*** %s\n", err)
	}
	if err := <-resultFirmware; err != nil {
		fmt.Printf("*** %s\n", err)
	}
}
