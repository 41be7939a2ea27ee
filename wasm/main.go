package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/simon/config"
	"github.com/jetsetilly/simon/firmware"
	"github.com/jetsetilly/simon/gui"
	"github.com/jetsetilly/simon/gui/ebiten"
	"github.com/jetsetilly/simon/logger"
)

// there is a problem with ebiten audio in the context of wasm so we launch
// without audio for now
const useAudio = false

func main() {
	// logger messages will be viewable in javascript log for WASM build
	logger.SetEcho(os.Stderr, false)

	cfg := config.Default()
	cfg.Audio = useAudio

	g := gui.NewGUI()

	endGui := make(chan bool, 1)
	endFirmware := make(chan bool, 1)

	go func() {
		err := firmware.Launch(endFirmware, g, cfg, os.Stdout)
		if err != nil {
			fmt.Printf("*** %s\n", err)
		}
		endGui <- true
	}()

	err := ebiten.Launch(endGui, g)
	if err != nil {
		fmt.Printf("*** %s\n", err)
	}
	endFirmware <- true
}
