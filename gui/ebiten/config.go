package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/simon/resources"
)

const windowFile = "window"

// parseGeometry parses the contents of the window file
func parseGeometry(s string) (windowGeometry, error) {
	var geom windowGeometry

	_, err := fmt.Sscanf(s, "%d %d %d %d", &geom.x, &geom.y, &geom.w, &geom.h)
	if err != nil {
		return windowGeometry{}, fmt.Errorf("window geometry: %w", err)
	}

	if !geom.valid() {
		return windowGeometry{}, fmt.Errorf("window geometry: invalid values (%s)", s)
	}

	return geom, nil
}

func onWindowOpen() (windowGeometry, error) {
	if !persistGeometry {
		return windowGeometry{}, nil
	}

	s, err := resources.Read(windowFile)
	if err != nil {
		return windowGeometry{}, err
	}
	if s == "" {
		return windowGeometry{}, nil
	}

	geom, err := parseGeometry(s)
	if err != nil {
		return windowGeometry{}, err
	}

	ebiten.SetWindowPosition(geom.x, geom.y)
	ebiten.SetWindowSize(geom.w, geom.h)

	return geom, nil
}

func onWindowClose(geom windowGeometry) error {
	if !persistGeometry || !geom.valid() {
		return nil
	}
	s := fmt.Sprintf("%d %d %d %d", geom.x, geom.y, geom.w, geom.h)
	return resources.Write(windowFile, s)
}
