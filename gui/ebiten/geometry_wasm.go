//go:build wasm

package ebiten

// the browser decides the size of the canvas so there is nothing to restore
const persistGeometry = false
