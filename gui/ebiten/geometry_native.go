//go:build !wasm

package ebiten

// the window position and size are restored between sessions
const persistGeometry = true
