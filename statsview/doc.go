// Package statsview is an optional package that is only built when the
// statsview build tag is present. It runs a local HTTP server offering
// runtime statistics, provided by "github.com/go-echarts/statsview".
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12600/debug/pprof/
package statsview
