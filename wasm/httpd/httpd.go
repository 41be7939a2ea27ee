// Test server for the WASM build. Serves the contents of the www directory.
package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/jetsetilly/simon/logger"
)

const address = "localhost:7700"

type handler struct {
	fileHandler http.Handler
}

func Handler() *handler {
	hnd := handler{
		fileHandler: http.FileServer(http.Dir("www")),
	}
	return &hnd
}

func (hnd *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger.Logf(logger.Allow, "httpd", "%s %s", r.Method, r.RequestURI)
	if strings.HasSuffix(r.RequestURI, ".wasm") {
		w.Header().Set("Content-Type", "application/wasm")
	}
	hnd.fileHandler.ServeHTTP(w, r)
}

func main() {
	logger.SetEcho(os.Stdout, false)
	logger.Logf(logger.Allow, "httpd", "test server listening on %s", address)
	err := http.ListenAndServe(address, Handler())
	if err != nil {
		logger.Log(logger.Allow, "httpd", err.Error())
		os.Exit(10)
	}
}
