package pprofserver

import (
	"log/slog"
	"net/http"
	"net/http/pprof"
	"os"
)

// Handle registers the pprof handlers on the given mux.
func Handle(mux *http.ServeMux) {
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
}

func newServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	Handle(mux)
	return mux
}

func listenAndServe(addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: newServeMux(),
	}
	return server.ListenAndServe()
}

// Launch a standard pprof server at the given loopback address, e.g. "localhost:6060".
func Launch(addr string, logger *slog.Logger) {
	go func() {
		logger.Info("starting pprof server", "addr", addr)
		err := listenAndServe(addr)
		logger.Error(err.Error())
		os.Exit(0)
	}()
}
