package toolsite

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/yalue/merged_fs"
)

// Serve runs a local preview of the built site, serving the work
// directory with the packaged static assets as a fallback. It blocks
// until interrupted, then shuts down gracefully.
func Serve(addr, dir string) error {
	static, err := StaticFiles()
	if err != nil {
		return err
	}
	siteFS := merged_fs.NewMergedFS(os.DirFS(dir), static)

	router := mux.NewRouter()
	router.Use(handlers.CompressHandler)
	router.Use(NewLoggingHandler(os.Stdout))
	router.PathPrefix("/").Handler(http.FileServer(http.FS(siteFS)))

	server := http.Server{
		Addr:    addr,
		Handler: router,
	}
	go func() {
		_ = server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, os.Kill)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

func NewLoggingHandler(dst io.Writer) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return handlers.LoggingHandler(dst, h)
	}
}
