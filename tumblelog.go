package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/radovskyb/watcher"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Could not load .env", logError(err))
	}

	var c cli
	kong.Parse(&c, kongOptions()...)
	slog.SetDefault(newLogger(os.Stderr, c.Quiet, c.Verbose))

	if err := renderSite(&c); err != nil {
		slog.Error("Build failed", logError(err))
		os.Exit(1)
	}

	if c.Watch && c.Serve != "" {
		// Run watcher in background while serving
		go rerenderOnChange(&c)
	}

	if c.Serve != "" {
		serveSite(c.Serve, c.OutputDir)
	} else if c.Watch {
		rerenderOnChange(&c)
	}
}

// renderSite resolves the configuration again on every call so a changed
// template is picked up in watch mode.
func renderSite(c *cli) error {
	conf, err := c.siteConf()
	if err != nil {
		return err
	}

	site, err := ReadSite(conf)
	if err != nil {
		return err
	}

	slog.Debug("Writing site", logPath(conf.OutDir))
	if err = site.RenderAll(); err != nil {
		return err
	}
	if conf.StaticFilesDir != "" {
		return site.CopyStaticFiles()
	}
	return nil
}

func newRouter(dir string) *mux.Router {
	r := mux.NewRouter()
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(dir)))
	return r
}

func serveSite(addr, dir string) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(dir),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("Serving", logPath(dir), slog.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("Server stopped", logError(err))
		os.Exit(1)
	}
}

func rerenderOnChange(c *cli) {
	w := watcher.New()
	w.SetMaxEvents(1)
	w.FilterOps(watcher.Write, watcher.Create, watcher.Rename, watcher.Move)

	go func() {
		for {
			select {
			case <-w.Event:
				if err := renderSite(c); err != nil {
					slog.Error("Rebuild failed", logError(err))
				}
			case err := <-w.Error:
				slog.Error("Watcher failed", logError(err))
			case <-w.Closed:
				return
			}
		}
	}()

	for _, path := range []string{c.Filename, c.TemplateFilename} {
		if err := w.Add(path); err != nil {
			slog.Error("Cannot watch", logPath(path), logError(err))
			os.Exit(1)
		}
	}

	slog.Info("Watching for changes", slog.String("entries", c.Filename), slog.String("template", c.TemplateFilename))
	if err := w.Start(time.Millisecond * 200); err != nil {
		slog.Error("Watcher stopped", logError(err))
		os.Exit(1)
	}
}
