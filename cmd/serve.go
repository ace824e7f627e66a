/*
Copyright © 2026 NAME HERE
*/
package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/masnyjimmy/specdoc/src/compilation"
	"github.com/masnyjimmy/specdoc/src/docs"
	"github.com/masnyjimmy/specdoc/src/render"
	"github.com/masnyjimmy/specdoc/src/server"
	"github.com/spf13/cobra"
)

// ==================== Cobra Command ====================

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the documentation generator over HTTP",
	Long: `Serve starts an HTTP server with:

  POST /api/generate   document in the request body, HTML page in the response
  POST /api/upload     multipart upload of a .json, .yaml or .yml file (field "spec")
  GET  /health         liveness probe
  GET  /               upload form

With --watch, the page generated from that file is served at /preview and
reloads in the browser whenever the file changes.`,
	Run: func(cmd *cobra.Command, _ []string) {
		port, _ := cmd.Flags().GetInt("port")
		maxUpload, _ := cmd.Flags().GetInt64("max-upload")
		watch, _ := cmd.Flags().GetString("watch")

		Serve(port, maxUpload, watch)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", defaultPort(), "Port to listen on (defaults to $PORT or 3000)")
	serveCmd.Flags().Int64("max-upload", server.DEFAULT_MAX_UPLOAD, "Largest accepted document in bytes")
	serveCmd.Flags().StringP("watch", "w", "", "Document to preview at /preview, re-rendered on every change")
	serveCmd.MarkFlagFilename("watch", "yaml", "yml", "json")
}

func defaultPort() int {
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil && port > 0 {
		return port
	}
	return 3000
}

// renderPreview turns filename into a preview page that listens for reloads.
func renderPreview(filename string, preview *server.Preview) (string, error) {
	bytes, err := os.ReadFile(filename)

	if err != nil {
		return "", fmt.Errorf("Unable to read file: %w", err)
	}

	document, err := compilation.NormalizeBytes(bytes, docs.FormatFromPath(filename))

	if err != nil {
		return "", err
	}

	return render.Render(document, render.Options{LiveReload: preview.EventsUrl()})
}

func watchPreview(filename string, preview *server.Preview) {
	page, err := renderPreview(filename, preview)

	if err != nil {
		log.Fatal(err)
	}

	preview.SetPage(page)

	watcher, err := server.WatchFile(filename, server.DEFAULT_DEBOUNCE_TIME)

	if err != nil {
		log.Printf("Unable to watch for file updates: %v", err)
		return
	}

	watchHandler := func() {
		for err := range watcher.Update {
			if err != nil {
				log.Print(err)
				continue
			}

			page, err := renderPreview(filename, preview)
			if err != nil {
				log.Printf("Unable to update preview: %v", err)
				continue
			}

			log.Printf("Reloading preview of %v", filename)
			preview.SetPage(page)
		}
	}
	go watchHandler()
}

func Serve(port int, maxUpload int64, watch string) {
	opt := server.DefaultOptions()
	opt.MaxUpload = maxUpload

	if watch != "" {
		opt.Preview = server.NewPreview(server.DefaultPreviewUrl)
		watchPreview(watch, opt.Preview)
		log.Printf("Previewing %v at http://localhost:%v%v", watch, port, server.DefaultPreviewUrl)
	}

	handler := server.New(opt).Handler()

	log.Printf("Started server at http://localhost:%v", port)
	log.Fatal(http.ListenAndServe(":"+strconv.Itoa(port), handler))
}
