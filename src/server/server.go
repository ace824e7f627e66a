package server

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/masnyjimmy/specdoc/src/compilation"
	"github.com/masnyjimmy/specdoc/src/docs"
	"github.com/masnyjimmy/specdoc/src/render"
	"github.com/rs/cors"
)

//go:embed assets/index.html
var landingPage string

var errorLogger *log.Logger = log.New(os.Stderr, "Error ", log.Ltime)

const DEFAULT_MAX_UPLOAD int64 = 10 << 20

// multipartOverhead is allowed on top of MaxUpload for boundaries and part
// headers of an upload request.
const multipartOverhead int64 = 1 << 20

var uploadExtensions = []string{".json", ".yaml", ".yml"}

type Options struct {
	// MaxUpload bounds both a posted document and an uploaded file.
	MaxUpload int64
	// AllowedOrigins for CORS, "*" allows any.
	AllowedOrigins []string
	Render         render.Options
	// Preview, when set, is served alongside the API.
	Preview *Preview
}

func DefaultOptions() Options {
	return Options{
		MaxUpload:      DEFAULT_MAX_UPLOAD,
		AllowedOrigins: []string{"*"},
	}
}

type Server struct {
	options Options
	now     func() time.Time
}

func New(opt Options) *Server {
	if opt.MaxUpload <= 0 {
		opt.MaxUpload = DEFAULT_MAX_UPLOAD
	}

	return &Server{
		options: opt,
		now:     time.Now,
	}
}

// Handler wires the routes together with CORS and panic recovery.
func (s *Server) Handler() http.Handler {
	var h http.Handler = http.HandlerFunc(s.route)

	if s.options.Preview != nil {
		h = s.options.Preview.Handler(h)
	}

	h = cors.New(cors.Options{
		AllowedOrigins:       s.options.AllowedOrigins,
		AllowedMethods:       []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"Content-Type"},
		OptionsSuccessStatus: http.StatusOK,
	}).Handler(h)

	return Recovery(h)
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/generate":
		s.post(w, r, s.handleGenerate)
	case "/api/upload":
		s.post(w, r, s.handleUpload)
	case "/health":
		s.handleHealth(w, r)
	case "/":
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "Method not allowed"})
			return
		}
		writeHTML(w, landingPage)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) post(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	switch r.Method {
	case http.MethodPost:
		next(w, r)
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "Method not allowed"})
	}
}

// generate runs the whole pipeline on one document.
func (s *Server) generate(data []byte, format docs.Format) (string, error) {
	doc, err := compilation.NormalizeBytes(data, format)
	if err != nil {
		return "", err
	}

	return render.Render(doc, s.options.Render)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.options.MaxUpload))
	if err != nil {
		errorLogger.Printf("Error generating documentation: %v", err)
		writeFailure(w, "Failed to generate documentation", err)
		return
	}

	page, err := s.generate(data, docs.FormatAuto)
	if err != nil {
		errorLogger.Printf("Error generating documentation: %v", err)
		writeFailure(w, "Failed to generate documentation", err)
		return
	}

	writeHTML(w, page)
}

func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (name string, data []byte, err error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.options.MaxUpload+multipartOverhead)

	file, header, err := r.FormFile("spec")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil, ErrNoFile
		}
		return "", nil, err
	}
	defer file.Close()

	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isUploadExtension(ext) {
		return header.Filename, nil, &UnsupportedFileError{Name: header.Filename, Ext: ext}
	}

	if header.Size > s.options.MaxUpload {
		return header.Filename, nil, fmt.Errorf("%w: %v is %d bytes, limit is %d", ErrFileTooLarge, header.Filename, header.Size, s.options.MaxUpload)
	}

	data, err = io.ReadAll(file)
	if err != nil {
		return header.Filename, nil, err
	}

	return header.Filename, data, nil
}

func isUploadExtension(ext string) bool {
	for _, allowed := range uploadExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	name, data, err := s.readUpload(w, r)

	if errors.Is(err, ErrNoFile) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: ErrNoFile.Error()})
		return
	}

	if err != nil {
		errorLogger.Printf("Error processing file: %v", err)
		writeFailure(w, "Failed to process file", err)
		return
	}

	log.Printf("Generating documentation for %v (%d bytes)", name, len(data))

	page, err := s.generate(data, docs.FormatFromPath(name))
	if err != nil {
		errorLogger.Printf("Error processing file: %v", err)
		writeFailure(w, "Failed to process file", err)
		return
	}

	writeHTML(w, page)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "Method not allowed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": s.now().UTC().Format(time.RFC3339),
	})
}
