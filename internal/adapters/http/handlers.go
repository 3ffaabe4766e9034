package httpadapter

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/usecase"
)

type Handler struct {
	UC        *usecase.Service
	Templates *template.Template
	Static    http.FileSystem
	Log       *zap.Logger

	// Describe renders the puzzle description of a day; nil or an empty
	// result hides the section.
	Describe func(day int) template.HTML

	SolveTimeout  time.Duration
	MaxInputBytes int64
}

func New(uc *usecase.Service, tmpl *template.Template, static http.FileSystem, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{UC: uc, Templates: tmpl, Static: static, Log: log}
}

// Routes builds the router for the whole site.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(h.Log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	if h.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(h.Static)))
	}
	r.Get("/", h.handleIndex)
	r.Route("/day/{day}", func(r chi.Router) {
		r.Get("/", h.handleDay)
		r.Get("/input", h.handleInput)
		r.Get("/example", h.handleExample)
		r.Post("/{part}", h.handleSolve)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.renderError(w, r, http.StatusNotFound, "page not found")
	})
	return r
}

// ---- Pages ----

type indexPage struct {
	Days []domain.DayInfo
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	days, err := h.UC.Days(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, http.StatusOK, "index.tmpl", indexPage{Days: days})
}

type dayPage struct {
	Day         domain.DayInfo
	Input       string
	Description template.HTML
	Parts       []domain.Part
}

func (h *Handler) handleDay(w http.ResponseWriter, r *http.Request) {
	info, ok := h.day(w, r)
	if !ok {
		return
	}
	page := dayPage{Day: info, Parts: []domain.Part{domain.Part1, domain.Part2}}
	if info.HasInput {
		in, err := h.UC.Input(r.Context(), info.Number)
		switch {
		case err == nil:
			page.Input = in
		case !errors.Is(err, domain.ErrInputNotFound):
			h.Log.Warn("load input", zap.Int("day", info.Number), zap.Error(err))
		}
	}
	if h.Describe != nil {
		page.Description = h.Describe(info.Number)
	}
	h.render(w, http.StatusOK, "day.tmpl", page)
}

// ---- Raw text ----

func (h *Handler) handleInput(w http.ResponseWriter, r *http.Request) {
	info, ok := h.day(w, r)
	if !ok {
		return
	}
	in, err := h.UC.Input(r.Context(), info.Number)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeText(w, in)
}

func (h *Handler) handleExample(w http.ResponseWriter, r *http.Request) {
	info, ok := h.day(w, r)
	if !ok {
		return
	}
	ex, err := h.UC.Example(info.Number)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeText(w, ex)
}

func writeText(w http.ResponseWriter, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, s)
}

// ---- Solve ----

type resultFragment struct {
	Day       int
	Part      domain.Part
	Answer    domain.Answer
	Duration  time.Duration
	Error     string
	RequestID string
}

// handleSolve answers a form POST with an HTML fragment holding either the
// answer or the error. The input comes from the "input" field or, for
// multipart forms, from an uploaded "file".
func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	info, ok := h.day(w, r)
	if !ok {
		return
	}
	part, err := domain.ParsePart(chi.URLParam(r, "part"))
	if err != nil {
		h.renderError(w, r, http.StatusNotFound, "page not found")
		return
	}
	frag := resultFragment{Day: info.Number, Part: part, RequestID: middleware.GetReqID(r.Context())}

	input, err := h.readInput(w, r)
	if err != nil {
		frag.Error = err.Error()
		h.render(w, statusFor(err), "result.tmpl", frag)
		return
	}

	ctx := r.Context()
	if h.SolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.SolveTimeout)
		defer cancel()
	}
	res, _, err := h.UC.Solve(ctx, info.Number, part, input)
	if err != nil {
		status := statusFor(err)
		frag.Error = publicMessage(status, err)
		h.render(w, status, "result.tmpl", frag)
		return
	}
	frag.Answer = res.Answer
	frag.Duration = res.Duration
	h.render(w, http.StatusOK, "result.tmpl", frag)
}

func (h *Handler) readInput(w http.ResponseWriter, r *http.Request) (string, error) {
	if h.MaxInputBytes > 0 {
		// Leave room for the form encoding around the input itself.
		r.Body = http.MaxBytesReader(w, r.Body, 3*h.MaxInputBytes+4096)
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 10); err != nil {
			return "", formError(err)
		}
	} else if err := r.ParseForm(); err != nil {
		return "", formError(err)
	}
	if in := r.PostFormValue("input"); strings.TrimSpace(in) != "" || r.MultipartForm == nil {
		return in, nil
	}
	f, _, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return "", domain.ErrEmptyInput
	}
	if err != nil {
		return "", formError(err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return "", formError(err)
	}
	return string(b), nil
}

var errBadForm = errors.New("bad form")

func formError(err error) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return domain.ErrInputTooLarge
	}
	return errors.Join(errBadForm, err)
}

// ---- Helpers ----

// day resolves the {day} URL parameter to a registered day, answering 404
// itself when it does not.
func (h *Handler) day(w http.ResponseWriter, r *http.Request) (domain.DayInfo, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil || !domain.ValidDay(n) {
		h.renderError(w, r, http.StatusNotFound, "no such day")
		return domain.DayInfo{}, false
	}
	info, err := h.UC.Day(r.Context(), n)
	if err != nil {
		h.fail(w, r, err)
		return domain.DayInfo{}, false
	}
	return info, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownDay),
		errors.Is(err, domain.ErrUnknownPart),
		errors.Is(err, domain.ErrInputNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyInput), errors.Is(err, errBadForm):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrMalformed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func publicMessage(status int, err error) string {
	switch status {
	case http.StatusInternalServerError:
		return "internal error"
	case http.StatusServiceUnavailable:
		return "solver ran out of time"
	default:
		return err.Error()
	}
}

type errorPage struct {
	Status    int
	Message   string
	RequestID string
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.Log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	}
	h.renderError(w, r, status, publicMessage(status, err))
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.render(w, status, "error.tmpl", errorPage{
		Status:    status,
		Message:   msg,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// render executes the named template into a buffer so a template failure
// still yields a clean 500.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.Templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.Log.Error("render", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
