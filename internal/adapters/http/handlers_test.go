package httpadapter

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"svw.info/advent/internal/days"
	"svw.info/advent/internal/days/day01"
	"svw.info/advent/internal/days/day02"
	"svw.info/advent/internal/days/day09"
	"svw.info/advent/internal/infrastructure/storage"
	"svw.info/advent/internal/usecase"
	"svw.info/advent/internal/validator"
	"svw.info/advent/web"
)

type panicky struct{}

func (panicky) Part1(context.Context, string) (string, error) { panic("boom") }
func (panicky) Part2(context.Context, string) (string, error) { panic("boom") }

type sleepy struct{}

func (sleepy) Part1(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}
func (s sleepy) Part2(ctx context.Context, in string) (string, error) { return s.Part1(ctx, in) }

func newTestServer(t *testing.T) (*httptest.Server, *observer.ObservedLogs) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day01.txt"), []byte("a1b2\n"), 0o644))

	reg := days.NewRegistry()
	reg.Register(1, day01.Title, day01.Example, day01.Solver{})
	reg.Register(2, day02.Title, day02.Example, day02.Solver{})
	reg.Register(9, day09.Title, day09.Example, day09.Solver{})
	reg.Register(22, "Panicky", "", panicky{})
	reg.Register(23, "Sleepy", "", sleepy{})

	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)
	uc := usecase.NewService(reg, storage.NewFS(dir), validator.New(64), log)
	h := New(uc, web.Templates(), web.StaticFS(), log)
	h.Describe = web.Describe
	h.SolveTimeout = 20 * time.Millisecond
	h.MaxInputBytes = 64

	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv, logs
}

func get(t *testing.T, srv *httptest.Server, path string) (int, string) {
	t.Helper()
	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.String()
}

func solve(t *testing.T, srv *httptest.Server, path, input string) (int, string) {
	t.Helper()
	resp, err := srv.Client().PostForm(srv.URL+path, url.Values{"input": {input}})
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.String()
}

func TestIndex(t *testing.T) {
	srv, _ := newTestServer(t)
	code, body := get(t, srv, "/")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, day01.Title)
	assert.Contains(t, body, `href="/day/9"`)
	assert.Equal(t, 1, strings.Count(body, `class="badge"`))
}

func TestDayPage(t *testing.T) {
	srv, _ := newTestServer(t)
	code, body := get(t, srv, "/day/1")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "a1b2")
	assert.Contains(t, body, `formaction="/day/1/part2"`)
	assert.Contains(t, body, `class="description"`)
	assert.Contains(t, body, `enctype="multipart/form-data"`)
	assert.Contains(t, body, `type="file" id="file" name="file"`)

	for _, path := range []string{"/day/12", "/day/0", "/day/99", "/day/x", "/nope"} {
		code, _ := get(t, srv, path)
		assert.Equal(t, http.StatusNotFound, code, path)
	}
}

func TestRawText(t *testing.T) {
	srv, _ := newTestServer(t)

	code, body := get(t, srv, "/day/1/input")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "a1b2\n", body)

	code, _ = get(t, srv, "/day/2/input")
	assert.Equal(t, http.StatusNotFound, code)

	code, body = get(t, srv, "/day/9/example")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, day09.Example, body)

	code, body = get(t, srv, "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)

	code, body = get(t, srv, "/static/app.js")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "load-example")
}

func TestSolveStatuses(t *testing.T) {
	srv, _ := newTestServer(t)
	for _, tc := range []struct {
		name, path, input string
		code              int
		want              string
	}{
		{"part1", "/day/9/part1", day09.Example, http.StatusOK, "114"},
		{"part2", "/day/9/part2", day09.Example, http.StatusOK, ">2<"},
		{"crlf", "/day/1/part1", "a1b2\r\nc3d\r\n", http.StatusOK, "45"},
		{"empty", "/day/9/part1", " \n", http.StatusBadRequest, "empty input"},
		{"too large", "/day/9/part1", strings.Repeat("1 ", 40), http.StatusRequestEntityTooLarge, "too large"},
		{"malformed", "/day/2/part1", "Game x: 1 red", http.StatusUnprocessableEntity, "malformed"},
		{"panic", "/day/22/part1", "x", http.StatusInternalServerError, "internal error"},
		{"deadline", "/day/23/part2", "x", http.StatusServiceUnavailable, "out of time"},
		{"unknown day", "/day/12/part1", "x", http.StatusNotFound, ""},
		{"unknown part", "/day/9/part3", "x", http.StatusNotFound, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			code, body := solve(t, srv, tc.path, tc.input)
			assert.Equal(t, tc.code, code)
			assert.Contains(t, body, tc.want)
		})
	}
}

// The day form posts both fields; an empty text box falls back to the file.
func TestSolveUpload(t *testing.T) {
	srv, _ := newTestServer(t)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("input", ""))
	fw, err := mw.CreateFormFile("file", "day09.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte(day09.Example))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := srv.Client().Post(srv.URL+"/day/9/part1", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, out.String(), "114")
}

func TestSolveMultipartPrefersText(t *testing.T) {
	srv, _ := newTestServer(t)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("input", "1 2 3\n"))
	fw, err := mw.CreateFormFile("file", "")
	require.NoError(t, err)
	_, err = fw.Write(nil)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := srv.Client().Post(srv.URL+"/day/9/part1", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, out.String(), `<code class="answer">4</code>`)
}

func TestSolveMultipartEmpty(t *testing.T) {
	srv, _ := newTestServer(t)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("input", ""))
	require.NoError(t, mw.Close())

	resp, err := srv.Client().Post(srv.URL+"/day/9/part1", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRequestIDAndLogging(t *testing.T) {
	srv, logs := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(requestIDHeader, "abc-123")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get(requestIDHeader))

	resp, err = srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Len(t, resp.Header.Get(requestIDHeader), 36)

	entries := logs.FilterMessage("http").All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/healthz", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.Equal(t, "abc-123", fields["request_id"])
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(context.DeadlineExceeded))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}
