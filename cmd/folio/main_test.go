package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/cliconfig"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/folio"
)

type apiStub struct {
	mu       sync.Mutex
	routes   map[string]string
	requests []string
}

func newAPIStub(t *testing.T, routes map[string]string) string {
	t.Helper()
	stub := &apiStub{routes: routes}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		stub.mu.Lock()
		body, ok := stub.routes[key]
		stub.requests = append(stub.requests, key)
		stub.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"Not found"}`)
			return
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

// run executes one folio invocation against apiURL with sessions kept in dir.
func run(t *testing.T, apiURL, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	a := newApp(cliconfig.DefaultConfig())
	a.log = zerolog.Nop()
	var out bytes.Buffer
	a.out = &out

	root := newRootCmd(a)
	root.SetArgs(append([]string{"--api-url", apiURL, "--session-dir", dir}, args...))
	root.SetIn(strings.NewReader(""))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.ExecuteContext(context.Background())
	require.NoError(t, a.close())
	return out.String(), err
}

const skillsBody = `[
	{"_id":"s1","skillName":"Go","skillCategory":"Backend","tags":["cli","api"],"createdAt":"2024-01-01T00:00:00Z"},
	{"_id":"s2","skillName":"React","skillCategory":"Frontend","tags":"[\"ui\"]","createdAt":"2024-03-01T00:00:00Z"}
]`

const loginBody = `{"token":"tok-1","user":{"_id":"u1","name":"Ada","email":"ada@example.com"}}`

func TestSkillsList(t *testing.T) {
	url := newAPIStub(t, map[string]string{"GET /api/skills": skillsBody})
	dir := t.TempDir()

	t.Run("json newest first", func(t *testing.T) {
		out, err := run(t, url, dir, "skills", "list", "-o", "json")
		require.NoError(t, err)

		var got []struct {
			ID   string   `json:"_id"`
			Tags []string `json:"tags"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "s2", got[0].ID)
		assert.Equal(t, []string{"ui"}, got[0].Tags)
	})

	t.Run("unknown category lists the known ones", func(t *testing.T) {
		out, err := run(t, url, dir, "skills", "list", "--category", "mobile")
		require.NoError(t, err)
		assert.Contains(t, out, `No skills in category "mobile"`)
		assert.Contains(t, out, "backend, frontend")
	})

	t.Run("category filter", func(t *testing.T) {
		out, err := run(t, url, dir, "skills", "list", "--category", "backend")
		require.NoError(t, err)
		assert.Contains(t, out, "Go")
		assert.NotContains(t, out, "React")
	})
}

func TestLoginPersistsSession(t *testing.T) {
	url := newAPIStub(t, map[string]string{"POST /api/auth/login": loginBody})
	dir := t.TempDir()

	out, err := run(t, url, dir, "login", "--email", "ada@example.com", "--password", "secret", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "Authenticated"`)
	assert.NotContains(t, out, "tok-1")
	assert.FileExists(t, filepath.Join(dir, "session.json"))

	out, err = run(t, url, dir, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "ada@example.com")
}

func TestLoginRejectsInvalidEmail(t *testing.T) {
	url := newAPIStub(t, nil)
	_, err := run(t, url, t.TempDir(), "login", "--email", "not-an-email", "--password", "secret")
	require.Error(t, err)
}

func TestLogoutWhenOffline(t *testing.T) {
	url := newAPIStub(t, map[string]string{"POST /api/auth/login": loginBody})
	dir := t.TempDir()
	_, err := run(t, url, dir, "login", "--email", "ada@example.com", "--password", "secret")
	require.NoError(t, err)

	// Logout is not routed: the server call fails but the local session goes.
	out, err := run(t, url, dir, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out.")

	out, err = run(t, url, dir, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in.")
}

func TestMutationsRequireLogin(t *testing.T) {
	url := newAPIStub(t, nil)
	dir := t.TempDir()
	draft := filepath.Join(t.TempDir(), "skill.toml")
	require.NoError(t, os.WriteFile(draft, []byte("skillName = 'Go'\nskillCategory = 'backend'\n"), 0o644))

	_, err := run(t, url, dir, "skills", "create", "--file", draft)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed in")

	_, err = run(t, url, dir, "contact", "list")
	require.Error(t, err)
}

func TestDraftThenUpdate(t *testing.T) {
	url := newAPIStub(t, map[string]string{
		"GET /api/skills":            skillsBody,
		"POST /api/auth/login":       loginBody,
		"PUT /api/skills/s1":         `{"_id":"s1","skillName":"Golang","skillCategory":"Backend"}`,
		"DELETE /api/skills/s1":      `{"message":"deleted"}`,
		"PATCH /api/contact/c1/read": `{"_id":"c1","name":"Bob","email":"bob@example.com","message":"hi","isRead":true}`,
	})
	dir := t.TempDir()
	_, err := run(t, url, dir, "login", "--email", "ada@example.com", "--password", "secret")
	require.NoError(t, err)

	draft := filepath.Join(t.TempDir(), "skill.toml")
	_, err = run(t, url, dir, "skills", "draft", "s1", "--file", draft)
	require.NoError(t, err)
	raw, err := os.ReadFile(draft)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "skillName")
	assert.Contains(t, string(raw), "Go")

	out, err := run(t, url, dir, "skills", "update", "s1", "--file", draft, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "Golang")

	out, err = run(t, url, dir, "skills", "delete", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted skill s1.")

	_, err = run(t, url, dir, "skills", "draft", "missing", "--file", draft)
	require.Error(t, err)

	out, err = run(t, url, dir, "contact", "read", "c1", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"isRead": true`)
}

func TestSyncSummary(t *testing.T) {
	url := newAPIStub(t, map[string]string{
		"GET /api/skills":         skillsBody,
		"GET /api/projects":       `{"data":[]}`,
		"GET /api/experiences":    `[]`,
		"GET /api/certifications": `null`,
		"GET /api/about":          `[{"_id":"a1","role":"Engineer","isActive":true}]`,
	})

	out, err := run(t, url, t.TempDir(), "sync", "-o", "json")
	require.NoError(t, err)

	var got []sectionSummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 5)
	assert.Equal(t, sectionSummary{Section: "skills", Count: 2}, got[0])
	assert.Equal(t, sectionSummary{Section: "about", Count: 1}, got[4])
}

func TestSyncReportsFailedSection(t *testing.T) {
	url := newAPIStub(t, map[string]string{
		"GET /api/skills":         skillsBody,
		"GET /api/experiences":    `[]`,
		"GET /api/certifications": `[]`,
		"GET /api/about":          `null`,
	})

	out, err := run(t, url, t.TempDir(), "sync", "-o", "json")
	require.NoError(t, err)

	var got []sectionSummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "projects", got[1].Section)
	assert.NotEmpty(t, got[1].Error)
	assert.Equal(t, 0, got[4].Count)
}

func TestAboutShowWithoutProfile(t *testing.T) {
	url := newAPIStub(t, map[string]string{"GET /api/about": `[]`})
	_, err := run(t, url, t.TempDir(), "about", "show")
	assert.ErrorIs(t, err, errNoProfile)
}

func TestVersionString(t *testing.T) {
	v := versionString()
	assert.Contains(t, v, "folio "+folio.Version)
	assert.Contains(t, v, "transport ")
	assert.Contains(t, v, "session ")
}
