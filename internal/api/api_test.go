package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/transport"
)

type recorded struct {
	method string
	path   string
	auth   string
	body   string
}

func newTestAPI(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*Client, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{method: r.Method, path: r.URL.Path, auth: r.Header.Get("Authorization"), body: string(body)})
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	tc := transport.NewClient(transport.Config{BaseURL: srv.URL}, srv.Client(), transport.StaticToken("tok"), nil)
	return New(tc, ""), &calls
}

func TestSkills_List(t *testing.T) {
	c, calls := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"_id":"1","skillName":"React","skillCategory":"frontend"}]`)
	})

	skills, err := c.Skills.List(context.Background())
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "React", skills[0].SkillName)
	assert.Equal(t, "frontend", skills[0].SkillCategory)

	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodGet, (*calls)[0].method)
	assert.Equal(t, SkillsPath, (*calls)[0].path)
	assert.Equal(t, "Bearer tok", (*calls)[0].auth)
}

func TestCollection_ListNullIsEmpty(t *testing.T) {
	c, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `null`)
	})

	projects, err := c.Projects.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestCollection_UpdateAndDeletePaths(t *testing.T) {
	c, calls := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"_id":"42","companyName":"Acme","workedAs":"Engineer","description":"Solo paragraph"}`)
	})
	ctx := context.Background()

	exp, err := c.Experiences.Update(ctx, "42", transport.NewForm().Set("companyName", "Acme"))
	require.NoError(t, err)
	assert.Equal(t, domain.StringList{"Solo paragraph"}, exp.Description)

	require.NoError(t, c.Experiences.Delete(ctx, "42"))

	require.Len(t, *calls, 2)
	assert.Equal(t, http.MethodPut, (*calls)[0].method)
	assert.Equal(t, ExperiencesPath+"/42", (*calls)[0].path)
	assert.Equal(t, http.MethodDelete, (*calls)[1].method)
	assert.Equal(t, ExperiencesPath+"/42", (*calls)[1].path)
}

func TestCollection_MissingID(t *testing.T) {
	c, calls := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := c.Projects.Update(context.Background(), "", transport.NewForm())
	assert.ErrorIs(t, err, domain.ErrMissingID)
	assert.ErrorIs(t, c.Certifications.Delete(context.Background(), ""), domain.ErrMissingID)
	assert.Empty(t, *calls)
}

func TestAbout_Endpoints(t *testing.T) {
	c, calls := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"_id":"a1","role":"Developer","isActive":true}`)
	})
	ctx := context.Background()

	_, err := c.About.Update(ctx, "a1", transport.NewForm().Set("role", "Developer"))
	require.NoError(t, err)
	_, err = c.About.UploadResume(ctx, transport.NewForm())
	require.NoError(t, err)
	_, err = c.About.UploadProfileImage(ctx, transport.NewForm())
	require.NoError(t, err)
	_, err = c.About.ToggleActive(ctx, "a1")
	require.NoError(t, err)

	want := []recorded{
		{method: http.MethodPatch, path: "/api/about/a1"},
		{method: http.MethodPost, path: "/api/about/resume"},
		{method: http.MethodPost, path: "/api/about/profile-image"},
		{method: http.MethodPatch, path: "/api/about/a1/toggle-active"},
	}
	require.Len(t, *calls, len(want))
	for i, w := range want {
		assert.Equal(t, w.method, (*calls)[i].method, "call %d", i)
		assert.Equal(t, w.path, (*calls)[i].path, "call %d", i)
	}
}

func TestAbout_Get(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *domain.About
	}{
		{name: "object", body: `{"_id":"a1","role":"Dev"}`, want: &domain.About{ID: "a1", Role: "Dev"}},
		{name: "list", body: `[{"_id":"a2","role":"Ops"}]`, want: &domain.About{ID: "a2", Role: "Ops"}},
		{name: "empty list", body: `[]`},
		{name: "null", body: `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			})
			got, err := c.About.Get(context.Background())
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want.ID, got.ID)
			assert.Equal(t, tt.want.Role, got.Role)
		})
	}
}

func TestContact_SubmitAndToggleRead(t *testing.T) {
	c, calls := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"_id":"c1","name":"Ana","email":"ana@example.com","message":"hi","isRead":true}`)
	})
	ctx := context.Background()

	_, err := c.Contact.Submit(ctx, map[string]string{"name": "Ana", "email": "ana@example.com", "message": "hi"})
	require.NoError(t, err)
	got, err := c.Contact.ToggleRead(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, got.IsRead)

	require.Len(t, *calls, 2)
	var sent map[string]string
	require.NoError(t, json.Unmarshal([]byte((*calls)[0].body), &sent))
	assert.Equal(t, "Ana", sent["name"])
	assert.Equal(t, ContactPath, (*calls)[0].path)
	assert.Equal(t, http.MethodPatch, (*calls)[1].method)
	assert.Equal(t, ContactPath+"/c1/read", (*calls)[1].path)
}

func TestAuth_LoginLogoutVerify(t *testing.T) {
	c, calls := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			_, _ = io.WriteString(w, `{"token":"jwt","user":{"_id":"u1","name":"Admin","email":"admin@example.com"}}`)
		case DefaultVerifyPath:
			_, _ = io.WriteString(w, `{"user":{"_id":"u1","name":"Admin","email":"admin@example.com"}}`)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	ctx := context.Background()

	resp, err := c.Auth.Login(ctx, LoginRequest{Email: "admin@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.Token)
	assert.Equal(t, "Admin", resp.User.Name)

	user, err := c.Auth.Verify(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	require.NoError(t, c.Auth.Logout(ctx))

	require.Len(t, *calls, 3)
	assert.Equal(t, "/api/auth/logout", (*calls)[2].path)
	assert.Equal(t, http.MethodPost, (*calls)[2].method)
}

func TestAuth_LoginRejected(t *testing.T) {
	c, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Invalid credentials"}`)
	})

	_, err := c.Auth.Login(context.Background(), LoginRequest{Email: "a@b.co", Password: "x"})
	require.Error(t, err)
	assert.True(t, transport.IsUnauthorized(err))
	assert.Equal(t, "Invalid credentials", transport.MessageOf(err))
}
