package kernel_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webnexa/api/config"
	"github.com/webnexa/api/internal/kernel"
	"github.com/webnexa/api/internal/store"
	"github.com/webnexa/api/pkg/router"
)

func newAPI(t *testing.T) *router.Router {
	t.Helper()
	config.Set("REGISTRATION_MODE", "open")
	config.Set("PUBLIC_DIR", t.TempDir())

	r, err := kernel.BuildRouter(store.NewMemory(), nil)
	require.NoError(t, err)
	return r
}

func call(r *router.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func loginAsAdmin(t *testing.T, r *router.Router) string {
	t.Helper()

	rec := call(r, http.MethodPost, "/api/admin/register", "", map[string]string{
		"username": "admin",
		"password": "a strong password",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call(r, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "admin",
		"password": "a strong password",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	token := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestContactLifecycle(t *testing.T) {
	r := newAPI(t)
	token := loginAsAdmin(t, r)

	// Public submission.
	rec := call(r, http.MethodPost, "/api/contact", "", map[string]string{
		"name":    "Jane Smith",
		"email":   "jane@example.com",
		"message": "We need a new site.",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Inbox requires auth.
	rec = call(r, http.MethodGet, "/api/contacts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(r, http.MethodGet, "/api/contacts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	items := decodeBody(t, rec)["data"].([]interface{})
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "new", first["status"])
	id := first["id"].(string)

	// Triage.
	rec = call(r, http.MethodPut, "/api/contact/"+id, token, map[string]string{"status": "contacted"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "contacted", updated["status"])

	// Invalid status is rejected.
	rec = call(r, http.MethodPut, "/api/contact/"+id, token, map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Updating a vanished inquiry still succeeds, with no record attached.
	rec = call(r, http.MethodPut, "/api/contact/66f0c2a9e4b0a1b2c3d4e5f6", token, map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Nil(t, body["data"])

	// Delete twice.
	rec = call(r, http.MethodDelete, "/api/contact/"+id, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = call(r, http.MethodDelete, "/api/contact/"+id, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(r, http.MethodGet, "/api/contacts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeBody(t, rec)["data"])
}

func TestContactValidation(t *testing.T) {
	r := newAPI(t)

	// Missing fields are reported per field.
	rec := call(r, http.MethodPost, "/api/contact", "", map[string]string{
		"name":    "",
		"message": "",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "message")

	// Presence is the only gate: short names and odd addresses go through.
	rec = call(r, http.MethodPost, "/api/contact", "", map[string]string{
		"name":    "X",
		"email":   "x@x.com",
		"message": "hi",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call(r, http.MethodPost, "/api/contact", "", map[string]string{
		"name":    "J",
		"email":   "not-an-email",
		"message": "hello",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestClientShowcase(t *testing.T) {
	r := newAPI(t)
	token := loginAsAdmin(t, r)

	// Creating entries requires auth.
	rec := call(r, http.MethodPost, "/api/clients", "", map[string]string{"name": "Acme"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(r, http.MethodPost, "/api/clients", token, map[string]interface{}{
		"name":        "Acme Corp",
		"projectName": "Storefront",
		"rating":      5,
		"anyField":    "kept verbatim",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Listing is public.
	rec = call(r, http.MethodGet, "/api/clients", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	entries := decodeBody(t, rec)["data"].([]interface{})
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "Acme Corp", entry["name"])
	assert.Equal(t, "kept verbatim", entry["anyField"])
	assert.NotEmpty(t, entry["_id"])
}

func TestClientsGraphQL(t *testing.T) {
	r := newAPI(t)
	token := loginAsAdmin(t, r)

	rec := call(r, http.MethodPost, "/api/clients", token, map[string]interface{}{
		"name":   "Acme Corp",
		"rating": 4.5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = call(r, http.MethodPost, "/api/graphql", "", map[string]string{
		"query": `{ clients { id name rating } }`,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	clients := data["clients"].([]interface{})
	require.Len(t, clients, 1)
	client := clients[0].(map[string]interface{})
	assert.Equal(t, "Acme Corp", client["name"])
	assert.Equal(t, 4.5, client["rating"])
	assert.NotEmpty(t, client["id"])
}

func TestLoginRejectionsAreUniform(t *testing.T) {
	r := newAPI(t)
	loginAsAdmin(t, r)

	wrongPassword := call(r, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "admin", "password": "wrong",
	})
	unknownUser := call(r, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "ghost", "password": "a strong password",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestRegistrationReturnsMessageOnly(t *testing.T) {
	r := newAPI(t)

	rec := call(r, http.MethodPost, "/api/admin/register", "", map[string]string{
		"username": "admin", "password": "a strong password",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Admin registered successfully", body["message"])
	assert.Nil(t, body["data"])
}

func TestDuplicateRegistration(t *testing.T) {
	r := newAPI(t)
	loginAsAdmin(t, r)

	rec := call(r, http.MethodPost, "/api/admin/register", "", map[string]string{
		"username": "admin", "password": "another password",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username already exists")
}

func TestOperationalEndpoints(t *testing.T) {
	r := newAPI(t)

	rec := call(r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")

	rec = call(r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "webnexa_http_requests_total")
}

func TestSPAFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "about.html"), []byte("<html>about</html>"), 0o644))

	config.Set("REGISTRATION_MODE", "open")
	config.Set("PUBLIC_DIR", dir)
	r, err := kernel.BuildRouter(store.NewMemory(), nil)
	require.NoError(t, err)

	// Existing static file is served as-is.
	rec := call(r, http.MethodGet, "/about.html", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "about")

	// Deep links fall back to index.html for client-side routing.
	rec = call(r, http.MethodGet, "/dashboard/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "app")
}

func TestUnknownAPIRouteIsJSON404(t *testing.T) {
	r := newAPI(t)

	rec := call(r, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}
