package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/fortune-club/internal/config"
	"github.com/BruksfildServices01/fortune-club/internal/models"
	"github.com/BruksfildServices01/fortune-club/internal/testhelpers"
)

type memStore struct {
	keys []string
}

func (s *memStore) Put(_ context.Context, key, _ string, _ []byte) (string, error) {
	s.keys = append(s.keys, key)
	return "https://cdn.test/" + key, nil
}

type denyLimiter struct{}

func (denyLimiter) Allow(context.Context, uint) (bool, error) { return false, nil }

type app struct {
	t      *testing.T
	db     *gorm.DB
	engine *gin.Engine
	store  *memStore
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTTTL:             time.Hour,
		SkillIDPolicy:      config.SkillPolicyStrict,
		UploadMaxBytes:     1 << 20,
		UploadMaxDimension: 64,
	}
}

func newApp(t *testing.T, mutate func(*Deps)) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.NewTestDB(t)
	store := &memStore{}
	deps := Deps{DB: db, Config: testConfig(), Store: store}
	if mutate != nil {
		mutate(&deps)
	}

	r := gin.New()
	RegisterRoutes(r, deps)
	return &app{t: t, db: db, engine: r, store: store}
}

func (a *app) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (a *app) register(username, role string) (string, uint) {
	a.t.Helper()
	r := testhelpers.Role(a.t, a.db, role)
	w := a.do(http.MethodPost, "/api/register", "", gin.H{
		"email":        username + "@example.com",
		"username":     username,
		"password":     "password1",
		"first_name":   username,
		"user_role_id": r.ID,
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(a.t, w)
	user := body["user"].(map[string]any)
	return body["token"].(string), uint(user["id"].(float64))
}

func (a *app) adminToken() string {
	a.t.Helper()
	testhelpers.CreateUser(a.t, a.db, "root", "admin")
	w := a.do(http.MethodPost, "/api/login", "", gin.H{"username": "root", "password": "secret123"})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	return decode(a.t, w)["token"].(string)
}

func TestAuthFlow(t *testing.T) {
	a := newApp(t, nil)
	token, id := a.register("luna", "client")

	w := a.do(http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode(t, w)
	assert.Equal(t, float64(id), me["id"])
	assert.Equal(t, "client", me["role"])
	assert.Equal(t, false, me["privileged"])

	w = a.do(http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodGet, "/api/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodPost, "/api/login", "", gin.H{"username": "luna", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decode(t, w)["error_code"])

	w = a.do(http.MethodPost, "/api/register", "", gin.H{
		"email": "x@example.com", "username": "x", "password": "password1",
		"first_name": "X", "user_role_id": 999,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "invalid_role", body["error_code"])
	assert.Equal(t, "user_role_id", body["field"])
}

func TestProfileEndpoints(t *testing.T) {
	a := newApp(t, nil)
	tellerToken, _ := a.register("madame", "fortune teller")
	clientToken, _ := a.register("visitor", "client")
	tarot := testhelpers.CreateSkill(t, a.db, "Tarot")

	w := a.do(http.MethodGet, "/api/profile", tellerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "provider", decode(t, w)["type"])

	w = a.do(http.MethodPatch, "/api/profile", tellerToken, gin.H{"bio": "Seer", "skill_ids": []uint{tarot.ID}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	profile := decode(t, w)["profile"].(map[string]any)
	assert.Equal(t, "Seer", profile["bio"])
	assert.Len(t, profile["skills"], 1)

	w = a.do(http.MethodPatch, "/api/profile", clientToken, gin.H{"phone_number": "123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "phone_number", decode(t, w)["field"])

	w = a.do(http.MethodPut, "/api/profile/skills", clientToken, gin.H{"skill_ids": []uint{tarot.ID}})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodPut, "/api/profile/skills", tellerToken, gin.H{"skill_ids": "1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "skill_ids_not_list", decode(t, w)["error_code"])

	w = a.do(http.MethodGet, "/api/tellers/search?q=tarot", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["total"])

	w = a.do(http.MethodGet, "/api/tellers/search?q=", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["total"])

	w = a.do(http.MethodGet, "/api/tellers/suggestions", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["total"])
}

func TestPostVisibilityOverHTTP(t *testing.T) {
	a := newApp(t, nil)
	authorToken, _ := a.register("author", "client")
	otherToken, _ := a.register("other", "client")
	admin := a.adminToken()

	w := a.do(http.MethodPost, "/api/posts", authorToken, gin.H{"content": "A vision"})
	require.Equal(t, http.StatusCreated, w.Code)
	post := decode(t, w)
	assert.Equal(t, "pending", post["status"])
	path := "/api/posts/" + strconv.Itoa(int(post["id"].(float64)))

	w = a.do(http.MethodGet, "/api/posts", "", nil)
	assert.Equal(t, float64(0), decode(t, w)["total"])

	w = a.do(http.MethodGet, path, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, "/api/posts", authorToken, nil)
	assert.Equal(t, float64(1), decode(t, w)["total"])

	w = a.do(http.MethodPatch, path, authorToken, gin.H{"status": "published"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "status_read_only", decode(t, w)["error_code"])

	w = a.do(http.MethodPost, path+"/comments", otherToken, gin.H{"content": "Early"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, path+"/comments", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodPatch, "/api/admin"+path[len("/api"):]+"/status", otherToken, gin.H{"status": "published"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodPatch, "/api/admin"+path[len("/api"):]+"/status", admin, gin.H{"status": "published"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(http.MethodGet, "/api/posts?limit=500", "", nil)
	page := decode(t, w)
	assert.Equal(t, float64(1), page["total"])
	assert.Equal(t, float64(100), page["limit"])

	w = a.do(http.MethodPost, path+"/comments", otherToken, gin.H{"content": "Wow"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = a.do(http.MethodGet, path+"/comments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["total"])

	w = a.do(http.MethodDelete, path, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodDelete, path, authorToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = a.do(http.MethodGet, path+"/comments", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, "/api/posts/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConversationEndpoints(t *testing.T) {
	a := newApp(t, nil)
	aliceToken, aliceID := a.register("alice", "client")
	brunoToken, brunoID := a.register("bruno", "fortune teller")
	carlaToken, _ := a.register("carla", "client")

	w := a.do(http.MethodPost, "/api/conversations", aliceToken, gin.H{"participant2_id": brunoID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	convID := int(decode(t, w)["id"].(float64))

	w = a.do(http.MethodPost, "/api/conversations", brunoToken, gin.H{"participant2_id": aliceID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(convID), decode(t, w)["id"])

	w = a.do(http.MethodPost, "/api/conversations", aliceToken, gin.H{"participant2_id": aliceID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	msgs := "/api/conversations/" + strconv.Itoa(convID) + "/messages"

	w = a.do(http.MethodPost, msgs, aliceToken, gin.H{"content": "Hello"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(http.MethodPost, msgs, carlaToken, gin.H{"content": "Hi?"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodGet, msgs, brunoToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["total"])

	w = a.do(http.MethodGet, "/api/conversations/"+strconv.Itoa(convID), carlaToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodGet, "/api/conversations", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["total"])

	var count int64
	require.NoError(t, a.db.Model(&models.Conversation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSendMessageRateLimited(t *testing.T) {
	a := newApp(t, func(d *Deps) { d.Limiter = denyLimiter{} })
	aliceToken, _ := a.register("alice", "client")
	_, brunoID := a.register("bruno", "client")

	w := a.do(http.MethodPost, "/api/conversations", aliceToken, gin.H{"participant2_id": brunoID})
	require.Equal(t, http.StatusCreated, w.Code)
	convID := int(decode(t, w)["id"].(float64))

	w = a.do(http.MethodPost, "/api/conversations/"+strconv.Itoa(convID)+"/messages", aliceToken, gin.H{"content": "spam"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestSkillAdminEndpoints(t *testing.T) {
	a := newApp(t, nil)
	userToken, _ := a.register("plain", "client")
	admin := a.adminToken()

	w := a.do(http.MethodPost, "/api/skills", userToken, gin.H{"name": "Runes"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodPost, "/api/skills", admin, gin.H{"name": "Runes"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := int(decode(t, w)["id"].(float64))

	w = a.do(http.MethodGet, "/api/skills", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["total"])

	w = a.do(http.MethodDelete, "/api/skills/"+strconv.Itoa(id), admin, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = a.do(http.MethodDelete, "/api/skills/"+strconv.Itoa(id), admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, "/api/users", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodGet, "/api/users", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode(t, w)["total"])

	// Demotion applies while the old token is still valid.
	client := testhelpers.Role(t, a.db, "client")
	require.NoError(t, a.db.Model(&models.User{}).
		Where("username = ?", "root").
		Update("role_id", client.ID).Error)

	w = a.do(http.MethodPost, "/api/skills", admin, gin.H{"name": "Tea leaves"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodGet, "/api/users", admin, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuditLogsEndpoint(t *testing.T) {
	a := newApp(t, nil)
	userToken, _ := a.register("writer", "client")
	admin := a.adminToken()

	w := a.do(http.MethodPost, "/api/posts", userToken, gin.H{"content": "Omen"})
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Eventually(t, func() bool {
		w := a.do(http.MethodGet, "/api/admin/audit-logs?action=post_created", admin, nil)
		return w.Code == http.StatusOK && decode(t, w)["total"] == float64(1)
	}, 2*time.Second, 20*time.Millisecond)

	w = a.do(http.MethodGet, "/api/admin/audit-logs", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodGet, "/api/admin/audit-logs?from=yesterday", admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadEndpoint(t *testing.T) {
	a := newApp(t, nil)
	token, id := a.register("artist", "client")

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 128, 32))))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "card.png")
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	out := decode(t, w)
	assert.Contains(t, out["key"], "uploads/"+strconv.Itoa(int(id))+"/")
	assert.Len(t, a.store.keys, 1)
}

func TestHealthAndMetrics(t *testing.T) {
	a := newApp(t, nil)

	w := a.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))

	w = a.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fortune_club_http_requests_total")
}
