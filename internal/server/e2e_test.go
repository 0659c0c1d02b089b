package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Dali-debug/Jinen/internal/auth"
	"github.com/Dali-debug/Jinen/internal/blob"
	"github.com/Dali-debug/Jinen/internal/kvstore"
	"github.com/Dali-debug/Jinen/internal/records"
)

// The enrollment flow end to end: a nursery account opens a nursery, a
// parent finds it while browsing, registers a child, the nursery sees
// the pending registration with the parent attached and approves it.
func TestEnrollmentFlow(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	store := records.NewStore(kv)
	identity := auth.NewService(kv, store, time.Hour)
	images := blob.NewDiskStore(t.TempDir(), "http://localhost:9000")

	srv := New(store, identity, images, nopProducer{}, "", zap.NewNop())
	ts := httptest.NewServer(srv.setupRoutes())
	defer ts.Close()

	ownerToken := signUpAndIn(t, ts, "sunshine@example.com", "nursery", "Mouna")
	parentToken := signUpAndIn(t, ts, "amal@example.com", "parent", "Amal")

	// Nursery account opens its nursery.
	created := doJSON(t, ts, http.MethodPost, "/nurseries", ownerToken, map[string]interface{}{
		"name":            "Sunshine Nursery",
		"location":        "Tunis",
		"price":           350.0,
		"availablePlaces": 20,
	})
	require.Equal(t, http.StatusCreated, created.Code)
	nurseryID := created.Body["nursery"].(map[string]interface{})["id"].(string)

	// The browse view shows it, with the rating still zero.
	browse := doJSON(t, ts, http.MethodGet, "/nurseries?q=sunshine", "", nil)
	require.Equal(t, http.StatusOK, browse.Code)
	nurseries := browse.Body["nurseries"].([]interface{})
	require.Len(t, nurseries, 1)
	listed := nurseries[0].(map[string]interface{})
	assert.Equal(t, "Sunshine Nursery", listed["name"])
	assert.Equal(t, float64(0), listed["rating"])
	assert.Equal(t, float64(0), listed["ratingCount"])

	// Parent registers a child; it comes back pending.
	registered := doJSON(t, ts, http.MethodPost, "/children", parentToken, map[string]interface{}{
		"name":      "Amir",
		"age":       "3",
		"nurseryId": nurseryID,
		"notes":     "allergic to peanuts",
	})
	require.Equal(t, http.StatusCreated, registered.Code)
	child := registered.Body["child"].(map[string]interface{})
	childID := child["id"].(string)
	assert.Equal(t, "pending", child["status"])

	// The nursery sees the registration with the parent embedded.
	roster := doJSON(t, ts, http.MethodGet, "/nursery/"+nurseryID+"/children", ownerToken, nil)
	require.Equal(t, http.StatusOK, roster.Code)
	children := roster.Body["children"].([]interface{})
	require.Len(t, children, 1)
	entry := children[0].(map[string]interface{})
	assert.Equal(t, "pending", entry["status"])
	parentInfo := entry["parentInfo"].(map[string]interface{})
	assert.Equal(t, "Amal", parentInfo["name"])

	// A parent cannot decide the registration.
	denied := doJSON(t, ts, http.MethodPut, "/children/"+childID+"/status", parentToken, map[string]interface{}{
		"status": "approved",
	})
	assert.Equal(t, http.StatusForbidden, denied.Code)

	// The owner approves it.
	approved := doJSON(t, ts, http.MethodPut, "/children/"+childID+"/status", ownerToken, map[string]interface{}{
		"status": "approved",
	})
	require.Equal(t, http.StatusOK, approved.Code)
	assert.Equal(t, "approved", approved.Body["child"].(map[string]interface{})["status"])

	// Approving twice is an invalid transition.
	again := doJSON(t, ts, http.MethodPut, "/children/"+childID+"/status", ownerToken, map[string]interface{}{
		"status": "approved",
	})
	assert.Equal(t, http.StatusBadRequest, again.Code)

	// The parent's own view reflects the decision.
	mine := doJSON(t, ts, http.MethodGet, "/parent/children", parentToken, nil)
	require.Equal(t, http.StatusOK, mine.Code)
	mineChildren := mine.Body["children"].([]interface{})
	require.Len(t, mineChildren, 1)
	assert.Equal(t, "approved", mineChildren[0].(map[string]interface{})["status"])
}

func TestPaymentAndDiaryFlow(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	store := records.NewStore(kv)
	identity := auth.NewService(kv, store, time.Hour)
	images := blob.NewDiskStore(t.TempDir(), "http://localhost:9000")

	srv := New(store, identity, images, nopProducer{}, "", zap.NewNop())
	ts := httptest.NewServer(srv.setupRoutes())
	defer ts.Close()

	ownerToken := signUpAndIn(t, ts, "sunshine@example.com", "nursery", "Mouna")
	parentToken := signUpAndIn(t, ts, "amal@example.com", "parent", "Amal")

	created := doJSON(t, ts, http.MethodPost, "/nurseries", ownerToken, map[string]interface{}{
		"name":     "Sunshine Nursery",
		"location": "Tunis",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	nurseryID := created.Body["nursery"].(map[string]interface{})["id"].(string)

	registered := doJSON(t, ts, http.MethodPost, "/children", parentToken, map[string]interface{}{
		"name":      "Amir",
		"nurseryId": nurseryID,
	})
	require.Equal(t, http.StatusCreated, registered.Code)
	childID := registered.Body["child"].(map[string]interface{})["id"].(string)

	// Two payments, newest first in both histories.
	for _, desc := range []string{"February tuition", "March tuition"} {
		paid := doJSON(t, ts, http.MethodPost, "/payments", parentToken, map[string]interface{}{
			"nurseryId":   nurseryID,
			"childId":     childID,
			"amount":      350.0,
			"description": desc,
		})
		require.Equal(t, http.StatusCreated, paid.Code)
		assert.Equal(t, "completed", paid.Body["payment"].(map[string]interface{})["status"])
	}

	parentLedger := doJSON(t, ts, http.MethodGet, "/parent/payments", parentToken, nil)
	require.Equal(t, http.StatusOK, parentLedger.Code)
	payments := parentLedger.Body["payments"].([]interface{})
	require.Len(t, payments, 2)
	assert.Equal(t, "March tuition", payments[0].(map[string]interface{})["description"])
	assert.Equal(t, "February tuition", payments[1].(map[string]interface{})["description"])

	nurseryLedger := doJSON(t, ts, http.MethodGet, "/nursery/"+nurseryID+"/payments", ownerToken, nil)
	require.Equal(t, http.StatusOK, nurseryLedger.Code)
	received := nurseryLedger.Body["payments"].([]interface{})
	require.Len(t, received, 2)
	first := received[0].(map[string]interface{})
	assert.Equal(t, "Amal", first["parentInfo"].(map[string]interface{})["name"])

	// Diary entries come back newest first too.
	for _, title := range []string{"Morning nap", "Lunch"} {
		posted := doJSON(t, ts, http.MethodPost, "/children/"+childID+"/updates", ownerToken, map[string]interface{}{
			"title":   title,
			"content": "all good",
			"type":    "daily",
		})
		require.Equal(t, http.StatusCreated, posted.Code)
	}

	diary := doJSON(t, ts, http.MethodGet, "/children/"+childID+"/updates", parentToken, nil)
	require.Equal(t, http.StatusOK, diary.Code)
	updates := diary.Body["updates"].([]interface{})
	require.Len(t, updates, 2)
	assert.Equal(t, "Lunch", updates[0].(map[string]interface{})["title"])
	assert.Equal(t, "Morning nap", updates[1].(map[string]interface{})["title"])
}

func TestProgramLifecycle(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	store := records.NewStore(kv)
	identity := auth.NewService(kv, store, time.Hour)
	images := blob.NewDiskStore(t.TempDir(), "http://localhost:9000")

	srv := New(store, identity, images, nopProducer{}, "", zap.NewNop())
	ts := httptest.NewServer(srv.setupRoutes())
	defer ts.Close()

	ownerToken := signUpAndIn(t, ts, "sunshine@example.com", "nursery", "Mouna")

	created := doJSON(t, ts, http.MethodPost, "/nurseries", ownerToken, map[string]interface{}{
		"name":     "Sunshine Nursery",
		"location": "Tunis",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	nurseryID := created.Body["nursery"].(map[string]interface{})["id"].(string)

	// Unset program is an empty state, not an error.
	empty := doJSON(t, ts, http.MethodGet, "/nurseries/"+nurseryID+"/program", "", nil)
	require.Equal(t, http.StatusOK, empty.Code)
	assert.Nil(t, empty.Body["program"])

	put := doJSON(t, ts, http.MethodPost, "/nurseries/"+nurseryID+"/program", ownerToken, map[string]interface{}{
		"schedule":   "8:00-16:00",
		"activities": "painting, outdoor play",
	})
	require.Equal(t, http.StatusOK, put.Code)

	got := doJSON(t, ts, http.MethodGet, "/nurseries/"+nurseryID+"/program", "", nil)
	require.Equal(t, http.StatusOK, got.Code)
	program := got.Body["program"].(map[string]interface{})
	assert.Equal(t, "8:00-16:00", program["schedule"])

	// The program record must not leak into the browse list.
	browse := doJSON(t, ts, http.MethodGet, "/nurseries", "", nil)
	require.Equal(t, http.StatusOK, browse.Code)
	assert.Len(t, browse.Body["nurseries"].([]interface{}), 1)
}

type jsonResponse struct {
	Code int
	Body map[string]interface{}
}

func doJSON(t *testing.T, ts *httptest.Server, method, path, token string, payload map[string]interface{}) jsonResponse {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return jsonResponse{Code: resp.StatusCode, Body: decoded}
}

func signUpAndIn(t *testing.T, ts *httptest.Server, email, userType, name string) string {
	t.Helper()

	signedUp := doJSON(t, ts, http.MethodPost, "/auth/signup", "", map[string]interface{}{
		"email":    email,
		"password": "secret123",
		"name":     name,
		"userType": userType,
	})
	require.Equal(t, http.StatusCreated, signedUp.Code)

	signedIn := doJSON(t, ts, http.MethodPost, "/auth/signin", "", map[string]interface{}{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, signedIn.Code)
	return signedIn.Body["accessToken"].(string)
}
