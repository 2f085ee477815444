package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"nazarblog/internal/handlers"
	"nazarblog/internal/models"
	"nazarblog/internal/seed"
	"nazarblog/internal/store"
	"nazarblog/pkg/logger"
	"nazarblog/routes"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStoreDown = errors.New("connection reset")

// memStore is an in-memory store.Store. Documents are kept as bson.M with a
// generated _id, mirroring what the real store holds, so tests also prove the
// _id never leaks into responses.
type memStore struct {
	mu          sync.Mutex
	collections map[string][]bson.M
	err         error
}

func newMemStore() *memStore {
	return &memStore{collections: make(map[string][]bson.M)}
}

func (m *memStore) CreateDocument(ctx context.Context, collection string, payload interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	raw, err := bson.Marshal(payload)
	if err != nil {
		return err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return err
	}
	doc["_id"] = primitive.NewObjectID()
	m.collections[collection] = append(m.collections[collection], doc)
	return nil
}

func (m *memStore) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	matched := []bson.M{}
	for _, doc := range m.collections[collection] {
		ok := true
		for key, value := range filter {
			if doc[key] != value {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, doc)
			if limit > 0 && int64(len(matched)) == limit {
				break
			}
		}
	}

	valueType, data, err := bson.MarshalValue(matched)
	if err != nil {
		return err
	}
	return bson.UnmarshalValue(valueType, data, out)
}

func (m *memStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	return names, nil
}

func (m *memStore) DatabaseName() string { return "testdb" }

func (m *memStore) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *memStore) fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func newTestRouter(t *testing.T, st store.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testLogger, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: "stderr"})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	seeder := seed.NewSeeder(st, testLogger)
	contentHandler := handlers.NewContentHandler(st, seeder, testLogger)
	diagnosticHandler := handlers.NewDiagnosticHandler(st)

	router := gin.New()
	routes.SetupDiagnosticRoutes(router, diagnosticHandler)
	api := router.Group("/api")
	routes.SetupContentRoutes(api, contentHandler)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRootEndpoint(t *testing.T) {
	router := newTestRouter(t, newMemStore())

	rec := doRequest(router, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["message"] != "Nazar Blog API is running" {
		t.Errorf("Unexpected message: %q", body["message"])
	}
}

func TestListRoadmapsEmptyStore(t *testing.T) {
	router := newTestRouter(t, newMemStore())

	rec := doRequest(router, http.MethodGet, "/api/roadmaps", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 for empty store, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("Expected [], got %s", rec.Body.String())
	}
}

func TestRoadmapRoundTripAndFilter(t *testing.T) {
	router := newTestRouter(t, newMemStore())

	goRoadmap := `{"language":"Go","title":"Go Roadmap","description":"Learn Go.","steps":["syntax","concurrency"]}`
	rustRoadmap := `{"language":"Rust","title":"Rust Roadmap","description":"Learn Rust.","level":"advanced"}`

	for _, payload := range []string{goRoadmap, rustRoadmap} {
		rec := doRequest(router, http.MethodPost, "/api/roadmaps", payload)
		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("Failed to decode body: %v", err)
		}
		if body["status"] != "ok" {
			t.Errorf("Expected status ok, got %q", body["status"])
		}
	}

	// Unfiltered GET returns everything.
	rec := doRequest(router, http.MethodGet, "/api/roadmaps", "")
	var all []models.Roadmap
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("Failed to decode roadmaps: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 roadmaps, got %d", len(all))
	}

	// Filtering is a case-sensitive exact match.
	rec = doRequest(router, http.MethodGet, "/api/roadmaps?language=Go", "")
	var filtered []models.Roadmap
	if err := json.Unmarshal(rec.Body.Bytes(), &filtered); err != nil {
		t.Fatalf("Failed to decode roadmaps: %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("Expected 1 roadmap for language=Go, got %d", len(filtered))
	}
	got := filtered[0]
	if got.Language != "Go" || got.Title != "Go Roadmap" || got.Description != "Learn Go." {
		t.Errorf("Round-trip mismatch: %+v", got)
	}
	if got.Level != "beginner" {
		t.Errorf("Expected defaulted level 'beginner', got %q", got.Level)
	}
	if len(got.Steps) != 2 || got.Steps[0] != "syntax" {
		t.Errorf("Steps did not round-trip in order: %v", got.Steps)
	}

	if strings.Contains(rec.Body.String(), "_id") {
		t.Error("Internal identifier leaked into the response")
	}

	rec = doRequest(router, http.MethodGet, "/api/roadmaps?language=go", "")
	var lower []models.Roadmap
	if err := json.Unmarshal(rec.Body.Bytes(), &lower); err != nil {
		t.Fatalf("Failed to decode roadmaps: %v", err)
	}
	if len(lower) != 0 {
		t.Errorf("Expected case-sensitive match to return nothing, got %d", len(lower))
	}
}

func TestCreateRoadmapValidation(t *testing.T) {
	router := newTestRouter(t, newMemStore())

	rec := doRequest(router, http.MethodPost, "/api/roadmaps", `{"level":"beginner"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", rec.Code)
	}

	// Every failing field is reported, under its wire name.
	body := rec.Body.String()
	for _, field := range []string{"language", "title", "description"} {
		if !strings.Contains(body, `"`+field+`"`) {
			t.Errorf("Expected validation detail for %q, body: %s", field, body)
		}
	}
}

func TestCreateRoadmapMalformedJSON(t *testing.T) {
	router := newTestRouter(t, newMemStore())

	rec := doRequest(router, http.MethodPost, "/api/roadmaps", `{"language":`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422 for malformed JSON, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "detail") {
		t.Errorf("Expected a detail key, got %s", rec.Body.String())
	}
}

func TestCourseSlugLookup(t *testing.T) {
	router := newTestRouter(t, newMemStore())

	if rec := doRequest(router, http.MethodPost, "/api/seed", ""); rec.Code != http.StatusOK {
		t.Fatalf("Seed failed: %d %s", rec.Code, rec.Body.String())
	}

	rec := doRequest(router, http.MethodGet, "/api/courses/python-for-beginners", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var course models.Course
	if err := json.Unmarshal(rec.Body.Bytes(), &course); err != nil {
		t.Fatalf("Failed to decode course: %v", err)
	}
	if course.Title != "Python for Beginners" {
		t.Errorf("Unexpected course title: %q", course.Title)
	}
	if course.Duration == nil || *course.Duration != "6 hours" {
		t.Errorf("Unexpected course duration: %v", course.Duration)
	}
	if len(course.Lessons) != 4 || course.Lessons[0].Order != 1 {
		t.Errorf("Lessons did not round-trip: %+v", course.Lessons)
	}
	if strings.Contains(rec.Body.String(), "_id") {
		t.Error("Internal identifier leaked into the response")
	}

	rec = doRequest(router, http.MethodGet, "/api/courses/no-such-course", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"detail":"Course not found"}` {
		t.Errorf("Unexpected 404 body: %s", rec.Body.String())
	}
}

func TestCourseFilter(t *testing.T) {
	router := newTestRouter(t, newMemStore())
	doRequest(router, http.MethodPost, "/api/seed", "")

	rec := doRequest(router, http.MethodGet, "/api/courses?language=Python", "")
	var courses []models.Course
	if err := json.Unmarshal(rec.Body.Bytes(), &courses); err != nil {
		t.Fatalf("Failed to decode courses: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("Expected 1 Python course, got %d", len(courses))
	}
	if courses[0].Slug != "python-for-beginners" {
		t.Errorf("Unexpected course: %q", courses[0].Slug)
	}

	rec = doRequest(router, http.MethodGet, "/api/courses", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &courses); err != nil {
		t.Fatalf("Failed to decode courses: %v", err)
	}
	if len(courses) != 2 {
		t.Errorf("Expected 2 courses without a filter, got %d", len(courses))
	}
}

func TestSeedIdempotence(t *testing.T) {
	router := newTestRouter(t, newMemStore())

	type seedResponse struct {
		Status  string `json:"status"`
		Created struct {
			Roadmaps int `json:"roadmaps"`
			Courses  int `json:"courses"`
		} `json:"created"`
	}

	rec := doRequest(router, http.MethodPost, "/api/seed", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var first seedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &first); err != nil {
		t.Fatalf("Failed to decode seed response: %v", err)
	}
	if first.Status != "ok" || first.Created.Roadmaps != 2 || first.Created.Courses != 2 {
		t.Errorf("Unexpected first seed result: %+v", first)
	}

	rec = doRequest(router, http.MethodPost, "/api/seed", "")
	var second seedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &second); err != nil {
		t.Fatalf("Failed to decode seed response: %v", err)
	}
	if second.Created.Roadmaps != 0 || second.Created.Courses != 0 {
		t.Errorf("Second seed should insert nothing, got %+v", second)
	}

	rec = doRequest(router, http.MethodGet, "/api/roadmaps", "")
	var roadmaps []models.Roadmap
	if err := json.Unmarshal(rec.Body.Bytes(), &roadmaps); err != nil {
		t.Fatalf("Failed to decode roadmaps: %v", err)
	}
	if len(roadmaps) != 2 {
		t.Errorf("Expected exactly 2 roadmaps after both seeds, got %d", len(roadmaps))
	}
}

func TestStoreErrorReturns500(t *testing.T) {
	st := newMemStore()
	st.fail(errStoreDown)
	router := newTestRouter(t, st)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/roadmaps"},
		{http.MethodGet, "/api/courses"},
		{http.MethodGet, "/api/courses/python-for-beginners"},
		{http.MethodPost, "/api/seed"},
	} {
		rec := doRequest(router, route.method, route.path, "")
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("%s %s: expected 500, got %d", route.method, route.path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "connection reset") {
			t.Errorf("%s %s: expected the store error text, got %s", route.method, route.path, rec.Body.String())
		}
	}
}

func TestNilStoreReturns500(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doRequest(router, http.MethodGet, "/api/roadmaps", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500 with nil store, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "database not initialized") {
		t.Errorf("Unexpected body: %s", rec.Body.String())
	}
}

func TestDiagnosticAlways200(t *testing.T) {
	// With a working store.
	router := newTestRouter(t, newMemStore())
	rec := doRequest(router, http.MethodGet, "/test", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["connection_status"] != "Connected" {
		t.Errorf("Expected Connected, got %v", body["connection_status"])
	}
	if !strings.Contains(body["database"].(string), "Connected & Working") {
		t.Errorf("Unexpected database status: %v", body["database"])
	}

	// With no store at all.
	router = newTestRouter(t, nil)
	rec = doRequest(router, http.MethodGet, "/test", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 with nil store, got %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if !strings.Contains(body["database"].(string), "Not Available") {
		t.Errorf("Expected a descriptive unavailability string, got %v", body["database"])
	}
	if body["connection_status"] != "Not Connected" {
		t.Errorf("Expected Not Connected, got %v", body["connection_status"])
	}

	// With a store that errors mid-request.
	st := newMemStore()
	st.fail(errStoreDown)
	router = newTestRouter(t, st)
	rec = doRequest(router, http.MethodGet, "/test", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 with failing store, got %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if !strings.Contains(body["database"].(string), "Error") {
		t.Errorf("Expected the error rendered inline, got %v", body["database"])
	}
}
