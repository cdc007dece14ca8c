package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"caai_logbook/internal/pipeline"
	"caai_logbook/internal/readers"
	"caai_logbook/internal/storage"
)

func setupServer(t *testing.T, cfg Config) (*Server, string) {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	table := &readers.Table{
		Source:  "export.csv",
		Format:  "delimited",
		Headers: []string{"Date", "From", "To", "Aircraft Reg.", "Aircraft Type", "Total Time", "PIC"},
		Rows: [][]string{
			{"2024-03-15", "LLHZ", "LLER", "4X-CGK", "C172", "1.5", "1.5"},
		},
	}
	res, err := pipeline.Run(table, pipeline.Options{})
	if err != nil {
		t.Fatalf("pipeline.Run: %v", err)
	}
	if err := db.SaveRun(res); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	return NewServer(db, cfg), res.Report.ID
}

func doRequest(t *testing.T, s *Server, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s, _ := setupServer(t, Config{})

	w := doRequest(t, s, "GET", "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q, want %q", body["status"], "ok")
	}
}

func TestListRuns(t *testing.T) {
	s, runID := setupServer(t, Config{})

	w := doRequest(t, s, "GET", "/runs", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Count int           `json:"count"`
		Runs  []storage.Run `json:"runs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Count != 1 || len(body.Runs) != 1 {
		t.Fatalf("count = %d, runs = %d, want 1 each", body.Count, len(body.Runs))
	}
	if body.Runs[0].ID != runID {
		t.Errorf("run ID = %q, want %q", body.Runs[0].ID, runID)
	}
}

func TestGetRun(t *testing.T) {
	s, runID := setupServer(t, Config{})

	w := doRequest(t, s, "GET", "/runs/"+runID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var run storage.Run
	if err := json.Unmarshal(w.Body.Bytes(), &run); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if run.ID != runID || run.Values == nil {
		t.Errorf("run = %+v, want full record with values", run)
	}
}

func TestGetRunNotFound(t *testing.T) {
	s, _ := setupServer(t, Config{})

	w := doRequest(t, s, "GET", "/runs/no-such-run", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestRunFlights(t *testing.T) {
	s, runID := setupServer(t, Config{})

	w := doRequest(t, s, "GET", "/runs/"+runID+"/flights", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Count   int                    `json:"count"`
		Flights []storage.StoredFlight `json:"flights"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Count != 1 || body.Flights[0].TypeCode != "C172" {
		t.Errorf("flights = %+v, want one C172 flight", body.Flights)
	}
}

func TestRunForm(t *testing.T) {
	s, runID := setupServer(t, Config{})

	w := doRequest(t, s, "GET", "/runs/"+runID+"/form", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Cells []json.RawMessage `json:"cells"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Cells) == 0 {
		t.Error("form has no cells")
	}
}

func TestDeleteRun(t *testing.T) {
	s, runID := setupServer(t, Config{})

	w := doRequest(t, s, "DELETE", "/runs/"+runID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	w = doRequest(t, s, "GET", "/runs/"+runID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status after delete = %d, want 404", w.Code)
	}
}

func TestAuth(t *testing.T) {
	s, runID := setupServer(t, Config{AuthEnabled: true, APIKeys: []string{"secret-key"}})

	// No key.
	w := doRequest(t, s, "GET", "/runs/"+runID, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no key: status = %d, want 401", w.Code)
	}

	// Wrong key.
	w = doRequest(t, s, "GET", "/runs/"+runID, map[string]string{"X-API-Key": "wrong"})
	if w.Code != http.StatusForbidden {
		t.Errorf("wrong key: status = %d, want 403", w.Code)
	}

	// X-API-Key header.
	w = doRequest(t, s, "GET", "/runs/"+runID, map[string]string{"X-API-Key": "secret-key"})
	if w.Code != http.StatusOK {
		t.Errorf("valid key: status = %d, want 200", w.Code)
	}

	// Bearer token.
	w = doRequest(t, s, "GET", "/runs/"+runID, map[string]string{"Authorization": "Bearer secret-key"})
	if w.Code != http.StatusOK {
		t.Errorf("bearer token: status = %d, want 200", w.Code)
	}
}
