package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"reqsmith/internal/domain"
	"reqsmith/internal/pipeline"
	"reqsmith/internal/registry"
	"reqsmith/internal/store"
)

func newTestServer(t *testing.T) (*Server, *store.RunStore) {
	t.Helper()

	r := registry.New()
	err := r.Register(domain.NewRuleHandler(domain.RuleSpec{
		DomainName:    "healthcare",
		Keywords:      []string{"patient", "hipaa", "diagnosis"},
		PriorityScore: 3,
		Rules: []domain.Rule{
			{Triggers: []string{"patient"}, Title: "Patient Record Management", Priority: "high", Category: "functional"},
		},
	}))
	if err != nil {
		t.Fatal(err)
	}

	runs, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { runs.Close() })

	return New(r, pipeline.New(r, nil), runs), runs
}

const doc = `Our clinic needs patient record management with diagnosis tracking.
Requirements cover objectives, user functionality, design, implementation,
testing and performance for daily clinical workflows across every department.`

func TestProcessJSONBody(t *testing.T) {
	s, _ := newTestServer(t)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	body := `{"text": ` + jsonString(doc) + `}`
	resp, err := http.Post(srv.URL+"/api/process", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q", ct)
	}

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `<approval status="`) {
		t.Errorf("body = %q", out)
	}
}

func TestProcessAcceptsAlternateFields(t *testing.T) {
	s, _ := newTestServer(t)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	for _, field := range []string{"text", "document", "content"} {
		body := `{"` + field + `": ` + jsonString(doc) + `}`
		resp, err := http.Post(srv.URL+"/api/process", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("field %s: status = %d", field, resp.StatusCode)
		}
	}
}

func TestProcessRawText(t *testing.T) {
	s, _ := newTestServer(t)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/process", "text/plain", strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestProcessJSONResponse(t *testing.T) {
	s, _ := newTestServer(t)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/process", strings.NewReader(doc))
	req.Header.Set("Accept", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var result pipeline.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Domain != "healthcare" {
		t.Errorf("domain = %q", result.Domain)
	}
	if len(result.Requirements) == 0 {
		t.Error("no requirements in JSON result")
	}
}

func TestProcessEmptyBody(t *testing.T) {
	s, _ := newTestServer(t)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/process", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestProcessRecordsRun(t *testing.T) {
	s, runs := newTestServer(t)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/process", "text/plain", strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	last, err := runs.LastRun()
	if err != nil {
		t.Fatalf("run not recorded: %v", err)
	}
	if last.Domain != "healthcare" || last.RequirementCount == 0 {
		t.Errorf("last run = %+v", last)
	}
}

func TestStatus(t *testing.T) {
	s, _ := newTestServer(t)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/status")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var status statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatal(err)
	}
	if status.Status != "running" || status.DomainCount != 1 {
		t.Errorf("status = %+v", status)
	}
	if len(status.RegisteredDomains) != 1 || status.RegisteredDomains[0] != "healthcare" {
		t.Errorf("domains = %v", status.RegisteredDomains)
	}
	if status.LastRun != nil {
		t.Error("last run should be absent before any processing")
	}
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
