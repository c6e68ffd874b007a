package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/c360studio/ontolex/loader"
)

func testSnapshot(t *testing.T) *loader.Snapshot {
	t.Helper()

	l := loader.New(nil)
	err := l.Apply(&loader.Document{
		Classes: []loader.ClassRecord{
			{ID: "object"},
			{ID: "physobj", Parent: "object"},
			{ID: "package", Parent: "physobj"},
			{ID: "drum", Parent: "package"},
			{ID: "plan", Parent: "object"},
			{ID: "step", Parent: "object"},
		},
		Individuals: []loader.IndividualRecord{{ID: "obj11", Class: "drum"}},
		Entries: []loader.EntryRecord{
			{ID: "drum_n", Canonical: "drum", POS: "noun"},
			{
				ID: "summarise_num_steps", Canonical: "have", POS: "verb",
				Frame: &loader.FrameSpec{
					Root: "have",
					Edges: []loader.EdgeSpec{
						{Role: "nsubj", Arg: "arg_summarise_num_steps_subj"},
						{Role: "dobj", Frame: &loader.FrameSpec{
							Root:  "step",
							Edges: []loader.EdgeSpec{{Role: "det", Arg: "arg_summarise_num_steps_num"}},
						}},
					},
				},
			},
		},
		Bindings: []loader.BindingRecord{
			{Placeholder: "arg_summarise_num_steps_subj", Concept: "plan"},
			{Placeholder: "arg_summarise_num_steps_num", Concept: "step"},
		},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	snap, err := l.Finalize()
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	return snap
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := New(testSnapshot(t), nil, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, wantStatus int, out any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: status %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func TestHandleSubclass(t *testing.T) {
	ts := testServer(t)

	var resp subclassResponse
	getJSON(t, ts.URL+"/api/taxonomy/subclass?class=drum&ancestor=object", http.StatusOK, &resp)
	if !resp.IsSubclass {
		t.Error("drum should be a subclass of object")
	}

	getJSON(t, ts.URL+"/api/taxonomy/subclass?class=object&ancestor=drum", http.StatusOK, &resp)
	if resp.IsSubclass {
		t.Error("object should not be a subclass of drum")
	}
}

func TestHandleSubclassErrors(t *testing.T) {
	ts := testServer(t)

	getJSON(t, ts.URL+"/api/taxonomy/subclass?class=drum", http.StatusBadRequest, nil)
	getJSON(t, ts.URL+"/api/taxonomy/subclass?class=widget&ancestor=object", http.StatusNotFound, nil)
}

func TestHandleClasses(t *testing.T) {
	ts := testServer(t)

	var resp classesResponse
	getJSON(t, ts.URL+"/api/taxonomy/classes?individual=obj11", http.StatusOK, &resp)

	want := []string{"drum", "package", "physobj", "object"}
	if len(resp.Classes) != len(want) {
		t.Fatalf("classes = %v, want %v", resp.Classes, want)
	}
	for i := range want {
		if resp.Classes[i] != want[i] {
			t.Errorf("classes[%d] = %q, want %q", i, resp.Classes[i], want[i])
		}
	}

	getJSON(t, ts.URL+"/api/taxonomy/classes?individual=obj99", http.StatusNotFound, nil)
}

func TestHandleEntry(t *testing.T) {
	ts := testServer(t)

	var resp entryResponse
	getJSON(t, ts.URL+"/api/lexicon/entry?id=summarise_num_steps", http.StatusOK, &resp)
	if resp.POS != "verb" {
		t.Errorf("pos = %q, want verb", resp.POS)
	}
	if resp.Frame == nil || len(resp.Frame.Edges) != 3 {
		t.Fatalf("frame = %+v, want 3 edges", resp.Frame)
	}
	if resp.Canonical.Language != "en" {
		t.Errorf("language = %q, want en", resp.Canonical.Language)
	}

	getJSON(t, ts.URL+"/api/lexicon/entry?id=missing", http.StatusNotFound, nil)
}

func TestHandleResolve(t *testing.T) {
	ts := testServer(t)

	body := `{"entry":"summarise_num_steps","substitutions":{` +
		`"arg_summarise_num_steps_subj":"the plan","arg_summarise_num_steps_num":"12"}}`
	resp, err := http.Post(ts.URL+"/api/lexicon/resolve", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out resolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Realization != "have the plan step 12" {
		t.Errorf("realization = %q", out.Realization)
	}
}

func TestHandleResolveUnbound(t *testing.T) {
	ts := testServer(t)

	body := `{"entry":"summarise_num_steps","substitutions":{}}`
	resp, err := http.Post(ts.URL+"/api/lexicon/resolve", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}

	var out errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(out.Error, "arg_summarise_num_steps_subj") {
		t.Errorf("error should name the first unresolved placeholder, got %q", out.Error)
	}
}

func TestHandleStatus(t *testing.T) {
	ts := testServer(t)

	var resp statusResponse
	getJSON(t, ts.URL+"/api/status", http.StatusOK, &resp)
	if resp.SnapshotID == "" {
		t.Error("snapshot_id should not be empty")
	}
	if resp.Classes != 6 || resp.Individuals != 1 || resp.Entries != 2 {
		t.Errorf("counts = %+v", resp)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Post(ts.URL+"/api/status", "application/json", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := testServer(t)

	// Generate a query so counters exist.
	getJSON(t, ts.URL+"/api/status", http.StatusOK, nil)

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	body := string(raw)
	for _, want := range []string{"ontolex_queries_total", "ontolex_snapshot_classes"} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestSnapshotSwap(t *testing.T) {
	srv := New(testSnapshot(t), nil, nil)
	oldID := srv.Snapshot().ID

	srv.swap(testSnapshot(t))
	if srv.Snapshot().ID == oldID {
		t.Error("swap should install a new snapshot")
	}
}
