package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRunWithIO_ForwardsRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req["id"],
			"result":  map[string]interface{}{"ok": true},
		})
	}))
	defer srv.Close()

	proxy := &StdioProxy{serverURL: srv.URL}

	in := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}` + "\n")
	var out bytes.Buffer
	if err := proxy.RunWithIO(in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v (%q)", err, out.String())
	}
	if resp["id"] != float64(1) {
		t.Errorf("id = %v", resp["id"])
	}
	if resp["error"] != nil {
		t.Errorf("unexpected error field: %v", resp["error"])
	}
}

func TestRunWithIO_ServerFailureYieldsJSONRPCError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	proxy := &StdioProxy{serverURL: srv.URL}

	in := strings.NewReader(`{"jsonrpc":"2.0","id":7,"method":"tools/call"}` + "\n")
	var out bytes.Buffer
	if err := proxy.RunWithIO(in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		ID    json.RawMessage `json:"id"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v (%q)", err, out.String())
	}
	if string(resp.ID) != "7" {
		t.Errorf("id = %s, want 7", resp.ID)
	}
	if resp.Error == nil || resp.Error.Code != -32000 {
		t.Errorf("error = %+v", resp.Error)
	}
}

func TestRunWithIO_SkipsBlankLines(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{}}`))
	}))
	defer srv.Close()

	proxy := &StdioProxy{serverURL: srv.URL}

	in := strings.NewReader("\n\n" + `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n\n")
	var out bytes.Buffer
	if err := proxy.RunWithIO(in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("server called %d times, want 1", calls)
	}
}

func TestExtractID(t *testing.T) {
	if got := extractID([]byte(`{"id":42}`)); string(got) != "42" {
		t.Errorf("got %s", got)
	}
	if got := extractID([]byte(`{"id":"abc"}`)); string(got) != `"abc"` {
		t.Errorf("got %s", got)
	}
	if got := extractID([]byte(`not json`)); string(got) != "null" {
		t.Errorf("got %s", got)
	}
	if got := extractID([]byte(`{}`)); string(got) != "null" {
		t.Errorf("got %s", got)
	}
}
