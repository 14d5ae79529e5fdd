package routetable

import (
	"net/http"
	"testing"
)

func TestDefault(t *testing.T) {
	table := Default()

	if table.Len() != 6 {
		t.Fatalf("expected 6 default routes, got %d", table.Len())
	}

	want := map[string]string{
		"/":            "Rocket server is running",
		"/todo":        "Todo is working",
		"/todo/school": "school todo sample",
		"/todo/watch":  "to watch sample",
		"/todo/read":   "to read sample",
		"/todo/make":   "to make sample",
	}

	for path, body := range want {
		r, ok := table.Lookup(http.MethodGet, path)
		if !ok {
			t.Errorf("expected route for GET %s", path)
			continue
		}
		if r.Body != body {
			t.Errorf("GET %s: expected body %q, got %q", path, body, r.Body)
		}
	}

	if err := table.Validate(); err != nil {
		t.Errorf("default table should validate, got %v", err)
	}
}

func TestNew(t *testing.T) {
	routes := []Route{
		{Method: http.MethodGet, Path: "/", Body: "root"},
		{Method: http.MethodGet, Path: "/other", Body: "other"},
	}

	table, err := New(routes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("expected 2 routes, got %d", table.Len())
	}

	// The table must hold its own copy of the input slice.
	routes[0].Body = "mutated"
	r, ok := table.Lookup(http.MethodGet, "/")
	if !ok {
		t.Fatal("expected route for GET /")
	}
	if r.Body != "root" {
		t.Errorf("table shares memory with caller slice: got body %q", r.Body)
	}
}

func TestNewRejectsInvalidRoutes(t *testing.T) {
	tests := []struct {
		name   string
		routes []Route
	}{
		{
			name:   "empty table",
			routes: nil,
		},
		{
			name: "non-GET method",
			routes: []Route{
				{Method: http.MethodPost, Path: "/", Body: "root"},
			},
		},
		{
			name: "path without leading slash",
			routes: []Route{
				{Method: http.MethodGet, Path: "todo", Body: "todo"},
			},
		},
		{
			name: "empty body",
			routes: []Route{
				{Method: http.MethodGet, Path: "/", Body: ""},
			},
		},
		{
			name: "duplicate path",
			routes: []Route{
				{Method: http.MethodGet, Path: "/", Body: "a"},
				{Method: http.MethodGet, Path: "/", Body: "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.routes); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLookup(t *testing.T) {
	table := Default()

	if _, ok := table.Lookup(http.MethodGet, "/todo/school"); !ok {
		t.Error("expected GET /todo/school to be found")
	}
	if _, ok := table.Lookup(http.MethodGet, "/missing"); ok {
		t.Error("expected GET /missing to be absent")
	}
	if _, ok := table.Lookup(http.MethodPost, "/todo"); ok {
		t.Error("expected POST /todo to be absent")
	}
}

func TestRoutesReturnsCopy(t *testing.T) {
	table := Default()

	routes := table.Routes()
	routes[0].Body = "mutated"

	r, ok := table.Lookup(http.MethodGet, routes[0].Path)
	if !ok {
		t.Fatalf("expected route for GET %s", routes[0].Path)
	}
	if r.Body == "mutated" {
		t.Error("Routes() must return a copy, not the backing slice")
	}
}
