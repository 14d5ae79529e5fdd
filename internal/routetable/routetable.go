package routetable

import (
	"fmt"
	"net/http"
	"strings"
)

// Route binds an HTTP method and path to the fixed string it serves.
// The body is sent as a JSON-encoded string, so a Route with Body "ok"
// answers `"ok"`.
type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Body   string `json:"body"`
}

// Table is an immutable set of routes. Build one with New or Default and
// hand it to the server; nothing mutates it afterwards.
type Table struct {
	routes []Route
}

// New builds a Table from the given routes. The slice is copied so the
// caller can keep using it. Returns an error if any route is invalid.
func New(routes []Route) (*Table, error) {
	t := &Table{routes: make([]Route, len(routes))}
	copy(t.routes, routes)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Default returns the built-in route set.
func Default() *Table {
	return &Table{routes: []Route{
		{Method: http.MethodGet, Path: "/", Body: "Rocket server is running"},
		{Method: http.MethodGet, Path: "/todo", Body: "Todo is working"},
		{Method: http.MethodGet, Path: "/todo/school", Body: "school todo sample"},
		{Method: http.MethodGet, Path: "/todo/watch", Body: "to watch sample"},
		{Method: http.MethodGet, Path: "/todo/read", Body: "to read sample"},
		{Method: http.MethodGet, Path: "/todo/make", Body: "to make sample"},
	}}
}

// Routes returns a copy of the route list in registration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Len returns the number of routes in the table.
func (t *Table) Len() int {
	return len(t.routes)
}

// Lookup returns the route registered for the given method and path.
func (t *Table) Lookup(method, path string) (Route, bool) {
	for _, r := range t.routes {
		if r.Method == method && r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Validate checks if every route in the table is valid.
func (t *Table) Validate() error {
	if len(t.routes) == 0 {
		return fmt.Errorf("route table must contain at least one route")
	}

	seen := make(map[string]struct{}, len(t.routes))
	for i, r := range t.routes {
		if r.Method != http.MethodGet {
			return fmt.Errorf("route %d: method must be GET, got %q", i, r.Method)
		}
		if !strings.HasPrefix(r.Path, "/") {
			return fmt.Errorf("route %d: path must start with /, got %q", i, r.Path)
		}
		if r.Body == "" {
			return fmt.Errorf("route %d: body must not be empty", i)
		}

		key := r.Method + " " + r.Path
		if _, dup := seen[key]; dup {
			return fmt.Errorf("route %d: duplicate registration for %s", i, key)
		}
		seen[key] = struct{}{}
	}

	return nil
}
