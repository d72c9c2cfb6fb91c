// Package router maps a request method and path to a handler through an explicit route table.
package router

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/exp/slog"
)

const notFoundBody = "404 Not Found"

// Request is the transport independent view of an incoming request.
type Request struct {
	Method string
	Path   string
	Body   string
	params map[string]string
}

// Param returns the value captured for a {name} placeholder, or "".
func (r Request) Param(name string) string {
	return r.params[name]
}

// WithParam returns a copy of r with name bound to value.
func (r Request) WithParam(name, value string) Request {
	params := make(map[string]string, len(r.params)+1)
	for k, v := range r.params {
		params[k] = v
	}
	params[name] = value
	r.params = params
	return r
}

type HandlerFunc func(ctx context.Context, req Request) Response

// Route binds a method and a pattern to a handler. A pattern is a literal prefix,
// optionally ending in one {name} segment, e.g. "/icecreams/{id}".
type Route struct {
	Method  string
	Pattern string
	Handle  HandlerFunc
}

type compiled struct {
	Route
	prefix     string
	param      string
	paramIndex int
}

type Router struct {
	routes []compiled
	log    *slog.Logger
}

// New compiles the routes and orders them most specific first, so that
// "/icecreams/{id}" is tried before "/icecreams" regardless of registration order.
func New(log *slog.Logger, routes ...Route) *Router {
	table := make([]compiled, 0, len(routes))
	for _, r := range routes {
		table = append(table, compile(r))
	}
	sort.SliceStable(table, func(i, j int) bool {
		return len(table[i].prefix) > len(table[j].prefix)
	})

	return &Router{
		routes: table,
		log:    log.With("component", "router"),
	}
}

func compile(r Route) compiled {
	c := compiled{Route: r, prefix: r.Pattern, paramIndex: -1}

	open := strings.Index(r.Pattern, "{")
	if open < 0 || !strings.HasSuffix(r.Pattern, "}") {
		return c
	}
	c.prefix = r.Pattern[:open]
	c.param = r.Pattern[open+1 : len(r.Pattern)-1]
	c.paramIndex = strings.Count(c.prefix, "/")
	return c
}

// Dispatch runs the first matching route. Unmatched requests get a 404 and no handler runs.
func (rt *Router) Dispatch(ctx context.Context, req Request) Response {
	for _, r := range rt.routes {
		if r.Method != req.Method || !strings.HasPrefix(req.Path, r.prefix) {
			continue
		}
		if r.param != "" {
			req = req.WithParam(r.param, Segment(req.Path, r.paramIndex))
		}
		rt.log.Debug("route matched", "method", req.Method, "pattern", r.Pattern)
		return r.Handle(ctx, req)
	}

	rt.log.Debug("no route matched", "method", req.Method, "path", req.Path)
	return NotFound(notFoundBody)
}

// Segment returns the i-th "/" separated part of path cut at the first whitespace.
// For "/icecreams/5" index 2 is "5". Missing segments yield "".
func Segment(path string, i int) string {
	parts := strings.Split(path, "/")
	if i < 0 || i >= len(parts) {
		return ""
	}
	fields := strings.Fields(parts[i])
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
