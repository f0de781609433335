// Package route derives logical screens from URL-style hash fragments and
// notifies listeners when the location changes.
//
// The recognized fragment shapes are:
//
//	""  or "/"     -> Root
//	"/new"         -> Create
//	"/edit/<id>"   -> Edit, with the id bound as a parameter
//
// Anything else falls back to Root and the fragment is rewritten to "/".
package route

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Name identifies a logical screen.
type Name string

const (
	Root   Name = "root"
	Create Name = "create"
	Edit   Name = "edit"
)

// Marker prefixes a pattern segment that binds a path parameter.
const Marker = ":"

// editPattern is the one parameterized route.
const editPattern = "/edit/" + Marker + "id"

// State is a fully resolved location: the logical route, the bound path
// parameters, and the decoded query values. It is derived entirely from
// the fragment and never persisted.
type State struct {
	Route  Name
	Params map[string]string
	Query  map[string]string
}

// Router owns the current fragment and fans out change notifications.
// It is single-writer and synchronous, like the rest of the core.
type Router struct {
	fragment  string
	state     State
	order     []string
	listeners map[string]func(State)
}

// New returns a router positioned on the root route.
func New() *Router {
	return &Router{
		fragment:  "/",
		state:     State{Route: Root, Params: map[string]string{}, Query: map[string]string{}},
		listeners: map[string]func(State){},
	}
}

// Fragment returns the current fragment.
func (r *Router) Fragment() string {
	return r.fragment
}

// Current returns the resolved state for the current fragment.
func (r *Router) Current() State {
	return r.state
}

// SetFragment feeds an external fragment change into the router. Setting
// the fragment already shown is a no-op. An unrecognized fragment lands on
// the root route and rewrites the stored fragment to "/" without a second
// notification.
func (r *Router) SetFragment(fragment string) {
	r.apply(fragment)
}

// Navigate builds the fragment for the named route and applies it through
// the same change path as an external fragment update. For Edit, params
// supplies the id segment.
func (r *Router) Navigate(name Name, params map[string]string) {
	r.apply(Build(name, params))
}

// Subscribe registers a listener invoked synchronously with the new state
// after every effective route change. The returned function deregisters
// exactly that listener and is safe to call more than once.
func (r *Router) Subscribe(fn func(State)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	token := uuid.NewString()
	r.order = append(r.order, token)
	r.listeners[token] = fn
	return func() {
		if _, ok := r.listeners[token]; !ok {
			return
		}
		delete(r.listeners, token)
		for i, t := range r.order {
			if t == token {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
}

func (r *Router) apply(fragment string) {
	fragment = canonical(fragment)
	if fragment == r.fragment {
		return
	}
	state, ok := Resolve(fragment)
	if !ok {
		// Unknown shape: land on root. The rewrite below replaces the
		// fragment directly, so no second notification can fire, and the
		// state is re-resolved so no query from the rejected fragment
		// leaks through.
		fragment = "/"
		if fragment == r.fragment {
			return
		}
		state, _ = Resolve(fragment)
	}
	r.fragment = fragment
	r.state = state
	for _, token := range append([]string(nil), r.order...) {
		if fn, live := r.listeners[token]; live {
			fn(state)
		}
	}
}

// Resolve parses a fragment into route state. ok is false when the path
// shape is unrecognized; the returned state is then the root fallback with
// the query still parsed.
func Resolve(fragment string) (State, bool) {
	fragment = canonical(fragment)
	path, rawQuery, _ := strings.Cut(fragment, "?")

	state := State{Route: Root, Params: map[string]string{}, Query: ParseQuery(rawQuery)}
	switch {
	case path == "" || path == "/":
		return state, true
	case path == "/new":
		state.Route = Create
		return state, true
	case Match(editPattern, path):
		state.Route = Edit
		state.Params = Params(editPattern, path)
		return state, true
	}
	return state, false
}

// Build produces the fragment for a named route, substituting the id into
// the edit placeholder. Unknown names map to "/".
func Build(name Name, params map[string]string) string {
	switch name {
	case Create:
		return "/new"
	case Edit:
		if id := params["id"]; id != "" {
			return "/edit/" + id
		}
	}
	return "/"
}

// Match reports whether path fits pattern segment-by-segment. Empty
// segments are ignored, segment counts must agree exactly, and a pattern
// segment prefixed with Marker matches any path segment.
func Match(pattern, path string) bool {
	pat := segments(pattern)
	got := segments(path)
	if len(pat) != len(got) {
		return false
	}
	for i, seg := range pat {
		if strings.HasPrefix(seg, Marker) {
			continue
		}
		if seg != got[i] {
			return false
		}
	}
	return true
}

// Params binds each Marker-prefixed pattern segment to the corresponding
// path segment, keyed by the parameter name with the marker stripped.
func Params(pattern, path string) map[string]string {
	pat := segments(pattern)
	got := segments(path)
	params := map[string]string{}
	for i, seg := range pat {
		if strings.HasPrefix(seg, Marker) && i < len(got) {
			params[strings.TrimPrefix(seg, Marker)] = got[i]
		}
	}
	return params
}

// ParseQuery decodes a raw query string into a key-value map. A key with
// no "=" maps to the empty string; keys and values are URL-decoded, with
// undecodable input kept verbatim.
func ParseQuery(rawQuery string) map[string]string {
	query := map[string]string{}
	if rawQuery == "" {
		return query
	}
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			continue
		}
		query[decode(key)] = decode(value)
	}
	return query
}

func decode(s string) string {
	if decoded, err := url.QueryUnescape(s); err == nil {
		return decoded
	}
	return s
}

func segments(path string) []string {
	var segs []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}

func canonical(fragment string) string {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return "/"
	}
	return fragment
}
