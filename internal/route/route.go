// Package route decides whether a request shows a collection or one record.
//
// The decision is recomputed from the request's query on every render; the
// package keeps no state between requests.
package route

import (
	"net/url"

	"github.com/awc-hub/awchub/internal/content"
)

// Query parameter names.
const (
	ParamID           = "id"
	ParamSearch       = "q"
	ParamTournamentID = "tournament_id"
)

// State is the view a request resolves to.
type State int

const (
	// StateList shows the (optionally filtered) collection.
	StateList State = iota
	// StateDetail shows a single record.
	StateDetail
)

func (s State) String() string {
	switch s {
	case StateList:
		return "list"
	case StateDetail:
		return "detail"
	}
	return "unknown"
}

// Query is the request context a route is resolved from. url.Values satisfies it.
type Query interface {
	Get(key string) string
}

// Route is the resolved view for one render.
type Route[T content.Entity] struct {
	State State

	// RequestedID is the id parameter as received, or "".
	RequestedID string

	// NotFound is set when an id was requested but no record has it.
	// The route is then a list route that must tell the user the link is stale.
	NotFound bool

	// Item is the selected record in StateDetail.
	Item T

	// Items is the full collection in StateList.
	Items []T
}

// Resolve picks the view for items given the request query.
//
// A non-empty id that equals a record's ID selects that record (the first
// match in collection order). Anything else is a list; an unknown id is a
// list flagged NotFound.
func Resolve[T content.Entity](items []T, q Query) Route[T] {
	id := ""
	if q != nil {
		id = q.Get(ParamID)
	}
	if id == "" {
		return Route[T]{State: StateList, Items: items}
	}

	if item, ok := content.Find(items, id); ok {
		return Route[T]{State: StateDetail, RequestedID: id, Item: item}
	}
	return Route[T]{State: StateList, RequestedID: id, NotFound: true, Items: items}
}

// IsDetail reports whether the route shows a single record.
func (r Route[T]) IsDetail() bool {
	return r.State == StateDetail
}

// ListURL returns path with the current query minus the id parameter.
// Following it always lands on the list view.
func ListURL(path string, values url.Values) string {
	next := url.Values{}
	for key, vals := range values {
		if key == ParamID {
			continue
		}
		next[key] = append([]string(nil), vals...)
	}
	if len(next) == 0 {
		return path
	}
	return path + "?" + next.Encode()
}

// DetailURL returns the URL of the detail view of id under path.
func DetailURL(path, id string) string {
	return path + "?" + url.Values{ParamID: {id}}.Encode()
}
