// Package entities is the thin per-entity configuration layer of the table
// engine. Each admin table contributes endpoint, response shape, status
// vocabulary, allowed actions and export fields here; all control flow lives
// in the generic engine.
package entities

import (
	"fmt"
	"net/http"
	"sort"
)

// ActionSpec describes one state-transition request for an entity.
type ActionSpec struct {
	// Method is the HTTP verb the API expects for this transition.
	Method string
	// Suffix is appended after the record id, e.g. "/approve". Empty for
	// plain update/delete calls.
	Suffix string
	// From lists the source statuses the transition makes sense for. Empty
	// means any; the server stays authoritative either way.
	From []string
}

// FieldOption maps a record attribute to its export column label.
type FieldOption struct {
	Label string
	Value string
}

// Config is everything the generic engine needs to drive one entity table.
type Config struct {
	// Name is the registry key, e.g. "bookings".
	Name string
	// Title is the human-readable singular/plural heading used in exports.
	Title string
	// Path is the REST collection path.
	Path string
	// ArrayField is the entity-named array key some list responses use.
	ArrayField string
	// DateField is the timestamp attribute date-range filters apply to.
	DateField string
	// Statuses is the entity's status vocabulary in declaration order.
	Statuses []string
	// ExclusiveStatus marks tables whose status family is single-select.
	ExclusiveStatus bool
	// Actions maps action name to its request spec.
	Actions map[string]ActionSpec
	// ExportFields lists the exportable attributes with column labels.
	ExportFields []FieldOption
}

// Action resolves an action spec by name.
func (c Config) Action(name string) (ActionSpec, error) {
	spec, ok := c.Actions[name]
	if !ok {
		return ActionSpec{}, fmt.Errorf("entity %s has no action %q", c.Name, name)
	}
	return spec, nil
}

// ActionPath builds the request path for one record and action.
func (c Config) ActionPath(id string, spec ActionSpec) string {
	return c.Path + "/" + id + spec.Suffix
}

// ActionNames returns the entity's action names sorted.
func (c Config) ActionNames() []string {
	names := make([]string, 0, len(c.Actions))
	for name := range c.Actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AllowsFrom reports whether the transition is plausible from the given
// status. Used for affordance checks only; the server decides for real.
func (s ActionSpec) AllowsFrom(status string) bool {
	if len(s.From) == 0 {
		return true
	}
	for _, from := range s.From {
		if from == status {
			return true
		}
	}
	return false
}

// deleteSpec is shared by every entity that supports hard deletion.
var deleteSpec = ActionSpec{Method: http.MethodDelete}
