package lifecycle

import (
	"fmt"

	"github.com/wellywell/orderdesk/internal/types"
)

// Display is the label and color tag a view renders for a status.
type Display struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

const fallbackColor = "default"

type descriptor struct {
	status   types.Status
	admin    Display
	customer Display
	next     []types.Status
}

// descriptors is the single source for both audience tables and the admin
// transition rule. Order here is the order Statuses and ValidTransitions report.
var descriptors = []descriptor{
	{
		status:   types.PendingStatus,
		admin:    Display{Label: "received", Color: "orange"},
		customer: Display{Label: "order received", Color: "orange"},
		next:     []types.Status{types.PreparingStatus, types.CancelledStatus},
	},
	{
		status:   types.PreparingStatus,
		admin:    Display{Label: "in production", Color: "blue"},
		customer: Display{Label: "in production", Color: "blue"},
		next:     []types.Status{types.ShippingStatus},
	},
	{
		status:   types.ShippingStatus,
		admin:    Display{Label: "shipped", Color: "purple"},
		customer: Display{Label: "in transit", Color: "purple"},
		next:     []types.Status{types.CompletedStatus},
	},
	{
		status:   types.CompletedStatus,
		admin:    Display{Label: "done", Color: "green"},
		customer: Display{Label: "delivered", Color: "green"},
	},
	{
		status:   types.CancelledStatus,
		admin:    Display{Label: "canceled", Color: "red"},
		customer: Display{Label: "canceled", Color: "red"},
	},
}

var (
	tables      map[types.Audience]map[types.Status]Display
	transitions map[types.Status][]types.Status
	statuses    []types.Status
)

func init() {
	tables = map[types.Audience]map[types.Status]Display{
		types.AdminAudience:    make(map[types.Status]Display, len(descriptors)),
		types.CustomerAudience: make(map[types.Status]Display, len(descriptors)),
	}
	transitions = make(map[types.Status][]types.Status, len(descriptors))

	for _, d := range descriptors {
		if _, dup := transitions[d.status]; dup {
			panic(fmt.Sprintf("lifecycle: status %q declared twice", d.status))
		}
		if d.admin.Label == "" || d.customer.Label == "" {
			panic(fmt.Sprintf("lifecycle: status %q has no label", d.status))
		}
		tables[types.AdminAudience][d.status] = d.admin
		tables[types.CustomerAudience][d.status] = d.customer
		transitions[d.status] = d.next
		statuses = append(statuses, d.status)
	}

	for from, next := range transitions {
		for _, to := range next {
			if _, ok := transitions[to]; !ok {
				panic(fmt.Sprintf("lifecycle: %q leads to undeclared status %q", from, to))
			}
		}
	}
}

// Statuses returns every known status in lifecycle order.
func Statuses() []types.Status {
	out := make([]types.Status, len(statuses))
	copy(out, statuses)
	return out
}

// IsValid reports whether s is one of the known statuses.
func IsValid(s types.Status) bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether s is a known status with no outgoing transitions.
func IsTerminal(s types.Status) bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// ParseStatus converts a raw value into a Status, failing with
// ErrInvalidStatus for anything outside the enum.
func ParseStatus(raw string) (types.Status, error) {
	s := types.Status(raw)
	if !IsValid(s) {
		return "", fmt.Errorf("%w", &InvalidStatusError{Status: raw})
	}
	return s, nil
}

// DisplayInfo never fails: statuses this build does not know render with
// their raw value and a neutral color. An empty status renders as pending.
func DisplayInfo(status string, audience types.Audience) Display {
	if status == "" {
		status = string(types.PendingStatus)
	}
	table, ok := tables[audience]
	if !ok {
		table = tables[types.CustomerAudience]
	}
	if d, ok := table[types.Status(status)]; ok {
		return d
	}
	return Display{Label: status, Color: fallbackColor}
}

// Table returns the full metadata table for audience, keyed by status.
func Table(audience types.Audience) map[types.Status]Display {
	table, ok := tables[audience]
	if !ok {
		return nil
	}
	out := make(map[types.Status]Display, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}
