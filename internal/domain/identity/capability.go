package identity

import (
	"sort"
	"strings"
)

// Capability names a screen or operation a user may access. The permission
// gate is a capability-set check, not string matching against route names.
type Capability string

// All is a reserved sentinel granting every capability. It is checked as a
// set member, never compared against individual capability names.
const All Capability = "*"

// Capabilities known to the application, one per page of the desktop client.
const (
	CapDashboard Capability = "dashboard"
	CapAssets    Capability = "assets"
	CapCustomers Capability = "customers"
	CapSuppliers Capability = "suppliers"
	CapPurchases Capability = "purchases"
	CapSales     Capability = "sales"
	CapPayments  Capability = "payments"
	CapReceipts  Capability = "receipts"
	CapExpenses  Capability = "expenses"
	CapUsers     Capability = "users"
	CapReports   Capability = "reports"
)

// CapabilitySet is the set of capabilities granted to a user.
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	s := make(CapabilitySet, len(caps))
	for _, c := range caps {
		if c != "" {
			s[c] = struct{}{}
		}
	}
	return s
}

// ParseCapabilitySet parses a comma-separated capability list as stored on a
// user record. Blank entries are ignored.
func ParseCapabilitySet(raw string) CapabilitySet {
	s := make(CapabilitySet)
	for _, part := range strings.Split(raw, ",") {
		if c := Capability(strings.TrimSpace(part)); c != "" {
			s[c] = struct{}{}
		}
	}
	return s
}

// Allows reports whether the set grants the capability, either directly or
// through the All sentinel.
func (s CapabilitySet) Allows(c Capability) bool {
	if _, ok := s[All]; ok {
		return true
	}
	_, ok := s[c]
	return ok
}

// List returns the capabilities in stable sorted order.
func (s CapabilitySet) List() []Capability {
	out := make([]Capability, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders the set back to its stored comma-separated form.
func (s CapabilitySet) String() string {
	caps := s.List()
	parts := make([]string, len(caps))
	for i, c := range caps {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}
