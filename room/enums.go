package room

import (
	"github.com/casualjim/mxevents/pkg/enumx"
	"github.com/invopop/jsonschema"
)

// Membership is the membership state of a user in a room.
//
// The zero value is the catch-all for wire values this package does not
// know. It is never serialized.
type Membership uint8

const (
	membershipNonexhaustive Membership = iota

	// Ban means the user is banned.
	Ban
	// Invite means the user has been invited.
	Invite
	// Join means the user has joined.
	Join
	// Knock means the user has requested to join.
	Knock
	// Leave means the user has left.
	Leave
)

var memberships = enumx.NewTable("membership", membershipNonexhaustive,
	enumx.Entry[Membership]{Value: Ban, Wire: "ban"},
	enumx.Entry[Membership]{Value: Invite, Wire: "invite"},
	enumx.Entry[Membership]{Value: Join, Wire: "join"},
	enumx.Entry[Membership]{Value: Knock, Wire: "knock"},
	enumx.Entry[Membership]{Value: Leave, Wire: "leave"},
)

// IsKnown reports whether m is a named membership rather than the catch-all.
func (m Membership) IsKnown() bool { return memberships.Known(m) }

// String returns the wire string, or "unknown" for the catch-all.
func (m Membership) String() string {
	if !m.IsKnown() {
		return "unknown"
	}
	return memberships.Wire(m)
}

// MarshalText implements encoding.TextMarshaler. It panics on the catch-all.
func (m Membership) MarshalText() ([]byte, error) { return []byte(memberships.Wire(m)), nil }

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values decode to
// the catch-all instead of failing.
func (m *Membership) UnmarshalText(data []byte) error {
	*m = memberships.Parse(string(data))
	return nil
}

// UnmarshalJSON is UnmarshalText for JSON input. A token that is not a string
// is a type error.
func (m *Membership) UnmarshalJSON(data []byte) error {
	v, err := memberships.ParseJSON(data)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// JSONSchema describes the wire values of Membership.
func (Membership) JSONSchema() *jsonschema.Schema { return memberships.JSONSchema() }

// JoinRule controls who may join a room.
type JoinRule uint8

const (
	joinRuleNonexhaustive JoinRule = iota

	// JoinRuleInvite means a user who wishes to join must first receive an
	// invite.
	JoinRuleInvite
	// JoinRuleKnock means a user may request an invite.
	JoinRuleKnock
	// JoinRulePrivate is reserved and has no defined behavior yet.
	JoinRulePrivate
	// JoinRulePublic means anyone can join without an invite.
	JoinRulePublic
)

var joinRules = enumx.NewTable("join rule", joinRuleNonexhaustive,
	enumx.Entry[JoinRule]{Value: JoinRuleInvite, Wire: "invite"},
	enumx.Entry[JoinRule]{Value: JoinRuleKnock, Wire: "knock"},
	enumx.Entry[JoinRule]{Value: JoinRulePrivate, Wire: "private"},
	enumx.Entry[JoinRule]{Value: JoinRulePublic, Wire: "public"},
)

// IsKnown reports whether r is a named join rule rather than the catch-all.
func (r JoinRule) IsKnown() bool { return joinRules.Known(r) }

// String returns the wire string, or "unknown" for the catch-all.
func (r JoinRule) String() string {
	if !r.IsKnown() {
		return "unknown"
	}
	return joinRules.Wire(r)
}

// MarshalText implements encoding.TextMarshaler. It panics on the catch-all.
func (r JoinRule) MarshalText() ([]byte, error) { return []byte(joinRules.Wire(r)), nil }

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values decode to
// the catch-all instead of failing.
func (r *JoinRule) UnmarshalText(data []byte) error {
	*r = joinRules.Parse(string(data))
	return nil
}

// UnmarshalJSON is UnmarshalText for JSON input. A token that is not a string
// is a type error.
func (r *JoinRule) UnmarshalJSON(data []byte) error {
	v, err := joinRules.ParseJSON(data)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// JSONSchema describes the wire values of JoinRule.
func (JoinRule) JSONSchema() *jsonschema.Schema { return joinRules.JSONSchema() }

// HistoryVisibility controls who can see the room's history.
type HistoryVisibility uint8

const (
	historyVisibilityNonexhaustive HistoryVisibility = iota

	// Invited members can see events sent after they were invited.
	Invited
	// Joined members can see events sent after they joined.
	Joined
	// Shared lets members see everything, including events from before they
	// joined.
	Shared
	// WorldReadable lets anyone, member or not, read the history.
	WorldReadable
)

var historyVisibilities = enumx.NewTable("history visibility", historyVisibilityNonexhaustive,
	enumx.Entry[HistoryVisibility]{Value: Invited, Wire: "invited"},
	enumx.Entry[HistoryVisibility]{Value: Joined, Wire: "joined"},
	enumx.Entry[HistoryVisibility]{Value: Shared, Wire: "shared"},
	enumx.Entry[HistoryVisibility]{Value: WorldReadable, Wire: "world_readable"},
)

// IsKnown reports whether v is a named history visibility rather than the catch-all.
func (v HistoryVisibility) IsKnown() bool { return historyVisibilities.Known(v) }

// String returns the wire string, or "unknown" for the catch-all.
func (v HistoryVisibility) String() string {
	if !v.IsKnown() {
		return "unknown"
	}
	return historyVisibilities.Wire(v)
}

// MarshalText implements encoding.TextMarshaler. It panics on the catch-all.
func (v HistoryVisibility) MarshalText() ([]byte, error) {
	return []byte(historyVisibilities.Wire(v)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values decode to
// the catch-all instead of failing.
func (v *HistoryVisibility) UnmarshalText(data []byte) error {
	*v = historyVisibilities.Parse(string(data))
	return nil
}

// UnmarshalJSON is UnmarshalText for JSON input. A token that is not a string
// is a type error.
func (v *HistoryVisibility) UnmarshalJSON(data []byte) error {
	parsed, err := historyVisibilities.ParseJSON(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// JSONSchema describes the wire values of HistoryVisibility.
func (HistoryVisibility) JSONSchema() *jsonschema.Schema { return historyVisibilities.JSONSchema() }

// GuestAccess controls whether guest users may join.
type GuestAccess uint8

const (
	guestAccessNonexhaustive GuestAccess = iota

	// CanJoin lets guests join the room.
	CanJoin
	// Forbidden keeps guests out.
	Forbidden
)

var guestAccesses = enumx.NewTable("guest access", guestAccessNonexhaustive,
	enumx.Entry[GuestAccess]{Value: CanJoin, Wire: "can_join"},
	enumx.Entry[GuestAccess]{Value: Forbidden, Wire: "forbidden"},
)

// IsKnown reports whether g is a named guest access setting rather than the catch-all.
func (g GuestAccess) IsKnown() bool { return guestAccesses.Known(g) }

// String returns the wire string, or "unknown" for the catch-all.
func (g GuestAccess) String() string {
	if !g.IsKnown() {
		return "unknown"
	}
	return guestAccesses.Wire(g)
}

// MarshalText implements encoding.TextMarshaler. It panics on the catch-all.
func (g GuestAccess) MarshalText() ([]byte, error) { return []byte(guestAccesses.Wire(g)), nil }

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values decode to
// the catch-all instead of failing.
func (g *GuestAccess) UnmarshalText(data []byte) error {
	*g = guestAccesses.Parse(string(data))
	return nil
}

// UnmarshalJSON is UnmarshalText for JSON input. A token that is not a string
// is a type error.
func (g *GuestAccess) UnmarshalJSON(data []byte) error {
	v, err := guestAccesses.ParseJSON(data)
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// JSONSchema describes the wire values of GuestAccess.
func (GuestAccess) JSONSchema() *jsonschema.Schema { return guestAccesses.JSONSchema() }
