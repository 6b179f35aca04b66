package approval

import "strings"

type Kind string

const (
	KindUser    Kind = "user"
	KindLeave   Kind = "leave"
	KindMission Kind = "mission"
)

// ParseKind accepts the resource names used by the admin client.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user", "users":
		return KindUser, true
	case "leave", "leaves":
		return KindLeave, true
	case "mission", "missions":
		return KindMission, true
	}
	return "", false
}

// Decisions an admin can submit. STAFF and ADMIN only apply to user
// registrations and double as the role to grant.
const (
	DecisionApproved = "APPROVED"
	DecisionRejected = "REJECTED"
	DecisionStaff    = "STAFF"
	DecisionAdmin    = "ADMIN"
)
