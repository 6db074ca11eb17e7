package invites

type InviteStatus string

const (
	InviteStatusPending   InviteStatus = "PENDING"
	InviteStatusAccepted  InviteStatus = "ACCEPTED"
	InviteStatusDeclined  InviteStatus = "DECLINED"
	InviteStatusCancelled InviteStatus = "CANCELLED"
)

// IsResolved reports whether the status is terminal. Resolved invites never
// change again.
func (s InviteStatus) IsResolved() bool {
	return s == InviteStatusAccepted || s == InviteStatusDeclined || s == InviteStatusCancelled
}
