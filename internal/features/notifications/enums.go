package notifications

// NotificationKind labels what a stored notification is about.
type NotificationKind string

const (
	NotificationKindInviteReceived NotificationKind = "INVITE_RECEIVED"
	NotificationKindInviteAccepted NotificationKind = "INVITE_ACCEPTED"
	NotificationKindInviteDeclined NotificationKind = "INVITE_DECLINED"
	NotificationKindMemberAdded    NotificationKind = "MEMBER_ADDED"
	NotificationKindRoleChanged    NotificationKind = "ROLE_CHANGED"
	NotificationKindMemberRemoved  NotificationKind = "MEMBER_REMOVED"
)

// ChangeEventKind tags realtime events so clients dispatch on the tag
// instead of sniffing payload fields.
type ChangeEventKind string

const (
	ChangeEventMembership   ChangeEventKind = "MEMBERSHIP"
	ChangeEventInvite       ChangeEventKind = "INVITE"
	ChangeEventNotification ChangeEventKind = "NOTIFICATION"
)
