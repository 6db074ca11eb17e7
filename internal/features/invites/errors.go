package invites

import "errors"

var (
	ErrInviteNotFound         = errors.New("invite not found")
	ErrDuplicatePendingInvite = errors.New("an invite is already pending for this user")
	ErrInviteRateLimited      = errors.New("too many invites created, try again later")
)
