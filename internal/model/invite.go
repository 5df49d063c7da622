package model

import "time"

const (
	// InvitePending means the invite has been issued and not yet used
	InvitePending = "PENDING"
	// InviteAccepted means the invitee completed registration
	InviteAccepted = "ACCEPTED"
	// InviteRevoked means an admin cancelled the invite
	InviteRevoked = "REVOKED"
	// InviteExpired means the invite passed its expiry before use
	InviteExpired = "EXPIRED"
)

// Invite is a time-limited, token-addressed authorization for a specific
// email address to self-register with a pre-assigned role. Created and
// consumed entirely server-side; this app renders it and triggers
// transitions.
type Invite struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CompanyName string    `json:"companyName"`
	Token       string    `json:"token"`
	Status      string    `json:"status"`
	ExpiresAt   time.Time `json:"expiresAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Expired reports whether the invite is past its expiry at time now.
func (i Invite) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// CreateInvite is the admin payload for issuing an invite. Company name is
// optional at this layer even for the HR role.
type CreateInvite struct {
	Email       string `json:"email"`
	Role        string `json:"role"`
	CompanyName string `json:"companyName,omitempty"`
}

// AcceptInvite is the payload completing an invited registration.
type AcceptInvite struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

const (
	// RequestPending means no admin has reviewed the request yet
	RequestPending = "PENDING"
	// RequestApproved means approval cascaded into an invite server-side
	RequestApproved = "APPROVED"
	// RequestDenied means an admin denied the request
	RequestDenied = "DENIED"
)

// AccessRequest is a pending ask from a prospective HR or admin user,
// reviewed by an administrator.
type AccessRequest struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CompanyName string    `json:"companyName"`
	Role        string    `json:"requestedRole"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateAccessRequest is the public request-access form payload.
type CreateAccessRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName,omitempty"`
	Role        string `json:"requestedRole"`
	Reason      string `json:"reason,omitempty"`
}
