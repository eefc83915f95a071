package users

import (
	"encoding/json"
	"errors"
	"strings"
)

// IdentityHeader carries the authenticated caller, JSON-encoded by the
// upstream gateway. This service trusts it; session verification happens
// before the request reaches us.
const IdentityHeader = "X-User"

var ErrNoIdentity = errors.New("missing caller identity")

// User is the authenticated caller attached to a request.
type User struct {
	ID        int64  `json:"id"`
	UserName  string `json:"userName,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// ParseIdentity decodes the gateway identity header value. The gateway
// guarantees at least an id field; anything else is optional.
func ParseIdentity(headerValue string) (*User, error) {
	headerValue = strings.TrimSpace(headerValue)
	if headerValue == "" {
		return nil, ErrNoIdentity
	}
	var user User
	if err := json.Unmarshal([]byte(headerValue), &user); err != nil {
		return nil, errors.New("malformed caller identity")
	}
	if user.ID <= 0 {
		return nil, errors.New("caller identity has no id")
	}
	return &user, nil
}
