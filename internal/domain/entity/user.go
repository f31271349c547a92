// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the session identity of the signed-in farmer. It is owned exclusively
// by the session store: it is created by login/signup, refreshed by profile
// fetches, and destroyed on logout or when the session token is rejected.
type User struct {
	ID               string    `json:"_id"`                // Server-assigned identifier for the account.
	Name             string    `json:"name"`               // The user's display name or real name.
	Username         string    `json:"username"`           // Unique handle chosen by the user.
	Email            string    `json:"email"`              // Primary contact email, used as the login identifier.
	Phone            string    `json:"phone,omitempty"`    // Optional contact phone number.
	Location         string    `json:"location,omitempty"` // Free-form location label (e.g., "Jaipur, Rajasthan").
	AddressLine      string    `json:"addressLine,omitempty"`
	City             string    `json:"city,omitempty"`
	State            string    `json:"state,omitempty"`
	Pincode          string    `json:"pincode,omitempty"`
	Avatar           string    `json:"avatar,omitempty"`      // Server-side avatar path or full URL.
	MemberSince      string    `json:"memberSince,omitempty"` // Membership start label (e.g., "Jan 2023").
	TotalArea        string    `json:"totalArea,omitempty"`   // Free-form farm area label (e.g., "25 Acres").
	Crops            []string  `json:"crops,omitempty"`       // Names of the crops the farmer grows.
	IsPremium        bool      `json:"isPremium,omitempty"`
	Role             string    `json:"role"` // The account role assigned by the backend.
	IsActive         bool      `json:"isActive"`
	EmailVerified    bool      `json:"emailVerified"`
	ProfileCompleted bool      `json:"profileCompleted"`
	CreatedAt        time.Time `json:"createdAt"` // Timestamp of when the account was created.
	UpdatedAt        time.Time `json:"updatedAt"` // Timestamp of the last modification.
	LastLogin        time.Time `json:"lastLogin"` // Timestamp of the most recent login.
}

// UserPatch carries an optional subset of user fields for a shallow-merge
// update. A nil field leaves the current value untouched.
type UserPatch struct {
	Name        *string
	Username    *string
	Phone       *string
	Location    *string
	AddressLine *string
	City        *string
	State       *string
	Pincode     *string
	Avatar      *string
}

// Merge returns a copy of the user with every non-nil patch field applied.
// The receiver is not modified.
func (u User) Merge(patch UserPatch) User {
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.Location != nil {
		u.Location = *patch.Location
	}
	if patch.AddressLine != nil {
		u.AddressLine = *patch.AddressLine
	}
	if patch.City != nil {
		u.City = *patch.City
	}
	if patch.State != nil {
		u.State = *patch.State
	}
	if patch.Pincode != nil {
		u.Pincode = *patch.Pincode
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}

	return u
}
