// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package models

// Role names for user accounts.
//
// The original system granted admin rights to the account with id 1.
// That magic-id comparison is replaced by an explicit role column: the
// first account ever registered is bootstrapped as admin, every later
// account is a member.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User is a registered account. PasswordHash holds the bcrypt hash of
// the password and is never serialized to clients.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
