package model

import "time"

// User represents an account record as stored in the `users` table.
// Each field corresponds to a column in the database. The email is the
// login key: it is unique and never changes once the row exists. The
// password is never stored in plain text, only its bcrypt hash.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address used to log in.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// UserDetails models a row in the `user_details` table. A row is seeded
// for every freshly registered user so profile endpoints always find one.
// Seeding is best effort and runs after the credential row is committed.
//
// Fields:
//  UserID      – owner of the profile row (primary key, references users.id).
//  DisplayName – name shown in the UI; defaults to the empty string.
//  CreatedAt   – timestamp of creation.
type UserDetails struct {
	UserID      uint64    // user_details.user_id
	DisplayName string    // user_details.display_name
	CreatedAt   time.Time // user_details.created_at
}
