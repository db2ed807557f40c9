package repository

import (
	"context"
	"database/sql"
)

// UserDetailsRepo seeds and reads the `user_details` table. Rows in this
// table are owned by the profile feature; registration only guarantees
// that a (possibly empty) row exists for every account.
type UserDetailsRepo struct{ DB *sql.DB }

func NewUserDetailsRepo(db *sql.DB) *UserDetailsRepo { return &UserDetailsRepo{DB: db} }

// Init inserts an empty profile row for a freshly registered user. The
// insert is idempotent so a retried registration cannot fail here.
func (r *UserDetailsRepo) Init(ctx context.Context, userID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT IGNORE INTO user_details (user_id, display_name) VALUES (?, '')",
		userID)
	return err
}
