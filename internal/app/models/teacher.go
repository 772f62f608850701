package models

// Teacher represents a member of the teaching staff. Static reference data.
type Teacher struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Department string `json:"department" db:"department"`
	Email      string `json:"email" db:"email"`
}
