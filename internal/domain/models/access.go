package models

// User is a back-office operator account.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	RoleID   int64  `json:"roleId"`
	BranchID int64  `json:"branchId"`
	Status   string `json:"status"`
}

func (u User) EntityID() int64 { return u.ID }

type Role struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Permissions []int64 `json:"permissions,omitempty"`
}

func (r Role) EntityID() int64 { return r.ID }

type Permission struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

func (p Permission) EntityID() int64 { return p.ID }
