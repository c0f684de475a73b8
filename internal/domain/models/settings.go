package models

// Setting is a named configuration value managed from the dashboard.
type Setting struct {
	ID    int64  `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
	Group string `json:"group"`
}

func (s Setting) EntityID() int64 { return s.ID }

type AccountType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

func (a AccountType) EntityID() int64 { return a.ID }
