package models

// ActivityLog is an audit entry recorded by the core API.
type ActivityLog struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Action    string `json:"action"`
	Detail    string `json:"detail"`
	IP        string `json:"ip"`
	CreatedAt string `json:"createdAt"`
}

func (l ActivityLog) EntityID() int64 { return l.ID }

// ScannedLog is a document-scan audit entry.
type ScannedLog struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Document  string `json:"document"`
	Reference string `json:"reference"`
	BranchID  int64  `json:"branchId"`
	CreatedAt string `json:"createdAt"`
}

func (l ScannedLog) EntityID() int64 { return l.ID }

// OnlineAccountRequest is a customer-submitted account opening request.
type OnlineAccountRequest struct {
	ID            int64  `json:"id"`
	FullName      string `json:"fullName"`
	NationalID    string `json:"nationalId"`
	Phone         string `json:"phone"`
	AccountTypeID int64  `json:"accountTypeId"`
	BranchID      int64  `json:"branchId"`
	Status        string `json:"status"`
	SubmittedAt   string `json:"submittedAt"`
}

func (r OnlineAccountRequest) EntityID() int64 { return r.ID }
