package dto

type CreateActivityRequest struct {
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	DueDate     string   `json:"dueDate"`
	ProjectIDs  []string `json:"projectIds"`
	PersonIDs   []string `json:"personIds"`
	CreatedByID string   `json:"createdById"`
}

// UpdateActivityRequest is a full update. Omitted projectIds or personIds
// mean "no links", not "unchanged".
type UpdateActivityRequest struct {
	Description    string   `json:"description"`
	Type           string   `json:"type"`
	Status         string   `json:"status"`
	DueDate        string   `json:"dueDate"`
	CompletionDate *string  `json:"completionDate"`
	ProjectIDs     []string `json:"projectIds"`
	PersonIDs      []string `json:"personIds"`
}

type MembershipRequest struct {
	ProjectIDs []string `json:"projectIds"`
	PersonIDs  []string `json:"personIds"`
}

type StatusChangeRequest struct {
	Status      string  `json:"status"`
	Remarks     *string `json:"remarks"`
	ChangedByID string  `json:"changedById"`
}

// ActivityQuery mirrors the query string of GET /activities.
type ActivityQuery struct {
	DateFrom   string
	DateTo     string
	ProjectIDs []string
	PersonIDs  []string
	Status     string
	Type       string
	NoProject  string
}
