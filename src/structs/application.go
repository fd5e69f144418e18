package structs

type ApplicationStatus = string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// A submitted team join application.
type Application struct {
	ID          string              `json:"id"`
	Type        string              `json:"type"`
	SubmittedBy User                `json:"submittedBy"`
	Answers     []ApplicationAnswer `json:"answers"`
	Status      ApplicationStatus   `json:"status"`
	CreatedAt   string              `json:"createdAt"`
}

type ApplicationAnswer struct {
	QuestionID string   `json:"questionId"`
	Answer     any      `json:"answer,omitempty"` // string or []string
	Question   string   `json:"question"`
	Optional   bool     `json:"optional"`
	Options    []string `json:"options"`
}

type ApplicationQuestion struct {
	Question string `json:"question"`
	Type     string `json:"type"`
}
