package models

// JSON keys of the three generated documents, shared by the AI reply and
// the API response.
const (
	KeyPoliceReportDraft  = "police_report_draft"
	KeyBankComplaintEmail = "bank_complaint_email"
	KeyNextStepsChecklist = "next_steps_checklist"
)

// DocumentKeys lists the document keys in response order.
var DocumentKeys = []string{KeyPoliceReportDraft, KeyBankComplaintEmail, KeyNextStepsChecklist}

// GeneratedDocuments is the response of a successful generation. It lives
// for one request and is never stored.
type GeneratedDocuments struct {
	PoliceReportDraft  string `json:"police_report_draft"`
	BankComplaintEmail string `json:"bank_complaint_email"`
	NextStepsChecklist string `json:"next_steps_checklist"`
}
