package models

// ScamReport is the victim's description of a fraud incident. Every field
// is free text; an empty string is a valid value.
type ScamReport struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	ScamType      string `json:"scamType"`
	DateTime      string `json:"dateTime"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	Beneficiary   string `json:"beneficiary"`
}

// Values returns the report fields in declaration order.
func (r ScamReport) Values() []string {
	return []string{
		r.Name, r.Phone, r.Email, r.Address, r.ScamType,
		r.DateTime, r.Description, r.Amount, r.PaymentMethod, r.Beneficiary,
	}
}

// ScamReportRequest is the POST body. Pointer fields let binding tell an
// absent or null field from an empty one: required only rejects nil.
type ScamReportRequest struct {
	Name          *string `json:"name" binding:"required"`
	Phone         *string `json:"phone" binding:"required"`
	Email         *string `json:"email" binding:"required"`
	Address       *string `json:"address" binding:"required"`
	ScamType      *string `json:"scamType" binding:"required"`
	DateTime      *string `json:"dateTime" binding:"required"`
	Description   *string `json:"description" binding:"required"`
	Amount        *string `json:"amount" binding:"required"`
	PaymentMethod *string `json:"paymentMethod" binding:"required"`
	Beneficiary   *string `json:"beneficiary" binding:"required"`
}

// Report copies a bound request into a ScamReport.
func (r ScamReportRequest) Report() ScamReport {
	return ScamReport{
		Name:          deref(r.Name),
		Phone:         deref(r.Phone),
		Email:         deref(r.Email),
		Address:       deref(r.Address),
		ScamType:      deref(r.ScamType),
		DateTime:      deref(r.DateTime),
		Description:   deref(r.Description),
		Amount:        deref(r.Amount),
		PaymentMethod: deref(r.PaymentMethod),
		Beneficiary:   deref(r.Beneficiary),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
