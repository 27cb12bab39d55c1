package dto

import "github.com/studorg/memtrack/internal/app/models"

// dateLayout is the wire format for bare dates in responses
const dateLayout = "2006-01-02"

// TermResponse represents one semester's fee obligation
type TermResponse struct {
	ID            int64   `json:"id"`
	Semester      string  `json:"semester"`
	AcademicYear  string  `json:"academicYear"`
	PaymentStatus string  `json:"paymentStatus"`
	Role          string  `json:"role"`
	TermStart     string  `json:"termStart"`
	TermEnd       string  `json:"termEnd"`
	FeeAmount     float64 `json:"feeAmount"`
	FeeDue        string  `json:"feeDue"`
	Balance       float64 `json:"balance"`
	MembershipID  int64   `json:"membershipId"`
}

// OpenTermRequest opens the current semester's fee term for a membership.
// AsOf defaults to today when omitted; format 2006-01-02.
type OpenTermRequest struct {
	MembershipID int64  `json:"membershipId" binding:"required,gt=0"`
	AsOf         string `json:"asOf"`
}

// TermListResponse represents the fee terms of one membership
type TermListResponse struct {
	Terms []TermResponse `json:"terms"`
}

// FromTerm converts a models.Term to a TermResponse
func FromTerm(t *models.Term) TermResponse {
	return TermResponse{
		ID:            t.ID,
		Semester:      string(t.Semester),
		AcademicYear:  t.AcademicYear,
		PaymentStatus: string(t.PaymentStatus),
		Role:          t.Role,
		TermStart:     t.Start.Format(dateLayout),
		TermEnd:       t.End.Format(dateLayout),
		FeeAmount:     t.FeeAmount,
		FeeDue:        t.FeeDue.Format(dateLayout),
		Balance:       t.Balance,
		MembershipID:  t.MembershipID,
	}
}
