package dto

import "github.com/studorg/memtrack/internal/app/models"

// PaymentResponse represents a recorded payment
type PaymentResponse struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"paymentDate"`
	TermID      int64   `json:"termId"`
}

// RecordPaymentRequest applies a payment against a fee term.
// PaymentDate defaults to today when omitted; format 2006-01-02.
type RecordPaymentRequest struct {
	TermID      int64   `json:"termId" binding:"required,gt=0"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentDate string  `json:"paymentDate"`
}

// PaymentListResponse represents the payments applied to one term
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// RecordPaymentResponse returns the payment together with the term state
// it produced
type RecordPaymentResponse struct {
	Payment PaymentResponse `json:"payment"`
	Term    TermResponse    `json:"term"`
}

// FromPayment converts a models.Payment to a PaymentResponse
func FromPayment(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		Amount:      p.Amount,
		PaymentDate: p.Date.Format(dateLayout),
		TermID:      p.TermID,
	}
}
