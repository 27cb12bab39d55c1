package models

import (
	"time"

	"github.com/studorg/memtrack/internal/pkg/academic"
)

// PaymentStatus is the derived payment state of a term. It only ever moves
// forward: unpaid, then partial once any payment exists, then paid once the
// fee is covered.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// Term is one semester's fee obligation for a membership. Status and role
// are snapshots of the membership at term creation time; Balance is the fee
// minus payments accepted so far.
type Term struct {
	ID            int64             `json:"id" db:"term_id"`
	Semester      academic.Semester `json:"semester" db:"semester"`
	PaymentStatus PaymentStatus     `json:"paymentStatus" db:"payment_status"`
	Role          string            `json:"role" db:"role"`
	Start         time.Time         `json:"termStart" db:"term_start"`
	End           time.Time         `json:"termEnd" db:"term_end"`
	AcademicYear  string            `json:"academicYear" db:"acad_year"`
	FeeAmount     float64           `json:"feeAmount" db:"fee_amount"`
	FeeDue        time.Time         `json:"feeDue" db:"fee_due"`
	Balance       float64           `json:"balance" db:"balance"`
	MembershipID  int64             `json:"membershipId" db:"membership_id"`
}

// TotalPaid returns the amount collected against the term so far.
func (t *Term) TotalPaid() float64 {
	return t.FeeAmount - t.Balance
}
