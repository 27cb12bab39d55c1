// Package policy holds the membership fee and lifecycle rules. Everything in
// here is pure: it decides, the services persist.
package policy

import (
	"time"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/pkg/academic"
	"github.com/studorg/memtrack/internal/pkg/apperrors"
)

// Fee schedule in monetary units per semester.
const (
	ActiveSemesterFee     = 1000.00
	InactiveTransitionFee = 500.00
)

// FeeBasis names the rule a fee was charged under.
type FeeBasis string

const (
	BasisActiveDues      FeeBasis = "active_dues"
	BasisInactiveOneTime FeeBasis = "inactive_onetime"
	BasisNone            FeeBasis = "none"
)

// FeeDecision is the outcome of applying the fee schedule to a membership
// for one semester.
type FeeDecision struct {
	Amount     float64
	Basis      FeeBasis
	CreateTerm bool
}

// ComputeTermFee applies the fee schedule to a membership status.
// isTransitionSemester marks the semester in which the membership moved to
// inactive; that semester carries a one-time reduced fee, any later inactive
// semester carries none. Expelled and alumni memberships never owe dues, and
// suspended has no defined fee schedule, so all three are rejected.
func ComputeTermFee(status models.MemberStatus, isTransitionSemester bool) (FeeDecision, error) {
	none := FeeDecision{Amount: 0, Basis: BasisNone, CreateTerm: false}

	switch status {
	case models.StatusExpelled, models.StatusAlumni:
		return none, apperrors.ErrMembershipClosed
	case models.StatusSuspended:
		return none, apperrors.ErrNoFeePolicy
	case models.StatusInactive:
		if isTransitionSemester {
			return FeeDecision{Amount: InactiveTransitionFee, Basis: BasisInactiveOneTime, CreateTerm: true}, nil
		}
		return none, apperrors.ErrNoFeeDue
	case models.StatusActive:
		return FeeDecision{Amount: ActiveSemesterFee, Basis: BasisActiveDues, CreateTerm: true}, nil
	default:
		return none, apperrors.ErrInvalidMemberStatus
	}
}

// ValidateTransition checks a status change. Any known status may move to
// any other known status by explicit action; only unknown labels are
// rejected.
func ValidateTransition(from, to models.MemberStatus) error {
	if !from.IsValid() || !to.IsValid() {
		return apperrors.ErrInvalidMemberStatus
	}
	return nil
}

// BuildTerm assembles the term record for a fee decision, snapshotting the
// membership's status and role at creation time.
func BuildTerm(m *models.Membership, window academic.TermWindow, decision FeeDecision) *models.Term {
	return &models.Term{
		Semester:      window.Semester,
		PaymentStatus: models.PaymentUnpaid,
		Role:          m.Committee,
		Start:         window.Start,
		End:           window.End,
		AcademicYear:  window.AcademicYear,
		FeeAmount:     decision.Amount,
		FeeDue:        window.Due,
		Balance:       decision.Amount,
		MembershipID:  m.ID,
	}
}

// ValidatePayment checks a payment amount against the term's outstanding
// balance. The amount must be positive and must not exceed the balance;
// violations are reported before any write happens.
func ValidatePayment(amount, outstanding float64) error {
	if amount <= 0 {
		return apperrors.ErrInvalidPaymentAmount
	}
	if amount > outstanding {
		return apperrors.ErrPaymentExceedsBalance
	}
	return nil
}

// DerivePaymentStatus computes the term payment status from what has been
// paid so far.
func DerivePaymentStatus(paid, feeAmount float64) models.PaymentStatus {
	switch {
	case feeAmount <= 0 || paid >= feeAmount:
		return models.PaymentPaid
	case paid > 0:
		return models.PaymentPartial
	default:
		return models.PaymentUnpaid
	}
}

// IsLate reports whether a payment made on paymentDate missed the due date.
func IsLate(paymentDate, due time.Time) bool {
	return paymentDate.After(due)
}
