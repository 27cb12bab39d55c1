package dto

import "time"

// Report rows are produced directly by the report repository; every report
// is a plain read-only aggregation.

// UnpaidFeeRow is one member owing money on a term within an organization
type UnpaidFeeRow struct {
	StudentID int64   `json:"studentId"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	FeeAmount float64 `json:"feeAmount"`
	TotalPaid float64 `json:"totalPaid"`
	Balance   float64 `json:"balance"`
	Status    string  `json:"status"`
}

// MemberDebtRow is one unpaid term of a single student, across organizations
type MemberDebtRow struct {
	Organization string  `json:"organization"`
	Semester     string  `json:"semester"`
	AcademicYear string  `json:"academicYear"`
	FeeAmount    float64 `json:"feeAmount"`
	TotalPaid    float64 `json:"totalPaid"`
	Balance      float64 `json:"balance"`
}

// CommitteeMemberRow is one executive committee member for a year
type CommitteeMemberRow struct {
	StudentID int64  `json:"studentId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// RoleHistoryRow is one past or present holder of a committee role
type RoleHistoryRow struct {
	StudentID    int64  `json:"studentId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	AcademicYear string `json:"academicYear"`
}

// LatePaymentRow is one payment recorded after the term's due date
type LatePaymentRow struct {
	StudentID   int64     `json:"studentId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PaymentDate time.Time `json:"paymentDate"`
	DueDate     time.Time `json:"dueDate"`
	Amount      float64   `json:"amount"`
}

// StatusBreakdownResponse is the active/inactive split over recent batches
type StatusBreakdownResponse struct {
	ActivePercentage   float64 `json:"activePercentage"`
	InactivePercentage float64 `json:"inactivePercentage"`
	TotalMembers       int64   `json:"totalMembers"`
}

// AlumniRow is one alumni member as of a given date
type AlumniRow struct {
	StudentID int64  `json:"studentId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Batch     string `json:"batch"`
}

// FinancialStatusResponse totals an organization's fees up to a date
type FinancialStatusResponse struct {
	TotalFees   float64 `json:"totalFees"`
	TotalPaid   float64 `json:"totalPaid"`
	TotalUnpaid float64 `json:"totalUnpaid"`
}

// DebtorRow is one member carrying a balance, ordered by debt size
type DebtorRow struct {
	StudentID int64   `json:"studentId"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	FeeAmount float64 `json:"feeAmount"`
	TotalPaid float64 `json:"totalPaid"`
	Balance   float64 `json:"balance"`
}

// TermBalanceRow is one term's collected and outstanding amounts
type TermBalanceRow struct {
	TermID       int64   `json:"termId"`
	Semester     string  `json:"semester"`
	AcademicYear string  `json:"academicYear"`
	FeeAmount    float64 `json:"feeAmount"`
	TotalPaid    float64 `json:"totalPaid"`
	Balance      float64 `json:"balance"`
}

// OrgFinancialSummaryRow is one organization's overall collection summary
type OrgFinancialSummaryRow struct {
	Organization   string  `json:"organization"`
	TotalFees      float64 `json:"totalFees"`
	TotalCollected float64 `json:"totalCollected"`
	TotalBalance   float64 `json:"totalBalance"`
}
