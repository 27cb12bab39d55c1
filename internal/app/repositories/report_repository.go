package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/app/models/dto"
)

// ReportRepository runs the read-only reporting aggregations. Balances are
// recomputed from payments here rather than read off the denormalized term
// column, so reports stay correct even against hand-edited data.
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

// MembersWithUnpaidFees lists members owing money on a term of one
// organization for a given semester and academic year. Expelled and alumni
// members are excluded.
func (r *ReportRepository) MembersWithUnpaidFees(ctx context.Context, orgID int64, semester, acadYear string) ([]*dto.UnpaidFeeRow, error) {
	query := `
		SELECT s.student_id, s.first_name, s.last_name,
		       t.fee_amount, COALESCE(SUM(p.amount), 0) AS total_paid,
		       t.fee_amount - COALESCE(SUM(p.amount), 0) AS balance,
		       m.mem_status
		FROM student s
		JOIN membership m ON s.student_id = m.student_id
		JOIN term t ON m.membership_id = t.membership_id
		LEFT JOIN payment p ON t.term_id = p.term_id
		WHERE m.org_id = $1 AND t.semester = $2 AND t.acad_year = $3
		  AND m.mem_status NOT IN ('expelled', 'alumni')
		GROUP BY s.student_id, t.term_id, m.mem_status
		HAVING t.fee_amount - COALESCE(SUM(p.amount), 0) > 0
		ORDER BY s.last_name, s.first_name
	`

	rows, err := r.db.Query(ctx, query, orgID, semester, acadYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*dto.UnpaidFeeRow
	for rows.Next() {
		var row dto.UnpaidFeeRow
		if err := rows.Scan(
			&row.StudentID,
			&row.FirstName,
			&row.LastName,
			&row.FeeAmount,
			&row.TotalPaid,
			&row.Balance,
			&row.Status,
		); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}

	return result, rows.Err()
}

// MemberUnpaidFees lists every unpaid term of one student across all of
// their organizations.
func (r *ReportRepository) MemberUnpaidFees(ctx context.Context, studentID int64) ([]*dto.MemberDebtRow, error) {
	query := `
		SELECT org.org_name, t.semester, t.acad_year,
		       t.fee_amount, COALESCE(SUM(p.amount), 0) AS total_paid,
		       t.fee_amount - COALESCE(SUM(p.amount), 0) AS balance
		FROM membership m
		JOIN organization org ON m.org_id = org.org_id
		JOIN term t ON m.membership_id = t.membership_id
		LEFT JOIN payment p ON t.term_id = p.term_id
		WHERE m.student_id = $1
		GROUP BY org.org_id, org.org_name, t.term_id
		HAVING t.fee_amount - COALESCE(SUM(p.amount), 0) > 0
		ORDER BY org.org_name, t.term_start
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*dto.MemberDebtRow
	for rows.Next() {
		var row dto.MemberDebtRow
		if err := rows.Scan(
			&row.Organization,
			&row.Semester,
			&row.AcademicYear,
			&row.FeeAmount,
			&row.TotalPaid,
			&row.Balance,
		); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}

	return result, rows.Err()
}

// ExecutiveCommittee lists the executive committee of an organization for
// one academic year. Membership batch carries the academic year label.
func (r *ReportRepository) ExecutiveCommittee(ctx context.Context, orgID int64, acadYear string) ([]*dto.CommitteeMemberRow, error) {
	query := `
		SELECT s.student_id, s.first_name, s.last_name, m.committee
		FROM student s
		JOIN membership m ON s.student_id = m.student_id
		WHERE m.org_id = $1 AND m.batch = $2
		  AND m.committee = ANY($3)
		ORDER BY m.committee
	`

	rows, err := r.db.Query(ctx, query, orgID, acadYear, models.ExecutiveRoles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*dto.CommitteeMemberRow
	for rows.Next() {
		var row dto.CommitteeMemberRow
		if err := rows.Scan(&row.StudentID, &row.FirstName, &row.LastName, &row.Role); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}

	return result, rows.Err()
}

// RoleHistory lists everyone who held a committee role in an organization,
// most recent batch first.
func (r *ReportRepository) RoleHistory(ctx context.Context, orgID int64, role string) ([]*dto.RoleHistoryRow, error) {
	query := `
		SELECT s.student_id, s.first_name, s.last_name, m.batch
		FROM student s
		JOIN membership m ON s.student_id = m.student_id
		WHERE m.org_id = $1 AND m.committee = $2
		ORDER BY m.batch DESC
	`

	rows, err := r.db.Query(ctx, query, orgID, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*dto.RoleHistoryRow
	for rows.Next() {
		var row dto.RoleHistoryRow
		if err := rows.Scan(&row.StudentID, &row.FirstName, &row.LastName, &row.AcademicYear); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}

	return result, rows.Err()
}

// LatePayments lists payments recorded after the term due date for one
// organization, semester and academic year.
func (r *ReportRepository) LatePayments(ctx context.Context, orgID int64, semester, acadYear string) ([]*dto.LatePaymentRow, error) {
	query := `
		SELECT s.student_id, s.first_name, s.last_name,
		       p.payment_date, t.fee_due, p.amount
		FROM student s
		JOIN membership m ON s.student_id = m.student_id
		JOIN term t ON m.membership_id = t.membership_id
		JOIN payment p ON t.term_id = p.term_id
		WHERE m.org_id = $1 AND t.semester = $2 AND t.acad_year = $3
		  AND p.payment_date > t.fee_due
		ORDER BY p.payment_date
	`

	rows, err := r.db.Query(ctx, query, orgID, semester, acadYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*dto.LatePaymentRow
	for rows.Next() {
		var row dto.LatePaymentRow
		if err := rows.Scan(
			&row.StudentID,
			&row.FirstName,
			&row.LastName,
			&row.PaymentDate,
			&row.DueDate,
			&row.Amount,
		); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}

	return result, rows.Err()
}

// MembershipStatusBreakdown computes the active and inactive percentages of
// an organization's memberships over the last n batches.
func (r *ReportRepository) MembershipStatusBreakdown(ctx context.Context, orgID int64, nBatches int) (*dto.StatusBreakdownResponse, error) {
	// Recent batches are selected by rank rather than batch arithmetic;
	// batch labels like "2024-2025" are not numeric.
	query := `
		WITH recent AS (
			SELECT DISTINCT batch FROM membership
			WHERE org_id = $1
			ORDER BY batch DESC
			LIMIT $2
		)
		SELECT COUNT(*) FILTER (WHERE m.mem_status = 'active'),
		       COUNT(*) FILTER (WHERE m.mem_status = 'inactive'),
		       COUNT(*)
		FROM membership m
		WHERE m.org_id = $1 AND m.batch IN (SELECT batch FROM recent)
	`

	var activeCount, inactiveCount, totalCount int64
	err := r.db.QueryRow(ctx, query, orgID, nBatches).Scan(&activeCount, &inactiveCount, &totalCount)
	if err != nil {
		return nil, fmt.Errorf("error computing status breakdown: %w", err)
	}

	breakdown := &dto.StatusBreakdownResponse{TotalMembers: totalCount}
	if totalCount > 0 {
		breakdown.ActivePercentage = float64(activeCount) / float64(totalCount) * 100
		breakdown.InactivePercentage = float64(inactiveCount) / float64(totalCount) * 100
	}

	return breakdown, nil
}

// AlumniMembers lists alumni of an organization whose batch is no later
// than the given cutoff.
func (r *ReportRepository) AlumniMembers(ctx context.Context, orgID int64, asOf string) ([]*dto.AlumniRow, error) {
	// The batch comparison is intentionally string-ordered: labels like
	// "2024-2025" rank against a YYYY-MM-DD cutoff by their shared year
	// prefix, not by date parsing.
	query := `
		SELECT s.student_id, s.first_name, s.last_name, m.batch
		FROM student s
		JOIN membership m ON s.student_id = m.student_id
		WHERE m.org_id = $1 AND m.mem_status = 'alumni' AND m.batch <= $2
		ORDER BY m.batch DESC, s.last_name
	`

	rows, err := r.db.Query(ctx, query, orgID, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*dto.AlumniRow
	for rows.Next() {
		var row dto.AlumniRow
		if err := rows.Scan(&row.StudentID, &row.FirstName, &row.LastName, &row.Batch); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}

	return result, rows.Err()
}

// OrganizationFinancialStatus totals the fees, collections and outstanding
// balance of an organization for terms started on or before asOf.
func (r *ReportRepository) OrganizationFinancialStatus(ctx context.Context, orgID int64, asOf time.Time) (*dto.FinancialStatusResponse, error) {
	query := `
		SELECT COALESCE(SUM(t.fee_amount), 0),
		       COALESCE(SUM(paid.amount), 0),
		       COALESCE(SUM(t.fee_amount - COALESCE(paid.amount, 0)), 0)
		FROM term t
		JOIN membership m ON t.membership_id = m.membership_id
		LEFT JOIN (
			SELECT term_id, SUM(amount) AS amount
			FROM payment
			GROUP BY term_id
		) paid ON t.term_id = paid.term_id
		WHERE m.org_id = $1 AND t.term_start <= $2
	`

	var status dto.FinancialStatusResponse
	err := r.db.QueryRow(ctx, query, orgID, asOf).
		Scan(&status.TotalFees, &status.TotalPaid, &status.TotalUnpaid)
	if err != nil {
		return nil, fmt.Errorf("error computing financial status: %w", err)
	}

	return &status, nil
}

// HighestDebtMembers lists members with outstanding balances for one
// organization, semester and academic year, largest debt first.
func (r *ReportRepository) HighestDebtMembers(ctx context.Context, orgID int64, semester, acadYear string) ([]*dto.DebtorRow, error) {
	query := `
		SELECT s.student_id, s.first_name, s.last_name,
		       t.fee_amount, COALESCE(SUM(p.amount), 0) AS total_paid,
		       t.fee_amount - COALESCE(SUM(p.amount), 0) AS balance
		FROM student s
		JOIN membership m ON s.student_id = m.student_id
		JOIN term t ON m.membership_id = t.membership_id
		LEFT JOIN payment p ON t.term_id = p.term_id
		WHERE m.org_id = $1 AND t.semester = $2 AND t.acad_year = $3
		GROUP BY s.student_id, t.term_id
		HAVING t.fee_amount - COALESCE(SUM(p.amount), 0) > 0
		ORDER BY balance DESC
	`

	rows, err := r.db.Query(ctx, query, orgID, semester, acadYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*dto.DebtorRow
	for rows.Next() {
		var row dto.DebtorRow
		if err := rows.Scan(
			&row.StudentID,
			&row.FirstName,
			&row.LastName,
			&row.FeeAmount,
			&row.TotalPaid,
			&row.Balance,
		); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}

	return result, rows.Err()
}

// TermBalances lists every term with its collected and outstanding amounts
func (r *ReportRepository) TermBalances(ctx context.Context) ([]*dto.TermBalanceRow, error) {
	query := `
		SELECT t.term_id, t.semester, t.acad_year, t.fee_amount,
		       COALESCE(SUM(p.amount), 0) AS total_paid,
		       t.fee_amount - COALESCE(SUM(p.amount), 0) AS balance
		FROM term t
		LEFT JOIN payment p ON t.term_id = p.term_id
		GROUP BY t.term_id
		ORDER BY t.term_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*dto.TermBalanceRow
	for rows.Next() {
		var row dto.TermBalanceRow
		if err := rows.Scan(
			&row.TermID,
			&row.Semester,
			&row.AcademicYear,
			&row.FeeAmount,
			&row.TotalPaid,
			&row.Balance,
		); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}

	return result, rows.Err()
}

// FinancialSummaryByOrganization aggregates fees, collections and balances
// per organization.
func (r *ReportRepository) FinancialSummaryByOrganization(ctx context.Context) ([]*dto.OrgFinancialSummaryRow, error) {
	query := `
		SELECT org.org_name,
		       COALESCE(SUM(t.fee_amount), 0) AS total_fees,
		       COALESCE(SUM(paid.amount), 0) AS total_collected,
		       COALESCE(SUM(t.fee_amount - COALESCE(paid.amount, 0)), 0) AS total_balance
		FROM organization org
		JOIN membership m ON org.org_id = m.org_id
		JOIN term t ON m.membership_id = t.membership_id
		LEFT JOIN (
			SELECT term_id, SUM(amount) AS amount
			FROM payment
			GROUP BY term_id
		) paid ON t.term_id = paid.term_id
		GROUP BY org.org_name
		ORDER BY org.org_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*dto.OrgFinancialSummaryRow
	for rows.Next() {
		var row dto.OrgFinancialSummaryRow
		if err := rows.Scan(
			&row.Organization,
			&row.TotalFees,
			&row.TotalCollected,
			&row.TotalBalance,
		); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}

	return result, rows.Err()
}
