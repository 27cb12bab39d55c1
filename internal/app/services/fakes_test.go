package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/app/models/dto"
	"github.com/studorg/memtrack/internal/pkg/apperrors"
)

// In-memory repository fakes. They enforce the same uniqueness rules as the
// database schema, and when linked to each other they model the schema's
// cascading deletes, so the services see realistic errors and side effects.

type fakeStudentRepo struct {
	students       map[int64]*models.Student
	membershipRepo *fakeMembershipRepo
	nextID         int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[int64]*models.Student)}
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	f.nextID++
	student.ID = f.nextID
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (f *fakeStudentRepo) GetAll(_ context.Context, offset uint64, limit int) ([]*models.Student, error) {
	ids := make([]int64, 0, len(f.students))
	for id := range f.students {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []*models.Student
	for i, id := range ids {
		if uint64(i) < offset {
			continue
		}
		if len(result) >= limit {
			break
		}
		copied := *f.students[id]
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeStudentRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.students)), nil
}

func (f *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	if f.membershipRepo != nil {
		f.membershipRepo.deleteByStudent(id)
	}
	return nil
}

type fakeOrgRepo struct {
	orgs   map[int64]*models.Organization
	nextID int64
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{orgs: make(map[int64]*models.Organization)}
}

func (f *fakeOrgRepo) Create(_ context.Context, org *models.Organization) error {
	for _, existing := range f.orgs {
		if existing.Name == org.Name {
			return apperrors.ErrOrganizationAlreadyExists
		}
	}
	f.nextID++
	org.ID = f.nextID
	copied := *org
	f.orgs[org.ID] = &copied
	return nil
}

func (f *fakeOrgRepo) GetByID(_ context.Context, id int64) (*models.Organization, error) {
	org, ok := f.orgs[id]
	if !ok {
		return nil, apperrors.ErrOrganizationNotFound
	}
	copied := *org
	return &copied, nil
}

func (f *fakeOrgRepo) GetAll(_ context.Context) ([]*models.Organization, error) {
	var result []*models.Organization
	for _, org := range f.orgs {
		copied := *org
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (f *fakeOrgRepo) Update(_ context.Context, org *models.Organization) error {
	if _, ok := f.orgs[org.ID]; !ok {
		return apperrors.ErrOrganizationNotFound
	}
	copied := *org
	f.orgs[org.ID] = &copied
	return nil
}

func (f *fakeOrgRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.orgs[id]; !ok {
		return apperrors.ErrOrganizationNotFound
	}
	delete(f.orgs, id)
	return nil
}

type fakeMembershipRepo struct {
	memberships map[int64]*models.Membership
	termRepo    *fakeTermRepo
	nextID      int64
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{memberships: make(map[int64]*models.Membership)}
}

func (f *fakeMembershipRepo) Create(_ context.Context, membership *models.Membership) error {
	for _, existing := range f.memberships {
		if existing.StudentID == membership.StudentID && existing.OrgID == membership.OrgID {
			return apperrors.ErrMembershipAlreadyExists
		}
	}
	f.nextID++
	membership.ID = f.nextID
	copied := *membership
	f.memberships[membership.ID] = &copied
	return nil
}

func (f *fakeMembershipRepo) GetByID(_ context.Context, id int64) (*models.Membership, error) {
	membership, ok := f.memberships[id]
	if !ok {
		return nil, apperrors.ErrMembershipNotFound
	}
	copied := *membership
	return &copied, nil
}

func (f *fakeMembershipRepo) GetByOrganization(_ context.Context, orgID int64, offset uint64, limit int) ([]*models.OrgMember, error) {
	var rows []*models.OrgMember
	for _, m := range f.memberships {
		if m.OrgID != orgID {
			continue
		}
		rows = append(rows, &models.OrgMember{
			MembershipID: m.ID,
			StudentID:    m.StudentID,
			Status:       m.Status,
			Batch:        m.Batch,
			Committee:    m.Committee,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].MembershipID < rows[j].MembershipID })
	if offset >= uint64(len(rows)) {
		return nil, nil
	}
	rows = rows[offset:]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (f *fakeMembershipRepo) CountByOrganization(_ context.Context, orgID int64) (int64, error) {
	var count int64
	for _, m := range f.memberships {
		if m.OrgID == orgID {
			count++
		}
	}
	return count, nil
}

func (f *fakeMembershipRepo) UpdateStatus(ctx context.Context, id int64, status models.MemberStatus, feeTerm *models.Term) error {
	membership, ok := f.memberships[id]
	if !ok {
		return apperrors.ErrMembershipNotFound
	}

	previous := membership.Status
	membership.Status = status
	if feeTerm == nil {
		return nil
	}

	if err := f.termRepo.Create(ctx, feeTerm); err != nil {
		if errors.Is(err, apperrors.ErrTermAlreadyExists) {
			feeTerm.ID = 0
			return nil
		}
		// Both writes happen in one transaction against the database.
		membership.Status = previous
		return err
	}
	return nil
}

func (f *fakeMembershipRepo) Update(_ context.Context, membership *models.Membership) error {
	existing, ok := f.memberships[membership.ID]
	if !ok {
		return apperrors.ErrMembershipNotFound
	}
	existing.Batch = membership.Batch
	existing.Committee = membership.Committee
	return nil
}

func (f *fakeMembershipRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.memberships[id]; !ok {
		return apperrors.ErrMembershipNotFound
	}
	delete(f.memberships, id)
	if f.termRepo != nil {
		f.termRepo.deleteByMembership(id)
	}
	return nil
}

func (f *fakeMembershipRepo) deleteByStudent(studentID int64) {
	for id, m := range f.memberships {
		if m.StudentID != studentID {
			continue
		}
		delete(f.memberships, id)
		if f.termRepo != nil {
			f.termRepo.deleteByMembership(id)
		}
	}
}

type fakeTermRepo struct {
	terms          map[int64]*models.Term
	paymentRepo    *fakePaymentRepo
	failNextCreate error
	nextID         int64
}

func newFakeTermRepo() *fakeTermRepo {
	return &fakeTermRepo{terms: make(map[int64]*models.Term)}
}

func (f *fakeTermRepo) Create(_ context.Context, term *models.Term) error {
	if err := f.failNextCreate; err != nil {
		f.failNextCreate = nil
		return err
	}
	for _, existing := range f.terms {
		if existing.MembershipID == term.MembershipID &&
			existing.Semester == term.Semester &&
			existing.AcademicYear == term.AcademicYear {
			return apperrors.ErrTermAlreadyExists
		}
	}
	f.nextID++
	term.ID = f.nextID
	copied := *term
	f.terms[term.ID] = &copied
	return nil
}

func (f *fakeTermRepo) GetByID(_ context.Context, id int64) (*models.Term, error) {
	term, ok := f.terms[id]
	if !ok {
		return nil, apperrors.ErrTermNotFound
	}
	copied := *term
	return &copied, nil
}

func (f *fakeTermRepo) GetLatestByMembership(_ context.Context, membershipID int64) (*models.Term, error) {
	var latest *models.Term
	for _, term := range f.terms {
		if term.MembershipID != membershipID {
			continue
		}
		if latest == nil || term.Start.After(latest.Start) {
			latest = term
		}
	}
	if latest == nil {
		return nil, apperrors.ErrTermNotFound
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeTermRepo) ListByMembership(_ context.Context, membershipID int64) ([]*models.Term, error) {
	var result []*models.Term
	for _, term := range f.terms {
		if term.MembershipID != membershipID {
			continue
		}
		copied := *term
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Start.After(result[j].Start) })
	return result, nil
}

func (f *fakeTermRepo) deleteByMembership(membershipID int64) {
	for id, term := range f.terms {
		if term.MembershipID != membershipID {
			continue
		}
		delete(f.terms, id)
		if f.paymentRepo != nil {
			f.paymentRepo.deleteByTerm(id)
		}
	}
}

type fakePaymentRepo struct {
	payments []*models.Payment
	termRepo *fakeTermRepo
	nextID   int64
}

func newFakePaymentRepo(termRepo *fakeTermRepo) *fakePaymentRepo {
	f := &fakePaymentRepo{termRepo: termRepo}
	termRepo.paymentRepo = f
	return f
}

func (f *fakePaymentRepo) Record(_ context.Context, payment *models.Payment, newBalance float64, newStatus models.PaymentStatus) error {
	term, ok := f.termRepo.terms[payment.TermID]
	if !ok {
		return apperrors.ErrTermNotFound
	}

	f.nextID++
	payment.ID = f.nextID
	copied := *payment
	f.payments = append(f.payments, &copied)

	term.Balance = newBalance
	term.PaymentStatus = newStatus
	return nil
}

func (f *fakePaymentRepo) ListByTerm(_ context.Context, termID int64) ([]*models.Payment, error) {
	var result []*models.Payment
	for _, payment := range f.payments {
		if payment.TermID != termID {
			continue
		}
		copied := *payment
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakePaymentRepo) deleteByTerm(termID int64) {
	kept := f.payments[:0]
	for _, payment := range f.payments {
		if payment.TermID != termID {
			kept = append(kept, payment)
		}
	}
	f.payments = kept
}

// fakeReportRepo recomputes aggregations from the other fakes the way the
// SQL recomputes them from the payment table. Only the financial summary is
// exercised through fakes; the remaining queries answer empty.
type fakeReportRepo struct {
	orgRepo        *fakeOrgRepo
	membershipRepo *fakeMembershipRepo
	termRepo       *fakeTermRepo
	paymentRepo    *fakePaymentRepo
}

func (f *fakeReportRepo) FinancialSummaryByOrganization(ctx context.Context) ([]*dto.OrgFinancialSummaryRow, error) {
	orgs, err := f.orgRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var rows []*dto.OrgFinancialSummaryRow
	for _, org := range orgs {
		row := &dto.OrgFinancialSummaryRow{Organization: org.Name}
		for _, m := range f.membershipRepo.memberships {
			if m.OrgID != org.ID {
				continue
			}
			for _, term := range f.termRepo.terms {
				if term.MembershipID != m.ID {
					continue
				}
				row.TotalFees += term.FeeAmount
				for _, payment := range f.paymentRepo.payments {
					if payment.TermID == term.ID {
						row.TotalCollected += payment.Amount
					}
				}
			}
		}
		row.TotalBalance = row.TotalFees - row.TotalCollected
		rows = append(rows, row)
	}
	return rows, nil
}

func (f *fakeReportRepo) MembersWithUnpaidFees(context.Context, int64, string, string) ([]*dto.UnpaidFeeRow, error) {
	return nil, nil
}

func (f *fakeReportRepo) MemberUnpaidFees(context.Context, int64) ([]*dto.MemberDebtRow, error) {
	return nil, nil
}

func (f *fakeReportRepo) ExecutiveCommittee(context.Context, int64, string) ([]*dto.CommitteeMemberRow, error) {
	return nil, nil
}

func (f *fakeReportRepo) RoleHistory(context.Context, int64, string) ([]*dto.RoleHistoryRow, error) {
	return nil, nil
}

func (f *fakeReportRepo) LatePayments(context.Context, int64, string, string) ([]*dto.LatePaymentRow, error) {
	return nil, nil
}

func (f *fakeReportRepo) MembershipStatusBreakdown(context.Context, int64, int) (*dto.StatusBreakdownResponse, error) {
	return &dto.StatusBreakdownResponse{}, nil
}

func (f *fakeReportRepo) AlumniMembers(context.Context, int64, string) ([]*dto.AlumniRow, error) {
	return nil, nil
}

func (f *fakeReportRepo) OrganizationFinancialStatus(context.Context, int64, time.Time) (*dto.FinancialStatusResponse, error) {
	return &dto.FinancialStatusResponse{}, nil
}

func (f *fakeReportRepo) HighestDebtMembers(context.Context, int64, string, string) ([]*dto.DebtorRow, error) {
	return nil, nil
}

func (f *fakeReportRepo) TermBalances(context.Context) ([]*dto.TermBalanceRow, error) {
	return nil, nil
}
