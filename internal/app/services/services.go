package services

import (
	"context"
	"time"

	"github.com/studorg/memtrack/internal/app/models"
	"github.com/studorg/memtrack/internal/app/models/dto"
	"github.com/studorg/memtrack/internal/app/repositories"
)

// Repository interfaces consumed by the services. The pgx-backed
// implementations live in the repositories package; tests substitute
// in-memory fakes.

// StudentRepository persists students
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Student, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// OrganizationRepository persists organizations
type OrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id int64) (*models.Organization, error)
	GetAll(ctx context.Context) ([]*models.Organization, error)
	Update(ctx context.Context, org *models.Organization) error
	Delete(ctx context.Context, id int64) error
}

// MembershipRepository persists memberships
type MembershipRepository interface {
	Create(ctx context.Context, membership *models.Membership) error
	GetByID(ctx context.Context, id int64) (*models.Membership, error)
	GetByOrganization(ctx context.Context, orgID int64, offset uint64, limit int) ([]*models.OrgMember, error)
	CountByOrganization(ctx context.Context, orgID int64) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status models.MemberStatus, feeTerm *models.Term) error
	Update(ctx context.Context, membership *models.Membership) error
	Delete(ctx context.Context, id int64) error
}

// TermRepository persists fee terms
type TermRepository interface {
	Create(ctx context.Context, term *models.Term) error
	GetByID(ctx context.Context, id int64) (*models.Term, error)
	GetLatestByMembership(ctx context.Context, membershipID int64) (*models.Term, error)
	ListByMembership(ctx context.Context, membershipID int64) ([]*models.Term, error)
}

// PaymentRepository persists payments together with the term balance they
// produce
type PaymentRepository interface {
	Record(ctx context.Context, payment *models.Payment, newBalance float64, newStatus models.PaymentStatus) error
	ListByTerm(ctx context.Context, termID int64) ([]*models.Payment, error)
}

// ReportRepository runs the read-only reporting aggregations
type ReportRepository interface {
	MembersWithUnpaidFees(ctx context.Context, orgID int64, semester, acadYear string) ([]*dto.UnpaidFeeRow, error)
	MemberUnpaidFees(ctx context.Context, studentID int64) ([]*dto.MemberDebtRow, error)
	ExecutiveCommittee(ctx context.Context, orgID int64, acadYear string) ([]*dto.CommitteeMemberRow, error)
	RoleHistory(ctx context.Context, orgID int64, role string) ([]*dto.RoleHistoryRow, error)
	LatePayments(ctx context.Context, orgID int64, semester, acadYear string) ([]*dto.LatePaymentRow, error)
	MembershipStatusBreakdown(ctx context.Context, orgID int64, nBatches int) (*dto.StatusBreakdownResponse, error)
	AlumniMembers(ctx context.Context, orgID int64, asOf string) ([]*dto.AlumniRow, error)
	OrganizationFinancialStatus(ctx context.Context, orgID int64, asOf time.Time) (*dto.FinancialStatusResponse, error)
	HighestDebtMembers(ctx context.Context, orgID int64, semester, acadYear string) ([]*dto.DebtorRow, error)
	TermBalances(ctx context.Context) ([]*dto.TermBalanceRow, error)
	FinancialSummaryByOrganization(ctx context.Context) ([]*dto.OrgFinancialSummaryRow, error)
}

// Services holds all the service instances
type Services struct {
	StudentService      *StudentService
	OrganizationService *OrganizationService
	MembershipService   *MembershipService
	TermService         *TermService
	PaymentService      *PaymentService
	ReportService       *ReportService
}

// NewServices initializes all services on top of the pgx repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		StudentService:      NewStudentService(repos.StudentRepository),
		OrganizationService: NewOrganizationService(repos.OrganizationRepository),
		MembershipService:   NewMembershipService(repos.MembershipRepository, repos.StudentRepository, repos.OrganizationRepository),
		TermService:         NewTermService(repos.TermRepository, repos.MembershipRepository),
		PaymentService:      NewPaymentService(repos.PaymentRepository, repos.TermRepository),
		ReportService:       NewReportService(repos.ReportRepository, repos.OrganizationRepository, repos.StudentRepository),
	}
}
