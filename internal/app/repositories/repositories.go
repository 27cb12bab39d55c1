package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository      *StudentRepository
	OrganizationRepository *OrganizationRepository
	MembershipRepository   *MembershipRepository
	TermRepository         *TermRepository
	PaymentRepository      *PaymentRepository
	ReportRepository       *ReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:      NewStudentRepository(db),
		OrganizationRepository: NewOrganizationRepository(db),
		MembershipRepository:   NewMembershipRepository(db),
		TermRepository:         NewTermRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		ReportRepository:       NewReportRepository(db),
	}
}
