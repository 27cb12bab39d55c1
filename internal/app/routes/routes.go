package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studorg/memtrack/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	organizationController *controllers.OrganizationController,
	membershipController *controllers.MembershipController,
	termController *controllers.TermController,
	paymentController *controllers.PaymentController,
	reportController *controllers.ReportController,
) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.ListStudents)
		students.GET("/:id", studentController.GetStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	organizations := v1.Group("/organizations")
	{
		organizations.POST("", organizationController.CreateOrganization)
		organizations.GET("", organizationController.ListOrganizations)
		organizations.GET("/:id", organizationController.GetOrganization)
		organizations.PUT("/:id", organizationController.UpdateOrganization)
		organizations.DELETE("/:id", organizationController.DeleteOrganization)
		organizations.GET("/:id/members", membershipController.ListOrganizationMembers)
	}

	memberships := v1.Group("/memberships")
	{
		memberships.POST("", membershipController.CreateMembership)
		memberships.GET("/:id", membershipController.GetMembership)
		memberships.PUT("/:id", membershipController.UpdateMembership)
		memberships.PUT("/:id/status", membershipController.UpdateMembershipStatus)
		memberships.DELETE("/:id", membershipController.DeleteMembership)
		memberships.GET("/:id/terms", termController.ListMembershipTerms)
	}

	terms := v1.Group("/terms")
	{
		terms.POST("", termController.OpenTerm)
		terms.GET("/:id", termController.GetTerm)
		terms.GET("/:id/payments", paymentController.ListTermPayments)
	}

	v1.POST("/payments", paymentController.RecordPayment)

	reports := v1.Group("/reports")
	{
		reports.GET("/unpaid-fees", reportController.UnpaidFees)
		reports.GET("/member-debts", reportController.MemberDebts)
		reports.GET("/executive-committee", reportController.ExecutiveCommittee)
		reports.GET("/role-history", reportController.RoleHistory)
		reports.GET("/late-payments", reportController.LatePayments)
		reports.GET("/status-breakdown", reportController.StatusBreakdown)
		reports.GET("/alumni", reportController.Alumni)
		reports.GET("/financial-status", reportController.FinancialStatus)
		reports.GET("/highest-debts", reportController.HighestDebts)
		reports.GET("/term-balances", reportController.TermBalances)
		reports.GET("/financial-summary", reportController.FinancialSummary)
	}
}
