package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studorg/memtrack/internal/app/models/dto"
	"github.com/studorg/memtrack/internal/app/services"
	"github.com/studorg/memtrack/internal/middleware"
)

// PaymentController handles payment endpoints
type PaymentController struct {
	paymentService *services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// RecordPayment applies a payment against a fee term. The amount is
// validated against the outstanding balance before anything is written.
func (c *PaymentController) RecordPayment(ctx *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	paymentDate, err := parseDateField("paymentDate", req.PaymentDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	payment, term, err := c.paymentService.RecordPayment(ctx, req.TermID, req.Amount, paymentDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.RecordPaymentResponse{
		Payment: dto.FromPayment(payment),
		Term:    dto.FromTerm(term),
	}))
}

// ListTermPayments lists the payments applied to one term, oldest first
func (c *PaymentController) ListTermPayments(ctx *gin.Context) {
	termID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	payments, err := c.paymentService.ListPayments(ctx, termID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.PaymentListResponse{Payments: make([]dto.PaymentResponse, 0, len(payments))}
	for _, payment := range payments {
		resp.Payments = append(resp.Payments, dto.FromPayment(payment))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
