package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/crm-backend/internal/api/dto"
	"github.com/spec-kit/crm-backend/internal/domain"
)

// StatusOptions configures the informational routes of an entry point.
type StatusOptions struct {
	ServiceName string
	Environment string
	Port        int
	RootMessage string
	// RootDetails adds timestamp and environment to GET /.
	RootDetails bool
	StartedAt   time.Time
}

// StatusHandler serves the root, status and type-check routes.
type StatusHandler struct {
	opts StatusOptions
}

// NewStatusHandler constructs handler.
func NewStatusHandler(opts StatusOptions) *StatusHandler {
	if opts.StartedAt.IsZero() {
		opts.StartedAt = time.Now()
	}
	return &StatusHandler{opts: opts}
}

// Root handles GET /.
func (h *StatusHandler) Root(c *fiber.Ctx) error {
	resp := dto.RootResponse{Message: h.opts.RootMessage}
	if h.opts.RootDetails {
		resp.Timestamp = dto.FormatTimestamp(time.Now())
		resp.Environment = h.opts.Environment
	}
	return c.JSON(resp)
}

// Status handles GET /api/status.
func (h *StatusHandler) Status(c *fiber.Ctx) error {
	return c.JSON(dto.StatusResponse{
		Status:  "OK",
		Service: h.opts.ServiceName,
		Port:    h.opts.Port,
		Uptime:  time.Since(h.opts.StartedAt).Seconds(),
	})
}

// TypeCheck handles GET /api/test-typescript. It builds one linked instance
// of every CRM entity through the validating constructors.
func (h *StatusHandler) TypeCheck(c *fiber.Ctx) error {
	if err := buildSampleEntities(); err != nil {
		return err
	}
	return c.JSON(dto.TypeCheckResponse{
		Message:      "entity type check successful",
		TypesWorking: true,
		Timestamp:    dto.FormatTimestamp(time.Now()),
	})
}

func buildSampleEntities() error {
	owner, err := domain.NewUser(domain.UserInput{
		Name:  "Sample Owner",
		Email: "owner@example.com",
		Role:  domain.UserRoleManager,
	})
	if err != nil {
		return err
	}
	customer, err := domain.NewCustomer(domain.CustomerInput{
		Name:   "Sample Customer",
		Email:  "customer@example.com",
		Status: domain.CustomerStatusProspect,
	})
	if err != nil {
		return err
	}
	deal, err := domain.NewDeal(domain.DealInput{
		CustomerID: customer.ID,
		Title:      "Sample Deal",
		Value:      decimal.NewFromInt(1000),
		Status:     domain.DealStatusLead,
		Stage:      "discovery",
	})
	if err != nil {
		return err
	}
	task, err := domain.NewTask(domain.TaskInput{
		Title:      "Sample follow-up",
		Status:     domain.TaskStatusPending,
		Priority:   domain.TaskPriorityMedium,
		AssigneeID: &owner.ID,
		CustomerID: &customer.ID,
		DealID:     &deal.ID,
	})
	if err != nil {
		return err
	}
	for _, v := range []interface{ Validate() error }{owner, customer, deal, task} {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
