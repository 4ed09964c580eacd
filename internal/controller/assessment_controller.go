package controller

import (
	"askaprilai-be/internal/dto"
	"askaprilai-be/internal/pkg/serverutils"
	"askaprilai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssessmentController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	CompanyAnalytics(ctx *fiber.Ctx) error
}

type assessmentController struct {
	assessmentService service.IAssessmentService
}

func NewAssessmentController(assessmentService service.IAssessmentService) IAssessmentController {
	return &assessmentController{
		assessmentService: assessmentService,
	}
}

func (c *assessmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assessment/v1")
	h.Post("", c.Submit)
	h.Get("", c.CompanyAnalytics)
}

func (c *assessmentController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitAssessmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.assessmentService.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Assessment saved successfully", res))
}

func (c *assessmentController) CompanyAnalytics(ctx *fiber.Ctx) error {
	companyCode := ctx.Query("companyCode")

	res, err := c.assessmentService.GetCompanyAnalytics(ctx.Context(), companyCode)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get company analytics", res))
}
