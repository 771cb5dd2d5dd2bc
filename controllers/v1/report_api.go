package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"fnb-tracking-backend/controllers"
	reporthandler "fnb-tracking-backend/lib/report"
	"fnb-tracking-backend/middleware"
	apimodels "fnb-tracking-backend/models/api"
	reportapimodels "fnb-tracking-backend/models/api/report"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	app.Route("report", func(router fiber.Router) {
		router.Get("", controller.generate)
		router.Get("export", controller.export)
	})
}

// @Summary Generate report
// @Tags Reports
// @Description Filtered projects and change requests with counts
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   date_from    		query   string  false   "start date, YYYY-MM-DD"
// @Param   date_to      		query   string  false   "end date, YYYY-MM-DD"
// @Param   status       		query   string  false   "status filter"
// @Param   type         		query   string  false   "PROJECT or CHANGE_REQUEST"
// @Success 200 {object} apimodels.Response{data=reportapimodels.ReportView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report [get]
func (c *reportApiController) generate(ctx *fiber.Ctx) error {
	var filter reportapimodels.ReportFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("failed to read query parameters"))
	}
	resp, err := reporthandler.Instance.Generate(filter, middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to generate report")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Export report
// @Tags Reports
// @Description Export the filtered report as an XLSX or PDF file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   date_from    		query   string  false   "start date, YYYY-MM-DD"
// @Param   date_to      		query   string  false   "end date, YYYY-MM-DD"
// @Param   status       		query   string  false   "status filter"
// @Param   type         		query   string  false   "PROJECT or CHANGE_REQUEST"
// @Param   format       		query   string  false   "xlsx (default) or pdf"
// @Success 200 {file} binary
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/export [get]
func (c *reportApiController) export(ctx *fiber.Ctx) error {
	var filter reportapimodels.ReportFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("failed to read query parameters"))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	if ctx.Query("format") == "pdf" {
		buf, err := reporthandler.Instance.ExportToPdf(filter, userID, role)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export report")
		}
		ctx.Set(fiber.HeaderContentType, "application/pdf")
		ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="report.pdf"`)
		return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
	}
	buf, err := reporthandler.Instance.ExportToXls(filter, userID, role)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export report")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="report.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
