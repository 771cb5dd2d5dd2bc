package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"fnb-tracking-backend/controllers"
	auditloghandler "fnb-tracking-backend/lib/audit-log"
	"fnb-tracking-backend/middleware"
	apimodels "fnb-tracking-backend/models/api"
)

type logApiController struct {
	controllers.BaseAPIController
}

func InitLogApiRouters(app *fiber.App) {
	controller := logApiController{}
	app.Route("logs", func(router fiber.Router) {
		router.Get("", controller.list)
	})
}

// @Summary List activity log
// @Tags Logs
// @Description Caller's audit records, optionally for a single day
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   date         		query   string  false   "day filter, YYYY-MM-DD"
// @Success 200 {object} apimodels.Response{data=[]auditapimodels.LogView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/logs [get]
func (c *logApiController) list(ctx *fiber.Ctx) error {
	resp, err := auditloghandler.Instance.List(middleware.GetUserID(ctx), ctx.Query("date"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list activity log")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
