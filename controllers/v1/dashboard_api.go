package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"fnb-tracking-backend/controllers"
	dashboardhandler "fnb-tracking-backend/lib/dashboard"
	"fnb-tracking-backend/middleware"
	apimodels "fnb-tracking-backend/models/api"
)

type dashboardApiController struct {
	controllers.BaseAPIController
}

func InitDashboardApiRouters(app *fiber.App) {
	controller := dashboardApiController{}
	app.Route("dashboard", func(router fiber.Router) {
		router.Get("", controller.stats)
	})
}

// @Summary Dashboard statistics
// @Tags Dashboard
// @Description Totals and group-by tallies over the caller's visible records
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.DashboardStats}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard [get]
func (c *dashboardApiController) stats(ctx *fiber.Ctx) error {
	resp, err := dashboardhandler.Instance.GetStats(middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build dashboard")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
