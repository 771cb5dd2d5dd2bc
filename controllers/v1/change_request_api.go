package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"fnb-tracking-backend/controllers"
	crhandler "fnb-tracking-backend/lib/change-request"
	"fnb-tracking-backend/middleware"
	apimodels "fnb-tracking-backend/models/api"
	crapimodels "fnb-tracking-backend/models/api/changerequest"
	projectapimodels "fnb-tracking-backend/models/api/project"
)

type crApiController struct {
	controllers.BaseAPIController
}

func InitChangeRequestApiRouters(app *fiber.App) {
	controller := crApiController{}
	app.Route("change_requests", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get("project/:id", controller.listByProject)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Use(middleware.AdminRoleRequired())
			idRoute.Put("status", controller.updateStatus)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Create change request
// @Tags Change requests
// @Description File a change request against a project
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		crapimodels.ChangeRequestData	true	"request body"
// @Success 200 {object} apimodels.Response{data=crapimodels.ChangeRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/change_requests [post]
func (c *crApiController) create(ctx *fiber.Ctx) error {
	var payload crapimodels.ChangeRequestData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := crhandler.Instance.Create(payload, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create change request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List change requests
// @Tags Change requests
// @Description List change requests visible to the caller
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]crapimodels.ChangeRequestView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/change_requests [get]
func (c *crApiController) list(ctx *fiber.Ctx) error {
	var (
		resp []crapimodels.ChangeRequestView
		err  error
	)
	if middleware.GetUserRole(ctx).IsAdmin() {
		resp, err = crhandler.Instance.ListAll()
	} else {
		resp, err = crhandler.Instance.ListForUser(middleware.GetUserID(ctx))
	}
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list change requests")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List change requests by project
// @Tags Change requests
// @Description List change requests filed against a project
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "project ID"
// @Success 200 {object} apimodels.Response{data=[]crapimodels.ChangeRequestView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/change_requests/project/{id} [get]
func (c *crApiController) listByProject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := crhandler.Instance.ListByProject(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list project change requests")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get change request
// @Tags Change requests
// @Description Get a change request by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=crapimodels.ChangeRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/change_requests/{id} [get]
func (c *crApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := crhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get change request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update change request status
// @Tags Change requests
// @Description Move a change request to a new workflow status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param	body				body		projectapimodels.StatusUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=crapimodels.ChangeRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/change_requests/{id}/status [put]
func (c *crApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload projectapimodels.StatusUpdateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := crhandler.Instance.UpdateStatus(id, payload, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update change request status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete change request
// @Tags Change requests
// @Description Delete a change request and its dependent records
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/change_requests/{id} [delete]
func (c *crApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = crhandler.Instance.Delete(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete change request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
