package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"fnb-tracking-backend/controllers"
	filestorage "fnb-tracking-backend/lib/file-storage"
	"fnb-tracking-backend/middleware"
	apimodels "fnb-tracking-backend/models/api"
)

type fileApiController struct {
	controllers.BaseAPIController
}

func InitFileApiRouters(app *fiber.App) {
	controller := fileApiController{}
	app.Route("files", func(router fiber.Router) {
		router.Post("", controller.upload)
		router.Get(":id", controller.download)
	})
}

// @Summary Upload file
// @Tags Files
// @Description Attach a file to a project or change request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file	true	"file content"
// @Param   project_id			formData	string	false	"project ID"
// @Param   change_request_id	formData	string	false	"change request ID"
// @Success 200 {object} apimodels.Response{data=attachmentapimodels.AttachmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files [post]
func (c *fileApiController) upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to read uploaded file")
	}
	defer buffer.Close()

	var projectID, changeRequestID *string
	if value := ctx.FormValue("project_id"); value != "" {
		projectID = &value
	}
	if value := ctx.FormValue("change_request_id"); value != "" {
		changeRequestID = &value
	}
	resp, err := filestorage.Instance.Upload(ctx.Context(), projectID, changeRequestID,
		file.Filename, buffer, file.Size, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to upload file")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Download file
// @Tags Files
// @Description Download an attachment by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files/{id} [get]
func (c *fileApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, body, err := filestorage.Instance.Download(ctx.Context(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to download file")
	}
	ctx.Set(fiber.HeaderContentType, "application/octet-stream")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return ctx.Status(fiber.StatusOK).Send(body)
}
