package models

type ActionType string

const (
	ActionLogin               ActionType = "LOGIN"
	ActionCreateProject       ActionType = "CREATE_PROJECT"
	ActionUpdateProject       ActionType = "UPDATE_PROJECT"
	ActionDeleteProject       ActionType = "DELETE_PROJECT"
	ActionUpdateStatus        ActionType = "UPDATE_STATUS"
	ActionCreateChangeRequest ActionType = "CREATE_CHANGE_REQUEST"
	ActionDeleteChangeRequest ActionType = "DELETE_CHANGE_REQUEST"
	ActionCreateUser          ActionType = "CREATE_USER"
	ActionUpdateUser          ActionType = "UPDATE_USER"
	ActionDeleteUser          ActionType = "DELETE_USER"
	ActionUploadFile          ActionType = "UPLOAD_FILE"
)

type EntityType string

const (
	EntityProject       EntityType = "PROJECT"
	EntityChangeRequest EntityType = "CHANGE_REQUEST"
	EntityUser          EntityType = "USER"
	EntityAttachment    EntityType = "ATTACHMENT"
)

type NotificationType string

const (
	NotificationStatusUpdate   NotificationType = "STATUS_UPDATE"
	NotificationProjectDeleted NotificationType = "PROJECT_DELETED"
)
