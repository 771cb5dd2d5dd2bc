package initializers

import (
	"context"

	"fnb-tracking-backend/config"
	"fnb-tracking-backend/fiberlog"
	auditloghandler "fnb-tracking-backend/lib/audit-log"
	authhandler "fnb-tracking-backend/lib/auth"
	crhandler "fnb-tracking-backend/lib/change-request"
	dashboardhandler "fnb-tracking-backend/lib/dashboard"
	pdfexport "fnb-tracking-backend/lib/export/pdf"
	xlsexport "fnb-tracking-backend/lib/export/xls"
	filestorage "fnb-tracking-backend/lib/file-storage"
	notificationhandler "fnb-tracking-backend/lib/notification"
	projecthandler "fnb-tracking-backend/lib/project"
	reporthandler "fnb-tracking-backend/lib/report"
	usershandler "fnb-tracking-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	auditloghandler.NewHandler()
	notificationhandler.NewHandler()
	usershandler.NewHandler()
	authhandler.NewHandler()
	projecthandler.NewHandler()
	crhandler.NewHandler()
	dashboardhandler.NewHandler()
	xlsexport.NewHandler()
	pdfexport.NewHandler()
	reporthandler.NewHandler()
	filestorage.NewHandler()
}
