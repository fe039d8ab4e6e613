package initializers

import (
	"context"

	"wfp-backend/config"
	"wfp-backend/fiberlog"
	"wfp-backend/lib/analytics"
	candidateprovider "wfp-backend/lib/candidate"
	clientprovider "wfp-backend/lib/dicts/client"
	pdfexport "wfp-backend/lib/export/pdf"
	xlsexport "wfp-backend/lib/export/xls"
	filestorage "wfp-backend/lib/file-storage"
	xlsimport "wfp-backend/lib/import/xls"
	pipelineprovider "wfp-backend/lib/pipeline"
	planprovider "wfp-backend/lib/pipeline-plan"
	staffingprovider "wfp-backend/lib/staffing"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	filestorage.NewHandler(config.Conf.S3.BucketName)
	clientprovider.NewHandler()
	pipelineprovider.NewHandler()
	planprovider.NewHandler()
	staffingprovider.NewHandler()
	candidateprovider.NewHandler()
	analytics.NewHandler()
	xlsexport.NewHandler()
	pdfexport.NewHandler()
	xlsimport.NewHandler()
}
