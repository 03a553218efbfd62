package initializers

import (
	"context"

	"f1viz-backend/config"
	"f1viz-backend/fiberlog"
	catalogprovider "f1viz-backend/lib/catalog"
	"f1viz-backend/lib/charts"
	pdfexport "f1viz-backend/lib/export/pdf"
	xlsexport "f1viz-backend/lib/export/xls"
	"f1viz-backend/lib/ingest"
	ingestrefreshworker "f1viz-backend/lib/ingest/worker"
	timingclient "f1viz-backend/lib/provider/client"
	"f1viz-backend/lib/telemetry"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	timingclient.NewProvider()
	catalogprovider.NewHandler()
	charts.NewHandler()
	telemetry.NewHandler()
	xlsexport.NewHandler()
	pdfexport.NewHandler()
	ingest.NewHandler(ctx)
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Scheduled re-ingest of the active race weekend
	ingestrefreshworker.StartWorker(ctx)
}
