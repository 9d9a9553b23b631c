package app

import (
	"time"

	"flextime/internal/adapters"
	"flextime/internal/ports"
)

type Service struct {
	CatalogLoader ports.ProductCatalogPort
	CatalogSource ports.CatalogSourcePort
	InputSource   ports.InputSourcePort
	ReportReader  ports.ReportReaderPort
	ReportWriter  func(outputDir string) ports.ReportWriterPort
	Clock         func() time.Time
}

func NewService() Service {
	catalog := adapters.NewCatalogFileAdapter()
	return Service{
		CatalogLoader: catalog,
		CatalogSource: adapters.NewCatalogSourceAdapter(catalog),
		InputSource:   adapters.NewInputFileAdapter(),
		ReportReader:  adapters.NewReportReaderAdapter(),
		ReportWriter:  newReportFileWriter,
		Clock:         time.Now,
	}
}

func newReportFileWriter(outputDir string) ports.ReportWriterPort {
	return adapters.NewReportFileAdapter(outputDir)
}

func timeNow(clock func() time.Time) time.Time {
	if clock == nil {
		return time.Now()
	}
	return clock()
}
