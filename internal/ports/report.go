package ports

import "flextime/internal/types"

type ReportWriterPort interface {
	WriteParseReport(report types.ParseReport) (string, error)
}

type ReportReaderPort interface {
	ReadParseReport(path string) (types.ParseReport, error)
}
