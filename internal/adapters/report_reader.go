package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"flextime/internal/ports"
	"flextime/internal/types"
)

type ReportReaderAdapter struct{}

func NewReportReaderAdapter() ReportReaderAdapter {
	return ReportReaderAdapter{}
}

func (a ReportReaderAdapter) ReadParseReport(path string) (types.ParseReport, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.ParseReport{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("parse report not found").
			WithCause(err)
	}
	var report types.ParseReport
	if err := yaml.Unmarshal(content, &report); err != nil {
		return types.ParseReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid parse report format").
			WithCause(err)
	}
	return report, nil
}

var _ ports.ReportReaderPort = ReportReaderAdapter{}
