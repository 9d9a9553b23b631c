package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"flextime/internal/ports"
	"flextime/internal/types"
)

// ParseReportFile is the file name batch runs write into the output
// directory.
const ParseReportFile = "parse.report.yaml"

type ReportFileAdapter struct {
	Dir string
}

func NewReportFileAdapter(dir string) ReportFileAdapter {
	return ReportFileAdapter{Dir: dir}
}

// WriteParseReport writes the report with records in input order and
// returns the file path.
func (a ReportFileAdapter) WriteParseReport(report types.ParseReport) (string, error) {
	path, err := a.ensurePath(ParseReportFile)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(report)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode parse report").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write parse report").
			WithCause(err)
	}
	return path, nil
}

func (a ReportFileAdapter) ensurePath(name string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, name), nil
}

var _ ports.ReportWriterPort = ReportFileAdapter{}
