package adapters

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"flextime/internal/ports"
)

// InputFileAdapter reads one input per line. Blank lines and lines
// starting with '#' are skipped; "-" reads from Stdin.
type InputFileAdapter struct {
	Stdin io.Reader
}

func NewInputFileAdapter() InputFileAdapter {
	return InputFileAdapter{Stdin: os.Stdin}
}

func (a InputFileAdapter) ReadInputs(path string) ([]string, error) {
	if strings.TrimSpace(path) == "-" {
		return readInputLines(a.Stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("input file not found").
			WithCause(err)
	}
	defer file.Close()
	return readInputLines(file)
}

func readInputLines(reader io.Reader) ([]string, error) {
	if reader == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("input reader is not configured")
	}
	var inputs []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read inputs").
			WithCause(err)
	}
	return inputs, nil
}

var _ ports.InputSourcePort = InputFileAdapter{}
