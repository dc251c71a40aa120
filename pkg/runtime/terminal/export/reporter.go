package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/qbr-atlas/pkg/models/domain"
)

// Reporter renders a generated QBR to the console with a metadata header.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) Handle(report *domain.GeneratedReport) error {
	tmpl := `
Quarterly Business Review: {{.Company}}
Generated: {{.CreatedAt.Format "2006-01-02 15:04"}}
Model: {{.Model}}
Template: {{.Template}}
View: {{.View}}

{{.Content}}
`
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, report)
}
