package gen

import (
	"bytes"
	"go/format"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	cdbc "go.einride.tech/can/pkg/dbc"
)

// matrixTemplate renders a message list into a Go source file shaped like
// pkg/matrix/vm2.go.
const matrixTemplate = `// Code generated by "canmatrix gen" from {{ .Source }}. DO NOT EDIT.

package {{ .Package }}

// {{ .FuncName }} returns the {{ .Source }} CAN matrix.
func {{ .FuncName }}() *Matrix { return {{ .VarName }} }

var {{ .VarName }} = must(New(
{{- range .Messages }}
	&Message{
		ID:     {{ .ID }},
		Name:   "{{ .Name }}",
		DLC:    {{ .DLC }},
		Sender: "{{ .Sender }}",
		Signals: []*Signal{
{{- range .Signals }}
			{Name: "{{ .Name }}", MessageID: {{ .MessageID }}, StartBit: {{ .StartBit }}, BitLength: {{ .BitLength }}{{ if .Signed }}, Signed: true{{ end }}, Scale: {{ .Scale }}, Offset: {{ .Offset }}, Min: {{ .Min }}, Max: {{ .Max }}{{ if .Unit }}, Unit: "{{ .Unit }}"{{ end }}},
{{- end }}
		},
	},
{{- end }}
))
`

type templateSignal struct {
	Name      string
	MessageID string
	StartBit  uint64
	BitLength uint64
	Signed    bool
	Scale     string
	Offset    string
	Min       string
	Max       string
	Unit      string
}

type templateMessage struct {
	ID      string
	Name    string
	DLC     uint64
	Sender  string
	Signals []templateSignal
}

type templateData struct {
	Source   string
	Package  string
	FuncName string
	VarName  string
	Messages []templateMessage
}

// GenerateFromDBC parses a DBC file and writes a Go matrix table for it.
// Only big-endian (Motorola) signals are emitted; the DBC start bit of a
// Motorola signal is already the MSB position in the matrix numbering.
func GenerateFromDBC(dbcPath, outputPath, funcName string, logger *slog.Logger) error {
	data, err := os.ReadFile(dbcPath)
	if err != nil {
		return errors.Wrap(err, "read dbc file")
	}

	parser := cdbc.NewParser(filepath.Base(dbcPath), data)
	if err := parser.Parse(); err != nil {
		return errors.Wrap(err, "parse dbc file")
	}

	td := templateData{
		Source:   filepath.Base(dbcPath),
		Package:  "matrix",
		FuncName: funcName,
		VarName:  strings.ToLower(funcName),
	}
	for _, def := range parser.File().Defs {
		m, ok := def.(*cdbc.MessageDef)
		if !ok || m.MessageID == cdbc.IndependentSignalsMessageID {
			continue
		}
		msgID := m.MessageID.ToCAN()
		tm := templateMessage{
			ID:     hexID(msgID),
			Name:   string(m.Name),
			DLC:    m.Size,
			Sender: string(m.Transmitter),
		}
		for _, s := range m.Signals {
			if !s.IsBigEndian {
				logger.Warn("skipping little-endian signal",
					"message", string(m.Name), "signal", string(s.Name))
				continue
			}
			tm.Signals = append(tm.Signals, templateSignal{
				Name:      string(s.Name),
				MessageID: hexID(msgID),
				StartBit:  s.StartBit,
				BitLength: s.Size,
				Signed:    s.IsSigned,
				Scale:     formatFloat(s.Factor),
				Offset:    formatFloat(s.Offset),
				Min:       formatFloat(s.Minimum),
				Max:       formatFloat(s.Maximum),
				Unit:      s.Unit,
			})
		}
		td.Messages = append(td.Messages, tm)
	}

	tmpl, err := template.New("matrix").Parse(matrixTemplate)
	if err != nil {
		return errors.Wrap(err, "parse matrix template")
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, td); err != nil {
		return errors.Wrap(err, "execute matrix template")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return errors.Wrap(err, "gofmt generated table")
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	if err := os.WriteFile(outputPath, src, 0o644); err != nil {
		return errors.Wrap(err, "write matrix table")
	}

	logger.Info("Generated matrix table",
		"output", outputPath,
		"messages", len(td.Messages),
	)
	return nil
}

func hexID(id uint32) string {
	return "0x" + strings.ToUpper(strconv.FormatUint(uint64(id), 16))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
