package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"

	"newstr/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir is where the unformatted sidecar goes when formatting fails.
	// Empty disables the sidecar.
	OutputDir string
	// Command is named in the generated header.
	Command string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir: ".",
		Command:   "newstr-gen",
	}
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Command == "" {
		config.Command = DefaultGeneratorConfig().Command
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file, e.g. "newstr_gen.go".
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// templateData holds all data needed for the file template.
type templateData struct {
	Command      string
	PackageName  string
	ImportGroups [][]plan.Import
	Types        []plan.ResolvedType
}

// Generate renders the plan into a single file. A plan holding errors is
// refused. When formatting fails the unformatted source is returned with the
// error and written next to the output for inspection.
func (g *Generator) Generate(p *plan.Plan) (*GeneratedFile, error) {
	if p == nil {
		return nil, fmt.Errorf("nil plan")
	}

	if p.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("plan has errors: %w", p.Diagnostics.Error())
	}

	if len(p.Types) == 0 {
		return nil, fmt.Errorf("plan has no types")
	}

	data := &templateData{
		Command:     g.config.Command,
		PackageName: p.PackageName,
		Types:       p.Types,
	}

	data.ImportGroups = importGroups(p.Imports)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := imports.Process(p.Output, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, p.Output, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: p.Output,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: p.Output,
		Content:  formatted,
	}, nil
}

// importGroups splits sorted imports into the non-empty blank-line separated
// groups of the import block. goimports sorts within a group only, so a
// dotless module path alone in its group stays out of the standard library.
func importGroups(imps []plan.Import) [][]plan.Import {
	var (
		groups [][]plan.Import
		last   = -1
	)

	for _, imp := range imps {
		if g := imp.Group(); g != last {
			groups = append(groups, nil)
			last = g
		}

		groups[len(groups)-1] = append(groups[len(groups)-1], imp)
	}

	return groups
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by {{.Command}}. DO NOT EDIT.

package {{.PackageName}}

import (
{{range $i, $group := .ImportGroups}}{{if $i}}
{{end}}{{range $group}}	{{.Spec}}
{{end}}{{end}})
{{range .Types}}
{{template "type" .}}
{{end}}`))

func init() {
	template.Must(fileTemplate.New("type").Parse(typeTemplate))
}

const typeTemplate = `{{$rt := .Runtime}}{{$t := .Name}}
{{- range .Doc}}
// {{.}}
{{- end}}
type {{$t}} struct {
	value string
}

var (
	_ fmt.Stringer   = {{$t}}{}
	_ fmt.GoStringer = {{$t}}{}
{{- if .Capabilities.Text}}
	_ encoding.TextMarshaler   = {{$t}}{}
	_ encoding.TextUnmarshaler = (*{{$t}})(nil)
{{- end}}
{{- if .Capabilities.YAML}}
	_ yaml.Marshaler   = {{$t}}{}
	_ yaml.Unmarshaler = (*{{$t}})(nil)
{{- end}}
{{- if .Capabilities.SQL}}
	_ driver.Valuer = {{$t}}{}
	_ sql.Scanner   = (*{{$t}})(nil)
{{- end}}
)
{{if .MatcherVar}}
var {{.MatcherVar}} = {{.MatcherInit}}
{{end}}
// IsValid{{$t}} reports whether Parse{{$t}} accepts s.
func IsValid{{$t}}(s string) bool {
{{- if .Strategy.IsParseMode}}
	_, err := {{.ParseCall}}
	return err == nil
{{- else}}
	return {{.Check}}
{{- end}}
}

// Parse{{$t}} returns the {{$t}} holding {{if .Strategy.IsParseMode}}the result of parsing s{{else}}s, or an error if s is invalid{{end}}.
func Parse{{$t}}(s string) ({{$t}}, error) {
{{- if .Strategy.IsParseMode}}
	v, err := {{.ParseCall}}
	if err != nil {
		return {{$t}}{}, {{$rt}}.NewParseError("{{$t}}", s, err)
	}

	return {{$t}}{value: {{if .ConvertResult}}string(v){{else}}v{{end}}}, nil
{{- else}}
	if !IsValid{{$t}}(s) {
		return {{$t}}{}, {{$rt}}.NewParseError("{{$t}}", s, nil)
	}

	return {{$t}}{value: s}, nil
{{- end}}
}

// MustParse{{$t}} is like Parse{{$t}} but panics if s is invalid.
func MustParse{{$t}}(s string) {{$t}} {
	v, err := Parse{{$t}}(s)
	if err != nil {
		panic(err)
	}

	return v
}

// String returns the wrapped text.
func (v {{$t}}) String() string {
	return v.value
}

// GoString implements fmt.GoStringer.
func (v {{$t}}) GoString() string {
	return fmt.Sprintf("{{$t}}(%q)", v.value)
}

// Len returns the length of the wrapped text in bytes.
func (v {{$t}}) Len() int {
	return len(v.value)
}

// IsZero reports whether v is the zero value, which holds no validated text.
func (v {{$t}}) IsZero() bool {
	return v.value == ""
}

// Equal reports whether v and other wrap the same text.
func (v {{$t}}) Equal(other {{$t}}) bool {
	return v.value == other.value
}

// Compare orders values by their wrapped text.
func (v {{$t}}) Compare(other {{$t}}) int {
	return strings.Compare(v.value, other.value)
}

// Less reports whether v sorts before other.
func (v {{$t}}) Less(other {{$t}}) bool {
	return v.value < other.value
}

// Hash returns a hash of the wrapped text, consistent with Equal.
func (v {{$t}}) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, v.value)
}
{{- if .Capabilities.Text}}

// MarshalText implements encoding.TextMarshaler.
func (v {{$t}}) MarshalText() ([]byte, error) {
	return []byte(v.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *{{$t}}) UnmarshalText(text []byte) error {
	parsed, err := Parse{{$t}}(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}
{{- end}}
{{- if .Capabilities.YAML}}

// MarshalYAML implements yaml.Marshaler.
func (v {{$t}}) MarshalYAML() (any, error) {
	return v.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *{{$t}}) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("newstr: cannot decode YAML node of kind %d into {{$t}}", node.Kind)
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := Parse{{$t}}(s)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}
{{- end}}
{{- if .Capabilities.SQL}}

// Value implements driver.Valuer.
func (v {{$t}}) Value() (driver.Value, error) {
	return v.value, nil
}

// Scan implements sql.Scanner. NULL scans into the zero value.
func (v *{{$t}}) Scan(src any) error {
	var s string

	switch src := src.(type) {
	case nil:
		*v = {{$t}}{}
		return nil
	case string:
		s = src
	case []byte:
		s = string(src)
	default:
		return fmt.Errorf("newstr: cannot scan %T into {{$t}}", src)
	}

	parsed, err := Parse{{$t}}(s)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}
{{- end}}
`
