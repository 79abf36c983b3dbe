package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/color"
	"github.com/stereoplay/stereoplay/constant"
	"github.com/stereoplay/stereoplay/style"
)

// Field is a configuration key with its default and help text.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable overriding the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Type names the Go type of the default.
func (f *Field) Type() string {
	return reflect.TypeOf(f.Value).String()
}

// Pretty renders the field for config info.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"key":         f.Key,
		"value":       viper.Get(f.Key),
		"default":     f.Value,
		"description": f.Description,
		"type":        f.Type(),
		"env":         f.Env(),
	})
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)("true")
		}
		return style.Fg(color.Red)("false")
	case string:
		return style.Fg(color.Yellow)(fmt.Sprintf("%q", value))
	default:
		return fmt.Sprint(value)
	}
}

var prettyTemplate = lo.Must(template.New("field").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"key":    style.Fg(color.Purple),
	"label":  style.Fg(color.Blue),
	"hl":     highlight,
	"global": func(k string) any { return viper.Get(k) },
}).Parse(`{{ key .Key }} {{ faint .Type }}
{{ faint .Description }}
{{ label "current" }} {{ hl (global .Key) }}  {{ label "default" }} {{ hl .Value }}
{{ label "env" }}     {{ .Env }}`))
