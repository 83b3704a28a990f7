package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/ttvcli/ttv/color"
	"github.com/ttvcli/ttv/constant"
	"github.com/ttvcli/ttv/icon"
	"github.com/ttvcli/ttv/key"
	"github.com/ttvcli/ttv/quality"
	"github.com/ttvcli/ttv/style"
)

// Field is a registered configuration setting.
type Field struct {
	Key         string
	Value       any
	Description string

	// Choices enumerates accepted values for string fields.
	// Empty means any value of the right type.
	Choices []string
}

// Pretty renders the field for `ttv config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable that overrides this field.
func (f *Field) Env() string {
	prefix := strings.ToUpper(constant.App + "_")
	return prefix + strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
}

// Check reports whether value is acceptable for an enumerated field.
// The empty string passes when it is also the default.
func (f *Field) Check(value string) error {
	if len(f.Choices) == 0 || lo.Contains(f.Choices, value) {
		return nil
	}

	if value == "" && f.Value == "" {
		return nil
	}

	return fmt.Errorf("invalid value %q for %s, expected one of %s", value, f.Key, strings.Join(f.Choices, ", "))
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Choices     []string `json:"choices,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        fmt.Sprintf("%T", f.Value),
		Choices:     f.Choices,
	})
}

// Default maps every known key to its field.
var Default = make(map[string]Field)

// EnvExposed lists keys bound to TTV_* environment variables, in registration order.
var EnvExposed []string

var fields = []Field{
	{
		Key:         key.QualityAlways,
		Value:       "",
		Description: "Axis used to pick a stream without asking.\nEmpty means ask every time",
		Choices:     quality.Preferences(),
	},
	{
		Key:         key.PlayerDefault,
		Value:       "mpv",
		Description: "Media player that opens the selected stream.\nAny binary on PATH works, mpv, iina and vlc get a window title",
	},
	{
		Key:         key.PlayerArgs,
		Value:       []string{},
		Description: "Extra arguments passed to the player before the stream URL",
	},
	{
		Key:         key.PlayerPrintURL,
		Value:       false,
		Description: "Print the selected stream URL instead of launching the player",
	},
	{
		Key:         key.BroadcastersSuggest,
		Value:       true,
		Description: "Suggest remembered broadcasters in shell completion",
	},
	{
		Key:         key.VodsLimit,
		Value:       10,
		Description: "How many past broadcasts `ttv vods` lists",
	},
	{
		Key:         key.IconsVariant,
		Value:       "plain",
		Description: "Icons variant. nerd requires a nerd font",
		Choices:     icon.AvailableVariants(),
	},
	{
		Key:         key.LogsWrite,
		Value:       false,
		Description: "Write logs",
	},
	{
		Key:         key.LogsLevel,
		Value:       "info",
		Description: "Log level, from less to most verbose",
		Choices:     []string{"panic", "fatal", "error", "warn", "info", "debug", "trace"},
	},
	{
		Key:         key.LogsJson,
		Value:       false,
		Description: "Use json format for logs",
	},
	{
		Key:         key.CliColored,
		Value:       true,
		Description: "Colored CLI output",
	},
	{
		Key:         key.CliVersionCheck,
		Value:       true,
		Description: "Check for a newer release after `ttv version`",
	},
}

func init() {
	for _, f := range fields {
		if _, exists := Default[f.Key]; exists {
			panic("duplicate config key: " + f.Key)
		}

		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"value":  func(k string) any { return viper.Get(k) },
	"join":   strings.Join,
	"type":   func(v any) string { return fmt.Sprintf("%T", v) },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			if value == "" {
				return style.Faint("(empty)")
			}
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl .Value }}
{{ blue "Type:" }}    {{ type .Value }}{{ if .Choices }}
{{ blue "Choices:" }} {{ join .Choices ", " }}{{ end }}`))
