package fixtures

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/flanksource/commons/logger"
	gomplate "github.com/flanksource/gomplate/v3"

	"github.com/flanksource/docket/suite"
)

// DefaultRenderer renders "Type(arg1,arg2)" display names. String arguments
// are quoted and truncated so names stay short and stable.
type DefaultRenderer struct {
	// MaxStringLength caps rendered string arguments, 40 by default.
	MaxStringLength int
}

func (r DefaultRenderer) Render(t suite.TypeInfo, args []any) string {
	if len(args) == 0 {
		return t.Name()
	}
	rendered := make([]string, len(args))
	for i, arg := range args {
		rendered[i] = r.renderArg(arg)
	}
	return fmt.Sprintf("%s(%s)", t.Name(), strings.Join(rendered, ","))
}

func (r DefaultRenderer) renderArg(arg any) string {
	maxLen := r.MaxStringLength
	if maxLen <= 0 {
		maxLen = 40
	}
	switch v := arg.(type) {
	case nil:
		return "nil"
	case string:
		if len(v) > maxLen {
			v = v[:maxLen] + "..."
		}
		return strconv.Quote(v)
	case reflect.Type:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// TemplateRenderer renders display names from a gomplate template. The
// template sees the type name, namespace, full name and the argument list.
// A failing template falls back to the default rendering.
type TemplateRenderer struct {
	Template string
}

func (r TemplateRenderer) Render(t suite.TypeInfo, args []any) string {
	out, err := gomplate.RunTemplate(map[string]any{
		"type":      t.Name(),
		"namespace": t.Namespace(),
		"fullName":  t.FullName(),
		"args":      args,
	}, gomplate.Template{
		Template: r.Template,
	})
	if err != nil {
		logger.Debugf("display name template failed for %s: %v", t.Name(), err)
		return DefaultRenderer{}.Render(t, args)
	}
	return out
}
