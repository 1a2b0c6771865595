package canvas2d

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/canvas2d/host"
)

// Style maps DOM style property names to values. Keys are camelCase
// ("backgroundColor"); CSS kebab-case keys are accepted by the functions
// that validate a Style and normalised on the way in.
type Style = host.Style

// knownProperties lists the style properties a canvas forwards to its host.
var knownProperties = map[string]bool{
	"background": true, "backgroundColor": true,
	"border": true, "borderColor": true, "borderRadius": true, "borderStyle": true, "borderWidth": true,
	"bottom": true, "boxShadow": true, "boxSizing": true,
	"cursor": true, "display": true, "float": true,
	"height": true, "imageRendering": true, "left": true,
	"margin": true, "marginBottom": true, "marginLeft": true, "marginRight": true, "marginTop": true,
	"maxHeight": true, "maxWidth": true, "minHeight": true, "minWidth": true,
	"opacity": true, "outline": true, "overflow": true,
	"padding": true, "paddingBottom": true, "paddingLeft": true, "paddingRight": true, "paddingTop": true,
	"position": true, "right": true, "top": true, "touchAction": true,
	"transform": true, "transformOrigin": true, "verticalAlign": true,
	"visibility": true, "width": true, "zIndex": true,
}

// DefaultContainerStyle returns the container layout used when no container
// style is configured: a relatively positioned full-viewport box.
func DefaultContainerStyle() Style {
	return Style{
		"margin":   "0%",
		"width":    "100vw",
		"height":   "100vh",
		"position": "relative",
	}
}

// ParseStyle parses an inline CSS declaration list such as
// "border: 1px solid black; image-rendering: pixelated" into a validated Style.
func ParseStyle(inline string) (Style, error) {
	inline = strings.TrimSpace(inline)
	if inline == "" {
		return Style{}, nil
	}
	// The declaration parser is strict about the trailing semicolon.
	if !strings.HasSuffix(inline, ";") {
		inline += ";"
	}
	decls, err := parser.ParseDeclarations(inline)
	if err != nil {
		return nil, fmt.Errorf("%w: style %q: %v", ErrInvalidConfig, inline, err)
	}
	raw := make(Style, len(decls))
	for _, d := range decls {
		raw[d.Property] = d.Value
	}
	return NormalizeStyle(raw)
}

// NormalizeStyle returns a copy of s with camelCase keys and trimmed values.
// Unknown properties, empty values and values that could escape a
// declaration are rejected.
func NormalizeStyle(s Style) (Style, error) {
	if s == nil {
		return nil, nil
	}
	out := make(Style, len(s))
	var unknown []string
	for k, v := range s {
		name := propertyName(k)
		if !knownProperties[name] {
			unknown = append(unknown, k)
			continue
		}
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, fmt.Errorf("%w: empty value for style property %q", ErrInvalidConfig, k)
		}
		if strings.ContainsAny(v, ";{}") {
			return nil, fmt.Errorf("%w: style property %q has invalid value %q", ErrInvalidConfig, k, v)
		}
		out[name] = v
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: unknown style properties %s", ErrInvalidConfig, strings.Join(unknown, ", "))
	}
	return out, nil
}

// propertyName converts a CSS property name to its DOM camelCase form.
// Names already in camelCase are returned unchanged.
func propertyName(css string) string {
	css = strings.TrimSpace(css)
	if !strings.Contains(css, "-") {
		return css
	}
	parts := strings.Split(css, "-")
	lower := cases.Lower(language.Und)
	title := cases.Title(language.Und)
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			// A leading or doubled dash (custom properties) never maps to
			// a known property.
			return css
		}
		if i == 0 {
			b.WriteString(lower.String(p))
			continue
		}
		b.WriteString(title.String(p))
	}
	return b.String()
}
