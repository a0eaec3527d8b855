package view

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/diewo77/go-immo/internal/i18n"
)

var (
	baseDir  string
	tplCache = struct {
		sync.RWMutex
		m map[string]*template.Template
	}{m: map[string]*template.Template{}}

	langResolver  = func(_ *http.Request) string { return "fr" }
	themeResolver = func(_ *http.Request) string { return "system" }
)

// SetLangResolver allows the host app to provide a custom language resolver (e.g., reading from context).
func SetLangResolver(f func(*http.Request) string) {
	if f != nil {
		langResolver = f
	}
}

// SetThemeResolver allows the host app to provide a custom theme resolver.
func SetThemeResolver(f func(*http.Request) string) {
	if f != nil {
		themeResolver = f
	}
}

func detectBase() string {
	candidates := []string{"templates", "../templates", "../../templates", "../../../templates"}
	for _, c := range candidates {
		if fi, err := os.Stat(filepath.Clean(c)); err == nil && fi.IsDir() {
			return filepath.Clean(c)
		}
	}
	return "templates"
}

// SetBaseDir overrides the template base directory (useful for tests or custom setups).
func SetBaseDir(path string) {
	if path == "" {
		return
	}
	tplCache.Lock()
	baseDir = filepath.Clean(path)
	tplCache.m = map[string]*template.Template{}
	tplCache.Unlock()
}

// Funcs returns the standard func map including i18n and formatting helpers.
func Funcs(r *http.Request) template.FuncMap {
	lang := langResolver(r)
	theme := themeResolver(r)
	return template.FuncMap{
		"t":     func(code string) string { return i18n.T(lang, code) },
		"lang":  func() string { return lang },
		"theme": func() string { return theme },
		"year":  func() int { return time.Now().Year() },
		// dash renders "-" for nil/blank values (the UI placeholder for null).
		"dash": Dash,
		// dh renders an optional amount as "<n> DH" or "-" (table cells).
		"dh": DH,
		// money renders an optional amount with locale grouping (consultation).
		"money": Money,
		// dateFR converts an ISO 8601 wire date to the localized dd/mm/yyyy form.
		"dateFR": DateFR,
		// ouiNon renders a tri-state flag as Oui / Non / "-".
		"ouiNon": func(b *bool) string { return OuiNon(lang, b) },
		// dict creates a map from key-value pairs for passing to sub-templates.
		"dict": func(values ...any) map[string]any {
			if len(values)%2 != 0 {
				return nil
			}
			m := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					continue
				}
				m[key] = values[i+1]
			}
			return m
		},
	}
}

// Dash renders optional values, replacing nil/blank by the "-" placeholder.
func Dash(v any) string {
	switch n := v.(type) {
	case nil:
		return "-"
	case string:
		if strings.TrimSpace(n) == "" {
			return "-"
		}
		return n
	case *string:
		if n == nil || strings.TrimSpace(*n) == "" {
			return "-"
		}
		return *n
	case *int:
		if n == nil {
			return "-"
		}
		return strconv.Itoa(*n)
	case *float64:
		if n == nil {
			return "-"
		}
		return FormatFloat(*n)
	case int:
		return strconv.Itoa(n)
	case float64:
		return FormatFloat(n)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatFloat prints a float without trailing zeros (35.5 -> "35.5", 35 -> "35").
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// DH formats an optional amount as "<n> DH"; nil stays "-".
func DH(f *float64) string {
	if f == nil {
		return "-"
	}
	return FormatFloat(*f) + " DH"
}

// Money formats an optional amount with thousands grouping, e.g. "500 000 DH".
func Money(f *float64) string {
	if f == nil {
		return "-"
	}
	return GroupDigits(*f) + " DH"
}

// GroupDigits inserts French-style thousands separators into the integer part.
func GroupDigits(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	out := b.String()
	if hasFrac {
		out += "," + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

// DateFR renders an ISO 8601 wire date (bare date or RFC3339) as dd/mm/yyyy.
// Nil or unparseable values render as "-".
func DateFR(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "-"
	}
	raw := strings.TrimSpace(*s)
	if len(raw) > 10 {
		raw = raw[:10]
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return *s
	}
	return d.Format("02/01/2006")
}

// OuiNon renders the reserved flag; nil (never selected) stays "-".
func OuiNon(lang string, b *bool) string {
	if b == nil {
		return "-"
	}
	if *b {
		return i18n.T(lang, "yes")
	}
	return i18n.T(lang, "no")
}

// Render parses and executes a named page template against the shared layout.
// name is relative to the templates dir (e.g., "reservations/index.html").
func Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	tplCache.RLock()
	base := baseDir
	tplCache.RUnlock()
	if base == "" {
		base = detectBase()
		tplCache.Lock()
		baseDir = base
		tplCache.Unlock()
	}

	key := name + "|" + langResolver(r)
	tplCache.RLock()
	tpl := tplCache.m[key]
	tplCache.RUnlock()
	if tpl == nil {
		var err error
		tpl, err = template.New("layout.html").Funcs(Funcs(r)).ParseFiles(
			filepath.Join(base, "layout.html"),
			filepath.Join(base, name),
		)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		tplCache.Lock()
		tplCache.m[key] = tpl
		tplCache.Unlock()
	}

	if data == nil {
		data = map[string]any{}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tpl.ExecuteTemplate(w, "layout.html", data)
}

// ResetForTests clears caches and forces base dir detection to rerun.
func ResetForTests() {
	tplCache.Lock()
	tplCache.m = map[string]*template.Template{}
	baseDir = ""
	tplCache.Unlock()
}
