package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	"github.com/Taha-Raees/zetratech-front/internal/ui"
)

//go:embed templates
var templateFS embed.FS

const (
	layoutFile     = "layout.html"
	// Shared by both trees; reports the window so the server can switch trees.
	viewportScript = "templates/viewport.html"
)

// PageData is what every page of either tree receives.
type PageData struct {
	Title   string
	User    *model.SessionUser
	Nav     []ui.NavItem
	Current string
	Mode    enums.ViewMode
	Alert   string
	Notice  string
	Content any
}

// Pages holds the mobile and desktop page trees. Both trees expose the same page names.
type Pages struct {
	trees map[enums.ViewMode]map[string]*template.Template
}

func NewPages() (*Pages, error) {
	p := &Pages{trees: make(map[enums.ViewMode]map[string]*template.Template, 2)}
	for _, mode := range []enums.ViewMode{enums.ViewModeMobile, enums.ViewModeDesktop} {
		tree, err := parseTree(string(mode))
		if err != nil {
			return nil, err
		}
		p.trees[mode] = tree
	}

	mobile, desktop := names(p.trees[enums.ViewModeMobile]), names(p.trees[enums.ViewModeDesktop])
	if strings.Join(mobile, ",") != strings.Join(desktop, ",") {
		return nil, fmt.Errorf("page trees differ: mobile=%v desktop=%v", mobile, desktop)
	}
	return p, nil
}

func parseTree(dir string) (map[string]*template.Template, error) {
	root := path.Join("templates", dir)
	entries, err := fs.ReadDir(templateFS, root)
	if err != nil {
		return nil, fmt.Errorf("read %s templates: %w", dir, err)
	}

	tree := make(map[string]*template.Template, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == layoutFile || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		page := strings.TrimSuffix(entry.Name(), ".html")
		tmpl, err := template.New(layoutFile).Funcs(funcs).ParseFS(templateFS,
			path.Join(root, layoutFile),
			viewportScript,
			path.Join(root, entry.Name()),
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s/%s: %w", dir, page, err)
		}
		tree[page] = tmpl
	}
	return tree, nil
}

func names(tree map[string]*template.Template) []string {
	out := make([]string, 0, len(tree))
	for name := range tree {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (p *Pages) Names() []string {
	return names(p.trees[enums.ViewModeDesktop])
}

// Render executes page from the tree for mode. Output is buffered so a template
// failure never leaves a half-written page.
func (p *Pages) Render(w io.Writer, mode enums.ViewMode, page string, data PageData) error {
	tree, ok := p.trees[mode]
	if !ok {
		tree = p.trees[enums.ViewModeDesktop]
		mode = enums.ViewModeDesktop
	}
	tmpl, ok := tree[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	data.Mode = mode

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layoutFile, data); err != nil {
		return fmt.Errorf("render %s/%s: %w", mode, page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

var funcs = template.FuncMap{
	"money": func(amount float64, currency string) string {
		if strings.TrimSpace(currency) == "" {
			currency = "USD"
		}
		return fmt.Sprintf("%.2f %s", amount, currency)
	},
	"percent": func(share float64) string {
		return fmt.Sprintf("%.0f%%", share*100)
	},
	"dash": func(value string) string {
		if strings.TrimSpace(value) == "" {
			return "-"
		}
		return value
	},
	"join": strings.Join,
}
