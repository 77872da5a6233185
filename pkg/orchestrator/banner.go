package orchestrator

import (
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// defaultBannerTemplate renders the provenance notice placed inside the
// AUTOGENERATE HEADER region, before comment leaders are applied.
const defaultBannerTemplate = `{{ notice }}
command: {{ command }}
generated: {{ timestamp }}
host: {{ host }}{% if generator %}
generator: {{ generator }}{% endif %}`

const bannerNotice = "generated region, do not hand-edit; content between the markers is rewritten on every run"

type bannerRenderer struct {
	tmpl *pongo2.Template
}

// newBannerRenderer compiles the banner template once. Autoescaping is
// disabled because the output is plain text, not HTML.
func newBannerRenderer(source string) (*bannerRenderer, error) {
	wrapped := "{% autoescape off %}" + source + "{% endautoescape %}"
	tmpl, err := pongo2.FromString(wrapped)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: compile banner template: %w", err)
	}
	return &bannerRenderer{tmpl: tmpl}, nil
}

func (r *bannerRenderer) render(data map[string]any) ([]string, error) {
	out, err := r.tmpl.Execute(pongo2.Context(data))
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render banner: %w", err)
	}
	return strings.Split(out, "\n"), nil
}
