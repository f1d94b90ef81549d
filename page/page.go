package page

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/scipunch/newslist/config"
)

//go:embed templates/home.html
var homeHTML string

var home = template.Must(template.New("home").Funcs(template.FuncMap{
	// The attribute name comes from trusted config, the value is escaped
	"feedAttr": func(conf config.Config) template.HTMLAttr {
		return template.HTMLAttr(fmt.Sprintf(`%s="%s"`, conf.FeedAttr, html.EscapeString(conf.BlogRSSFeed)))
	},
}).Parse(homeHTML))

// Page is an HTML document the renderer can mutate
type Page struct {
	doc *goquery.Document
}

// Parse reads an HTML document
func Parse(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return &Page{doc: doc}, nil
}

// Home builds the home page. The news container is only present when a blog
// feed is configured.
func Home(conf config.Config) (*Page, error) {
	var buf bytes.Buffer
	if err := home.Execute(&buf, conf); err != nil {
		return nil, fmt.Errorf("failed to execute home template: %w", err)
	}
	return Parse(&buf)
}

// Lookup returns the element whose id attribute equals id
func (p *Page) Lookup(id string) (*goquery.Selection, bool) {
	sel := p.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id
	}).First()
	return sel, sel.Length() > 0
}

// Render writes the whole document
func (p *Page) Render(w io.Writer) error {
	for _, n := range p.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("failed to render page: %w", err)
		}
	}
	return nil
}
