// Package site renders the iPhase single-page site with gomponents and
// writes static builds of it.
package site

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/iphase-tech/iphase-site/internal/contact"
	"github.com/iphase-tech/iphase-site/internal/content"
	"github.com/iphase-tech/iphase-site/internal/view"
)

// Options controls one render of the page.
type Options struct {
	// Title overrides the document title; the brand name is used when empty.
	Title string
	// Live makes app.js open a session on /ws. Static builds leave it off.
	Live bool
	// Year is printed in the footer copyright line.
	Year int
	// Error is shown as a banner above the contact form.
	Error string
	// SpyMargin and ResetDelay drive the in-browser scroll spy and contact
	// form when no session is connected. A zero ResetDelay means
	// contact.DefaultResetDelay.
	SpyMargin  float64
	ResetDelay time.Duration
}

func (o Options) resetDelay() time.Duration {
	if o.ResetDelay <= 0 {
		return contact.DefaultResetDelay
	}
	return o.ResetDelay
}

// InitialState is the state a fresh page view renders with: the first
// section active, toggles off and, for live pages, counters at zero so the
// session can animate them. Static pages show the final values.
func InitialState(s *content.Site, live bool) view.State {
	st := view.State{ActiveSection: content.Sections[0]}
	for _, stat := range s.Impact.Stats {
		cs := view.CounterState{Label: stat.Label, Target: stat.Target, Done: true, Value: stat.Target}
		if live && stat.Target > 0 {
			cs.Value = 0
			cs.Done = false
		}
		st.Counters = append(st.Counters, cs)
	}
	return st
}

// Render writes the full HTML document.
func Render(w io.Writer, s *content.Site, st view.State, opts Options) error {
	return Page(s, st, opts).Render(w)
}

// Page builds the document tree.
func Page(s *content.Site, st view.State, opts Options) g.Node {
	title := opts.Title
	if title == "" {
		title = s.Brand.Name
	}

	return Doctype(
		HTML(
			Lang("en"),
			g.If(st.DarkMode, Class("dark")),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(title)),
				Link(Rel("stylesheet"), Href("style.css")),
				g.El("style", g.Raw(paletteCSS(s.Palette))),
			),
			Body(
				g.Attr("data-live", strconv.FormatBool(opts.Live)),
				g.Attr("data-spy-margin", strconv.FormatFloat(opts.SpyMargin, 'f', -1, 64)),
				g.Attr("data-reset-delay", strconv.FormatInt(opts.resetDelay().Milliseconds(), 10)),
				navBar(s, st),
				Main(
					hero(s),
					products(s),
					publications(s),
					timeline(s),
					team(s),
					impact(s, st),
					video(s),
					gallery(s),
					contactSection(s, st, opts.Error),
				),
				A(Class("help-button"), Href("#contact"), g.Text("💬 Need Help?")),
				footer(s, opts.Year),
				Script(Src("app.js"), g.Attr("defer")),
			),
		),
	)
}

func paletteCSS(p content.Palette) string {
	vars := []struct{ name, value string }{
		{"--primary", p.Primary},
		{"--secondary", p.Secondary},
		{"--accent", p.Accent},
		{"--light-bg", p.LightBg},
		{"--dark-text", p.DarkText},
	}
	var b strings.Builder
	b.WriteString(":root{")
	for _, v := range vars {
		if v.value == "" {
			continue
		}
		fmt.Fprintf(&b, "%s:%s;", v.name, v.value)
	}
	b.WriteString("}")
	return b.String()
}

func navBar(s *content.Site, st view.State) g.Node {
	links := func(extra string) g.Node {
		return g.Map(s.Nav, func(item content.NavItem) g.Node {
			return Li(A(
				c.Classes{"nav-link": true, extra: extra != "", "active": item.ID == st.ActiveSection},
				Href("#"+item.ID),
				g.Attr("data-section", item.ID),
				g.Text(item.Label),
			))
		})
	}

	themeIcon := "🌙"
	if st.DarkMode {
		themeIcon = "☀️"
	}
	menuPath := "M3 12h18M3 6h18M3 18h18"
	if st.MenuOpen {
		menuPath = "M18 6L6 18M6 6l12 12"
	}

	return Nav(Class("topbar"),
		Div(Class("container topbar-inner"),
			A(Href("#home"), Class("brand"),
				Img(Class("logo"), Src(s.Brand.Logo), Alt(s.Brand.Name+" Logo")),
			),
			Ul(Class("nav-desktop"), links("")),
			Div(Class("nav-actions"),
				Button(ID("theme-toggle"), Type("button"), Class("theme-toggle"),
					g.Attr("aria-label", "Toggle dark mode"), g.Text(themeIcon)),
				Button(ID("menu-toggle"), Type("button"), Class("menu-toggle"),
					g.Attr("aria-label", "Toggle menu"),
					g.El("svg", g.Attr("width", "24"), g.Attr("height", "24"), g.Attr("viewBox", "0 0 24 24"),
						g.Attr("fill", "none"), g.Attr("stroke", "currentColor"), g.Attr("stroke-width", "2"),
						g.El("path", ID("menu-icon"), g.Attr("d", menuPath)),
					),
				),
			),
		),
		Div(ID("mobile-menu"), c.Classes{"mobile-menu": true, "open": st.MenuOpen},
			Div(Class("search"),
				Input(ID("search-input"), Type("text"), Placeholder("Search..."), g.Attr("autocomplete", "off")),
				Ul(ID("search-results"), Class("search-results")),
			),
			Ul(Class("nav-mobile"), links("mobile")),
		),
	)
}

func sectionHeader(b content.Block) g.Node {
	return Div(Class("section-header"),
		H2(g.Text(b.Title)),
		g.If(b.Intro != "", Div(Class("intro"), markdown(b.Intro))),
	)
}

func hero(s *content.Site) g.Node {
	h := s.Hero
	return Section(ID(content.SectionHome), Class("hero"),
		Div(Class("hero-gradient")),
		Div(Class("container hero-body"),
			H1(g.Text(h.Title)),
			P(g.Text(h.Subtitle)),
			Div(Class("hero-actions"),
				A(Class("btn btn-primary"), Href(h.Primary.Href), g.Text(h.Primary.Label)),
				A(Class("btn btn-outline"), Href(h.Secondary.Href), g.Text(h.Secondary.Label)),
			),
		),
	)
}

func products(s *content.Site) g.Node {
	return Section(ID(content.SectionProducts), Class("band muted"),
		Div(Class("container"),
			sectionHeader(s.Products),
			Div(Class("grid grid-4"),
				g.Map(s.ProductList, func(p content.Product) g.Node {
					return Div(Class("card product"), g.Attr("data-product", strconv.Itoa(p.ID)),
						Div(Class("card-media"), Img(Src(p.Image), Alt(p.Name))),
						Div(Class("card-body"),
							H3(g.Text(p.Name)),
							P(g.Text(p.Description)),
							A(Class("more"), Href("#"), g.Text("Learn more →")),
						),
					)
				}),
			),
		),
	)
}

func publications(s *content.Site) g.Node {
	return Section(ID(content.SectionPublications), Class("band"),
		Div(Class("container"),
			sectionHeader(s.Publications),
			Div(Class("grid grid-3"),
				g.Map(s.Papers, func(p content.Publication) g.Node {
					return A(Class("card paper"), Href(p.Link), Target("_blank"), Rel("noopener noreferrer"),
						H3(g.Text(p.Title)),
						P(Class("authors"), g.Text(p.Authors)),
						P(Class("journal"), g.Text(p.Journal)),
						Span(Class("more"), g.Text("Read more →")),
					)
				}),
			),
		),
	)
}

func timeline(s *content.Site) g.Node {
	items := make([]g.Node, len(s.Events))
	for i, e := range s.Events {
		side := "left"
		if i%2 == 0 {
			side = "right"
		}
		items[i] = Div(Class("timeline-item "+side),
			Div(Class("timeline-card"),
				Span(Class("year"), g.Text(e.Year)),
				H3(g.Text(e.Title)),
				P(g.Text(e.Description)),
			),
			Div(Class("timeline-dot")),
		)
	}
	return Section(ID(content.SectionAbout), Class("band gradient"),
		Div(Class("container"),
			sectionHeader(s.Timeline),
			Div(Class("timeline"), Div(Class("timeline-line")), g.Group(items)),
		),
	)
}

func team(s *content.Site) g.Node {
	return Section(ID(content.SectionTeam), Class("band muted"),
		Div(Class("container"),
			sectionHeader(s.Team),
			Div(Class("grid grid-4"),
				g.Map(s.Members, func(m content.Member) g.Node {
					return Div(Class("card member"),
						Div(Class("member-banner"), Span(g.Text(firstName(m.Name)))),
						Div(Class("card-body"),
							H3(g.Text(m.Name)),
							P(Class("role"), g.Text(m.Role)),
							P(Class("bio"), g.Text(m.Bio)),
							A(Href("mailto:"+m.Email), g.Text(m.Email)),
							A(Href(m.LinkedIn), Target("_blank"), Rel("noopener noreferrer"), g.Text("LinkedIn Profile")),
						),
					)
				}),
			),
		),
	)
}

// firstName is the banner text on a team card. Honorifics such as "Dr."
// are kept, matching how the names are written.
func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return name
}

func impact(s *content.Site, st view.State) g.Node {
	stats := make([]g.Node, len(st.Counters))
	for i, cs := range st.Counters {
		stats[i] = Div(Class("stat"),
			Div(Class("stat-value"),
				Span(Class("counter"),
					g.Attr("data-index", strconv.Itoa(i)),
					g.Attr("data-target", strconv.Itoa(cs.Target)),
					g.Text(strconv.Itoa(cs.Value)),
				),
				g.Text("+"),
			),
			Div(Class("stat-label"), g.Text(cs.Label)),
		)
	}
	return Section(ID(content.SectionImpact), Class("band light"),
		Div(Class("container center"),
			H2(g.Text(s.Impact.Title)),
			Div(Class("grid grid-3 stats"), g.Group(stats)),
			Div(Class("chart-wrap"),
				H3(g.Text(s.Impact.ChartTitle)),
				researchChart(s.Impact.Research, "var(--secondary)"),
			),
		),
	)
}

func video(s *content.Site) g.Node {
	v := s.Video
	return Section(Class("band video"),
		Div(Class("container narrow"),
			H2(g.Text(v.Title)),
			Div(Class("video-frame"),
				Video(g.Attr("controls"), g.Attr("poster", v.Poster),
					Source(Src(v.Source), Type("video/mp4")),
					g.Text("Your browser does not support the video tag."),
				),
			),
		),
	)
}

func gallery(s *content.Site) g.Node {
	return Section(ID(content.SectionGallery), Class("band muted"),
		Div(Class("container"),
			H2(Class("center"), g.Text(s.Gallery.Title)),
			Div(Class("grid grid-3 gallery"),
				g.Map(s.Gallery.Images, func(img content.Image) g.Node {
					return Div(Class("gallery-item"), Img(Src(img.Src), Alt(img.Alt)))
				}),
			),
		),
	)
}

func contactSection(s *content.Site, st view.State, errMsg string) g.Node {
	ct := s.Contact
	return Section(ID(content.SectionContact), Class("band dark-band"),
		Div(Class("container narrow"),
			Div(Class("section-header"),
				H2(g.Text(ct.Title)),
				g.If(ct.Intro != "", Div(Class("intro"), markdown(ct.Intro))),
			),
			Div(Class("grid grid-2"),
				Div(Class("contact-info"),
					H3(g.Text("Contact Information")),
					P(Class("address"), g.Group(addressLines(ct.Address))),
					P(Class("phone"), A(Href("tel:"+strings.ReplaceAll(ct.Phone, " ", "")), g.Text(ct.Phone))),
					P(Class("email"), A(Href("mailto:"+ct.Email), g.Text(ct.Email))),
				),
				Div(Class("contact-card"),
					H3(g.Text("Send us a Message")),
					Div(ID("contact-sent"), Class("sent"), g.If(!st.Submitted, g.Attr("hidden")),
						H4(g.Text(ct.SentTitle)),
						P(g.Text(ct.SentMessage)),
					),
					contactForm(st, errMsg),
				),
			),
		),
	)
}

func addressLines(lines []string) []g.Node {
	var nodes []g.Node
	for i, l := range lines {
		if i > 0 {
			nodes = append(nodes, Br())
		}
		nodes = append(nodes, g.Text(l))
	}
	return nodes
}

func contactForm(st view.State, errMsg string) g.Node {
	field := func(id, label string, control g.Node) g.Node {
		return Div(Class("field"),
			g.El("label", g.Attr("for", id), g.Text(label)),
			control,
		)
	}
	return g.El("form", ID("contact-form"), Method("post"), Action("/contact"),
		g.If(st.Submitted, g.Attr("hidden")),
		g.If(errMsg != "", P(Class("form-error"), g.Attr("role", "alert"), g.Text(errMsg))),
		field("name", "Name",
			Input(ID("name"), Name("name"), Type("text"), Value(st.Form.Name), Required())),
		field("email", "Email",
			Input(ID("email"), Name("email"), Type("email"), Value(st.Form.Email), Required())),
		field("message", "Message",
			Textarea(ID("message"), Name("message"), g.Attr("rows", "4"), Required(), g.Text(st.Form.Message))),
		Button(Type("submit"), Class("btn btn-primary wide"), g.Text("Send Message")),
	)
}

func footer(s *content.Site, year int) g.Node {
	logo := s.Brand.LogoDark
	if logo == "" {
		logo = s.Brand.Logo
	}
	return Footer(Class("footer"),
		Div(Class("container footer-inner"),
			Div(
				A(Href("#home"), Img(Class("logo"), Src(logo), Alt(s.Brand.Name+" Logo"))),
				P(Class("copyright"), g.Textf("© %d %s. All rights reserved.", year, s.Footer.Owner)),
			),
			Div(Class("footer-links"),
				g.Map(s.Footer.Links, func(l content.Link) g.Node {
					return A(Href(l.Href), g.Text(l.Label))
				}),
			),
		),
	)
}
