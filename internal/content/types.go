package content

// Site is the full set of static content rendered on the page.
type Site struct {
	Brand        Brand         `yaml:"brand" json:"brand"`
	Palette      Palette       `yaml:"palette" json:"palette"`
	Nav          []NavItem     `yaml:"nav" json:"nav"`
	Hero         Hero          `yaml:"hero" json:"hero"`
	Products     Block         `yaml:"products" json:"products"`
	ProductList  []Product     `yaml:"product_list" json:"product_list"`
	Publications Block         `yaml:"publications" json:"publications"`
	Papers       []Publication `yaml:"papers" json:"papers"`
	Timeline     Block         `yaml:"timeline" json:"timeline"`
	Events       []Event       `yaml:"events" json:"events"`
	Team         Block         `yaml:"team" json:"team"`
	Members      []Member      `yaml:"members" json:"members"`
	Impact       Impact        `yaml:"impact" json:"impact"`
	Video        Video         `yaml:"video" json:"video"`
	Gallery      Gallery       `yaml:"gallery" json:"gallery"`
	Contact      Contact       `yaml:"contact" json:"contact"`
	Footer       Footer        `yaml:"footer" json:"footer"`
}

// Brand identifies the company.
type Brand struct {
	Name     string `yaml:"name" json:"name"`
	Logo     string `yaml:"logo" json:"logo"`
	LogoDark string `yaml:"logo_dark" json:"logo_dark"`
}

// Palette holds the theme colours.
type Palette struct {
	Primary   string `yaml:"primary" json:"primary"`
	Secondary string `yaml:"secondary" json:"secondary"`
	Accent    string `yaml:"accent" json:"accent"`
	LightBg   string `yaml:"light_bg" json:"light_bg"`
	DarkText  string `yaml:"dark_text" json:"dark_text"`
}

// NavItem pairs an anchor id with its display label. The id is stored, never
// derived from the label.
type NavItem struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// Block is a section heading with a Markdown intro.
type Block struct {
	Title string `yaml:"title" json:"title"`
	Intro string `yaml:"intro" json:"intro"`
}

// Hero is the landing banner.
type Hero struct {
	Title     string `yaml:"title" json:"title"`
	Subtitle  string `yaml:"subtitle" json:"subtitle"`
	Primary   Link   `yaml:"primary" json:"primary"`
	Secondary Link   `yaml:"secondary" json:"secondary"`
}

// Link is a labelled href.
type Link struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

// Product is one catalog card.
type Product struct {
	ID          int    `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Image       string `yaml:"image" json:"image"`
}

// Publication is a research paper using the company's technology.
type Publication struct {
	Title   string `yaml:"title" json:"title"`
	Authors string `yaml:"authors" json:"authors"`
	Journal string `yaml:"journal" json:"journal"`
	Link    string `yaml:"link" json:"link"`
}

// Event is one timeline milestone.
type Event struct {
	Year        string `yaml:"year" json:"year"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Member is one team card.
type Member struct {
	Name     string `yaml:"name" json:"name"`
	Role     string `yaml:"role" json:"role"`
	Bio      string `yaml:"bio" json:"bio"`
	Email    string `yaml:"email" json:"email"`
	LinkedIn string `yaml:"linkedin" json:"linkedin"`
}

// Impact groups the animated statistics and the research chart.
type Impact struct {
	Title      string          `yaml:"title" json:"title"`
	Stats      []Stat          `yaml:"stats" json:"stats"`
	ChartTitle string          `yaml:"chart_title" json:"chart_title"`
	Research   []ResearchPoint `yaml:"research" json:"research"`
}

// Stat is a statistic that counts up to Target.
type Stat struct {
	Target int    `yaml:"target" json:"target"`
	Label  string `yaml:"label" json:"label"`
}

// ResearchPoint is one (year, publication count) pair of the research chart.
type ResearchPoint struct {
	Year string `yaml:"year" json:"year"`
	Pubs int    `yaml:"pubs" json:"pubs"`
}

// Video is the product demo.
type Video struct {
	Title  string `yaml:"title" json:"title"`
	Poster string `yaml:"poster" json:"poster"`
	Source string `yaml:"source" json:"source"`
}

// Gallery lists field photos.
type Gallery struct {
	Title  string  `yaml:"title" json:"title"`
	Images []Image `yaml:"images" json:"images"`
}

// Image is a picture with alt text.
type Image struct {
	Src string `yaml:"src" json:"src"`
	Alt string `yaml:"alt" json:"alt"`
}

// Contact holds the contact section copy and company details.
type Contact struct {
	Title       string   `yaml:"title" json:"title"`
	Intro       string   `yaml:"intro" json:"intro"`
	Address     []string `yaml:"address" json:"address"`
	Phone       string   `yaml:"phone" json:"phone"`
	Email       string   `yaml:"email" json:"email"`
	SentTitle   string   `yaml:"sent_title" json:"sent_title"`
	SentMessage string   `yaml:"sent_message" json:"sent_message"`
}

// Footer holds the copyright owner and footer links.
type Footer struct {
	Owner string `yaml:"owner" json:"owner"`
	Links []Link `yaml:"links" json:"links"`
}
