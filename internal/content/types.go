package content

// DisabledLink marks a link field that has no target. Views render the
// corresponding control as non-activatable.
const DisabledLink = "#"

// IsDisabled reports whether href is the disabled sentinel.
func IsDisabled(href string) bool {
	return href == DisabledLink
}

type Category string

const (
	CategoryFrontend  Category = "Frontend"
	CategoryBackend   Category = "Backend"
	CategoryDatabases Category = "Databases"
	CategoryTools     Category = "Tools & Platforms"
)

// Categories lists the known skill categories in display order.
var Categories = []Category{CategoryFrontend, CategoryBackend, CategoryDatabases, CategoryTools}

type NavLink struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

// Href returns the in-page anchor for the link.
func (n NavLink) Href() string {
	return "#" + n.Target
}

type SocialLink struct {
	Platform string `yaml:"platform"`
	URL      string `yaml:"url"`
	Icon     string `yaml:"icon"`
	InNavbar bool   `yaml:"navbar"`
}

type SkillEntry struct {
	Name        string   `yaml:"name"`
	Category    Category `yaml:"category"`
	Icon        string   `yaml:"icon"`
	Color       string   `yaml:"color"`
	Description string   `yaml:"description"`
}

type ProjectEntry struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Image       string   `yaml:"image"`
	LiveLink    string   `yaml:"live_link"`
	GithubLink  string   `yaml:"github_link"`
}

type TechBadge struct {
	Name       string `yaml:"name"`
	Icon       string `yaml:"icon"`
	Color      string `yaml:"color"`
	Background string `yaml:"background"`
}

type ExperienceEntry struct {
	Company       string      `yaml:"company"`
	Logo          string      `yaml:"logo"`
	Role          string      `yaml:"role"`
	Duration      string      `yaml:"duration"`
	Location      string      `yaml:"location"`
	Contributions []string    `yaml:"contributions"`
	TechStack     []TechBadge `yaml:"tech_stack"`
}

type EducationEntry struct {
	Institution string `yaml:"institution"`
	Degree      string `yaml:"degree"`
	Duration    string `yaml:"duration"`
	Score       string `yaml:"score"`
	Icon        string `yaml:"icon"`
}

type AchievementEntry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type ContactDetail struct {
	Title string `yaml:"title"`
	Value string `yaml:"value"`
	Href  string `yaml:"href"`
	Icon  string `yaml:"icon"`
}

type Interest struct {
	Name  string `yaml:"name"`
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
}

// Paragraph is a block of prose with one emphasized phrase.
type Paragraph struct {
	Lead      string `yaml:"lead"`
	Highlight string `yaml:"highlight"`
	Tail      string `yaml:"tail"`
}

type Hero struct {
	Kicker        string   `yaml:"kicker"`
	TitleLeft     string   `yaml:"title_left"`
	TitleRight    string   `yaml:"title_right"`
	Role          string   `yaml:"role"`
	Tagline       string   `yaml:"tagline"`
	Photo         string   `yaml:"photo"`
	FloatingIcons []string `yaml:"floating_icons"`
	StackIcons    []string `yaml:"stack_icons"`
}

type About struct {
	Heading    string      `yaml:"heading"`
	Subtitle   string      `yaml:"subtitle"`
	Lede       string      `yaml:"lede"`
	Photo      string      `yaml:"photo"`
	Badge      string      `yaml:"badge"`
	Paragraphs []Paragraph `yaml:"paragraphs"`
	Interests  []Interest  `yaml:"interests"`
}

type Profile struct {
	Name           string `yaml:"name"`
	Initials       string `yaml:"initials"`
	Email          string `yaml:"email"`
	Phone          string `yaml:"phone"`
	PhoneDisplay   string `yaml:"phone_display"`
	ResumeFilename string `yaml:"resume_filename"`
	Credit         string `yaml:"credit"`
}

// SectionCopy is the heading pair shown at the top of a section.
type SectionCopy struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// Registry is the complete page content. Every slice is in display order.
type Registry struct {
	Profile      Profile                `yaml:"profile"`
	Hero         Hero                   `yaml:"hero"`
	About        About                  `yaml:"about"`
	Copy         map[string]SectionCopy `yaml:"copy"`
	NavLinks     []NavLink              `yaml:"nav_links"`
	Socials      []SocialLink           `yaml:"socials"`
	Skills       []SkillEntry           `yaml:"skills"`
	Projects     []ProjectEntry         `yaml:"projects"`
	Experience   []ExperienceEntry      `yaml:"experience"`
	Education    []EducationEntry       `yaml:"education"`
	Achievements []AchievementEntry     `yaml:"achievements"`
	Contact      []ContactDetail        `yaml:"contact"`
}
