package content

// Icon names a glyph in the site icon set. The zero value renders nothing.
type Icon string

const (
	IconNone       Icon = ""
	IconReact      Icon = "react"
	IconNode       Icon = "node"
	IconMongo      Icon = "mongodb"
	IconTailwind   Icon = "tailwind"
	IconExpress    Icon = "express"
	IconKey        Icon = "key"
	IconCloudinary Icon = "cloudinary"
	IconGemini     Icon = "gemini"
	IconMapMarker  Icon = "map-marker"
	IconTypeScript Icon = "typescript"
	IconRedux      Icon = "redux"
	IconVercel     Icon = "vercel"
	IconGithub     Icon = "github"
	IconLinkedin   Icon = "linkedin"
	IconInstagram  Icon = "instagram"
	IconJS         Icon = "js"
	IconHTML       Icon = "html5"
	IconCSS        Icon = "css3"
	IconBootstrap  Icon = "bootstrap"
	IconDatabase   Icon = "database"
	IconServer     Icon = "server"
	IconLeaf       Icon = "leaf"
	IconPalette    Icon = "palette"
	IconGit        Icon = "git"
	IconCloud      Icon = "cloud"
	IconUpload     Icon = "upload"
	IconBrain      Icon = "brain"
	IconRobot      Icon = "robot"
	IconCode       Icon = "code"
	IconDumbbell   Icon = "dumbbell"
	IconLightbulb  Icon = "lightbulb"
	IconHeart      Icon = "heart"
	IconRocket     Icon = "rocket"
	IconSchool     Icon = "school"
	IconRibbon     Icon = "ribbon"
	IconStar       Icon = "star"
	IconTrophy     Icon = "trophy"
	IconPhone      Icon = "phone"
	IconMail       Icon = "mail"
	IconLocation   Icon = "location"
	IconCalendar   Icon = "calendar"
	IconDownload   Icon = "download"
	IconExternal   Icon = "external"
)

var knownIcons = map[Icon]bool{}

func init() {
	for _, i := range []Icon{
		IconReact, IconNode, IconMongo, IconTailwind, IconExpress, IconKey, IconCloudinary,
		IconGemini, IconMapMarker, IconTypeScript, IconRedux, IconVercel, IconGithub,
		IconLinkedin, IconInstagram, IconJS, IconHTML, IconCSS, IconBootstrap, IconDatabase,
		IconServer, IconLeaf, IconPalette, IconGit, IconCloud, IconUpload, IconBrain,
		IconRobot, IconCode, IconDumbbell, IconLightbulb, IconHeart, IconRocket, IconSchool,
		IconRibbon, IconStar, IconTrophy, IconPhone, IconMail, IconLocation, IconCalendar,
		IconDownload, IconExternal,
	} {
		knownIcons[i] = true
	}
}

// ParseIcon maps a content icon name to the icon set. Unknown names yield
// IconNone.
func ParseIcon(name string) Icon {
	i := Icon(name)
	if knownIcons[i] {
		return i
	}
	return IconNone
}

// TagStyle is how a project tag chip is decorated.
type TagStyle struct {
	Icon  Icon
	Color string
}

// DefaultTagColor is the accent used for tags without a brand color.
const DefaultTagColor = "#d0ff71"

// tagStyles lists every tag the site knows how to decorate. Tags listed with
// IconNone are known but deliberately rendered as text only.
var tagStyles = map[string]TagStyle{
	"React":            {IconReact, "#61DAFB"},
	"Node.js":          {IconNode, "#339933"},
	"MongoDB":          {IconMongo, "#47A248"},
	"Tailwind CSS":     {IconTailwind, "#38B2AC"},
	"Express":          {IconExpress, DefaultTagColor},
	"JWT":              {IconKey, "#FB015B"},
	"CSS3":             {IconNone, "#1572B6"},
	"Razorpay":         {IconNone, DefaultTagColor},
	"Cloudinary":       {IconCloudinary, "#3448C5"},
	"Multer":           {IconNone, DefaultTagColor},
	"Framer Motion":    {IconNone, DefaultTagColor},
	"Gemini API":       {IconGemini, "#8E44AD"},
	"Mapbox":           {IconMapMarker, DefaultTagColor},
	"TypeScript":       {IconTypeScript, "#3178C6"},
	"Redux Toolkit":    {IconRedux, "#764ABC"},
	"Vercel Functions": {IconVercel, DefaultTagColor},
	"shadcn/ui":        {IconNone, DefaultTagColor},
}

// StyleForTag returns the decoration for a project tag. The boolean reports
// whether the tag is known; unknown tags get no icon and the default color.
func StyleForTag(tag string) (TagStyle, bool) {
	s, ok := tagStyles[tag]
	if !ok {
		return TagStyle{Icon: IconNone, Color: DefaultTagColor}, false
	}
	return s, true
}
