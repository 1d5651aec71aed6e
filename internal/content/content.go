// Package content holds the static portfolio content: projects, services,
// skills, timelines and the site chrome around them.
package content

// Content is the whole portfolio document.
type Content struct {
	Site          Site            `yaml:"site"`
	Contact       ContactDetails  `yaml:"contact"`
	Socials       []SocialLink    `yaml:"socials"`
	About         About           `yaml:"about"`
	Skills        []SkillCategory `yaml:"skills"`
	Tools         []Tool          `yaml:"tools"`
	Experience    []TimelineEntry `yaml:"experience"`
	Education     []TimelineEntry `yaml:"education"`
	Categories    []Category      `yaml:"categories"`
	GitHubProfile string          `yaml:"github_profile"`
	Projects      []Project       `yaml:"projects"`
	TierPerks     TierPerks       `yaml:"tier_perks"`
	Services      []Service       `yaml:"services"`
	Footer        Footer          `yaml:"footer"`
}

// Site holds the hero and page-level settings.
type Site struct {
	Owner       string   `yaml:"owner"`
	Brand       string   `yaml:"brand"`
	Title       string   `yaml:"title"`
	Badge       string   `yaml:"badge"`
	Phrases     []string `yaml:"phrases"`
	Intro       string   `yaml:"intro"`
	Resume      string   `yaml:"resume"`
	Portrait    string   `yaml:"portrait"`
	Placeholder string   `yaml:"placeholder"`
	Badges      []Badge  `yaml:"badges"`
}

// Badge is a floating technology logo next to the hero portrait.
type Badge struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

// ContactDetails holds the inert contact anchors and the form's option lists.
type ContactDetails struct {
	Email       string   `yaml:"email"`
	Phone       string   `yaml:"phone"`
	PhoneLink   string   `yaml:"phone_link"`
	Location    string   `yaml:"location"`
	FooterEmail string   `yaml:"footer_email"`
	Expertise   []string `yaml:"expertise"`
	Services    []string `yaml:"services"`
	Budgets     []string `yaml:"budgets"`
}

// SocialLink is an outbound profile link.
type SocialLink struct {
	Name       string `yaml:"name"`
	Icon       string `yaml:"icon"`
	Href       string `yaml:"href"`
	FooterOnly bool   `yaml:"footer_only"`
}

// About is the about section.
type About struct {
	Heading   string     `yaml:"heading"`
	Bio       string     `yaml:"bio"`
	Stats     []Stat     `yaml:"stats"`
	KeyPoints []KeyPoint `yaml:"key_points"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type KeyPoint struct {
	Title       string `yaml:"title"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	Category string  `yaml:"category"`
	Icon     string  `yaml:"icon"`
	Skills   []Skill `yaml:"skills"`
}

// Skill is a named proficiency. Level is a percentage in [0,100].
type Skill struct {
	Name  string `yaml:"name"`
	Icon  string `yaml:"icon"`
	Level int    `yaml:"level"`
}

type Tool struct {
	Name     string `yaml:"name"`
	Icon     string `yaml:"icon"`
	Category string `yaml:"category"`
}

// TimelineEntry is one experience or education record. Items lists the
// responsibilities of a job or the subjects of a course.
type TimelineEntry struct {
	Title        string   `yaml:"title"`
	Organization string   `yaml:"organization"`
	Period       string   `yaml:"period"`
	Description  string   `yaml:"description"`
	Items        []string `yaml:"items"`
}

// Category is a project filter tab.
type Category struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// CategoryAll matches every project.
const CategoryAll = "all"

// Project is a portfolio project card.
type Project struct {
	ID           int      `yaml:"id"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Image        string   `yaml:"image"`
	Category     string   `yaml:"category"`
	Technologies []string `yaml:"technologies"`
	Demo         string   `yaml:"demo"`
	Source       string   `yaml:"source"`
	Icon         string   `yaml:"icon"`
}

// Service is an offered service with three pricing tiers.
type Service struct {
	ID          int      `yaml:"id"`
	Icon        string   `yaml:"icon"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Skills      []string `yaml:"skills"`
	Features    []string `yaml:"features"`
	Price       Pricing  `yaml:"price"`
}

// Pricing holds the price range of each tier.
type Pricing struct {
	Basic    string `yaml:"basic"`
	Standard string `yaml:"standard"`
	Premium  string `yaml:"premium"`
}

// TierPerks lists what every service includes at each tier.
type TierPerks struct {
	Basic    []string `yaml:"basic"`
	Standard []string `yaml:"standard"`
	Premium  []string `yaml:"premium"`
}

type Footer struct {
	QuickLinks   []Link `yaml:"quick_links"`
	ServiceLinks []Link `yaml:"service_links"`
}

type Link struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

// ServiceByID returns the service with the given id.
func (c *Content) ServiceByID(id int) (*Service, bool) {
	for i := range c.Services {
		if c.Services[i].ID == id {
			return &c.Services[i], true
		}
	}
	return nil, false
}

// HeaderSocials returns the links shown in the navbar and hero.
func (c *Content) HeaderSocials() []SocialLink {
	out := make([]SocialLink, 0, len(c.Socials))
	for _, s := range c.Socials {
		if !s.FooterOnly {
			out = append(out, s)
		}
	}
	return out
}
