package content

// Project is a portfolio project shown on the projects page.
type Project struct {
	ID          int      `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Tech        []string `yaml:"tech" json:"tech"`
	Chains      []string `yaml:"chains,omitempty" json:"chains"`
	Featured    bool     `yaml:"featured,omitempty" json:"featured"`
	Link        string   `yaml:"link,omitempty" json:"link,omitempty"`
	Repo        string   `yaml:"repo,omitempty" json:"repo,omitempty"`
}

// Skill is a single named skill with a proficiency level in percent.
type Skill struct {
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`
}

// SkillGroups holds skills keyed by the four fixed groups.
type SkillGroups struct {
	Languages  []Skill `yaml:"languages" json:"languages"`
	Frameworks []Skill `yaml:"frameworks" json:"frameworks"`
	Blockchain []Skill `yaml:"blockchain" json:"blockchain"`
	Tools      []Skill `yaml:"tools" json:"tools"`
}

// SkillGroup is one named group of skills.
type SkillGroup struct {
	Key    string // "languages", "frameworks", "blockchain", "tools"
	Label  string // singular display label, e.g. "Framework"
	Skills []Skill
}

// Ordered returns the groups in their fixed display order:
// languages, frameworks, blockchain, tools.
func (g SkillGroups) Ordered() []SkillGroup {
	return []SkillGroup{
		{Key: GroupLanguages, Label: "Language", Skills: g.Languages},
		{Key: GroupFrameworks, Label: "Framework", Skills: g.Frameworks},
		{Key: GroupBlockchain, Label: "Blockchain", Skills: g.Blockchain},
		{Key: GroupTools, Label: "Tool", Skills: g.Tools},
	}
}

// Len returns the total number of skills across all groups.
func (g SkillGroups) Len() int {
	return len(g.Languages) + len(g.Frameworks) + len(g.Blockchain) + len(g.Tools)
}

// Skill group keys.
const (
	GroupLanguages  = "languages"
	GroupFrameworks = "frameworks"
	GroupBlockchain = "blockchain"
	GroupTools      = "tools"
)

// Experience is a single work history entry.
type Experience struct {
	Title       string `yaml:"title" json:"title"`
	Company     string `yaml:"company" json:"company"`
	Period      string `yaml:"period" json:"period"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Achievement is a hackathon placing, award or similar.
type Achievement struct {
	Title       string `yaml:"title" json:"title"`
	Position    string `yaml:"position" json:"position"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Certification is a completed course or certificate.
type Certification struct {
	Name   string `yaml:"name" json:"name"`
	Issuer string `yaml:"issuer" json:"issuer"`
	Year   string `yaml:"year" json:"year"`
}

// Profile holds the site owner's personal details.
// Bio is markdown.
type Profile struct {
	Name     string            `yaml:"name" json:"name"`
	Headline string            `yaml:"headline" json:"headline"`
	Location string            `yaml:"location,omitempty" json:"location,omitempty"`
	Email    string            `yaml:"email,omitempty" json:"email,omitempty"`
	Bio      string            `yaml:"bio,omitempty" json:"bio,omitempty"`
	Links    map[string]string `yaml:"links,omitempty" json:"links,omitempty"`
}

// Content is the complete set of static site content.
// A loaded Content value is never mutated.
type Content struct {
	Profile        Profile         `yaml:"profile" json:"profile"`
	Projects       []Project       `yaml:"projects" json:"projects"`
	Skills         SkillGroups     `yaml:"skills" json:"skills"`
	Experience     []Experience    `yaml:"experience" json:"experience"`
	Achievements   []Achievement   `yaml:"achievements" json:"achievements"`
	Certifications []Certification `yaml:"certifications" json:"certifications"`
}

// ProjectByID returns the project with the given id.
func (c *Content) ProjectByID(id int) (Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Featured returns the featured projects in source order.
func (c *Content) Featured() []Project {
	var out []Project
	for _, p := range c.Projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
