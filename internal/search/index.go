package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tmanas06/uportfolio-sub000/internal/content"
)

// subtitleSep joins the two halves of a derived subtitle.
const subtitleSep = " – "

// projectSubtitleTags is how many tech tags a project subtitle shows.
const projectSubtitleTags = 3

var displayColors = map[Category]string{
	CategoryProject:       "#6366f1",
	CategorySkill:         "#10b981",
	CategoryExperience:    "#f59e0b",
	CategoryAchievement:   "#ef4444",
	CategoryCertification: "#0ea5e9",
}

// BuildIndex flattens the five content collections into one list of records.
//
// Records are emitted projects first, then skills group by group (languages,
// frameworks, blockchain, tools), then experience, achievements and
// certifications, each in source order. That order is the tie-break order
// for Search. One record is produced per source item and nothing is
// deduplicated.
func BuildIndex(
	projects []content.Project,
	skills content.SkillGroups,
	experience []content.Experience,
	achievements []content.Achievement,
	certifications []content.Certification,
) []Record {
	index := make([]Record, 0, len(projects)+skills.Len()+len(experience)+len(achievements)+len(certifications))

	for _, p := range projects {
		index = append(index, projectRecord(p))
	}
	for _, group := range skills.Ordered() {
		for i, s := range group.Skills {
			index = append(index, skillRecord(group, i, s))
		}
	}
	for i, e := range experience {
		index = append(index, experienceRecord(i, e))
	}
	for i, a := range achievements {
		index = append(index, achievementRecord(i, a))
	}
	for i, c := range certifications {
		index = append(index, certificationRecord(i, c))
	}

	return index
}

// BuildIndexFrom builds the index for a full content set.
func BuildIndexFrom(c *content.Content) []Record {
	if c == nil {
		return []Record{}
	}
	return BuildIndex(c.Projects, c.Skills, c.Experience, c.Achievements, c.Certifications)
}

func projectRecord(p content.Project) Record {
	tags := p.Tech
	if len(tags) > projectSubtitleTags {
		tags = tags[:projectSubtitleTags]
	}
	return newRecord(CategoryProject,
		"project-"+strconv.Itoa(p.ID),
		p.Title,
		strings.Join(tags, ", "),
		"/projects/"+strconv.Itoa(p.ID),
	)
}

func skillRecord(group content.SkillGroup, pos int, s content.Skill) Record {
	return newRecord(CategorySkill,
		fmt.Sprintf("skill-%s-%d", group.Key, pos),
		s.Name,
		fmt.Sprintf("%s%s%d%% proficiency", group.Label, subtitleSep, s.Level),
		"/skills#"+group.Key,
	)
}

func experienceRecord(pos int, e content.Experience) Record {
	return newRecord(CategoryExperience,
		"experience-"+strconv.Itoa(pos),
		e.Title,
		e.Company+subtitleSep+e.Period,
		"/about#experience",
	)
}

func achievementRecord(pos int, a content.Achievement) Record {
	return newRecord(CategoryAchievement,
		"achievement-"+strconv.Itoa(pos),
		a.Title,
		a.Position,
		"/about#achievements",
	)
}

func certificationRecord(pos int, c content.Certification) Record {
	return newRecord(CategoryCertification,
		"certification-"+strconv.Itoa(pos),
		c.Name,
		c.Issuer+subtitleSep+c.Year,
		"/about#certifications",
	)
}

func newRecord(category Category, id, title, subtitle, target string) Record {
	return Record{
		ID:               id,
		Title:            title,
		Subtitle:         subtitle,
		Category:         category,
		NavigationTarget: target,
		DisplayColor:     displayColors[category],
	}
}

// Lookup returns the record with the given id.
func Lookup(index []Record, id string) (Record, bool) {
	for _, r := range index {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}
