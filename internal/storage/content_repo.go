package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tmanas06/uportfolio-sub000/internal/content"
)

// ErrNotSeeded is returned by Load when the database holds no profile row.
var ErrNotSeeded = errors.New("content database not seeded")

// ContentRepo stores the site content in SQLite.
// It implements content.Source so a seeded database can back the catalog.
type ContentRepo struct {
	db *sql.DB
}

// NewContentRepo creates a new ContentRepo.
func NewContentRepo(db *sql.DB) *ContentRepo {
	return &ContentRepo{db: db}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Load reads the full content set in display order and validates it.
// All tables are read inside one transaction so a concurrent Replace is
// seen either completely or not at all.
func (r *ContentRepo) Load(ctx context.Context) (*content.Content, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin read transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	c, err := loadContent(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func loadContent(ctx context.Context, q querier) (*content.Content, error) {
	var c content.Content
	var err error

	if c.Profile, err = loadProfile(ctx, q); err != nil {
		return nil, err
	}
	if c.Projects, err = loadProjects(ctx, q); err != nil {
		return nil, err
	}
	if c.Skills, err = loadSkills(ctx, q); err != nil {
		return nil, err
	}
	if c.Experience, err = loadExperience(ctx, q); err != nil {
		return nil, err
	}
	if c.Achievements, err = loadAchievements(ctx, q); err != nil {
		return nil, err
	}
	if c.Certifications, err = loadCertifications(ctx, q); err != nil {
		return nil, err
	}
	return &c, nil
}

func loadProfile(ctx context.Context, q querier) (content.Profile, error) {
	var p content.Profile
	var links string
	err := q.QueryRowContext(ctx, `
		SELECT name, headline, location, email, bio, links
		FROM profile WHERE id = 1
	`).Scan(&p.Name, &p.Headline, &p.Location, &p.Email, &p.Bio, &links)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return content.Profile{}, ErrNotSeeded
		}
		return content.Profile{}, fmt.Errorf("failed to query profile: %w", err)
	}
	if err := json.Unmarshal([]byte(links), &p.Links); err != nil {
		return content.Profile{}, fmt.Errorf("failed to decode profile links: %w", err)
	}
	if len(p.Links) == 0 {
		p.Links = nil
	}
	return p, nil
}

func loadProjects(ctx context.Context, q querier) ([]content.Project, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, title, description, tech, chains, featured, link, repo
		FROM projects ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var projects []content.Project
	for rows.Next() {
		var p content.Project
		var tech, chains string
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &tech, &chains, &p.Featured, &p.Link, &p.Repo); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		if p.Tech, err = decodeList(tech); err != nil {
			return nil, fmt.Errorf("project %d tech: %w", p.ID, err)
		}
		if p.Chains, err = decodeList(chains); err != nil {
			return nil, fmt.Errorf("project %d chains: %w", p.ID, err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func loadSkills(ctx context.Context, q querier) (content.SkillGroups, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT group_key, name, level FROM skills ORDER BY group_key, seq
	`)
	if err != nil {
		return content.SkillGroups{}, fmt.Errorf("failed to query skills: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var groups content.SkillGroups
	for rows.Next() {
		var key string
		var s content.Skill
		if err := rows.Scan(&key, &s.Name, &s.Level); err != nil {
			return content.SkillGroups{}, fmt.Errorf("failed to scan skill: %w", err)
		}
		switch key {
		case content.GroupLanguages:
			groups.Languages = append(groups.Languages, s)
		case content.GroupFrameworks:
			groups.Frameworks = append(groups.Frameworks, s)
		case content.GroupBlockchain:
			groups.Blockchain = append(groups.Blockchain, s)
		case content.GroupTools:
			groups.Tools = append(groups.Tools, s)
		default:
			return content.SkillGroups{}, fmt.Errorf("unknown skill group %q", key)
		}
	}
	return groups, rows.Err()
}

func loadExperience(ctx context.Context, q querier) ([]content.Experience, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT title, company, period, description FROM experience ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query experience: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []content.Experience
	for rows.Next() {
		var e content.Experience
		if err := rows.Scan(&e.Title, &e.Company, &e.Period, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func loadAchievements(ctx context.Context, q querier) ([]content.Achievement, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT title, position, description FROM achievements ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query achievements: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []content.Achievement
	for rows.Next() {
		var a content.Achievement
		if err := rows.Scan(&a.Title, &a.Position, &a.Description); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func loadCertifications(ctx context.Context, q querier) ([]content.Certification, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT name, issuer, year FROM certifications ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query certifications: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []content.Certification
	for rows.Next() {
		var c content.Certification
		if err := rows.Scan(&c.Name, &c.Issuer, &c.Year); err != nil {
			return nil, fmt.Errorf("failed to scan certification: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Replace swaps the stored content for c in a single transaction.
// Content that fails validation is rejected before anything is written.
func (r *ContentRepo) Replace(ctx context.Context, c *content.Content) error {
	if err := c.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"profile", "projects", "skills", "experience", "achievements", "certifications"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	links, err := json.Marshal(c.Profile.Links)
	if err != nil {
		return fmt.Errorf("failed to encode profile links: %w", err)
	}
	if c.Profile.Links == nil {
		links = []byte("{}")
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO profile (id, name, headline, location, email, bio, links)
		VALUES (1, ?, ?, ?, ?, ?, ?)
	`, c.Profile.Name, c.Profile.Headline, c.Profile.Location, c.Profile.Email, c.Profile.Bio, string(links))
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	for i, p := range c.Projects {
		tech, err := encodeList(p.Tech)
		if err != nil {
			return err
		}
		chains, err := encodeList(p.Chains)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO projects (id, seq, title, description, tech, chains, featured, link, repo)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, p.ID, i, p.Title, p.Description, tech, chains, p.Featured, p.Link, p.Repo)
		if err != nil {
			return fmt.Errorf("failed to insert project %d: %w", p.ID, err)
		}
	}

	for _, group := range c.Skills.Ordered() {
		for i, s := range group.Skills {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO skills (group_key, seq, name, level) VALUES (?, ?, ?, ?)
			`, group.Key, i, s.Name, s.Level)
			if err != nil {
				return fmt.Errorf("failed to insert skill %q: %w", s.Name, err)
			}
		}
	}

	for i, e := range c.Experience {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO experience (seq, title, company, period, description) VALUES (?, ?, ?, ?, ?)
		`, i, e.Title, e.Company, e.Period, e.Description)
		if err != nil {
			return fmt.Errorf("failed to insert experience %q: %w", e.Title, err)
		}
	}

	for i, a := range c.Achievements {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO achievements (seq, title, position, description) VALUES (?, ?, ?, ?)
		`, i, a.Title, a.Position, a.Description)
		if err != nil {
			return fmt.Errorf("failed to insert achievement %q: %w", a.Title, err)
		}
	}

	for i, cert := range c.Certifications {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO certifications (seq, name, issuer, year) VALUES (?, ?, ?, ?)
		`, i, cert.Name, cert.Issuer, cert.Year)
		if err != nil {
			return fmt.Errorf("failed to insert certification %q: %w", cert.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit content: %w", err)
	}
	return nil
}

func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return string(data), nil
}

func decodeList(raw string) ([]string, error) {
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}
