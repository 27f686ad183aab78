package content

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// Store keeps a registry in a SQLite database. Row order is carried by an
// explicit position column on every list table.
type Store struct {
	db *sql.DB
}

func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	db.SetMaxOpenConns(1)
	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS section_copy (
		anchor TEXT PRIMARY KEY,
		title TEXT,
		subtitle TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS about_paragraphs (
		position INTEGER PRIMARY KEY,
		lead TEXT, highlight TEXT, tail TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS interests (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL, icon TEXT, color TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS nav_links (
		position INTEGER PRIMARY KEY,
		label TEXT NOT NULL, target TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS social_links (
		position INTEGER PRIMARY KEY,
		platform TEXT NOT NULL, url TEXT, icon TEXT, navbar INTEGER DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL, category TEXT, icon TEXT, color TEXT, description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		position INTEGER PRIMARY KEY,
		title TEXT NOT NULL, description TEXT, image TEXT, live_link TEXT, github_link TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS project_tags (
		project INTEGER NOT NULL, position INTEGER NOT NULL, tag TEXT NOT NULL,
		PRIMARY KEY (project, position)
	)`,
	`CREATE TABLE IF NOT EXISTS experience (
		position INTEGER PRIMARY KEY,
		company TEXT NOT NULL, logo TEXT, role TEXT, duration TEXT, location TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS contributions (
		experience INTEGER NOT NULL, position INTEGER NOT NULL, body TEXT NOT NULL,
		PRIMARY KEY (experience, position)
	)`,
	`CREATE TABLE IF NOT EXISTS tech_badges (
		experience INTEGER NOT NULL, position INTEGER NOT NULL,
		name TEXT NOT NULL, icon TEXT, color TEXT, background TEXT,
		PRIMARY KEY (experience, position)
	)`,
	`CREATE TABLE IF NOT EXISTS education (
		position INTEGER PRIMARY KEY,
		institution TEXT NOT NULL, degree TEXT, duration TEXT, score TEXT, icon TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS achievements (
		position INTEGER PRIMARY KEY,
		title TEXT NOT NULL, description TEXT, icon TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS contact_details (
		position INTEGER PRIMARY KEY,
		title TEXT NOT NULL, value TEXT, href TEXT, icon TEXT
	)`,
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "create content tables")
		}
	}
	return nil
}

// settings keys for the scalar parts of the registry
const (
	keyName           = "profile.name"
	keyInitials       = "profile.initials"
	keyEmail          = "profile.email"
	keyPhone          = "profile.phone"
	keyPhoneDisplay   = "profile.phone_display"
	keyResumeFilename = "profile.resume_filename"
	keyCredit         = "profile.credit"
	keyHeroKicker     = "hero.kicker"
	keyHeroLeft       = "hero.title_left"
	keyHeroRight      = "hero.title_right"
	keyHeroRole       = "hero.role"
	keyHeroTagline    = "hero.tagline"
	keyHeroPhoto      = "hero.photo"
	keyHeroFloating   = "hero.floating_icons"
	keyHeroStack      = "hero.stack_icons"
	keyAboutHeading   = "about.heading"
	keyAboutSubtitle  = "about.subtitle"
	keyAboutLede      = "about.lede"
	keyAboutPhoto     = "about.photo"
	keyAboutBadge     = "about.badge"
)

func (r *Registry) settings() map[string]string {
	return map[string]string{
		keyName:           r.Profile.Name,
		keyInitials:       r.Profile.Initials,
		keyEmail:          r.Profile.Email,
		keyPhone:          r.Profile.Phone,
		keyPhoneDisplay:   r.Profile.PhoneDisplay,
		keyResumeFilename: r.Profile.ResumeFilename,
		keyCredit:         r.Profile.Credit,
		keyHeroKicker:     r.Hero.Kicker,
		keyHeroLeft:       r.Hero.TitleLeft,
		keyHeroRight:      r.Hero.TitleRight,
		keyHeroRole:       r.Hero.Role,
		keyHeroTagline:    r.Hero.Tagline,
		keyHeroPhoto:      r.Hero.Photo,
		keyHeroFloating:   strings.Join(r.Hero.FloatingIcons, ","),
		keyHeroStack:      strings.Join(r.Hero.StackIcons, ","),
		keyAboutHeading:   r.About.Heading,
		keyAboutSubtitle:  r.About.Subtitle,
		keyAboutLede:      r.About.Lede,
		keyAboutPhoto:     r.About.Photo,
		keyAboutBadge:     r.About.Badge,
	}
}

// Save replaces the stored registry with r in a single transaction.
func (s *Store) Save(ctx context.Context, r *Registry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	for _, table := range []string{
		"settings", "section_copy", "about_paragraphs", "interests", "nav_links", "social_links",
		"skills", "projects", "project_tags", "experience", "contributions", "tech_badges",
		"education", "achievements", "contact_details",
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return errors.Wrapf(err, "clear %s", table)
		}
	}

	exec := func(query string, args ...any) {
		if err != nil {
			return
		}
		_, err = tx.ExecContext(ctx, query, args...)
	}

	for k, v := range r.settings() {
		exec(`INSERT INTO settings (key, value) VALUES (?, ?)`, k, v)
	}
	for anchor, c := range r.Copy {
		exec(`INSERT INTO section_copy (anchor, title, subtitle) VALUES (?, ?, ?)`, anchor, c.Title, c.Subtitle)
	}
	for i, p := range r.About.Paragraphs {
		exec(`INSERT INTO about_paragraphs (position, lead, highlight, tail) VALUES (?, ?, ?, ?)`, i, p.Lead, p.Highlight, p.Tail)
	}
	for i, in := range r.About.Interests {
		exec(`INSERT INTO interests (position, name, icon, color) VALUES (?, ?, ?, ?)`, i, in.Name, in.Icon, in.Color)
	}
	for i, n := range r.NavLinks {
		exec(`INSERT INTO nav_links (position, label, target) VALUES (?, ?, ?)`, i, n.Label, n.Target)
	}
	for i, sl := range r.Socials {
		exec(`INSERT INTO social_links (position, platform, url, icon, navbar) VALUES (?, ?, ?, ?, ?)`, i, sl.Platform, sl.URL, sl.Icon, sl.InNavbar)
	}
	for i, sk := range r.Skills {
		exec(`INSERT INTO skills (position, name, category, icon, color, description) VALUES (?, ?, ?, ?, ?, ?)`,
			i, sk.Name, string(sk.Category), sk.Icon, sk.Color, sk.Description)
	}
	for i, p := range r.Projects {
		exec(`INSERT INTO projects (position, title, description, image, live_link, github_link) VALUES (?, ?, ?, ?, ?, ?)`,
			i, p.Title, p.Description, p.Image, p.LiveLink, p.GithubLink)
		for j, tag := range p.Tags {
			exec(`INSERT INTO project_tags (project, position, tag) VALUES (?, ?, ?)`, i, j, tag)
		}
	}
	for i, e := range r.Experience {
		exec(`INSERT INTO experience (position, company, logo, role, duration, location) VALUES (?, ?, ?, ?, ?, ?)`,
			i, e.Company, e.Logo, e.Role, e.Duration, e.Location)
		for j, c := range e.Contributions {
			exec(`INSERT INTO contributions (experience, position, body) VALUES (?, ?, ?)`, i, j, c)
		}
		for j, b := range e.TechStack {
			exec(`INSERT INTO tech_badges (experience, position, name, icon, color, background) VALUES (?, ?, ?, ?, ?, ?)`,
				i, j, b.Name, b.Icon, b.Color, b.Background)
		}
	}
	for i, ed := range r.Education {
		exec(`INSERT INTO education (position, institution, degree, duration, score, icon) VALUES (?, ?, ?, ?, ?, ?)`,
			i, ed.Institution, ed.Degree, ed.Duration, ed.Score, ed.Icon)
	}
	for i, a := range r.Achievements {
		exec(`INSERT INTO achievements (position, title, description, icon) VALUES (?, ?, ?, ?)`, i, a.Title, a.Description, a.Icon)
	}
	for i, c := range r.Contact {
		exec(`INSERT INTO contact_details (position, title, value, href, icon) VALUES (?, ?, ?, ?, ?)`, i, c.Title, c.Value, c.Href, c.Icon)
	}
	if err != nil {
		return errors.Wrap(err, "insert content")
	}

	return errors.Wrap(tx.Commit(), "commit")
}

// Load reads the stored registry.
func (s *Store) Load(ctx context.Context) (*Registry, error) {
	r := &Registry{}

	settings := make(map[string]string)
	if err := s.each(ctx, `SELECT key, value FROM settings`, func(rows *sql.Rows) error {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return err
		}
		settings[k] = v
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "load settings")
	}
	r.Profile = Profile{
		Name:           settings[keyName],
		Initials:       settings[keyInitials],
		Email:          settings[keyEmail],
		Phone:          settings[keyPhone],
		PhoneDisplay:   settings[keyPhoneDisplay],
		ResumeFilename: settings[keyResumeFilename],
		Credit:         settings[keyCredit],
	}
	r.Hero = Hero{
		Kicker:        settings[keyHeroKicker],
		TitleLeft:     settings[keyHeroLeft],
		TitleRight:    settings[keyHeroRight],
		Role:          settings[keyHeroRole],
		Tagline:       settings[keyHeroTagline],
		Photo:         settings[keyHeroPhoto],
		FloatingIcons: splitIcons(settings[keyHeroFloating]),
		StackIcons:    splitIcons(settings[keyHeroStack]),
	}
	r.About = About{
		Heading:  settings[keyAboutHeading],
		Subtitle: settings[keyAboutSubtitle],
		Lede:     settings[keyAboutLede],
		Photo:    settings[keyAboutPhoto],
		Badge:    settings[keyAboutBadge],
	}

	steps := []struct {
		name  string
		query string
		scan  func(rows *sql.Rows) error
	}{
		{"section copy", `SELECT anchor, title, subtitle FROM section_copy`, func(rows *sql.Rows) error {
			var anchor string
			var c SectionCopy
			if err := rows.Scan(&anchor, &c.Title, &c.Subtitle); err != nil {
				return err
			}
			if r.Copy == nil {
				r.Copy = make(map[string]SectionCopy)
			}
			r.Copy[anchor] = c
			return nil
		}},
		{"paragraphs", `SELECT lead, highlight, tail FROM about_paragraphs ORDER BY position`, func(rows *sql.Rows) error {
			var p Paragraph
			if err := rows.Scan(&p.Lead, &p.Highlight, &p.Tail); err != nil {
				return err
			}
			r.About.Paragraphs = append(r.About.Paragraphs, p)
			return nil
		}},
		{"interests", `SELECT name, icon, color FROM interests ORDER BY position`, func(rows *sql.Rows) error {
			var in Interest
			if err := rows.Scan(&in.Name, &in.Icon, &in.Color); err != nil {
				return err
			}
			r.About.Interests = append(r.About.Interests, in)
			return nil
		}},
		{"nav links", `SELECT label, target FROM nav_links ORDER BY position`, func(rows *sql.Rows) error {
			var n NavLink
			if err := rows.Scan(&n.Label, &n.Target); err != nil {
				return err
			}
			r.NavLinks = append(r.NavLinks, n)
			return nil
		}},
		{"social links", `SELECT platform, url, icon, navbar FROM social_links ORDER BY position`, func(rows *sql.Rows) error {
			var sl SocialLink
			if err := rows.Scan(&sl.Platform, &sl.URL, &sl.Icon, &sl.InNavbar); err != nil {
				return err
			}
			r.Socials = append(r.Socials, sl)
			return nil
		}},
		{"skills", `SELECT name, category, icon, color, description FROM skills ORDER BY position`, func(rows *sql.Rows) error {
			var sk SkillEntry
			var cat string
			if err := rows.Scan(&sk.Name, &cat, &sk.Icon, &sk.Color, &sk.Description); err != nil {
				return err
			}
			sk.Category = Category(cat)
			r.Skills = append(r.Skills, sk)
			return nil
		}},
		{"projects", `SELECT title, description, image, live_link, github_link FROM projects ORDER BY position`, func(rows *sql.Rows) error {
			var p ProjectEntry
			if err := rows.Scan(&p.Title, &p.Description, &p.Image, &p.LiveLink, &p.GithubLink); err != nil {
				return err
			}
			r.Projects = append(r.Projects, p)
			return nil
		}},
		{"project tags", `SELECT project, tag FROM project_tags ORDER BY project, position`, func(rows *sql.Rows) error {
			var idx int
			var tag string
			if err := rows.Scan(&idx, &tag); err != nil {
				return err
			}
			if idx >= 0 && idx < len(r.Projects) {
				r.Projects[idx].Tags = append(r.Projects[idx].Tags, tag)
			}
			return nil
		}},
		{"experience", `SELECT company, logo, role, duration, location FROM experience ORDER BY position`, func(rows *sql.Rows) error {
			var e ExperienceEntry
			if err := rows.Scan(&e.Company, &e.Logo, &e.Role, &e.Duration, &e.Location); err != nil {
				return err
			}
			r.Experience = append(r.Experience, e)
			return nil
		}},
		{"contributions", `SELECT experience, body FROM contributions ORDER BY experience, position`, func(rows *sql.Rows) error {
			var idx int
			var body string
			if err := rows.Scan(&idx, &body); err != nil {
				return err
			}
			if idx >= 0 && idx < len(r.Experience) {
				r.Experience[idx].Contributions = append(r.Experience[idx].Contributions, body)
			}
			return nil
		}},
		{"tech badges", `SELECT experience, name, icon, color, background FROM tech_badges ORDER BY experience, position`, func(rows *sql.Rows) error {
			var idx int
			var b TechBadge
			if err := rows.Scan(&idx, &b.Name, &b.Icon, &b.Color, &b.Background); err != nil {
				return err
			}
			if idx >= 0 && idx < len(r.Experience) {
				r.Experience[idx].TechStack = append(r.Experience[idx].TechStack, b)
			}
			return nil
		}},
		{"education", `SELECT institution, degree, duration, score, icon FROM education ORDER BY position`, func(rows *sql.Rows) error {
			var ed EducationEntry
			if err := rows.Scan(&ed.Institution, &ed.Degree, &ed.Duration, &ed.Score, &ed.Icon); err != nil {
				return err
			}
			r.Education = append(r.Education, ed)
			return nil
		}},
		{"achievements", `SELECT title, description, icon FROM achievements ORDER BY position`, func(rows *sql.Rows) error {
			var a AchievementEntry
			if err := rows.Scan(&a.Title, &a.Description, &a.Icon); err != nil {
				return err
			}
			r.Achievements = append(r.Achievements, a)
			return nil
		}},
		{"contact details", `SELECT title, value, href, icon FROM contact_details ORDER BY position`, func(rows *sql.Rows) error {
			var c ContactDetail
			if err := rows.Scan(&c.Title, &c.Value, &c.Href, &c.Icon); err != nil {
				return err
			}
			r.Contact = append(r.Contact, c)
			return nil
		}},
	}
	for _, step := range steps {
		if err := s.each(ctx, step.query, step.scan); err != nil {
			return nil, errors.Wrapf(err, "load %s", step.name)
		}
	}
	return r, nil
}

func (s *Store) each(ctx context.Context, query string, scan func(*sql.Rows) error) error {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

func splitIcons(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
