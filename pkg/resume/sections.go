// Package resume renders a ProfileDocument as a printable page or a PDF.
package resume

import (
	"strings"

	"resume-builder-backend/internal/domain"
)

const (
	anonymous   = "Anonymous"
	unavailable = "N/A"
)

// Header holds the user fields with placeholders already substituted.
type Header struct {
	Name     string
	Username string
	Mobile   string
	Location string
	Photo    string
}

type Entry struct {
	Heading string
	Meta    string
	Body    string
	Link    string
}

type Section struct {
	Title   string
	Entries []Entry
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func join(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func headerOf(u domain.ProfileUser) Header {
	return Header{
		Name:     orDefault(u.Name, anonymous),
		Username: orDefault(u.Username, unavailable),
		Mobile:   orDefault(u.Mobile, unavailable),
		Location: orDefault(u.Location, unavailable),
		Photo:    deref(u.ProfilePhoto),
	}
}

// Sections lists the document's collections in print order. Empty collections are left out.
func Sections(doc *domain.ProfileDocument) []Section {
	var out []Section
	add := func(title string, entries []Entry) {
		if len(entries) > 0 {
			out = append(out, Section{Title: title, Entries: entries})
		}
	}

	var links []Entry
	for _, l := range doc.LinkedinProfiles {
		links = append(links, Entry{Heading: l.Name, Link: l.URL})
	}
	add("LinkedIn", links)

	var exp []Entry
	for _, e := range doc.Experiences {
		exp = append(exp, Entry{
			Heading: join(" - ", e.Designation, e.Organization),
			Meta:    join(" | ", e.RoleType, e.Location, join(" to ", e.StartDate, e.EndDate)),
			Body:    e.Profile,
		})
	}
	add("Experience", exp)

	var edu []Entry
	for _, e := range doc.Education {
		edu = append(edu, Entry{
			Heading: join(" - ", e.Title, e.School),
			Meta:    join(" | ", e.Stream, e.Board, join(" to ", e.StartYear, e.EndYear), prefixed("CGPA: ", e.CGPA)),
			Link:    deref(e.Website),
		})
	}
	add("Education", edu)

	var projects []Entry
	for _, p := range doc.Projects {
		projects = append(projects, Entry{
			Heading: p.Title,
			Meta:    p.RoleAndTech,
			Body:    p.Description,
			Link:    deref(p.Link),
		})
	}
	add("Projects", projects)

	var skills []Entry
	for _, s := range doc.Skills {
		skills = append(skills, Entry{Heading: s.Name, Meta: s.Type})
	}
	add("Skills", skills)

	var certs []Entry
	for _, c := range doc.Certifications {
		certs = append(certs, Entry{Heading: c.Title, Meta: c.Institute, Link: deref(c.FileURL)})
	}
	add("Certifications", certs)

	var hobbies []Entry
	for _, h := range doc.Hobbies {
		hobbies = append(hobbies, Entry{Heading: h.Name})
	}
	add("Hobbies", hobbies)

	return out
}

func prefixed(prefix, s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return prefix + s
}
