// Package content holds the static portfolio records (profile, projects, skills, contact)
// read by the presentation layer. Records are configuration: they are loaded from YAML and
// validated, never computed.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultDocument []byte

// Document is the full set of content records.
type Document struct {
	Profile  Profile      `yaml:"profile"`
	Projects []Project    `yaml:"projects"`
	Skills   []SkillGroup `yaml:"skills"`
	Contact  Contact      `yaml:"contact"`
}

type Profile struct {
	Name       string      `yaml:"name"`
	Role       string      `yaml:"role"`
	Tagline    string      `yaml:"tagline"`
	Location   string      `yaml:"location"`
	Stats      []Stat      `yaml:"stats"`
	Highlights []Highlight `yaml:"highlights"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Highlight struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// Project is one portfolio card. Link and Note are optional.
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Link        string   `yaml:"link,omitempty"`
	Note        string   `yaml:"note,omitempty"`
	Gradient    Gradient `yaml:"gradient"`
}

// Gradient is a two-stop linear gradient.
type Gradient struct {
	Angle int    `yaml:"angle"`
	From  string `yaml:"from"`
	To    string `yaml:"to"`
}

// CSS renders the gradient as a CSS linear-gradient value.
func (g Gradient) CSS() string {
	return fmt.Sprintf("linear-gradient(%ddeg, %s 0%%, %s 100%%)", g.Angle, g.From, g.To)
}

type SkillGroup struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

type Contact struct {
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
	Links []Link `yaml:"links"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Default returns the embedded document.
func Default() (*Document, error) {
	return Parse(defaultDocument)
}

// Load reads a document from path, or the embedded default when path is empty.
func Load(path string) (*Document, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read content")
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "content %s", path)
	}
	return doc, nil
}

// Parse decodes and validates a YAML document. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode content")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate reports every problem in the document, not just the first.
func (d *Document) Validate() error {
	var err error
	if strings.TrimSpace(d.Profile.Name) == "" {
		err = multierr.Append(err, errors.New("profile: name is required"))
	}
	for i, p := range d.Projects {
		err = multierr.Append(err, p.validate(i))
	}
	for i, s := range d.Skills {
		if strings.TrimSpace(s.Category) == "" {
			err = multierr.Append(err, errors.Errorf("skills[%d]: category is required", i))
		}
		if len(s.Items) == 0 {
			err = multierr.Append(err, errors.Errorf("skills[%d] %q: no items", i, s.Category))
		}
	}
	if d.Contact.Email != "" && !strings.Contains(d.Contact.Email, "@") {
		err = multierr.Append(err, errors.Errorf("contact: invalid email %q", d.Contact.Email))
	}
	for i, l := range d.Contact.Links {
		if verr := validateURL(l.URL); verr != nil {
			err = multierr.Append(err, errors.Wrapf(verr, "contact.links[%d]", i))
		}
	}
	return err
}

func (p Project) validate(i int) error {
	var err error
	if strings.TrimSpace(p.Title) == "" {
		err = multierr.Append(err, errors.Errorf("projects[%d]: title is required", i))
	}
	if strings.TrimSpace(p.Description) == "" {
		err = multierr.Append(err, errors.Errorf("projects[%d] %q: description is required", i, p.Title))
	}
	if p.Link != "" {
		if verr := validateURL(p.Link); verr != nil {
			err = multierr.Append(err, errors.Wrapf(verr, "projects[%d] %q", i, p.Title))
		}
	}
	for _, c := range []string{p.Gradient.From, p.Gradient.To} {
		if _, cerr := colorful.Hex(c); cerr != nil {
			err = multierr.Append(err, errors.Errorf("projects[%d] %q: bad gradient color %q", i, p.Title, c))
		}
	}
	return err
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrap(err, "parse link")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("link %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return errors.Errorf("link %q: missing host", raw)
	}
	return nil
}
