package content

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
)

// WriteSummary prints a plain-text overview of the document, one section per record kind.
func (d *Document) WriteSummary(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	p := d.Profile
	fmt.Fprintf(tw, "%s\n%s, %s\n", p.Name, p.Role, p.Location)
	if p.Tagline != "" {
		fmt.Fprintf(tw, "%s\n", p.Tagline)
	}
	for _, s := range p.Stats {
		fmt.Fprintf(tw, "  %s\t%s\n", s.Value, s.Label)
	}

	fmt.Fprintf(tw, "\nProjects (%d)\n", len(d.Projects))
	for _, pr := range d.Projects {
		fmt.Fprintf(tw, "  %s\t%s\n", pr.Title, strings.Join(pr.Tags, ", "))
		if pr.Link != "" {
			fmt.Fprintf(tw, "\t%s\n", pr.Link)
		}
		if pr.Note != "" {
			fmt.Fprintf(tw, "\t(%s)\n", pr.Note)
		}
	}

	fmt.Fprintf(tw, "\nSkills\n")
	for _, s := range d.Skills {
		fmt.Fprintf(tw, "  %s\t%s\n", s.Category, strings.Join(s.Items, ", "))
	}

	c := d.Contact
	fmt.Fprintf(tw, "\nContact\n")
	if c.Email != "" {
		fmt.Fprintf(tw, "  email\t%s\n", c.Email)
	}
	if c.Phone != "" {
		fmt.Fprintf(tw, "  phone\t%s\n", c.Phone)
	}
	for _, l := range c.Links {
		fmt.Fprintf(tw, "  %s\t%s\n", l.Label, l.URL)
	}

	return errors.Wrap(tw.Flush(), "write summary")
}
