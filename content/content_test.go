package content

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/multierr"
	"go.viam.com/test"
)

func TestDefault(t *testing.T) {
	doc, err := Default()
	test.That(t, err, test.ShouldBeNil)

	test.That(t, doc.Profile.Name, test.ShouldEqual, "Vivek Manna")
	test.That(t, doc.Profile.Role, test.ShouldEqual, "Front-End Developer")
	test.That(t, doc.Profile.Location, test.ShouldEqual, "Milwaukee, Wisconsin")
	test.That(t, doc.Projects, test.ShouldHaveLength, 4)
	test.That(t, doc.Skills, test.ShouldHaveLength, 4)
	test.That(t, doc.Contact.Links, test.ShouldHaveLength, 1)

	chatbot := doc.Projects[1]
	test.That(t, chatbot.Title, test.ShouldEqual, "Chatbot Builder")
	test.That(t, chatbot.Link, test.ShouldEqual, "")
	test.That(t, chatbot.Note, test.ShouldNotBeEmpty)
	test.That(t, doc.Projects[0].Gradient.CSS(), test.ShouldEqual,
		"linear-gradient(135deg, #8b9d83 0%, #a39b8b 100%)")
}

func TestLoad(t *testing.T) {
	t.Run("empty path is the default", func(t *testing.T) {
		doc, err := Load("")
		test.That(t, err, test.ShouldBeNil)
		test.That(t, doc.Profile.Name, test.ShouldEqual, "Vivek Manna")
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "folio.yaml")
		data := []byte(`
profile: {name: Jo Doe, role: Engineer, location: Oslo}
projects:
  - title: Site
    description: A site.
    tags: [Go]
    gradient: {angle: 90, from: "#000000", to: "#ffffff"}
skills:
  - category: Backend
    items: [Go]
contact: {email: jo@example.com}
`)
		test.That(t, os.WriteFile(path, data, 0o600), test.ShouldBeNil)

		doc, err := Load(path)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, doc.Profile.Name, test.ShouldEqual, "Jo Doe")
		test.That(t, doc.Projects[0].Tags, test.ShouldResemble, []string{"Go"})
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "read content")
	})
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("profile: {name: A}\nextra: 1\n"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "decode content")
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	doc := Document{
		Projects: []Project{{
			Title:    "Broken",
			Link:     "ftp://example.com",
			Gradient: Gradient{From: "#zzzzzz", To: "#ffffff"},
		}},
		Skills:  []SkillGroup{{Category: "Empty"}},
		Contact: Contact{Email: "nobody", Links: []Link{{Label: "x", URL: "https://"}}},
	}

	err := doc.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	// name, description, link scheme, gradient color, empty skills, email, link host
	test.That(t, multierr.Errors(err), test.ShouldHaveLength, 7)
	test.That(t, err.Error(), test.ShouldContainSubstring, "profile: name is required")
	test.That(t, err.Error(), test.ShouldContainSubstring, "scheme must be http or https")
	test.That(t, err.Error(), test.ShouldContainSubstring, `bad gradient color "#zzzzzz"`)
	test.That(t, err.Error(), test.ShouldContainSubstring, "missing host")
}

func TestWriteSummary(t *testing.T) {
	doc, err := Default()
	test.That(t, err, test.ShouldBeNil)

	var buf bytes.Buffer
	test.That(t, doc.WriteSummary(&buf), test.ShouldBeNil)

	out := buf.String()
	test.That(t, out, test.ShouldContainSubstring, "Vivek Manna")
	test.That(t, out, test.ShouldContainSubstring, "Projects (4)")
	test.That(t, out, test.ShouldContainSubstring, "Email Template Builder")
	test.That(t, out, test.ShouldContainSubstring, "(Retired after ChatGPT's market entry)")
	test.That(t, out, test.ShouldContainSubstring, "mannevivek21@gmail.com")
}
