package buildinfo

import (
	"testing"

	"go.viam.com/test"
)

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "dev", "unknown"
	test.That(t, Short(), test.ShouldEqual, "dev")

	Commit = "abc123"
	test.That(t, Short(), test.ShouldEqual, "abc123")

	Version = "v1.0.0"
	test.That(t, Short(), test.ShouldEqual, "v1.0.0")
	test.That(t, String(), test.ShouldStartWith, "folio v1.0.0 (commit abc123")
}
