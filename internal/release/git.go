// Package release builds release notes from git history, optionally
// rewritten by a chat model.
package release

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"
)

// InitialRelease stands in for an empty history.
const InitialRelease = "Initial release"

// Commit is one line of git log --oneline.
type Commit struct {
	Hash    string
	Subject string
}

func (c Commit) String() string {
	if c.Hash == "" {
		return c.Subject
	}
	return c.Hash + " " + c.Subject
}

// Git runs git in a working tree.
type Git struct {
	Dir string
}

func (g Git) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.Dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(err, "git %v: %v", strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(string(out)), nil
}

// LastTag returns the most recent tag reachable from HEAD, or "" if none.
func (g Git) LastTag(ctx context.Context) string {
	tag, err := g.run(ctx, "describe", "--tags", "--abbrev=0")
	if err != nil {
		return ""
	}
	return tag
}

// Log returns the non-merge commits since a tag. With no tag given the
// last tag is used, and without tags the last ten commits. A history that
// cannot be read or is empty yields a single InitialRelease commit.
func (g Git) Log(ctx context.Context, since string) []Commit {
	if since == "" {
		since = g.LastTag(ctx)
	}

	var out string
	var err error
	if since != "" {
		out, err = g.run(ctx, "log", "--oneline", "--no-merges", since+"..HEAD")
	} else {
		out, err = g.run(ctx, "log", "--oneline", "--no-merges", "HEAD~10..HEAD")
		if err != nil {
			// Fewer than ten commits
			out, err = g.run(ctx, "log", "--oneline", "--no-merges", "--max-count=10", "HEAD")
		}
	}
	if err != nil {
		return []Commit{{Subject: InitialRelease}}
	}

	commits := ParseOneline(out)
	if len(commits) == 0 {
		return []Commit{{Subject: InitialRelease}}
	}
	return commits
}

// ParseOneline splits git log --oneline output. Lines without a subject
// are skipped.
func ParseOneline(out string) []Commit {
	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		hash, subject, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok || strings.TrimSpace(subject) == "" {
			continue
		}
		commits = append(commits, Commit{Hash: hash, Subject: strings.TrimSpace(subject)})
	}
	return commits
}
