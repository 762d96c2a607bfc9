package devices

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// pathEscapePattern matches every character that must be backslash-escaped
// before a path is placed into a shell command line.
var pathEscapePattern = regexp.MustCompile(`([\\()*+?"'&#\s\v])`)

// EscapePath backslash-escapes shell metacharacters and whitespace in p.
func EscapePath(p string) string {
	return pathEscapePattern.ReplaceAllString(p, `\$1`)
}

// UnescapePath reverses EscapePath.
func UnescapePath(p string) string {
	var b strings.Builder
	b.Grow(len(p))

	escaped := false
	for _, r := range p {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}

	// a dangling backslash has nothing to escape, keep it
	if escaped {
		b.WriteRune('\\')
	}

	return b.String()
}

// RemotePath is a path on the device filesystem.
type RemotePath struct {
	path string
}

// NewRemotePath wraps a device-side path.
func NewRemotePath(p string) RemotePath {
	return RemotePath{path: p}
}

// Path returns the unescaped path.
func (r RemotePath) Path() string {
	return r.path
}

// EscapedPath returns the path escaped for a device shell command line.
func (r RemotePath) EscapedPath() string {
	return EscapePath(r.path)
}

// Resolve returns the child path named by segment. Device paths always use
// forward slashes regardless of the host OS.
func (r RemotePath) Resolve(segment string) RemotePath {
	return RemotePath{path: strings.TrimSuffix(r.path, "/") + "/" + strings.TrimPrefix(segment, "/")}
}

func (r RemotePath) String() string {
	return r.path
}

// LocalPath is an absolute path on the host filesystem.
type LocalPath struct {
	path string
}

// NewLocalPath resolves p to an absolute host path.
func NewLocalPath(p string) (LocalPath, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return LocalPath{}, fmt.Errorf("failed to resolve local path %q: %w", p, err)
	}
	return LocalPath{path: abs}, nil
}

// Path returns the absolute, unescaped path.
func (l LocalPath) Path() string {
	return l.path
}

// EscapedPath returns the absolute path escaped for a command line.
func (l LocalPath) EscapedPath() string {
	return EscapePath(l.path)
}

func (l LocalPath) String() string {
	return l.path
}
