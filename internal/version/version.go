// Package version manages the project version kept in the .env file and
// the release version compiled into the binary.
package version

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ossrs/go-oryx-lib/errors"
)

// Keys holding the version components in the .env file.
const (
	KeyMajor = "VERSION_MAJOR"
	KeyMinor = "VERSION_MINOR"
	KeyPatch = "VERSION_PATCH"
	KeyBuild = "VERSION_BUILD"
)

// MaxComponent is the largest major, minor or patch number an Audio Unit
// version integer can hold.
const MaxComponent = 255

// release is the version compiled in, set with
// -ldflags "-X github.com/vst3go/plugintemplate/internal/version.release=1.2.3.4"
var release = "1.0.0.0"

// Version is a major.minor.patch version with a build counter.
type Version struct {
	Major, Minor, Patch, Build int
}

// Release returns the compiled-in version. A malformed value yields 0.0.0.
func Release() Version {
	v, err := Parse(release)
	if err != nil {
		return Version{}
	}
	return v
}

// Parse reads "major.minor.patch" with an optional ".build".
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) != 3 && len(parts) != 4 {
		return Version{}, errors.Errorf("invalid version %q", s)
	}

	nums := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, errors.Errorf("invalid version %q", s)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2], Build: nums[3]}, nil
}

// String formats major.minor.patch.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Full formats major.minor.patch.build.
func (v Version) Full() string {
	return fmt.Sprintf("%s.%d", v, v.Build)
}

// AUInt packs the version the way Audio Unit hosts read it.
func (v Version) AUInt() int {
	return v.Major<<16 | v.Minor<<8 | v.Patch
}

// Validate checks the Audio Unit limits.
func (v Version) Validate() error {
	for _, c := range []struct {
		name  string
		value int
	}{
		{"major", v.Major},
		{"minor", v.Minor},
		{"patch", v.Patch},
	} {
		if c.value < 0 || c.value > MaxComponent {
			return errors.Errorf("%s version %d exceeds AU limit of %d", c.name, c.value, MaxComponent)
		}
	}
	if v.Build < 0 {
		return errors.Errorf("negative build number %d", v.Build)
	}
	return nil
}

// Bump kinds.
const (
	BumpMajor = "major"
	BumpMinor = "minor"
	BumpPatch = "patch"
	BumpBuild = "build"
)

// Bump returns the next version. Lower components reset; the build number
// always increments.
func (v Version) Bump(kind string) (Version, error) {
	switch kind {
	case BumpMajor:
		v.Major++
		v.Minor, v.Patch = 0, 0
	case BumpMinor:
		v.Minor++
		v.Patch = 0
	case BumpPatch, "":
		v.Patch++
	case BumpBuild:
	default:
		return v, errors.Errorf("unknown bump %q, want major, minor, patch or build", kind)
	}
	v.Build++

	if err := v.Validate(); err != nil {
		return v, err
	}
	return v, nil
}

// Export returns shell export lines for build scripts.
func (v Version) Export() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "export PROJECT_VERSION=%s\n", v)
	fmt.Fprintf(&sb, "export PROJECT_VERSION_FULL=%s\n", v.Full())
	fmt.Fprintf(&sb, "export %s=%d\n", KeyMajor, v.Major)
	fmt.Fprintf(&sb, "export %s=%d\n", KeyMinor, v.Minor)
	fmt.Fprintf(&sb, "export %s=%d\n", KeyPatch, v.Patch)
	fmt.Fprintf(&sb, "export %s=%d\n", KeyBuild, v.Build)
	fmt.Fprintf(&sb, "export AU_VERSION_INT=%d\n", v.AUInt())
	return sb.String()
}

// Load reads the version from an env file. A missing file or key yields
// the initial 0.0.1 build 0.
func Load(path string) (Version, error) {
	env, err := readEnv(path)
	if err != nil {
		return Version{}, err
	}

	v := Version{Patch: 1}
	for key, dst := range map[string]*int{
		KeyMajor: &v.Major,
		KeyMinor: &v.Minor,
		KeyPatch: &v.Patch,
		KeyBuild: &v.Build,
	} {
		s, ok := env[key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return Version{}, errors.Wrapf(err, "parse %v in %v", key, path)
		}
		*dst = n
	}
	return v, nil
}

// Save writes the version into an env file, keeping its other keys.
func Save(path string, v Version) error {
	env, err := readEnv(path)
	if err != nil {
		return err
	}
	if env == nil {
		env = make(map[string]string)
	}

	env[KeyMajor] = strconv.Itoa(v.Major)
	env[KeyMinor] = strconv.Itoa(v.Minor)
	env[KeyPatch] = strconv.Itoa(v.Patch)
	env[KeyBuild] = strconv.Itoa(v.Build)

	if err := godotenv.Write(env, path); err != nil {
		return errors.Wrapf(err, "write %v", path)
	}
	return nil
}

func readEnv(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read %v", path)
	}
	return env, nil
}
