package folio

import (
	"fmt"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/log"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/session"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/transport"
)

// Version is the current version of the folio module.
const Version = "1.0.0"

// ModuleVersions returns the version of every sub-module.
func ModuleVersions() map[string]string {
	return map[string]string{
		"folio":     Version,
		"transport": transport.Version,
		"session":   session.Version,
		"log":       log.Version,
	}
}

// validateModuleVersions checks that all module versions are compatible.
// Returns an error if any module version is below its minimum compatible version.
func validateModuleVersions() error {
	modules := map[string]struct {
		version    string
		minVersion string
	}{
		"transport": {transport.Version, transport.MinCompatibleVersion},
		"session":   {session.Version, session.MinCompatibleVersion},
		"log":       {log.Version, log.MinCompatibleVersion},
	}

	for name, m := range modules {
		if !isVersionCompatible(m.version, m.minVersion) {
			return fmt.Errorf("module %s version %s is below minimum compatible version %s",
				name, m.version, m.minVersion)
		}
	}

	return nil
}

// isVersionCompatible reports whether version >= minVersion, both
// "major.minor.patch". Missing or non-numeric parts count as zero.
func isVersionCompatible(version, minVersion string) bool {
	v, m := semver(version), semver(minVersion)
	for i := range v {
		if v[i] != m[i] {
			return v[i] > m[i]
		}
	}
	return true
}

func semver(s string) [3]int {
	var out [3]int
	_, _ = fmt.Sscanf(s, "%d.%d.%d", &out[0], &out[1], &out[2])
	return out
}
