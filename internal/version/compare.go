package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-signal/pkg/errors"
)

// CheckCompatibility reports whether a config written for required can run on engine.
//
// required is either a plain version or a semver constraint:
//   - empty, or either side "main" (development build): always compatible
//   - plain version: major and minor must match, patch may differ
//   - constraint (e.g. ">= 0.1, < 0.3"): engine must satisfy it
//
// Examples:
//   - engine 0.1.4, required 0.1.0 -> OK
//   - engine 0.2.0, required 0.1.0 -> ERROR (minor differs)
//   - engine 0.2.0, required "^0.2" -> OK
//   - engine 1.0.0, required "< 1.0" -> ERROR
func CheckCompatibility(engine, required string) error {
	engine = strings.TrimPrefix(strings.TrimSpace(engine), "v")
	required = strings.TrimSpace(required)

	if required == "" || engine == "main" || strings.TrimPrefix(required, "v") == "main" {
		return nil
	}

	engineSemver, err := semver.NewVersion(engine)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeVersionMismatch, err, "invalid engine version '%s'", engine)
	}

	if requiredSemver, err := semver.StrictNewVersion(strings.TrimPrefix(required, "v")); err == nil {
		return checkSameMinor(engineSemver, requiredSemver)
	}

	constraint, err := semver.NewConstraint(required)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeVersionMismatch, err, "invalid version constraint '%s'", required)
	}

	if ok, reasons := constraint.Validate(engineSemver); !ok {
		msg := make([]string, len(reasons))
		for i, r := range reasons {
			msg[i] = r.Error()
		}

		return errors.Newf(errors.ErrCodeVersionMismatch, "engine %s does not satisfy '%s': %s",
			engineSemver, required, strings.Join(msg, "; "))
	}

	return nil
}

// CheckConfigVersion checks required against the running engine version.
func CheckConfigVersion(required string) error {
	return CheckCompatibility(GetVersion(), required)
}

func checkSameMinor(engine, required *semver.Version) error {
	if engine.Major() != required.Major() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "major version mismatch: engine is %d.x.x but config requires %d.x.x",
			engine.Major(), required.Major())
	}

	if engine.Minor() != required.Minor() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "minor version mismatch: engine is %d.%d.x but config requires %d.%d.x",
			engine.Major(), engine.Minor(), required.Major(), required.Minor())
	}

	return nil
}
