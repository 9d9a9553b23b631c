package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"flextime/internal/types"
)

// CheckComposeVersion verifies that a loaded profile satisfies the PEP 440
// specifier set on the compose entry that pulled it in. An empty
// specifier accepts any version.
func CheckComposeVersion(ref types.ComposeRef, profile types.Catalog) error {
	specifier := strings.TrimSpace(ref.Version)
	if specifier == "" {
		return nil
	}
	specs, err := pep440.NewSpecifiers(specifier)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid compose version specifier for %s: %s", ref.Name, specifier)).
			WithCause(err)
	}
	version, err := pep440.Parse(strings.TrimSpace(profile.Metadata.Version))
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("profile %s has invalid version: %q", profile.Metadata.Name, profile.Metadata.Version)).
			WithCause(err)
	}
	if !specs.Check(version) {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("no compatible version: profile %s %s does not satisfy %s", profile.Metadata.Name, profile.Metadata.Version, specifier))
	}
	return nil
}
