// Package placeholder rewrites text assets that mention runtime values into
// C# interpolated strings.
package placeholder

import (
	"strings"

	"github.com/xll-gen/filepacker/internal/csharp"
)

// Recognized tokens. They are matched as literal, case-sensitive substrings.
const (
	PathPrefix = "[PATH_PREFIX]"
	PathHome   = "[PATH_HOME]"
	Domain     = "[DOMAIN]"
	DomainMain = "[DOMAIN_MAIN]"
)

// FrameworkNamespace is the root namespace of the web framework the generated code targets.
const FrameworkNamespace = "uwap.WebFramework"

// triggers decide whether a text asset is templated at all.
// DomainMain alone does not trigger a rewrite.
var triggers = []string{PathPrefix, PathHome, Domain}

// ShouldTemplate reports whether content of a text candidate needs to be rewritten.
// Non-text assets are never templated, whatever they contain.
func ShouldTemplate(isText bool, content string) bool {
	if !isText {
		return false
	}
	for _, tok := range triggers {
		if strings.Contains(content, tok) {
			return true
		}
	}
	return false
}

// FrameworkPrefix returns the qualifier needed to reach framework types from namespace:
// empty inside the framework namespace tree, "uwap.WebFramework." otherwise.
func FrameworkPrefix(namespace string) string {
	return csharp.Qualifier(namespace, FrameworkNamespace)
}

// Render turns content into a C# interpolated string expression ($"...").
// Literal braces are doubled before the tokens are swapped for interpolation holes.
func Render(content, frameworkPrefix string) string {
	lit := csharp.Quote(content)
	lit = strings.ReplaceAll(lit, "{", "{{")
	lit = strings.ReplaceAll(lit, "}", "}}")
	lit = strings.ReplaceAll(lit, PathPrefix, "{pathPrefix}")
	lit = strings.ReplaceAll(lit, PathHome, `{(pathPrefix == "" ? "/" : pathPrefix)}`)
	lit = strings.ReplaceAll(lit, Domain, "{domain}")
	lit = strings.ReplaceAll(lit, DomainMain, "{"+frameworkPrefix+"Parsers.DomainMain(domain)}")
	return "$" + lit
}
