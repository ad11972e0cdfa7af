package csharp

import (
	"strings"
	"unicode"
)

var keywords = map[string]bool{
	"abstract": true, "as": true, "base": true, "bool": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "checked": true,
	"class": true, "const": true, "continue": true, "decimal": true, "default": true,
	"delegate": true, "do": true, "double": true, "else": true, "enum": true,
	"event": true, "explicit": true, "extern": true, "false": true, "finally": true,
	"fixed": true, "float": true, "for": true, "foreach": true, "goto": true,
	"if": true, "implicit": true, "in": true, "int": true, "interface": true,
	"internal": true, "is": true, "lock": true, "long": true, "namespace": true,
	"new": true, "null": true, "object": true, "operator": true, "out": true,
	"override": true, "params": true, "private": true, "protected": true, "public": true,
	"readonly": true, "ref": true, "return": true, "sbyte": true, "sealed": true,
	"short": true, "sizeof": true, "stackalloc": true, "static": true, "string": true,
	"struct": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "uint": true, "ulong": true, "unchecked": true,
	"unsafe": true, "ushort": true, "using": true, "virtual": true, "void": true,
	"volatile": true, "while": true,
}

// IsKeyword reports whether s is a reserved C# keyword.
func IsKeyword(s string) bool {
	return keywords[s]
}

// IsIdentifier reports whether s can be used as a bare C# member name:
// ASCII letters, digits and underscores, not starting with a digit, not a keyword.
func IsIdentifier(s string) bool {
	if s == "" || IsKeyword(s) {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r < unicode.MaxASCII && unicode.IsLetter(r):
		case r < unicode.MaxASCII && unicode.IsDigit(r):
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Qualifier returns the prefix code in namespace needs to name a type of pkg:
// empty when namespace is pkg or nested inside it, "pkg." otherwise.
func Qualifier(namespace, pkg string) string {
	if namespace == pkg || strings.HasPrefix(namespace, pkg+".") {
		return ""
	}
	return pkg + "."
}

// RootNamespace derives the default root namespace MSBuild gives a project
// named projectName: characters outside letters, digits, '_' and '.' become
// '_', and empty segments, segments starting with a digit and keywords get a
// leading '_'.
func RootNamespace(projectName string) string {
	segments := strings.Split(projectName, ".")
	for i, seg := range segments {
		b := []rune(seg)
		for j, r := range b {
			if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				b[j] = '_'
			}
		}
		seg = string(b)
		if seg == "" || unicode.IsDigit(b[0]) || IsKeyword(seg) {
			seg = "_" + seg
		}
		segments[i] = seg
	}
	return strings.Join(segments, ".")
}
