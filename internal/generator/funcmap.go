package generator

import (
	"text/template"

	"github.com/xll-gen/filepacker/internal/csharp"
)

// GetCommonFuncMap returns the template functions shared by the C# templates.
func GetCommonFuncMap() template.FuncMap {
	return template.FuncMap{
		"quote": csharp.Quote,
	}
}
