package settings

import (
	"strings"
	"text/template"
)

// The services read their settings as Python modules, so templates
// render values with these helpers to get literals Python will parse.
// An absent optional value renders as '' or [] rather than dropping
// the setting, which the services read as "feature disabled".
var Funcs = template.FuncMap{
	"pystr":  pythonString,
	"pybool": pythonBool,
	"pylist": pythonList,
}

func pythonString(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
}

func pythonBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func pythonList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = pythonString(item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
