package stylesheet

import (
	_ "embed"
)

//go:embed builtin/notekeep.qss
var builtinTemplate string

// BuiltinTemplate returns the stylesheet template bundled with notekeep.
func BuiltinTemplate() string {
	return builtinTemplate
}
