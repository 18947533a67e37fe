// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"regexp"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined constants visible to $(...) expressions.
var sysEquate = map[string]int{
	"MEMORY_SIZE":    MEMORY_SIZE,
	"REGISTER_COUNT": REGISTER_COUNT,
	"PROGRAM_START":  PROGRAM_START,
	"WORD_MAX":       WORD_MAX,
}

var exprRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// parenEval does compile-time $(...) evaluations
func parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range sysEquate {
		pred[key] = starlark.MakeInt(value)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// expandExpressions replaces every $(...) in a line with its decimal value.
// The first failing expression is returned as the error, and is left in
// place in the line.
func expandExpressions(line string) (out string, err error) {
	out = exprRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := parenEval(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return fmt.Sprintf("%d", value)
	})

	return
}
