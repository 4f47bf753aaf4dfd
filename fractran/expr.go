package fractran

import (
	"math"
	"math/big"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const powExponentLimit = 1024

// pow(base, exp) is not a starlark builtin, but prime power encodings
// are how FRACTRAN inputs are written.
func starlarkPow(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var base, exp starlark.Int
	err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &base, &exp)
	if err != nil {
		return nil, err
	}

	e, ok := exp.Int64()
	if !ok || e < 0 || e > powExponentLimit {
		return nil, ErrStateExpression(exp.String())
	}

	return starlark.MakeBigInt(new(big.Int).Exp(base.BigInt(), big.NewInt(e), nil)), nil
}

// EvalState evaluates a starlark integer expression, such as
// "pow(2, 3) * pow(3, 5)", for use as an initial state.
func EvalState(expr string) (state int64, err error) {
	thread := starlark.Thread{Name: "state"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"pow": starlark.NewBuiltin("pow", starlarkPow),
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "state", prog, pred)
	if err != nil {
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrStateExpression(expr)
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok || st_int64 == math.MinInt64 {
		err = ErrStateExpression(expr)
		return
	}

	state = st_int64
	return
}
