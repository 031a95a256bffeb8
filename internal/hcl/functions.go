package hcl

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// lookupEnvFunc is replaced in tests.
type lookupEnvFunc func(key string) (string, bool)

// newEnvFunction builds env(name[, default]). It returns the variable's value,
// the default when the variable is unset, or an empty string.
func newEnvFunction(lookup lookupEnvFunc) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		VarParam: &function.Parameter{Name: "default", Type: cty.String},
		Type:     function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			if v, ok := lookup(args[0].AsString()); ok {
				return cty.StringVal(v), nil
			}
			if len(args) > 1 {
				return args[1], nil
			}
			return cty.StringVal(""), nil
		},
	})
}

// newEvalContext is the context every settings attribute is evaluated in.
func newEvalContext(lookup lookupEnvFunc) *hcl.EvalContext {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": newEnvFunction(lookup),
		},
	}
}
