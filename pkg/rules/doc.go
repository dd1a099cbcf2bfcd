// Package rules validates objects with boolean expressions compiled by
// github.com/expr-lang/expr.
//
//	f := immutable.NewFactory(immutable.WithValidator(rules.Validator))
//	order, err := f.Define("Order", map[string]string{
//	    "positive": "total > 0",
//	    "currency": `currency in ["EUR", "USD"]`,
//	})
//
// The object's fields are the expression variables. Every false rule is
// reported as a validator.ValidationError on the field Order.<rule>.
package rules
