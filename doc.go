// Package lvlalg generates randomized algebra exercises and their exact,
// fully simplified solutions, both rendered as LaTeX.
//
// An exercise is a chain of terms joined by operators and folded strictly
// left to right. Two flavours exist:
//
//	numeric    integers and proper fractions; + − · : and powers
//	algebraic  fractions of polynomials in x; + − · and powers
//
// Layout:
//
//	poly/      exact polynomials over Q: arithmetic, GCD, LaTeX, random draws
//	ratfunc/   rational functions in canonical reduced form
//	numeric/   integer and fraction terms for numeric exercises
//	expr/      tagged expression tree; Simplify, Eval and LaTeX
//	compose/   operators, the left fold and the growing formula text
//	exercise/  Generate: parameters, modes, options, notices, records
//	randx/     seeded, derived and contention-safe random sources
//	config/    TOML configuration
//	server/    HTTP page and JSON API (fiber inside a mono module)
//	cmd/lvlalg command line: generate, serve, version
//
// Quick start:
//
//	res := exercise.Generate(exercise.Params{
//		Terms:            4,
//		MaxDegreeOrPower: 3,
//		IncludeIntegers:  true,
//		Mode:             exercise.ModeNumeric,
//	}, exercise.WithSeed(42))
//	fmt.Println(res.Problem, res.Solution)
//
// All arithmetic is exact (math/big); randomness always flows through an
// explicit *rand.Rand so a seed reproduces an exercise bit for bit.
package lvlalg
