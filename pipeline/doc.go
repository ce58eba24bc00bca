// Package pipeline turns raw form text into a net-area estimate or a
// human-readable rejection.
//
// 🚀 What does it do?
//
//	Every cycle starts from the raw strings of an Input and runs an ordered,
//	short-circuiting list of checks. The first failing check produces a
//	*Rejection whose Message is fixed, user-facing text:
//
//	  1  method present               Integration type not specified
//	  2  Riemann ⇒ endpoint present   Riemann Sum direction not specified
//	  3  lower parses                 Lower bound must be a valid double
//	  4  upper parses                 Upper bound must be a valid double
//	  5  points parses (int32)        Number of points must be a valid integer
//	  6  lower < upper                Lower bound must be strictly less than upper bound
//	  7  bounds within ±limit         Bounds must be in between [-1000 to 1000]
//	  8  1 ≤ points ≤ max             Number of points must be between 1 and 100,000
//	  9  equation not blank           No equation selected
//	 10  no tan / cot                 Tangent and cotangent functions are not supported
//	 11  no division                  Rational functions aren't supported
//	 12  equation parses              Invalid function
//	 13  evaluates on the 1e-3 grid   Invalid function
//	 14  finite on the 1e-3 grid      Function is not continuous on the interval
//
//	When all checks pass the selected integrator runs (riemann.Sum or the
//	extrema → montecarlo flow) and the result is formatted the way a JVM
//	prints a double ("21.333...", "1.0E-5").
//
// ✨ Surfaces:
//
//   - Run(ctx, Input) Result: exactly one of ErrorMessage / NetAreaText set.
//   - Validate(ctx, Input) (float64, error): typed errors; match the kind
//     with errors.Is(err, ErrInputRange) etc.
//   - Last() (Snapshot, bool): the last accepted request with its
//     rendering geometry. Any rejection clears it.
//
// ⚙️ Restriction modes:
//
//	Lexical (default) bans "tan", "cot" and "/" by substring before parsing,
//	so "atan" is also refused. Semantic parses first and bans calls to tan
//	and cot and any '/' or '%' node; the same messages are reported after
//	check 12 instead.
//
// Cycles are synchronous. The Monte Carlo RNG is re-seeded from the
// configured seed each cycle, so identical input yields an identical Result.
package pipeline
