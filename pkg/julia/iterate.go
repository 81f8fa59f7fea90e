package julia

// CountIterations returns how many times r was applied to z0 before
// |z|^2 exceeded escapeSq, or maxIts if it never did. The result is
// always in [0, maxIts] (0 when maxIts <= 0).
func CountIterations(maxIts int, escapeSq float64, z0 Complex, r Rule) int {
	z := z0
	it := 0
	// dispatch once, then run a tight loop per variant
	switch r.kind {
	case ruleFive:
		for ; z.SqMag() <= escapeSq && it < maxIts; it++ {
			z = r.five(z)
		}
	case ruleTwo:
		for ; z.SqMag() <= escapeSq && it < maxIts; it++ {
			z = r.two(z)
		}
	default:
		for ; z.SqMag() <= escapeSq && it < maxIts; it++ {
			z = r.general(z)
		}
	}
	return it
}
