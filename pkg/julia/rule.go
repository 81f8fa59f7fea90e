package julia

import "fmt"

type ruleKind int

const (
	ruleGeneral ruleKind = iota
	ruleTwo
	ruleFive
)

func (k ruleKind) String() string {
	return []string{
		"General", "Two", "Five",
	}[k]
}

// Rule is the update z -> z^degree + c. The closed-form variant is
// picked once in NewRule, not per pixel.
type Rule struct {
	kind   ruleKind
	c      Complex
	degree int
}

// NewRule builds the rule for c. degree must be at least 1.
func NewRule(c Complex, degree int) Rule {
	kind := ruleGeneral
	switch degree {
	case 2:
		kind = ruleTwo
	case 5:
		kind = ruleFive
	}
	return Rule{kind: kind, c: c, degree: degree}
}

// newGeneralRule always takes the repeated multiplication path.
func newGeneralRule(c Complex, degree int) Rule {
	return Rule{kind: ruleGeneral, c: c, degree: degree}
}

func (r Rule) C() Complex {
	return r.c
}

func (r Rule) Degree() int {
	return r.degree
}

func (r Rule) String() string {
	return fmt.Sprintf("{Rule %s degree: %d c: (%g, %g)}", r.kind, r.degree, r.c.Re, r.c.Im)
}

func (r Rule) Apply(z Complex) Complex {
	switch r.kind {
	case ruleTwo:
		return r.two(z)
	case ruleFive:
		return r.five(z)
	default:
		return r.general(z)
	}
}

func (r Rule) general(z Complex) Complex {
	p := z
	for i := 1; i < r.degree; i++ {
		p = p.Mul(z)
	}
	return p.Add(r.c)
}

func (r Rule) two(z Complex) Complex {
	return Complex{
		Re: r.c.Re + z.Re*z.Re - z.Im*z.Im,
		Im: r.c.Im + 2*z.Re*z.Im,
	}
}

// five is (re + i*im)^5 + c expanded binomially, terms grouped by the
// power of i mod 4.
func (r Rule) five(z Complex) Complex {
	re, im := z.Re, z.Im
	re2, im2 := re*re, im*im
	re4, im4 := re2*re2, im2*im2
	return Complex{
		Re: r.c.Re + re4*re - 10*re2*re*im2 + 5*re*im4,
		Im: r.c.Im + im4*im - 10*re2*im2*im + 5*re4*im,
	}
}
