package julia

// Complex is an immutable point on the complex plane.
// Every operation returns a fresh value.
type Complex struct {
	Re float64
	Im float64
}

func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// SqMag is |z|^2, compared against squared thresholds so the
// hot path never takes a square root.
func (z Complex) SqMag() float64 {
	return z.Re*z.Re + z.Im*z.Im
}
