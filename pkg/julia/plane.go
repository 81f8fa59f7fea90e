package julia

// half side of the square [-planeHalf, planeHalf]^2 the canvas covers
const planeHalf = 2.0

// PixelToPlane maps pixel (x, y) of a width x height canvas onto
// [-2, 2] x [-2, 2]. width and height must be positive.
func PixelToPlane(x, y, width, height int) Complex {
	// cast before dividing, never divide integers
	return Complex{
		Re: 2 * planeHalf * (float64(x)/float64(width) - 0.5),
		Im: 2 * planeHalf * (float64(y)/float64(height) - 0.5),
	}
}
