package entropy

// Integer luma weights approximating the perceptual coefficients
// (0.299, 0.587, 0.114) in 8-bit fixed point. The weights sum to 256,
// so a right shift by lumaShift maps the weighted sum back to 0-255.
const (
	lumaRed   = 76
	lumaGreen = 150
	lumaBlue  = 30
	lumaShift = 8
)

// luma8 quantizes an RGB triple to an 8-bit luminance value.
// Bucket assignment is bit-identical across platforms since only
// integer arithmetic is involved.
func luma8(r, g, b uint8) uint8 {
	return uint8((uint32(r)*lumaRed + uint32(g)*lumaGreen + uint32(b)*lumaBlue) >> lumaShift)
}
