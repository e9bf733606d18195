package mimeb64

// EncodeKernel returns the name of the implementation being used for encode operations
func EncodeKernel() string {
	if useUnrolledEncode {
		return "unrolled"
	}
	return "generic"
}
