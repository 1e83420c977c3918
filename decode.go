package yad

// Decode parses a Container from its wire form, per §4.7. The returned
// Container owns all of its strings, arrays, and rows; no interior pointers
// into data are retained after Decode returns.
func Decode(data []byte) (*Container, error) {
	return decodeContainer(data)
}
