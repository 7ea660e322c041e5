package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. This is used to remove passwords from memory after the login
// or register flow is done with them.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
