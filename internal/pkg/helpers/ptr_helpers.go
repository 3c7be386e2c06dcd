package helpers

// StringPtr returns a pointer to the given string. Convenient for filling
// nullable model fields from literals.
func StringPtr(s string) *string {
	return &s
}
