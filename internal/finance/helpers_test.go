package finance

// closeTo reports whether two evaluation results agree within the package
// tolerances.
func closeTo(got, want float64) bool {
	return FloatClose(got, want, RTol, ATol)
}
