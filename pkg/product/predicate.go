package product

// Verdict is the text written to the output file.
type Verdict string

const (
	Yes Verdict = "YES"
	No  Verdict = "NO"
)

func VerdictOf(isProduct bool) Verdict {
	if isProduct {
		return Yes
	}
	return No
}

// IsProduct reports whether a*b == product using the default ranges.
func IsProduct(a, b, product int) (bool, error) {
	return DefaultRanges().IsProduct(a, b, product)
}

// IsProduct checks a, b and product in that order and fails on the first
// value outside its range.
func (r Ranges) IsProduct(a, b, product int) (bool, error) {
	if err := r.Factor.Check(a); err != nil {
		return false, err
	}
	if err := r.Factor.Check(b); err != nil {
		return false, err
	}
	if err := r.Product.Check(product); err != nil {
		return false, err
	}
	return a*b == product, nil
}
