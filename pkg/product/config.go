package product

const (
	DefaultInputPath  = "input.txt"
	DefaultOutputPath = "output.txt"

	FactorBegin  = 0
	FactorEnd    = 100
	ProductBegin = 0
	ProductEnd   = 1000000
)

// Range is a closed interval [Begin, End].
type Range struct {
	Begin int
	End   int
}

func (r Range) Contains(v int) bool {
	return r.Begin <= v && v <= r.End
}

// Check returns an *OutOfRangeError when v is outside r.
func (r Range) Check(v int) error {
	if !r.Contains(v) {
		return &OutOfRangeError{Value: v, Begin: r.Begin, End: r.End}
	}
	return nil
}

// Ranges holds the intervals the predicate validates against.
type Ranges struct {
	Factor  Range
	Product Range
}

func DefaultRanges() Ranges {
	return Ranges{
		Factor:  Range{Begin: FactorBegin, End: FactorEnd},
		Product: Range{Begin: ProductBegin, End: ProductEnd},
	}
}

type Config struct {
	InputPath  string
	OutputPath string
	Ranges     Ranges
}

func DefaultConfig() Config {
	return Config{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
		Ranges:     DefaultRanges(),
	}
}
