package calculator

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds general data for parsing.
type parsectx struct {
	// assoc indicates that right-associative operators yield only to
	// operators of strictly higher precedence.
	assoc bool
}

type assocopt bool

// HonorAssociativity makes the parser respect each operator's declared
// associativity. By default, every operator groups to the left, so "2^3^2"
// is (2^3)^2 = 64. With this option, it is 2^(3^2) = 512, and prefix
// functions may be stacked without parentheses, as in "sin cos 0".
func HonorAssociativity() ParseOption {
	return assocopt(true)
}

func (o assocopt) parseOption(p parsectx) parsectx {
	p.assoc = bool(o)
	return p
}

// yields returns whether an operator top already on the operator stack must be
// output before pushing the arriving operator op.
func (p *parsectx) yields(top, op Op) bool {
	t, o := &optab[top], &optab[op]
	if p.assoc && o.Assoc == Right {
		return t.Prec > o.Prec
	}
	return t.Prec >= o.Prec
}
