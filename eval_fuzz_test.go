package calculator_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/calculator"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("2+3*4")
	f.Add("(-5)+3")
	f.Add("sin(pi)!")
	f.Add("2@(")
	f.Fuzz(func(t *testing.T, s string) {
		_, err := calculator.Evaluate(s)
		var ce *calculator.Error
		if err != nil && !errors.As(err, &ce) {
			t.Errorf("%q gave unclassified error %#v", s, err)
		}
	})
}
