package datamatrix

import "github.com/ericlevine/barcodegen"

func init() {
	barcodegen.RegisterGenerator(barcodegen.SymbologyDataMatrix, func(opts *barcodegen.Options) (barcodegen.Generator, error) {
		cfg, err := ConfigFromOptions(opts)
		if err != nil {
			return nil, err
		}
		return NewGenerator(cfg)
	})
}
