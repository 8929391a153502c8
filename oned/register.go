package oned

import "github.com/ericlevine/barcodegen"

func init() {
	upcean := func(variant UPCEANVariant) barcodegen.GeneratorFactory {
		return func(opts *barcodegen.Options) (barcodegen.Generator, error) {
			cfg, err := UPCEANConfigFromOptions(opts)
			if err != nil {
				return nil, err
			}
			return NewUPCEANGenerator(variant, cfg)
		}
	}
	barcodegen.RegisterGenerator(barcodegen.SymbologyUPCA, upcean(UPCA))
	barcodegen.RegisterGenerator(barcodegen.SymbologyEAN13, upcean(EAN13))
	barcodegen.RegisterGenerator(barcodegen.SymbologyEAN8, upcean(EAN8))

	barcodegen.RegisterGenerator(barcodegen.SymbologyCode128, func(opts *barcodegen.Options) (barcodegen.Generator, error) {
		cfg, err := Code128ConfigFromOptions(opts)
		if err != nil {
			return nil, err
		}
		return NewCode128Generator(cfg)
	})
	barcodegen.RegisterGenerator(barcodegen.SymbologyInterleaved2Of5, func(opts *barcodegen.Options) (barcodegen.Generator, error) {
		cfg, err := Interleaved2Of5ConfigFromOptions(opts)
		if err != nil {
			return nil, err
		}
		return NewInterleaved2Of5Generator(cfg)
	})
	barcodegen.RegisterGenerator(barcodegen.SymbologyITF14, func(opts *barcodegen.Options) (barcodegen.Generator, error) {
		cfg, err := ITF14ConfigFromOptions(opts)
		if err != nil {
			return nil, err
		}
		return NewITF14Generator(cfg)
	})
}
