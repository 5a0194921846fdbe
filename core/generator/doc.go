// Package generator assembles memorable passwords from randomly chosen
// dictionary words, separators, digits, and symbol padding, following a
// deterministic composition pipeline driven entirely by a validated
// configuration.
//
// A Generator owns one configuration, one dictionary cache, and one random
// cache:
//
//	gen, err := generator.New(
//		generator.WithConfig(config.Default()),
//		generator.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	password, err := gen.Generate(ctx)
//	batch, err := gen.GenerateMany(ctx, 10)
//	stats := gen.Stats()
//
// The pipeline per password: sample words (with replacement), apply the
// case transform, apply character substitutions, resolve the separator and
// padding character, join with digit groups, then apply fixed or adaptive
// symbol padding. A failure at any step aborts the whole password; the
// generator remains usable for subsequent calls.
//
// Generator state (the random cache and the generated counter) is not
// safe for unsynchronized concurrent use; use one instance per logical
// thread of control or add your own locking. Validated configurations and
// built dictionaries are immutable and freely shareable.
package generator
