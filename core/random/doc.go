// Package random supplies the randomness layer of the composition engine:
// the Source contract, a batching Cache, and three interchangeable
// providers.
//
// A Source produces batches of floats in [0,1). The Cache buffers drawn
// values and refills in configurable batch sizes, so expensive providers
// are consulted once per batch rather than once per draw:
//
//	source := random.NewLocalSource()
//	cache, err := random.NewCache(source, 32)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	v, err := cache.Next(ctx)          // float in [0,1)
//	i, err := cache.NextInt(ctx, 10)   // int in [0,10)
//
// Providers:
//
//   - LocalSource: math/rand/v2 PRNG, cheap and synchronous. Seedable for
//     reproducibility.
//   - DeviceSource: reads the OS entropy device via crypto/rand and
//     normalizes raw bytes.
//   - RemoteSource: fetches integer batches from an HTTP service; the only
//     nondeterministic-latency path, and the reason batched refills exist.
//
// Every batch is validated before use: a provider returning the wrong
// count, or any value outside [0,1), fails the draw hard. The Cache holds
// mutable state and is not safe for unsynchronized concurrent use.
package random
