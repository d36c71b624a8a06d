// SPDX-License-Identifier: MIT
// Package: gwalk/ideals
//
// doc.go - package overview and usage contract.
//
// Package ideals is a catalog of classic benchmark ideals, sized by the
// ring they are instantiated in. The constructors only assemble
// generators; computing bases is the job of groebner and walk.
//
// Design contract (strict):
//   - Constructors take a *ring.Ring and derive every size from r.N();
//     no hidden dimension parameters.
//   - Generators come back in a fixed, documented order, never marked as
//     a Gröbner basis.
//   - Validate early, return sentinel errors, never panic.
//   - Determinism: the same ring yields byte-identical generators.
//
// Catalog:
//   - Cyclic  — the cyclic-n root system, the standard conversion
//     stress test.
//   - Katsura — the Katsura-n magnetization equations, linear plus
//     quadratic convolutions.
//
// AI-Hints (practical):
//   - Pair a catalog ideal with walk.ConvertNamed to benchmark
//     strategies on well-studied inputs.
//   - Cyclic grows doubly exponentially in n; keep n small in tests.
package ideals
