package simon

// Package simon implements the classical post-processing for the Simon
// hidden-subgroup family: it turns measurement outcomes into linear
// constraints over GF(p), reduces the augmented system [M^T | I] and reads
// the hidden string out of the null space, for the binary problem, the
// ternary generalization and the two-secret variant.
//
// Measurement production is out of scope here; the package consumes plain
// digit strings with multiplicities and never depends on how they were
// obtained.
