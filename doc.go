// Package affinity computes pairwise affinity matrices from 2-D point
// sets: given N points, the N×N result holds exp(-0.25 * d(i,j)) at
// entry (i,j), where d is the Euclidean distance between point i and
// point j.
//
// The same computation is implemented three ways, from a trivially
// correct nested-loop oracle to a fully vectorized broadcast form:
//
//	p, _ := affinity.SampleNormal(1024, nil)
//
//	m, _ := affinity.Scalar(p)    // doubly nested reference loop
//	m, _ = affinity.Rows(p)       // one bulk row computation per point
//	m, _ = affinity.Broadcast(p)  // no loops, five bulk passes
//
// All three variants route every element through the identical float32
// arithmetic sequence, so their results are bit-identical on the same
// device. Variants can also be invoked on an explicit Device to choose
// between serial execution and the parallel worker grid:
//
//	dev := affinity.NewDevice(affinity.BackendSerial, 0)
//	m, _ := dev.Broadcast(p)
//
// The package also carries the measurement surface used to compare the
// variants: a normal sampler, a timing harness, and summary statistics
// with auto-scaled units.
package affinity
