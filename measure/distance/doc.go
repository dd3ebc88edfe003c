// Package distance computes pairwise dissimilarity and similarity matrices
// of spike trains from summed kernel distances.
//
// [VanRossum] implements the distance of
//
//	van Rossum, M. C. W. (2001). A novel spike distance. Neural Computation,
//	13(4), 751-763.
//
// using the O(N²·n) Laplacian algorithm of package kernel. [SchreiberSimilarity]
// is the normalized correlation of kernel-smoothed trains of
//
//	Schreiber, S., Fellous, J. M., Whitmer, D., Tiesinga, P., & Sejnowski, T. J.
//	(2003). A new correlation-based measure of spike timing reliability.
//	Neurocomputing, 52-54, 925-931.
package distance
