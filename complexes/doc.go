// Package complexes builds simplicial complexes: parameterised families,
// fixed triangulations of classic spaces, random complexes and complexes
// read from YAML or JSON documents.
//
// Every constructor emits maximal faces in local labels 0..n-1. Build runs
// a list of constructors and shifts each one past the labels of the
// previous, so Build(opts, A, B) is the disjoint union A ⊔ B. A label
// scheme (WithLabelScheme) is applied last.
//
//	faces, err := complexes.Build(nil, complexes.Circle(3), complexes.Circle(3), complexes.Path(3))
//	// two loops plus a dangling path: 9 vertices, H0 = Z^3
//
// Named exposes a small catalog (circle, rp2, klein, torus, wedge, ...)
// used by the command-line tool and by tests.
package complexes
