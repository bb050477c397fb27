// SPDX-License-Identifier: MIT

package simplex

const methodValidate = "Validate"

// Validate checks every face before closure begins and returns the first
// violation, in input order. Within one face the checks run in a fixed
// priority: empty → negative label → duplicate label.
//
// Complexity: O(Σ|f|) time, O(max |f|) extra space.
func Validate(faces []Face) error {
	for i, f := range faces {
		if err := validateFace(f); err != nil {
			return faceErrorf(methodValidate, i, f, err)
		}
	}

	return nil
}

// validateFace returns the sentinel for the first problem in f, or nil.
func validateFace(f Face) error {
	if len(f) == 0 {
		return ErrEmptyFace
	}
	seen := make(map[int]struct{}, len(f))
	for _, v := range f {
		if v < 0 {
			return ErrNegativeVertex
		}
		if _, dup := seen[v]; dup {
			return ErrDuplicateVertex
		}
		seen[v] = struct{}{}
	}

	return nil
}
