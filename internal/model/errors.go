// Package model loads the pre-trained classification artifacts (classifier,
// label encoder export, feature-column list) and selects the inference
// backend. Artifacts are produced offline; this package only reads them.
package model

import "errors"

var (
	ErrMalformedArtifact = errors.New("model: malformed artifact")
	ErrFeatureMismatch   = errors.New("model: feature vector length does not match trained columns")
)
