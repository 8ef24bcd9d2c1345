package models

// Classifier is the interface every model backend must implement.
// Never call a specific backend directly — always inject this interface.
//
// Probabilities runs the pre-trained multi-class model on a single encoded
// feature vector and returns one probability per disease class, in the
// class order fixed at training time. The returned slice sums to 1 (up to
// floating-point error). Implementations must be safe for concurrent use:
// all request handling shares one classifier instance.
type Classifier interface {
	Probabilities(features []float64) ([]float64, error)
	// NumClasses returns the size of the class space the model was trained on.
	NumClasses() int
	// Name returns the backend identifier (e.g. "forest", "onnx").
	Name() string
}
