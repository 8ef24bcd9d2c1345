// Package onnx runs the classifier from an ONNX graph via ONNX Runtime.
// The graph must take a single [batch, n_features] float input and expose a
// plain [batch, n_classes] probability tensor (sklearn exporters: disable
// zipmap so probabilities come out as a tensor, not a map sequence).
package onnx

import (
	"fmt"
	"path/filepath"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/sympcheck/sympcheck/pkg/models"
)

// ortEnv manages global ONNX Runtime initialization (process-wide singleton).
var ortEnv struct {
	once sync.Once
	err  error
}

// initORT initializes the ONNX Runtime environment. Safe to call multiple
// times; only the first call has any effect.
func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		ort.SetSharedLibraryPath(libPath)
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// Session wraps an ONNX Runtime session for the disease classifier.
type Session struct {
	mu         sync.Mutex // Run is not safe for concurrent use on one session
	session    *ort.DynamicAdvancedSession
	inputName  string
	outputName string
	nFeatures  int
	nClasses   int
}

// Load opens the ONNX model and creates an inference session. The runtime
// shared library is expected alongside the model file.
func Load(modelPath string) (*Session, error) {
	libPath := filepath.Join(filepath.Dir(modelPath), "libonnxruntime.so")
	if err := initORT(libPath); err != nil {
		return nil, fmt.Errorf("onnx: failed to initialize runtime: %w", err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to read model info: %w", err)
	}
	if len(inputs) != 1 {
		return nil, fmt.Errorf("onnx: expected a single model input, got %d", len(inputs))
	}
	inDims := inputs[0].Dimensions
	if len(inDims) != 2 {
		return nil, fmt.Errorf("onnx: expected 2D input tensor, got %v", inDims)
	}
	nFeatures := int(inDims[1])
	if nFeatures <= 0 {
		return nil, fmt.Errorf("onnx: model input has no fixed feature dimension: %v", inDims)
	}

	probName, nClasses, err := findProbabilityOutput(outputs)
	if err != nil {
		return nil, err
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session options: %w", err)
	}
	defer opts.Destroy()
	opts.SetIntraOpNumThreads(1)
	opts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{inputs[0].Name},
		[]string{probName},
		opts,
	)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session: %w", err)
	}

	return &Session{
		session:    session,
		inputName:  inputs[0].Name,
		outputName: probName,
		nFeatures:  nFeatures,
		nClasses:   nClasses,
	}, nil
}

// findProbabilityOutput picks the 2D float output carrying class
// probabilities. sklearn exports both "label" (1D) and "probabilities" (2D);
// the 2D one is what we need.
func findProbabilityOutput(outputs []ort.InputOutputInfo) (string, int, error) {
	for _, out := range outputs {
		dims := out.Dimensions
		if len(dims) == 2 && dims[1] > 0 {
			return out.Name, int(dims[1]), nil
		}
	}
	return "", 0, fmt.Errorf("onnx: model has no 2D probability output")
}

// Probabilities runs the graph on one encoded feature vector.
func (s *Session) Probabilities(features []float64) ([]float64, error) {
	if len(features) != s.nFeatures {
		return nil, fmt.Errorf("onnx: got %d features, model expects %d", len(features), s.nFeatures)
	}

	input := make([]float32, len(features))
	for i, v := range features {
		input[i] = float32(v)
	}

	tIn, err := ort.NewTensor(ort.NewShape(1, int64(s.nFeatures)), input)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create input tensor: %w", err)
	}
	defer tIn.Destroy()

	tOut, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(s.nClasses)))
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create output tensor: %w", err)
	}
	defer tOut.Destroy()

	s.mu.Lock()
	err = s.session.Run([]ort.Value{tIn}, []ort.Value{tOut})
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("onnx: inference failed: %w", err)
	}

	src := tOut.GetData()
	probs := make([]float64, s.nClasses)
	for i := range probs {
		probs[i] = float64(src[i])
	}
	return probs, nil
}

func (s *Session) NumClasses() int { return s.nClasses }

func (s *Session) Name() string { return "onnx" }

// Close releases the session resources.
func (s *Session) Close() error {
	return s.session.Destroy()
}

var _ models.Classifier = (*Session)(nil)
