package process

import (
	"encoding/json"
)

// MatrixSize is the side of the square grid the service returns
const MatrixSize = 28

// Request is the body of POST /process_image
type Request struct {
	Image string `json:"image"`
}

// Matrix is the down-sampled image, one gray value per cell, row major.
// The service sends floats.
type Matrix [][]float64

// Response is a successful processing result
type Response struct {
	Matrix     Matrix   `json:"matrix"`
	Prediction string   `json:"prediction,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// UnmarshalJSON tells an absent confidence (nil) from an explicit null,
// which counts as zero.
func (r *Response) UnmarshalJSON(data []byte) error {
	type response Response
	var raw struct {
		response
		Confidence json.RawMessage `json:"confidence"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Response(raw.response)
	r.Confidence = nil
	if raw.Confidence == nil {
		return nil
	}
	var confidence float64
	if string(raw.Confidence) != "null" {
		if err := json.Unmarshal(raw.Confidence, &confidence); err != nil {
			return err
		}
	}
	r.Confidence = &confidence
	return nil
}

type errorBody struct {
	Error string `json:"error"`
}

// Validate checks the matrix is MatrixSize x MatrixSize
func (m Matrix) Validate() error {
	if m == nil {
		return ErrNoMatrix
	}
	if len(m) != MatrixSize {
		return ErrBadMatrix
	}
	for _, row := range m {
		if len(row) != MatrixSize {
			return ErrBadMatrix
		}
	}
	return nil
}
