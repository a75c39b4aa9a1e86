package sketch

import (
	"io/ioutil"

	"github.com/pkg/errors"
)

// ReadFile loads a sketch file
func ReadFile(path string) (*Sketch, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't read %s", path)
	}
	var s Sketch
	if err := s.UnmarshalBinary(data); err != nil {
		return nil, errors.Wrapf(err, "can't decode %s", path)
	}
	return &s, nil
}

// WriteFile stores s at path
func WriteFile(path string, s *Sketch) error {
	data, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "can't write %s", path)
	}
	return nil
}
