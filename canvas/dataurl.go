package canvas

import (
	"bytes"
	"encoding/base64"
	"image"
	"strings"

	// decoders for Load and DecodeDataURL
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
)

const PNGMime = "image/png"

var ErrNotDataURL = errors.New("not a base64 data url")

// EncodeDataURL returns data:<mime>;base64,<payload>
func EncodeDataURL(mime string, payload []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(payload)
}

// ParseDataURL splits a base64 data URL into its mime type and payload
func ParseDataURL(url string) (mime string, payload []byte, err error) {
	if !strings.HasPrefix(url, "data:") {
		return "", nil, ErrNotDataURL
	}
	comma := strings.IndexByte(url, ',')
	if comma < 0 {
		return "", nil, ErrNotDataURL
	}
	header := url[len("data:"):comma]
	if !strings.HasSuffix(header, ";base64") {
		return "", nil, ErrNotDataURL
	}
	mime = strings.TrimSuffix(header, ";base64")

	payload, err = base64.StdEncoding.DecodeString(url[comma+1:])
	if err != nil {
		return "", nil, errors.Wrap(err, "bad base64 payload")
	}
	return mime, payload, nil
}

// DecodeDataURL decodes the image carried by a data URL
func DecodeDataURL(url string) (image.Image, error) {
	_, payload, err := ParseDataURL(url)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "can't decode image")
	}
	return img, nil
}
