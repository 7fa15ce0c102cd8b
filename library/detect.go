package library

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/h2non/filetype/types"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
)

// Enough for every signature filetype knows about.
const sniffLength = 262

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
)

func detectUTF(buf []byte) srcEncoding {
	switch {
	case bytes.HasPrefix(buf, []byte{0xEF, 0xBB, 0xBF}):
		return encUTF8
	case bytes.HasPrefix(buf, []byte{0xFE, 0xFF}):
		return encUTF16BigEndian
	case bytes.HasPrefix(buf, []byte{0xFF, 0xFE}):
		return encUTF16LittleEndian
	}
	return encUnknown
}

func head(r io.Reader) ([]byte, error) {
	buf := make([]byte, sniffLength)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}

// isArchiveFile checks file signature, extension is not consulted.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf, err := head(f)
	if err != nil {
		return false, err
	}
	return filetype.IsType(buf, matchers.TypeZip), nil
}

// binaryKind returns recognized binary file type for data which must not be
// treated as story text (images, archives, audio dropped into content
// directory with wrong extension).
func binaryKind(data []byte) (types.Type, bool) {
	if detectUTF(data) != encUnknown {
		return types.Unknown, false
	}
	buf := data[:min(len(data), sniffLength)]
	kind, err := filetype.Match(buf)
	if err != nil || kind == types.Unknown {
		return types.Unknown, false
	}
	return kind, true
}

// decode converts story file content to UTF-8 string. BOM is stripped, files
// without BOM which are not valid UTF-8 are decoded with detected charset.
func decode(data []byte) (string, error) {
	var enc srcEncoding
	switch enc = detectUTF(data); enc {
	case encUTF8:
		data = data[3:]
	case encUTF16BigEndian, encUTF16LittleEndian:
		endian := unicode.LittleEndian
		if enc == encUTF16BigEndian {
			endian = unicode.BigEndian
		}
		out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("unable to decode UTF-16 text: %w", err)
		}
		return string(out), nil
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	e, name, _ := charset.DetermineEncoding(data, "text/plain")
	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("unable to decode text as %s: %w", name, err)
	}
	return string(out), nil
}
