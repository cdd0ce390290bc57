package project

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/golang/snappy"

	"github.com/dd0wney/cluso-animator/pkg/keyframe"
)

const (
	magic         = "ANM1"
	formatVersion = 1
	headerSize    = len(magic) + 1 + 4
)

// Marshal encodes p into the project file format.
func Marshal(p *Project) ([]byte, error) {
	doc, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal project: %w", err)
	}
	payload := snappy.Encode(nil, doc)

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(payload)))
	buf.WriteString(magic)
	buf.WriteByte(formatVersion)
	if err := binary.Write(buf, binary.BigEndian, crc32.ChecksumIEEE(payload)); err != nil {
		return nil, err
	}
	buf.Write(payload)
	return buf.Bytes(), nil
}

// Unmarshal decodes a project file image.
func Unmarshal(data []byte) (*Project, error) {
	if len(data) < headerSize || string(data[:len(magic)]) != magic {
		return nil, ErrBadMagic
	}
	if v := data[len(magic)]; v != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, v)
	}
	checksum := binary.BigEndian.Uint32(data[len(magic)+1 : headerSize])
	payload := data[headerSize:]

	if crc32.ChecksumIEEE(payload) != checksum {
		return nil, ErrChecksum
	}

	doc, err := snappy.Decode(nil, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress project: %w", err)
	}

	p := &Project{}
	if err := json.Unmarshal(doc, p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project: %w", err)
	}
	if p.Sequence == nil {
		p.Sequence = keyframe.NewSequence()
	}
	return p, nil
}

// Encode writes p to w and returns the number of bytes written.
func Encode(w io.Writer, p *Project) (int, error) {
	data, err := Marshal(p)
	if err != nil {
		return 0, &Error{Op: "encode", Cause: err}
	}
	n, err := w.Write(data)
	if err != nil {
		return n, &Error{Op: "encode", Cause: err}
	}
	return n, nil
}

// Decode reads a whole project from r.
func Decode(r io.Reader) (*Project, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &Error{Op: "decode", Cause: err}
	}
	p, err := Unmarshal(data)
	if err != nil {
		return nil, &Error{Op: "decode", Cause: err}
	}
	return p, nil
}
