package codec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/aretw0/akinator/pkg/domain"
)

// Version is the binary format version written by Encode.
const Version byte = 1

const (
	tagQuestion byte = 'Q'
	tagLeaf     byte = 'L'
)

var magic = []byte("AKNT")

// Encode writes the tree rooted at root in the binary format.
// Trees that Decode would reject, including content over domain.MaxContentSize
// or nesting beyond domain.MaxDepth, are refused with domain.ErrInvalidTree.
func Encode(w io.Writer, root *domain.Node) error {
	if err := domain.Validate(root); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(magic); err != nil {
		return err
	}
	if err := bw.WriteByte(Version); err != nil {
		return err
	}
	if err := encodeNode(bw, root); err != nil {
		return err
	}
	return bw.Flush()
}

func encodeNode(w *bufio.Writer, n *domain.Node) error {
	tag := tagLeaf
	if !n.IsLeaf() {
		tag = tagQuestion
	}
	if err := w.WriteByte(tag); err != nil {
		return err
	}

	var lenBuf [binary.MaxVarintLen64]byte
	size := binary.PutUvarint(lenBuf[:], uint64(len(n.Content)))
	if _, err := w.Write(lenBuf[:size]); err != nil {
		return err
	}
	if _, err := w.WriteString(n.Content); err != nil {
		return err
	}

	if tag == tagQuestion {
		if err := encodeNode(w, n.Yes); err != nil {
			return err
		}
		return encodeNode(w, n.No)
	}
	return nil
}

// Marshal returns the binary encoding of the tree.
func Marshal(root *domain.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a complete tree in the binary format.
// Any malformed input, including trailing data, yields domain.ErrCorruptTree.
func Decode(r io.Reader) (*domain.Node, error) {
	br := bufio.NewReader(r)

	header := make([]byte, len(magic)+1)
	if _, err := io.ReadFull(br, header); err != nil {
		return nil, corrupt("header", err)
	}
	if !bytes.Equal(header[:len(magic)], magic) {
		return nil, fmt.Errorf("%w: bad magic %q", domain.ErrCorruptTree, header[:len(magic)])
	}
	if v := header[len(magic)]; v != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", domain.ErrCorruptTree, v)
	}

	root, err := decodeNode(br, 0)
	if err != nil {
		return nil, err
	}

	if _, err := br.ReadByte(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after tree", domain.ErrCorruptTree)
	}

	if err := domain.Validate(root); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptTree, err)
	}
	return root, nil
}

// Unmarshal decodes a tree from data.
func Unmarshal(data []byte) (*domain.Node, error) {
	return Decode(bytes.NewReader(data))
}

func decodeNode(r *bufio.Reader, depth int) (*domain.Node, error) {
	if depth > domain.MaxDepth {
		return nil, fmt.Errorf("%w: tree deeper than %d", domain.ErrCorruptTree, domain.MaxDepth)
	}

	tag, err := r.ReadByte()
	if err != nil {
		return nil, corrupt("node tag", err)
	}
	if tag != tagQuestion && tag != tagLeaf {
		return nil, fmt.Errorf("%w: unknown node tag 0x%02x", domain.ErrCorruptTree, tag)
	}

	size, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, corrupt("content length", err)
	}
	if size > uint64(domain.MaxContentSize) {
		return nil, fmt.Errorf("%w: content length %d exceeds %d", domain.ErrCorruptTree, size, domain.MaxContentSize)
	}
	content := make([]byte, size)
	if _, err := io.ReadFull(r, content); err != nil {
		return nil, corrupt("content", err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: content is not valid UTF-8", domain.ErrCorruptTree)
	}

	node := domain.NewNode(string(content))
	if tag == tagLeaf {
		return node, nil
	}

	if node.Yes, err = decodeNode(r, depth+1); err != nil {
		return nil, err
	}
	if node.No, err = decodeNode(r, depth+1); err != nil {
		return nil, err
	}
	return node, nil
}

func corrupt(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated %s", domain.ErrCorruptTree, what)
	}
	return fmt.Errorf("%w: reading %s: %v", domain.ErrCorruptTree, what, err)
}
