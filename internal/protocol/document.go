package protocol

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/zeebo/blake3"

	"stackmeter/internal/domain"
)

// Block is the encoded text of one domain.
type Block struct {
	Domain domain.ID
	Text   string
}

// digestLen is the number of hex characters of the block digest.
const digestLen = 16

// blockDomainKey separates block digests from any other BLAKE3 use. ASCII,
// zero padded to 32 bytes.
var blockDomainKey = [32]byte{
	's', 't', 'a', 'c', 'k', 'm', 'e', 't', 'e', 'r', '.', 'b', 'l', 'o', 'c', 'k',
}

// Digest returns the truncated keyed BLAKE3 digest of text, in hex.
func Digest(text string) string {
	h, err := blake3.NewKeyed(blockDomainKey[:])
	if err != nil {
		panic("protocol: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	_, _ = h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))[:digestLen]
}

// Marshal writes blocks in the tagged form. blocks must hold exactly one
// block per domain, in document order.
func Marshal(blocks []Block) ([]byte, error) {
	if len(blocks) != domain.Count {
		return nil, fmt.Errorf("%w: got %d blocks", ErrBlockOrder, len(blocks))
	}
	var buf bytes.Buffer
	for i, b := range blocks {
		if b.Domain != domain.ID(i) {
			return nil, fmt.Errorf("%w: block %d is %s", ErrBlockOrder, i, b.Domain)
		}
		fmt.Fprintf(&buf, "%s %d %s\n", b.Domain.Heading(), len(b.Text), Digest(b.Text))
		buf.WriteString(b.Text)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Unmarshal splits a document into one block per domain. Both the tagged and
// the untagged form are accepted. Any framing problem yields a
// *StructuralError and no blocks.
func Unmarshal(doc []byte) ([]Block, error) {
	text := strings.TrimPrefix(string(doc), "\ufeff")
	lead := strings.TrimLeft(text, " \t\r\n")
	home := domain.Home.Heading()

	if first, _, _ := strings.Cut(lead, "\n"); isTagLine(first) {
		return unmarshalTagged(lead)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lead = strings.TrimLeft(text, " \t\n")
	if line, rest, _ := strings.Cut(lead, "\n"); strings.TrimSpace(line) == home {
		return unmarshalUntagged(rest)
	}
	return unmarshalUntagged(text)
}

func unmarshalTagged(text string) ([]Block, error) {
	blocks := make([]Block, 0, domain.Count)
	rest := text
	for _, id := range domain.All() {
		line, after, ok := strings.Cut(rest, "\n")
		if !ok {
			return nil, structural(id, ErrMissingHeading)
		}
		n, digest, err := parseTag(id, line)
		if err != nil {
			return nil, err
		}
		if n > len(after) {
			return nil, structural(id, fmt.Errorf("%w: want %d bytes, have %d", ErrLengthMismatch, n, len(after)))
		}
		body := after[:n]
		after = after[n:]
		if after != "" && after[0] != '\n' {
			return nil, structural(id, fmt.Errorf("%w: block not followed by newline", ErrLengthMismatch))
		}
		if Digest(body) != digest {
			return nil, structural(id, ErrDigestMismatch)
		}
		blocks = append(blocks, Block{Domain: id, Text: body})
		rest = strings.TrimPrefix(after, "\n")
	}
	if strings.TrimSpace(rest) != "" {
		return nil, structural(domain.Aspiration, ErrTrailingData)
	}
	return blocks, nil
}

// isTagLine reports whether line is a complete home heading tag. A bare home
// heading, even with trailing space, starts an untagged document.
func isTagLine(line string) bool {
	_, _, err := parseTag(domain.Home, line)
	return err == nil
}

func parseTag(id domain.ID, line string) (int, string, error) {
	heading := id.Heading()
	tag, ok := strings.CutPrefix(line, heading+" ")
	if !ok {
		if strings.TrimSpace(line) == heading {
			return 0, "", structural(id, fmt.Errorf("%w: missing length and digest", ErrBadTag))
		}
		return 0, "", structural(id, ErrMissingHeading)
	}
	fields := strings.Fields(tag)
	if len(fields) != 2 {
		return 0, "", structural(id, fmt.Errorf("%w: %q", ErrBadTag, tag))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0, "", structural(id, fmt.Errorf("%w: length %q", ErrBadTag, fields[0]))
	}
	if len(fields[1]) != digestLen {
		return 0, "", structural(id, fmt.Errorf("%w: digest %q", ErrBadTag, fields[1]))
	}
	return n, strings.ToLower(fields[1]), nil
}

// unmarshalUntagged splits on the bare heading literals of every domain after
// Home. Block k ends where heading k+1 starts; the last block runs to the end
// of the text. Blocks are trimmed of surrounding whitespace.
func unmarshalUntagged(text string) ([]Block, error) {
	ids := domain.All()
	for _, id := range ids[1:] {
		switch strings.Count(text, id.Heading()) {
		case 0:
			return nil, structural(id, ErrMissingHeading)
		case 1:
		default:
			return nil, structural(id, ErrDuplicateHeading)
		}
	}

	blocks := make([]Block, 0, domain.Count)
	rest := text
	for i, id := range ids[:len(ids)-1] {
		next := ids[i+1]
		before, after, found := strings.Cut(rest, next.Heading())
		if !found {
			// Present exactly once, so it must sit before the previous heading.
			return nil, structural(next, fmt.Errorf("%w: out of order", ErrMissingHeading))
		}
		blocks = append(blocks, Block{Domain: id, Text: strings.TrimSpace(before)})
		rest = after
	}
	blocks = append(blocks, Block{Domain: ids[len(ids)-1], Text: strings.TrimSpace(rest)})
	return blocks, nil
}
