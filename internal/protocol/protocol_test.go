package protocol_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"stackmeter/internal/domain"
	"stackmeter/internal/protocol"
)

func sampleBlocks() []protocol.Block {
	blocks := make([]protocol.Block, 0, domain.Count)
	for _, id := range domain.All() {
		blocks = append(blocks, protocol.Block{Domain: id, Text: fmt.Sprintf("col_a,col_b\n%s,1\n", id.Name())})
	}
	blocks[domain.Flows].Text = ""
	return blocks
}

func TestRoundTrip_Tagged(t *testing.T) {
	in := sampleBlocks()
	doc, err := protocol.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, id := range domain.All() {
		if strings.Count(string(doc), id.Heading()) != 1 {
			t.Fatalf("heading %q not present exactly once", id.Heading())
		}
	}
	out, err := protocol.Unmarshal(doc)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d blocks", len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("block %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestTagged_HeadingInsideContent(t *testing.T) {
	in := sampleBlocks()
	in[domain.Home].Text = "notes\n" + domain.Flows.Heading() + "\n" + domain.Dust.Heading() + " 3 0000000000000000\n"
	doc, err := protocol.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := protocol.Unmarshal(doc)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out[domain.Home].Text != in[domain.Home].Text || out[domain.Flows].Text != "" {
		t.Fatalf("content leaked across blocks: %+v", out)
	}
}

func TestTagged_DigestMismatch(t *testing.T) {
	doc, err := protocol.Marshal(sampleBlocks())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	tampered := bytes.Replace(doc, []byte("dust,1"), []byte("dusk,1"), 1)
	_, err = protocol.Unmarshal(tampered)
	var serr *protocol.StructuralError
	if !errors.As(err, &serr) || serr.Expected != domain.Dust || !errors.Is(err, protocol.ErrDigestMismatch) {
		t.Fatalf("expected digest mismatch on dust, got %v", err)
	}
}

func TestTagged_Truncated(t *testing.T) {
	doc, err := protocol.Marshal(sampleBlocks())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	cut := doc[:bytes.Index(doc, []byte(domain.GasAnalyzer.Heading()))+5]
	_, err = protocol.Unmarshal(cut)
	var serr *protocol.StructuralError
	if !errors.As(err, &serr) || serr.Expected != domain.GasAnalyzer {
		t.Fatalf("expected structural error at gas analyzer, got %v", err)
	}
}

func TestTagged_TrailingData(t *testing.T) {
	doc, err := protocol.Marshal(sampleBlocks())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	_, err = protocol.Unmarshal(append(doc, []byte("junk\n")...))
	if !errors.Is(err, protocol.ErrTrailingData) {
		t.Fatalf("expected ErrTrailingData, got %v", err)
	}
	if _, err := protocol.Unmarshal(append(doc, []byte("\n\n")...)); err != nil {
		t.Fatalf("trailing whitespace should be accepted: %v", err)
	}
}

func TestMarshal_RequiresEveryDomainInOrder(t *testing.T) {
	blocks := sampleBlocks()
	if _, err := protocol.Marshal(blocks[:3]); !errors.Is(err, protocol.ErrBlockOrder) {
		t.Fatalf("expected ErrBlockOrder, got %v", err)
	}
	blocks[1], blocks[2] = blocks[2], blocks[1]
	if _, err := protocol.Marshal(blocks); !errors.Is(err, protocol.ErrBlockOrder) {
		t.Fatalf("expected ErrBlockOrder, got %v", err)
	}
}

func untaggedDoc() string {
	var b strings.Builder
	b.WriteString("site header\nhome row\n")
	for _, id := range domain.All()[1:] {
		b.WriteString(id.Heading())
		b.WriteString("\n  ")
		b.WriteString(id.Name() + " row")
		b.WriteString("  \n\n")
	}
	return b.String()
}

func TestUntagged_Split(t *testing.T) {
	out, err := protocol.Unmarshal([]byte(untaggedDoc()))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out[domain.Home].Text != "site header\nhome row" {
		t.Fatalf("home = %q", out[domain.Home].Text)
	}
	for _, id := range domain.All()[1:] {
		if out[id].Text != id.Name()+" row" {
			t.Fatalf("%s = %q", id, out[id].Text)
		}
	}
}

func TestUntagged_LeadingHomeHeadingAndCRLF(t *testing.T) {
	doc := domain.Home.Heading() + "\r\n" + strings.ReplaceAll(untaggedDoc(), "\n", "\r\n")
	out, err := protocol.Unmarshal([]byte(doc))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out[domain.Home].Text != "site header\nhome row" || out[domain.Aspiration].Text != "aspiration row" {
		t.Fatalf("unexpected blocks: %+v", out)
	}
}

func TestUntagged_HomeHeadingWithTrailingSpace(t *testing.T) {
	doc := domain.Home.Heading() + " \n" + untaggedDoc()
	out, err := protocol.Unmarshal([]byte(doc))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out[domain.Home].Text != "site header\nhome row" {
		t.Fatalf("home = %q", out[domain.Home].Text)
	}

	// A home heading followed by something that is not a full tag is not
	// mistaken for the tagged form either.
	doc = domain.Home.Heading() + " x\n" + untaggedDoc()
	out, err = protocol.Unmarshal([]byte(doc))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.HasPrefix(out[domain.Home].Text, domain.Home.Heading()+" x\n") {
		t.Fatalf("home = %q", out[domain.Home].Text)
	}
}

func TestTagged_BlocksAreExact(t *testing.T) {
	in := sampleBlocks()
	in[domain.Dust].Text = "\n  run,note\n1,trailing space  \n\n"
	doc, err := protocol.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := protocol.Unmarshal(doc)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out[domain.Dust].Text != in[domain.Dust].Text {
		t.Fatalf("dust = %q, want %q", out[domain.Dust].Text, in[domain.Dust].Text)
	}
}

func TestUntagged_MissingHeading(t *testing.T) {
	doc := strings.Replace(untaggedDoc(), domain.Flows.Heading(), "==== FLOW ====", 1)
	_, err := protocol.Unmarshal([]byte(doc))
	var serr *protocol.StructuralError
	if !errors.As(err, &serr) || serr.Expected != domain.Flows || !errors.Is(err, protocol.ErrMissingHeading) {
		t.Fatalf("expected missing flows heading, got %v", err)
	}
}

func TestUntagged_OutOfOrderAndDuplicate(t *testing.T) {
	doc := untaggedDoc()
	swapped := strings.NewReplacer(domain.H2O.Heading(), domain.Dust.Heading(), domain.Dust.Heading(), domain.H2O.Heading()).Replace(doc)
	_, err := protocol.Unmarshal([]byte(swapped))
	var serr *protocol.StructuralError
	if !errors.As(err, &serr) || serr.Expected != domain.Dust {
		t.Fatalf("expected out-of-order error at dust, got %v", err)
	}

	dup := doc + domain.Utilities.Heading() + "\n"
	if _, err := protocol.Unmarshal([]byte(dup)); !errors.Is(err, protocol.ErrDuplicateHeading) {
		t.Fatalf("expected ErrDuplicateHeading, got %v", err)
	}
}

func TestCompressRoundTrip(t *testing.T) {
	doc, err := protocol.Marshal(sampleBlocks())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	z := protocol.Compress(doc)
	if !protocol.IsCompressed(z) || protocol.IsCompressed(doc) {
		t.Fatal("IsCompressed mismatch")
	}
	back, err := protocol.Decompress(z)
	if err != nil || !bytes.Equal(back, doc) {
		t.Fatalf("decompress: %v", err)
	}
	plain, err := protocol.Decompress(doc)
	if err != nil || !bytes.Equal(plain, doc) {
		t.Fatalf("plain passthrough: %v", err)
	}
}

func TestDigest_Stable(t *testing.T) {
	if protocol.Digest("abc") != protocol.Digest("abc") || protocol.Digest("abc") == protocol.Digest("abd") {
		t.Fatal("digest not deterministic or not discriminating")
	}
	if len(protocol.Digest("")) != 16 {
		t.Fatalf("digest length = %d", len(protocol.Digest("")))
	}
}
