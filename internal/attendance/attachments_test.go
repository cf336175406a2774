package attendance

import (
	"encoding/base64"
	"strings"
	"testing"
)

func fakeImage(sizeBytes int) string {
	return base64.StdEncoding.EncodeToString(make([]byte, sizeBytes))
}

func TestValidateAndEncode_AcceptsValidImage(t *testing.T) {
	batch := []NewAttachment{
		{Name: "proof.png", Data: fakeImage(100 * 1024), Type: "image/png"},
	}

	out, err := ValidateAndEncode(batch, 0, 200)
	if err != nil {
		t.Fatalf("ValidateAndEncode returned error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d attachments, want 1", len(out))
	}
	if out[0].Size != 100*1024 {
		t.Errorf("Size = %d, want %d", out[0].Size, 100*1024)
	}
	if out[0].Type != "image/png" {
		t.Errorf("Type = %q, want image/png", out[0].Type)
	}
	if !strings.HasPrefix(out[0].Data, "data:image/png;base64,") {
		t.Errorf("Data should be a data URI, got prefix %q", out[0].Data[:30])
	}
}

func TestValidateAndEncode_RejectsTooManyFiles(t *testing.T) {
	batch := make([]NewAttachment, 4)
	for i := range batch {
		batch[i] = NewAttachment{Name: "f.png", Data: fakeImage(50 * 1024), Type: "image/png"}
	}

	if _, err := ValidateAndEncode(batch, 0, 200); err == nil {
		t.Fatal("batch of 4 should be rejected")
	}
}

func TestValidateAndEncode_CountsExistingFiles(t *testing.T) {
	batch := []NewAttachment{
		{Name: "f.png", Data: fakeImage(1024), Type: "image/png"},
	}

	if _, err := ValidateAndEncode(batch, 3, 200); err == nil {
		t.Fatal("adding to a full record should be rejected")
	}
	if _, err := ValidateAndEncode(batch, 2, 200); err != nil {
		t.Fatalf("2 existing + 1 new should be allowed, got %v", err)
	}
}

func TestValidateAndEncode_RejectsOversizedFile(t *testing.T) {
	batch := []NewAttachment{
		{Name: "big.jpg", Data: fakeImage(250 * 1024), Type: "image/jpeg"},
	}

	if _, err := ValidateAndEncode(batch, 0, 200); err == nil {
		t.Fatal("250KB file should be rejected at the 200KB default")
	}
}

func TestValidateAndEncode_RejectsNonImage(t *testing.T) {
	batch := []NewAttachment{
		{Name: "report.pdf", Data: fakeImage(1024), Type: "application/pdf"},
	}

	if _, err := ValidateAndEncode(batch, 0, 200); err == nil {
		t.Fatal("non-image file should be rejected")
	}
}

func TestValidateAndEncode_RejectsWholeBatchOnOneViolation(t *testing.T) {
	batch := []NewAttachment{
		{Name: "ok.png", Data: fakeImage(1024), Type: "image/png"},
		{Name: "bad.txt", Data: fakeImage(1024), Type: "text/plain"},
	}

	out, err := ValidateAndEncode(batch, 0, 200)
	if err == nil {
		t.Fatal("batch containing a non-image should be rejected")
	}
	if out != nil {
		t.Errorf("rejected batch must not return partial results, got %d", len(out))
	}
}

func TestValidateAndEncode_AcceptsDataURIInput(t *testing.T) {
	payload := fakeImage(2048)
	batch := []NewAttachment{
		{Name: "p.png", Data: "data:image/png;base64," + payload, Type: "image/png"},
	}

	out, err := ValidateAndEncode(batch, 0, 200)
	if err != nil {
		t.Fatalf("data URI input should be accepted: %v", err)
	}
	if out[0].Size != 2048 {
		t.Errorf("Size = %d, want 2048", out[0].Size)
	}
	if out[0].Data != "data:image/png;base64,"+payload {
		t.Error("stored data URI should match the input payload")
	}
}
