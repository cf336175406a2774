package attendance

import (
	"encoding/base64"
	"fmt"
	"strings"

	"hifz-backend/internal/platform/apperr"
)

// MaxAttachmentsPerRecord caps the stored files per attendance entry.
const MaxAttachmentsPerRecord = 3

// ValidateAndEncode checks a candidate batch of new files against the
// count/type/size rules and transforms accepted files into self-contained
// storage records. The whole batch is rejected on the first violation so a
// failed upload leaves prior state untouched.
func ValidateAndEncode(batch []NewAttachment, existingCount, maxKB int) ([]Attachment, error) {
	if len(batch)+existingCount > MaxAttachmentsPerRecord {
		return nil, apperr.Invalid(fmt.Sprintf("maximum %d files allowed", MaxAttachmentsPerRecord))
	}

	out := make([]Attachment, 0, len(batch))
	for _, f := range batch {
		if !strings.HasPrefix(f.Type, "image/") {
			return nil, apperr.Invalid("only image files (jpg, png, etc.) are allowed")
		}

		payload := stripDataURI(f.Data)
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, apperr.Invalid(fmt.Sprintf("file %s is not valid base64", f.Name))
		}
		if len(raw) > maxKB*1024 {
			return nil, apperr.Invalid(fmt.Sprintf("file %s exceeds %dKB limit", f.Name, maxKB))
		}

		out = append(out, Attachment{
			Name: f.Name,
			Data: "data:" + f.Type + ";base64," + payload,
			Size: len(raw),
			Type: f.Type,
		})
	}
	return out, nil
}

func stripDataURI(data string) string {
	if !strings.HasPrefix(data, "data:") {
		return data
	}
	if i := strings.Index(data, ","); i >= 0 {
		return data[i+1:]
	}
	return data
}
