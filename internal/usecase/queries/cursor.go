package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"wanderbook/internal/pkg/errs"
)

var ErrInvalidCursor = errs.New("invalid pagination cursor")

const cursorVersion = "v1"

// Cursor is a keyset pagination position: the created_at (microseconds) and
// id of the last row on the previous page. Keyset paging stays stable while
// new rows are inserted, unlike offsets.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

func (c Cursor) Encode() string {
	raw := fmt.Sprintf("%s:%d_%s", cursorVersion, c.CreatedAt.UnixMicro(), c.ID)
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

func DecodeCursor(s string) (*Cursor, error) {
	if s == "" {
		return nil, nil
	}

	raw, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCursor)
	}

	version, rest, ok := strings.Cut(string(raw), ":")
	if !ok || version != cursorVersion {
		return nil, ErrInvalidCursor
	}

	microsStr, idStr, ok := strings.Cut(rest, "_")
	if !ok {
		return nil, ErrInvalidCursor
	}

	micros, err := strconv.ParseInt(microsStr, 10, 64)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCursor)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCursor)
	}

	return &Cursor{CreatedAt: time.UnixMicro(micros).UTC(), ID: id}, nil
}
