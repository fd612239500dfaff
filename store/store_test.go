package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	now := time.Now().UTC()
	parsed, err := ParseTime(EncodeTime(now))

	assert.NoError(err)
	assert.True(now.Equal(parsed), "round-tripped timestamp should equal the original instant")
}

func TestParseTimeAcceptsExplicitUTCOffset(t *testing.T) {
	assert := assert.New(t)

	// The original implementation stored timestamps with a "+00:00" suffix
	// rather than "Z"; existing documents must remain readable.
	parsed, err := ParseTime("2024-11-03T09:41:12.000125+00:00")

	assert.NoError(err)
	assert.Equal(time.Date(2024, 11, 3, 9, 41, 12, 125000, time.UTC), parsed)
}

func TestParseTimeRejectsGarbage(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseTime("yesterday-ish")
	assert.Error(err)
}

func TestStringField(t *testing.T) {
	assert := assert.New(t)

	doc := map[string]interface{}{"author": "nan", "year": 2024}

	v, err := StringField(doc, "author")
	assert.NoError(err)
	assert.Equal("nan", v)

	_, err = StringField(doc, "title")
	assert.Error(err, "missing field should be reported")

	_, err = StringField(doc, "year")
	assert.Error(err, "non-string field should be reported")
}

func TestInMemoryPutAndScanAll(t *testing.T) {
	assert := assert.New(t)
	conn := NewInMemoryConnection()
	ctx := context.Background()

	assert.NoError(conn.Put(ctx, "stories", "id-1", map[string]interface{}{"title": "first"}))
	assert.NoError(conn.Put(ctx, "stories", "id-2", map[string]interface{}{"title": "second"}))

	docs, err := conn.ScanAll(ctx, "stories")
	assert.NoError(err)
	assert.Len(docs, 2)
}

func TestInMemoryPutIsAnUpsert(t *testing.T) {
	assert := assert.New(t)
	conn := NewInMemoryConnection()
	ctx := context.Background()

	assert.NoError(conn.Put(ctx, "stories", "id-1", map[string]interface{}{"title": "first"}))
	assert.NoError(conn.Put(ctx, "stories", "id-1", map[string]interface{}{"title": "rewritten"}))

	assert.Equal(1, conn.Len("stories"))

	doc, ok := conn.Get("stories", "id-1")
	assert.True(ok)
	assert.Equal("rewritten", doc["title"])
}

func TestInMemoryCollectionsAreIsolated(t *testing.T) {
	assert := assert.New(t)
	conn := NewInMemoryConnection()
	ctx := context.Background()

	assert.NoError(conn.Put(ctx, "stories", "id-1", map[string]interface{}{"title": "first"}))

	docs, err := conn.ScanAll(ctx, "contact_messages")
	assert.NoError(err)
	assert.Empty(docs)
}

func TestInMemoryDocumentsDoNotAlias(t *testing.T) {
	assert := assert.New(t)
	conn := NewInMemoryConnection()
	ctx := context.Background()

	original := map[string]interface{}{"title": "first"}
	assert.NoError(conn.Put(ctx, "stories", "id-1", original))
	original["title"] = "mutated after put"

	doc, ok := conn.Get("stories", "id-1")
	assert.True(ok)
	assert.Equal("first", doc["title"])
}
