package usecase_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/holodeck/pkg/usecase"
)

func TestWriteCSV(t *testing.T) {
	t.Run("fields are written in order with missing values empty", func(t *testing.T) {
		var buf bytes.Buffer
		err := usecase.WriteCSV(&buf, []string{"name", "count", "tags"}, []map[string]any{
			{"name": "Alice", "count": 3.0, "tags": []any{"a", "b"}},
			{"name": "Bob, Jr.", "extra": "ignored"},
			{"count": 1.5, "tags": []string{"x"}},
		})
		gt.NoError(t, err).Required()
		gt.Equal(t, buf.String(), "name,count,tags\nAlice,3,\"a,b\"\n\"Bob, Jr.\",,\n,1.5,x\n")
	})

	t.Run("header only", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, usecase.WriteCSV(&buf, []string{"a"}, nil))
		gt.Equal(t, buf.String(), "a\n")
	})
}
