package readview_test

import (
	"testing"

	"github.com/fwojciec/readview"
	"github.com/stretchr/testify/assert"
)

func TestOutput_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		out     readview.Output
		wantErr bool
	}{
		{name: "valid markdown", out: readview.Output{Format: readview.FormatMarkdown, Body: "# Title"}},
		{name: "valid json", out: readview.Output{Format: readview.FormatJSON, Body: "{}"}},
		{name: "unknown format", out: readview.Output{Format: "pdf", Body: "x"}, wantErr: true},
		{name: "empty body", out: readview.Output{Format: readview.FormatHTML, Body: "  \n"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.out.Validate()

			if tt.wantErr {
				assert.Equal(t, readview.EINVALID, readview.ErrorCode(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}
