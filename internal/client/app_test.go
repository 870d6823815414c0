package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "nothing secret",
			args: []string{"entries", "list", "--category", "Email"},
			want: []string{"entries", "list", "--category", "Email"},
		},
		{
			name: "separate values",
			args: []string{"entries", "add", "--title", "Mail", "--password", "hunter2", "--secret", "pin=1234"},
			want: []string{"entries", "add", "--title", "Mail", "--password", "***", "--secret", "***"},
		},
		{
			name: "inline values",
			args: []string{"entries", "edit", "e-1", "--password=hunter2", "--notes=door code"},
			want: []string{"entries", "edit", "e-1", "--password=***", "--notes=***"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, redactArgs(tt.args))
		})
	}
}
