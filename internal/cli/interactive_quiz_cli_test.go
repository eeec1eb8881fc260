package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_cli "github.com/at-ishikawa/examprep/internal/mocks/cli"
)

func TestInteractiveQuizCLI_Run(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(session *mock_cli.MockSession)
		wantErr bool
	}{
		{
			name: "runs sessions until the end",
			setup: func(session *mock_cli.MockSession) {
				session.EXPECT().Session(gomock.Any()).Return(nil).Times(2)
				session.EXPECT().Session(gomock.Any()).Return(errEnd)
			},
		},
		{
			name: "stops at the first error",
			setup: func(session *mock_cli.MockSession) {
				session.EXPECT().Session(gomock.Any()).Return(nil)
				session.EXPECT().Session(gomock.Any()).Return(errors.New("broken"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			session := mock_cli.NewMockSession(ctrl)
			tt.setup(session)

			var buf bytes.Buffer
			cli := NewInteractiveQuizCLI(strings.NewReader(""), &buf)
			err := cli.Run(context.Background(), session)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInteractiveQuizCLI_readCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "trims and lower-cases",
			input: "  N \nQuit\n",
			want:  []string{"n", "quit"},
		},
		{
			name:  "last line without newline",
			input: "2",
			want:  []string{"2"},
		},
		{
			name:  "end of input quits",
			input: "",
			want:  []string{"q", "q"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := NewInteractiveQuizCLI(strings.NewReader(tt.input), &bytes.Buffer{})
			for _, want := range tt.want {
				got, err := cli.readCommand()
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}
