package main

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/examprep/internal/config"
	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/identity"
	mock_content "github.com/at-ishikawa/examprep/internal/mocks/content"
	mock_identity "github.com/at-ishikawa/examprep/internal/mocks/identity"
)

type stubAccounts struct {
	*mock_identity.MockProvider
}

func (stubAccounts) Users(ctx context.Context) ([]identity.User, error) {
	return nil, nil
}

func TestApp_authorize(t *testing.T) {
	student := &identity.User{ID: "5", Name: "Student User", Role: identity.RoleStudent}
	admin := &identity.User{ID: "admin", Name: "Admin User", Role: identity.RoleAdmin}

	tests := []struct {
		name         string
		actions      []identity.Action
		setup        func(m *mock_identity.MockProvider)
		want         *identity.User
		wantErr      error
		wantContains string
	}{
		{
			name:    "student takes a quiz",
			actions: []identity.Action{identity.ActionTakeQuiz},
			setup: func(m *mock_identity.MockProvider) {
				m.EXPECT().Load(gomock.Any()).Return(student, nil)
			},
			want: student,
		},
		{
			name:    "admin manages users",
			actions: []identity.Action{identity.ActionManageUsers},
			setup: func(m *mock_identity.MockProvider) {
				m.EXPECT().Load(gomock.Any()).Return(admin, nil)
			},
			want: admin,
		},
		{
			name:    "student manages users",
			actions: []identity.Action{identity.ActionManageUsers},
			setup: func(m *mock_identity.MockProvider) {
				m.EXPECT().Load(gomock.Any()).Return(student, nil)
			},
			wantErr:      errPermissionDenied,
			wantContains: "the student role cannot admin:users",
		},
		{
			name:    "student may do one of the actions",
			actions: []identity.Action{identity.ActionManageUsers, identity.ActionViewLeaderboard},
			setup: func(m *mock_identity.MockProvider) {
				m.EXPECT().Load(gomock.Any()).Return(student, nil)
			},
			want: student,
		},
		{
			name:    "student may do none of the actions",
			actions: []identity.Action{identity.ActionManageUsers, identity.ActionModerateContent},
			setup: func(m *mock_identity.MockProvider) {
				m.EXPECT().Load(gomock.Any()).Return(student, nil)
			},
			wantErr:      errPermissionDenied,
			wantContains: "the student role cannot admin:users or admin:moderate",
		},
		{
			name:    "not signed in",
			actions: []identity.Action{identity.ActionViewDashboard},
			setup: func(m *mock_identity.MockProvider) {
				m.EXPECT().Load(gomock.Any()).Return(nil, identity.ErrNoSession)
			},
			wantErr:      identity.ErrNoSession,
			wantContains: "run `examprep login` first",
		},
		{
			name:    "broken session file",
			actions: []identity.Action{identity.ActionViewDashboard},
			setup: func(m *mock_identity.MockProvider) {
				m.EXPECT().Load(gomock.Any()).Return(nil, errors.New("bad yaml"))
			},
			wantContains: "identity.Load() > bad yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := mock_identity.NewMockProvider(ctrl)
			tt.setup(provider)

			a := &app{cfg: &config.Config{}, identity: stubAccounts{provider}}
			got, err := a.authorize(context.Background(), tt.actions...)
			if tt.wantContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantContains)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindEditorial(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(m *mock_content.MockRepository)
		wantErr      error
		wantContains string
	}{
		{
			name: "found",
			setup: func(m *mock_content.MockRepository) {
				m.EXPECT().Editorial(gomock.Any(), "1").Return(content.Editorial{ID: "1", Title: "Digital India"}, nil)
			},
		},
		{
			name: "not found",
			setup: func(m *mock_content.MockRepository) {
				m.EXPECT().Editorial(gomock.Any(), "1").Return(content.Editorial{}, content.ErrNotFound)
			},
			wantErr:      content.ErrNotFound,
			wantContains: "editorial 1",
		},
		{
			name: "read failure",
			setup: func(m *mock_content.MockRepository) {
				m.EXPECT().Editorial(gomock.Any(), "1").Return(content.Editorial{}, errors.New("disk error"))
			},
			wantContains: "content.Editorial() > disk error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_content.NewMockRepository(ctrl)
			tt.setup(repo)

			cmd := &cobra.Command{}
			cmd.SetContext(context.Background())
			got, err := findEditorial(cmd, &app{content: repo}, "1")
			if tt.wantContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantContains)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Digital India", got.Title)
		})
	}
}

func TestApp_reports(t *testing.T) {
	tests := []struct {
		name      string
		outputs   config.OutputsConfig
		save, pdf bool
		wantNil   bool
	}{
		{name: "nothing requested", wantNil: true},
		{name: "save flag", save: true},
		{name: "pdf flag", pdf: true},
		{name: "pdf in config", outputs: config.OutputsConfig{PDF: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &app{cfg: &config.Config{Outputs: tt.outputs}}
			got := a.reports(tt.save, tt.pdf)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			assert.NotNil(t, got)
		})
	}
}
