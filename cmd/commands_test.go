package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rulesnap.dev/pkg/rulesnap/internal/controller"
	"rulesnap.dev/pkg/rulesnap/internal/domain"
	domainmocks "rulesnap.dev/pkg/rulesnap/internal/domain/mocks"
	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

func TestGroupsCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Groups", mock.Anything, mock.MatchedBy(func(args domain.GroupsArgs) bool {
		return args.Root == m.Path("repo") &&
			args.Grouping.Mode == domain.GroupingStandalone &&
			args.Parallel == 4
	})).Return(nil)

	_, err := executeCommand(t, mockWorkflow, newGroupsCmd(), "groups", "--root", "repo", "--standalone")
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestGroupsCmd_RejectsArguments(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := executeCommand(t, mockWorkflow, newGroupsCmd(), "groups", "apps/web")
	require.Error(t, err)
}

func TestSnapshotCmd(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantPrune bool
	}{
		{"default", []string{"snapshot"}, false},
		{"prune", []string{"snapshot", "--prune"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)

			mockWorkflow.EXPECT().
				Snapshot(mock.Anything, mock.MatchedBy(func(args domain.SnapshotArgs) bool {
					return args.Prune == tt.wantPrune && args.Grouping.Mode == domain.GroupingMatch
				})).
				Return(nil)

			_, err := executeCommand(t, mockWorkflow, newSnapshotCmd(), tt.args...)
			require.NoError(t, err)
		})
	}
}

func TestCheckCmd_PassesFormatAndTolerance(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Format == controller.FormatJSON &&
			args.ShowDiff &&
			args.Tolerant &&
			args.Parallel == 2 &&
			args.MetricsFile == m.Path("out/rulesnap.prom")
	})).Return(nil)
	// The metrics flag lives on the check command; rebind it afterwards.
	t.Cleanup(func() { newCheckCmd() })

	_, err := executeCommand(t, mockWorkflow, newCheckCmd(), "check", "--format", "json", "--show-diff", "--tolerant", "-p", "2", "--metrics-file", "out/rulesnap.prom")
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestCheckCmd_DriftIsAnError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.EXPECT().
		Check(mock.Anything, mock.Anything).
		Return(domain.ErrDriftDetected)

	_, err := executeCommand(t, mockWorkflow, newCheckCmd(), "check")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDriftDetected))
}

func TestCheckCmd_UnknownFormat(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := executeCommand(t, mockWorkflow, newCheckCmd(), "check", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestPrintCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Print", mock.Anything, mock.MatchedBy(func(args domain.PrintArgs) bool {
		return args.Sampling.MaxFilesPerWorkspace == 8 && args.Policy == domain.PolicySurfaceAll
	})).Return(nil)

	_, err := executeCommand(t, mockWorkflow, newPrintCmd(), "print")
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestPrintCmd_ConfigErrorStopsBeforeWorkflow(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	setConfig(t, samplingMaxFilesKey, 0)

	_, err := executeCommand(t, mockWorkflow, newPrintCmd(), "print")
	require.Error(t, err)
	assert.Contains(t, err.Error(), samplingMaxFilesKey)
}
