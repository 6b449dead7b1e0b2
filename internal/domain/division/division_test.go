package division

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatus_RoundTrip(t *testing.T) {
	for _, status := range TaskStatuses() {
		got, ok := TaskStatusFromValue(status.Value())
		require.True(t, ok)
		assert.Equal(t, status, got)
		assert.True(t, got.IsValid())
		assert.NotEmpty(t, got.DisplayName())
	}
}

func TestTaskStatus_UnknownCode(t *testing.T) {
	_, ok := TaskStatusFromValue(99)
	assert.False(t, ok)
	assert.False(t, TaskStatus(99).IsValid())
	assert.Empty(t, TaskStatus(99).DisplayName())
}

func TestTaskStatus_DefaultIsTodo(t *testing.T) {
	assert.Equal(t, TaskStatusTodo, DefaultTaskStatus())
	assert.Equal(t, "未着手", TaskStatusTodo.DisplayName())
}

func TestTaskStatuses_DisplayOrder(t *testing.T) {
	statuses := TaskStatuses()
	require.Len(t, statuses, 4)
	assert.Equal(t, []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone, TaskStatusArchived}, statuses)
}

func TestBalloonType_Names(t *testing.T) {
	tests := []struct {
		balloonType BalloonType
		want        string
	}{
		{BalloonTypeGlobal, "GLOBAL"},
		{BalloonTypeLocation, "LOCATION"},
		{BalloonTypeBreath, "BREATHING"},
		{BalloonTypeUser, "USER"},
		{BalloonTypeGuerrilla, "GUERRILLA"},
		{BalloonType(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.balloonType.Name())
		})
	}
}

func TestBalloonType_RoundTrip(t *testing.T) {
	for _, balloonType := range BalloonTypes() {
		got, ok := BalloonTypeFromValue(balloonType.Value())
		require.True(t, ok)
		assert.Equal(t, balloonType, got)
	}

	_, ok := BalloonTypeFromValue(0)
	assert.False(t, ok)
}

func TestUserPlan_Labels(t *testing.T) {
	assert.Equal(t, "FREE", UserPlanFree.DisplayName())
	assert.Equal(t, "PRO", UserPlanPro.DisplayName())
	assert.Equal(t, UserPlanFree, DefaultUserPlan())
}

func TestRenderQuality_DefaultAndUnknown(t *testing.T) {
	assert.Equal(t, RenderQualityAuto, DefaultRenderQuality())

	_, ok := RenderQualityFromValue(77)
	assert.False(t, ok)
}

func TestContributionSourceType_RoundTrip(t *testing.T) {
	for _, source := range []ContributionSourceType{ContributionSourceTask, ContributionSourceBreath, ContributionSourceSystem, ContributionSourceAdmin} {
		got, ok := ContributionSourceTypeFromValue(source.Value())
		require.True(t, ok)
		assert.Equal(t, source, got)
	}
}

func TestPopContextType_UnknownCode(t *testing.T) {
	_, ok := PopContextTypeFromValue(0)
	assert.False(t, ok)
	assert.False(t, PopContextType(0).IsValid())
}
